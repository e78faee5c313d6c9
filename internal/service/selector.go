package service

import (
	"math/rand"
	"sync"

	"wordcards/internal/domain"

	"github.com/samber/lo"
)

// Selector picks cards uniformly at random
type Selector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector creates a selector with its own random source
func NewSelector(seed int64) *Selector {
	return &Selector{rnd: rand.New(rand.NewSource(seed))}
}

// Pick chooses a target word and up to three distractors from words.
// It returns nil when words is empty.
func (s *Selector) Pick(words []domain.Word) *domain.CardContext {
	if len(words) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := words[s.rnd.Intn(len(words))]

	others := lo.Filter(words, func(w domain.Word, _ int) bool {
		return w.Text != target.Text
	})
	pool := lo.Map(others, func(w domain.Word, _ int) string {
		return w.Text
	})

	// partial Fisher-Yates: the first n entries become a uniform sample
	n := min(domain.MaxDistractors, len(pool))
	for i := 0; i < n; i++ {
		j := i + s.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	distractors := append([]string{}, pool[:n]...)

	options := append([]string{target.Text}, distractors...)
	s.shuffle(options)

	return &domain.CardContext{
		Target:      target.Text,
		Translation: target.Translation,
		Distractors: distractors,
		Options:     options,
	}
}

// Shuffle returns the labels in random order
func (s *Selector) Shuffle(labels []string) []string {
	shuffled := append([]string{}, labels...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.shuffle(shuffled)

	return shuffled
}

func (s *Selector) shuffle(labels []string) {
	s.rnd.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})
}
