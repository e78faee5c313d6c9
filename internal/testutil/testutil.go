package testutil

import (
	"sync"

	"wordcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWords builds words from text/translation pairs
func NewTestWords(pairs ...string) []domain.Word {
	words := make([]domain.Word, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		words = append(words, domain.Word{Text: pairs[i], Translation: pairs[i+1]})
	}
	return words
}

// MemoryStore is an in-memory user and word repository for scenario tests.
// Like the SQL store, user words added before EnsureUser belong to nobody.
type MemoryStore struct {
	mu      sync.Mutex
	users   map[int64]string
	common  []domain.Word
	words   map[int64][]domain.Word
	orphans []domain.Word
}

// NewMemoryStore creates a store holding the given common words
func NewMemoryStore(common ...domain.Word) *MemoryStore {
	return &MemoryStore{
		users:  make(map[int64]string),
		common: common,
		words:  make(map[int64][]domain.Word),
	}
}

func (s *MemoryStore) EnsureUser(userID int64, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		s.users[userID] = displayName
	}
	return nil
}

// HasUser reports whether EnsureUser was called for the user
func (s *MemoryStore) HasUser(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[userID]
	return ok
}

func (s *MemoryStore) CommonWords() ([]domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Word{}, s.common...), nil
}

func (s *MemoryStore) UserWords(userID int64) ([]domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Word{}, s.words[userID]...), nil
}

func (s *MemoryStore) AddWord(userID int64, word, translation string, scope domain.Scope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := domain.Word{Text: word, Translation: translation}
	if scope == domain.ScopeCommon {
		s.common = append(s.common, w)
		return nil
	}
	if _, ok := s.users[userID]; !ok {
		s.orphans = append(s.orphans, w)
		return nil
	}
	s.words[userID] = append(s.words[userID], w)
	return nil
}

// Orphans returns user words that were added for an unknown user
func (s *MemoryStore) Orphans() []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Word{}, s.orphans...)
}

func (s *MemoryStore) DeleteWord(userID int64, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.words[userID][:0]
	for _, w := range s.words[userID] {
		if w.Text != text {
			kept = append(kept, w)
		}
	}
	s.words[userID] = kept
	return nil
}

func (s *MemoryStore) SeedCommonWords() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.common) > 0 {
		return 0, nil
	}
	s.common = append(s.common, domain.StarterWords...)
	return len(domain.StarterWords), nil
}
