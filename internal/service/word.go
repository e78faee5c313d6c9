package service

import (
	"strings"

	"wordcards/internal/domain"
	"wordcards/internal/repository"

	"go.uber.org/zap"
)

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, logger *zap.Logger) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// NormalizeWord lower-cases user input before it is stored
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Vocabulary returns common words followed by the user's own words.
// Duplicates are kept.
func (s *WordService) Vocabulary(userID int64) ([]domain.Word, error) {
	common, err := s.wordRepo.CommonWords()
	if err != nil {
		return nil, err
	}
	own, err := s.wordRepo.UserWords(userID)
	if err != nil {
		return nil, err
	}

	words := make([]domain.Word, 0, len(common)+len(own))
	words = append(words, common...)
	return append(words, own...), nil
}

// UserWords returns only the words the user added
func (s *WordService) UserWords(userID int64) ([]domain.Word, error) {
	return s.wordRepo.UserWords(userID)
}

// AddUserWord saves a word-translation pair to the user's vocabulary
func (s *WordService) AddUserWord(userID int64, word, translation string) error {
	if word == "" || translation == "" {
		return domain.ErrEmptyWord
	}
	return s.wordRepo.AddWord(userID, word, translation, domain.ScopeUser)
}

// DeleteUserWord removes every user word with the given text
func (s *WordService) DeleteUserWord(userID int64, text string) error {
	return s.wordRepo.DeleteWord(userID, text)
}

// SeedCommonWords fills an empty common vocabulary with the starter set
func (s *WordService) SeedCommonWords() error {
	inserted, err := s.wordRepo.SeedCommonWords()
	if err != nil {
		s.logger.Error("Failed to seed common words", zap.Error(err))
		return err
	}

	if inserted > 0 {
		s.logger.Info("Common words seeded", zap.Int("count", inserted))
	} else {
		s.logger.Info("Common words already present, skipping seed")
	}
	return nil
}
