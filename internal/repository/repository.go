package repository

import (
	"wordcards/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUser(userID int64, displayName string) error
}

// WordRepository defines word data operations.
// Unknown users have no words; that is not an error.
type WordRepository interface {
	CommonWords() ([]domain.Word, error)
	UserWords(userID int64) ([]domain.Word, error)
	AddWord(userID int64, word, translation string, scope domain.Scope) error
	DeleteWord(userID int64, text string) error
	SeedCommonWords() (int, error)
}
