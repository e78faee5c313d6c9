package testutil

import (
	"wordcards/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(userID int64, displayName string) error {
	args := m.Called(userID, displayName)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) CommonWords() ([]domain.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) UserWords(userID int64) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) AddWord(userID int64, word, translation string, scope domain.Scope) error {
	args := m.Called(userID, word, translation, scope)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteWord(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}

func (m *MockWordRepository) SeedCommonWords() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
