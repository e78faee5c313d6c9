package postgres

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_EnsureUser(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		displayName   string
		expectedName  interface{}
		mockError     error
		expectedError bool
	}{
		{
			name:         "with username",
			userID:       123,
			displayName:  "alice",
			expectedName: "alice",
		},
		{
			name:         "without username",
			userID:       456,
			displayName:  "",
			expectedName: nil,
		},
		{
			name:          "database error",
			userID:        789,
			displayName:   "bob",
			expectedName:  "bob",
			mockError:     fmt.Errorf("syntax error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			repo := NewUserRepo(conn)

			exp := mock.ExpectExec("INSERT INTO users \\(user_id, username\\) VALUES \\(\\$1, \\$2\\) ON CONFLICT \\(user_id\\) DO NOTHING").
				WithArgs(tt.userID, tt.expectedName)
			if tt.mockError != nil {
				exp.WillReturnError(tt.mockError)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := repo.EnsureUser(tt.userID, tt.displayName)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_EnsureUser_Duplicate(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewUserRepo(conn)

	// ON CONFLICT DO NOTHING affects zero rows the second time
	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(123), "alice").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(123), "alice").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureUser(123, "alice"))
	assert.NoError(t, repo.EnsureUser(123, "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
