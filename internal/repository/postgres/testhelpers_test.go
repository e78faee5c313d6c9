package postgres

import (
	"database/sql"
	"testing"

	"wordcards/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// newMockConn returns a Conn over a sqlmock handle that never reconnects
func newMockConn(t *testing.T) (*Conn, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	open := func() (*sql.DB, error) {
		t.Fatal("unexpected reconnect")
		return nil, nil
	}
	return NewConn(db, open, RetryPolicy{}, testutil.NewTestLogger()), mock
}
