package postgres

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"net"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "bad conn", err: driver.ErrBadConn, expected: true},
		{name: "conn done", err: sql.ErrConnDone, expected: true},
		{name: "eof", err: io.EOF, expected: true},
		{name: "unexpected eof wrapped", err: fmt.Errorf("read: %w", io.ErrUnexpectedEOF), expected: true},
		{name: "net error", err: &net.OpError{Op: "read", Net: "tcp", Err: fmt.Errorf("reset")}, expected: true},
		{name: "connection failure", err: &pq.Error{Code: "08006"}, expected: true},
		{name: "admin shutdown", err: &pq.Error{Code: "57P01"}, expected: true},
		{name: "cannot connect now", err: &pq.Error{Code: "57P03"}, expected: true},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, expected: false},
		{name: "no rows", err: sql.ErrNoRows, expected: false},
		{name: "plain error", err: fmt.Errorf("boom"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsConnectionError(tt.err))
		})
	}
}
