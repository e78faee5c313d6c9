package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"net"

	"github.com/lib/pq"
)

// PostgreSQL error codes that mean the server dropped us
const (
	connectionExceptionClass = pq.ErrorClass("08")
	adminShutdownCode        = pq.ErrorCode("57P01")
	crashShutdownCode        = pq.ErrorCode("57P02")
	cannotConnectNowCode     = pq.ErrorCode("57P03")
)

// IsConnectionError reports whether err means the connection is gone
// and the operation may succeed on a fresh one
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case adminShutdownCode, crashShutdownCode, cannotConnectNowCode:
			return true
		}
		return pqErr.Code.Class() == connectionExceptionClass
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
