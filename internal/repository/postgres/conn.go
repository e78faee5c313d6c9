package postgres

import (
	"database/sql"
	"fmt"
	"sync"

	"wordcards/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// OpenFunc opens and verifies a new database handle
type OpenFunc func() (*sql.DB, error)

// RetryPolicy bounds how many times an operation is retried after a reconnect
type RetryPolicy struct {
	MaxRetries int
}

// DefaultRetryPolicy reconnects once and retries once
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 1}

// Conn owns the shared database handle and replaces it when the server drops it
type Conn struct {
	open   OpenFunc
	policy RetryPolicy
	logger *zap.Logger

	mu    sync.RWMutex
	db    *sql.DB
	group singleflight.Group
}

// NewConn wraps an already opened handle
func NewConn(db *sql.DB, open OpenFunc, policy RetryPolicy, logger *zap.Logger) *Conn {
	return &Conn{
		open:   open,
		policy: policy,
		logger: logger,
		db:     db,
	}
}

// Acquire returns the current handle
func (c *Conn) Acquire() *sql.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// Close releases the current handle
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Do runs fn against the current handle. On a connection error it reconnects
// and retries up to policy.MaxRetries times, then reports ErrStoreUnavailable.
// A call whose handle was replaced by another caller's reconnect while it ran
// is repeated once on the new handle.
func (c *Conn) Do(op string, fn func(db *sql.DB) error) error {
	attempt := 0
	replaced := false
	for {
		db := c.Acquire()
		if db == nil {
			return fmt.Errorf("%s: %w: connection closed", op, domain.ErrStoreUnavailable)
		}

		err := fn(db)
		if err == nil {
			return nil
		}

		if current := c.Acquire(); !replaced && current != nil && current != db {
			c.logger.Debug("Handle replaced during call, retrying",
				zap.String("op", op),
				zap.Error(err),
			)
			replaced = true
			continue
		}

		if !IsConnectionError(err) {
			return fmt.Errorf("%s: %w", op, err)
		}
		if attempt >= c.policy.MaxRetries {
			return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
		}
		attempt++

		c.logger.Warn("Database connection lost, reconnecting",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if rerr := c.reconnect(db); rerr != nil {
			return fmt.Errorf("%s: %w: reconnect: %w", op, domain.ErrStoreUnavailable, rerr)
		}
	}
}

// reconnect replaces stale with a fresh handle. Concurrent callers share one
// attempt, and a caller holding an already replaced handle does nothing.
func (c *Conn) reconnect(stale *sql.DB) error {
	_, err, _ := c.group.Do("reconnect", func() (interface{}, error) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.db != stale {
			return nil, nil
		}

		fresh, err := c.open()
		if err != nil {
			return nil, err
		}

		if stale != nil {
			if cerr := stale.Close(); cerr != nil {
				c.logger.Debug("Failed to close stale connection", zap.Error(cerr))
			}
		}
		c.db = fresh

		c.logger.Info("Database connection re-established")
		return nil, nil
	})
	return err
}
