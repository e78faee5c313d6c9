package domain

import "errors"

var (
	// ErrStoreUnavailable means storage could not be reached even after a reconnect
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrEmptyWord is returned when a word or translation is blank
	ErrEmptyWord = errors.New("word and translation cannot be empty")
)
