package domain

// User represents a bot user
type User struct {
	ID          int64
	DisplayName string
}
