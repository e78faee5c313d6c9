package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	conn *Conn
}

// NewUserRepo creates a new user repository
func NewUserRepo(conn *Conn) *UserRepo {
	return &UserRepo{conn: conn}
}

// EnsureUser creates user if not exists
func (r *UserRepo) EnsureUser(userID int64, displayName string) error {
	query := `
		INSERT INTO users (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	return r.conn.Do("ensure user", func(db *sql.DB) error {
		_, err := db.Exec(query, userID, nullString(displayName))
		return err
	})
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
