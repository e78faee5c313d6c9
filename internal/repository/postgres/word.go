package postgres

import (
	"database/sql"
	"fmt"

	"wordcards/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	conn *Conn
}

// NewWordRepo creates a new word repository
func NewWordRepo(conn *Conn) *WordRepo {
	return &WordRepo{conn: conn}
}

// CommonWords returns the vocabulary shared by all users
func (r *WordRepo) CommonWords() ([]domain.Word, error) {
	query := `SELECT word, translation FROM common_words`

	var words []domain.Word
	err := r.conn.Do("common words", func(db *sql.DB) error {
		var err error
		words, err = queryWords(db, query)
		return err
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// UserWords returns words added by the user.
// Unknown users simply match no rows.
func (r *WordRepo) UserWords(userID int64) ([]domain.Word, error) {
	query := `
		SELECT word, translation FROM user_words
		WHERE user_id = (SELECT id FROM users WHERE user_id = $1)
	`

	var words []domain.Word
	err := r.conn.Do("user words", func(db *sql.DB) error {
		var err error
		words, err = queryWords(db, query, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// AddWord appends a word-translation pair without checking for duplicates
func (r *WordRepo) AddWord(userID int64, word, translation string, scope domain.Scope) error {
	if scope == domain.ScopeCommon {
		query := `
			INSERT INTO common_words (word, translation)
			VALUES ($1, $2)
		`
		return r.conn.Do("add common word", func(db *sql.DB) error {
			_, err := db.Exec(query, word, translation)
			return err
		})
	}

	query := `
		INSERT INTO user_words (user_id, word, translation)
		VALUES ((SELECT id FROM users WHERE user_id = $1), $2, $3)
	`
	return r.conn.Do("add user word", func(db *sql.DB) error {
		_, err := db.Exec(query, userID, word, translation)
		return err
	})
}

// DeleteWord removes all of the user's words with the given text.
// Nothing matching is not an error.
func (r *WordRepo) DeleteWord(userID int64, text string) error {
	query := `
		DELETE FROM user_words
		WHERE user_id = (SELECT id FROM users WHERE user_id = $1) AND word = $2
	`
	return r.conn.Do("delete word", func(db *sql.DB) error {
		_, err := db.Exec(query, userID, text)
		return err
	})
}

// SeedCommonWords fills an empty common vocabulary with the starter set
// and returns how many words were inserted
func (r *WordRepo) SeedCommonWords() (int, error) {
	var inserted int
	err := r.conn.Do("seed common words", func(db *sql.DB) error {
		inserted = 0

		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM common_words`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		for _, w := range domain.StarterWords {
			if _, err := tx.Exec(
				`INSERT INTO common_words (word, translation) VALUES ($1, $2)`,
				w.Text, w.Translation,
			); err != nil {
				return fmt.Errorf("insert %q: %w", w.Text, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return err
		}
		inserted = len(domain.StarterWords)
		return nil
	})
	return inserted, err
}

func queryWords(db *sql.DB, query string, args ...interface{}) ([]domain.Word, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.Text, &w.Translation); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}
