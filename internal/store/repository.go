// Package store persists comments for the reference comment server.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/evcraddock/comment-client/comment"
)

// ErrNotFound is returned when a comment ID does not exist.
var ErrNotFound = errors.New("comment not found")

// Repository provides CRUD operations for comments.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a comment repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Add creates a new comment.
func (r *Repository) Add(name, text string) (*comment.Comment, error) {
	result, err := r.db.Exec(
		"INSERT INTO comments (name, text) VALUES (?, ?)",
		name, text,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.Get(id)
}

// Get returns a single comment.
func (r *Repository) Get(id int64) (*comment.Comment, error) {
	var c comment.Comment
	err := r.db.QueryRow(
		"SELECT id, name, text FROM comments WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading comment: %w", err)
	}
	return &c, nil
}

// List returns all comments, oldest first.
func (r *Repository) List() (comments []*comment.Comment, err error) {
	rows, err := r.db.Query("SELECT id, name, text FROM comments ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	comments = []*comment.Comment{}
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.Name, &c.Text); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comments: %w", err)
	}

	return comments, nil
}

// Update replaces the name and text of an existing comment.
func (r *Repository) Update(id int64, name, text string) (*comment.Comment, error) {
	result, err := r.db.Exec(
		"UPDATE comments SET name = ?, text = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		name, text, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}

	return r.Get(id)
}
