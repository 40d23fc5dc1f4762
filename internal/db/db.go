// Package db opens the SQLite store behind the reference comment server.
package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// busyTimeoutMS is how long a connection waits on a locked database.
const busyTimeoutMS = 5000

// DefaultPath is where commentctl serve keeps its comments.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "commentctl", "comments.db"), nil
}

// Open creates the parent directory of path if needed, opens the comment
// database there and brings its schema up to date.
//
// WAL mode and the busy timeout are passed in the DSN, so every pooled
// connection gets them, not only the first one.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	d, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// sql.Open is lazy; Ping surfaces a bad path before migrations run.
	if err := d.Ping(); err != nil {
		return nil, closeAfter(d, fmt.Errorf("connecting to %s: %w", path, err))
	}
	if err := migrate(d); err != nil {
		return nil, closeAfter(d, fmt.Errorf("running migrations: %w", err))
	}

	return d, nil
}

func dsn(path string) string {
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", fmt.Sprint(busyTimeoutMS))
	return path + "?" + q.Encode()
}

// closeAfter closes d and returns err, noting a close failure too.
func closeAfter(d *sql.DB, err error) error {
	if cerr := d.Close(); cerr != nil {
		return fmt.Errorf("%w (also failed to close: %v)", err, cerr)
	}
	return err
}
