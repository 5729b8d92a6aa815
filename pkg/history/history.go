// Package history keeps a record of opened projects in a local sqlite
// database. Recording is best-effort: the launcher works fine without it.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded project open.
type Entry struct {
	Workspace string    `json:"workspace"`
	Project   string    `json:"project"`
	Path      string    `json:"path"`
	OpenedAt  time.Time `json:"openedAt"`
}

// Recorder appends and queries open events.
type Recorder struct {
	db *sql.DB
}

// Open creates or opens the history database under dataDir.
func Open(dataDir string) (*Recorder, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dataDir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	r := &Recorder{db: db}
	if err := r.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history: %w", err)
	}
	return r, nil
}

func (r *Recorder) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS opens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workspace TEXT NOT NULL,
		project TEXT NOT NULL,
		path TEXT NOT NULL,
		opened_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_opens_opened_at ON opens(opened_at);
	`

	_, err := r.db.Exec(schema)
	return err
}

// Record appends an open event stamped with the current time.
func (r *Recorder) Record(workspace, project, path string) error {
	_, err := r.db.Exec(
		"INSERT INTO opens (workspace, project, path, opened_at) VALUES (?, ?, ?, ?)",
		workspace, project, path, time.Now(),
	)
	return err
}

// Recent returns the most recent open events, newest first. A limit of
// zero or less means no limit.
func (r *Recorder) Recent(limit int) ([]Entry, error) {
	query := "SELECT workspace, project, path, opened_at FROM opens ORDER BY opened_at DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Workspace, &e.Project, &e.Path, &e.OpenedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (r *Recorder) Close() error {
	return r.db.Close()
}
