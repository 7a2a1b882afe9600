// Package store persists the words a user picked for what they typed, so
// later suggestions can preselect them.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const FileName = "selections.db"

const schema = `
CREATE TABLE IF NOT EXISTS selections (
    typed       TEXT PRIMARY KEY,
    word        TEXT NOT NULL,
    updated_ns  INTEGER NOT NULL
);
`

// Selections maps typed text to the committed word. Lookups are served
// from memory; writes go through to SQLite when a file backs the store.
type Selections struct {
	db    *sql.DB
	cache map[string]string
}

// NewSelections returns a store that lives in memory only.
func NewSelections() *Selections {
	return &Selections{cache: make(map[string]string)}
}

// Open opens or creates the selection database at path and loads it.
func Open(path string) (*Selections, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create selection directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open selection database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply selection schema: %w", err)
	}
	s := &Selections{db: db, cache: make(map[string]string)}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Selections) load() error {
	rows, err := s.db.Query(`SELECT typed, word FROM selections`)
	if err != nil {
		return fmt.Errorf("load selections: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var typed, word string
		if err := rows.Scan(&typed, &word); err != nil {
			return fmt.Errorf("scan selection: %w", err)
		}
		s.cache[typed] = word
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load selections: %w", err)
	}
	return nil
}

func (s *Selections) Get(typed string) (string, bool) {
	if s == nil {
		return "", false
	}
	word, ok := s.cache[typed]
	return word, ok
}

// Put records word as the choice for typed. The memory copy is updated
// even when the write fails.
func (s *Selections) Put(typed, word string) error {
	if s == nil || typed == "" || word == "" {
		return nil
	}
	s.cache[typed] = word
	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO selections (typed, word, updated_ns) VALUES (?, ?, ?)
		ON CONFLICT(typed) DO UPDATE SET word = excluded.word, updated_ns = excluded.updated_ns`,
		typed, word, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("save selection %q: %w", typed, err)
	}
	return nil
}

func (s *Selections) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cache)
}

func (s *Selections) Close() error {
	if s != nil && s.db != nil {
		return s.db.Close()
	}
	return nil
}
