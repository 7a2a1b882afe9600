package dictionary

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
    word       TEXT PRIMARY KEY,
    frequency  INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_words_frequency ON words(frequency DESC, word);
`

// SQLite is a Dictionary backed by a dictionary.db file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the word database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create dictionary directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open dictionary database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply dictionary schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	if s != nil && s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Import inserts entries in one transaction. A word already present keeps
// the higher frequency. It returns the number of rows written.
func (s *SQLite) Import(entries []Entry) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO words (word, frequency) VALUES (?, ?)
		ON CONFLICT(word) DO UPDATE SET frequency = MAX(frequency, excluded.frequency)`)
	if err != nil {
		return 0, fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	written := 0
	for _, e := range entries {
		word := Normalize(e.Word)
		if word == "" {
			continue
		}
		if _, err := stmt.Exec(word, e.Frequency); err != nil {
			return written, fmt.Errorf("insert word %q: %w", word, err)
		}
		written++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return written, nil
}

func (s *SQLite) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// Search runs a range scan over the primary key. Query failures are traced
// and yield no matches.
func (s *SQLite) Search(prefix string, limit int) []string {
	prefix = Normalize(prefix)
	if s == nil || prefix == "" {
		return nil
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(`
		SELECT word FROM words
		WHERE word >= ? AND word < ?
		ORDER BY frequency DESC, word ASC
		LIMIT ?`, prefix, prefix+string(utf8.MaxRune), limit)
	if err != nil {
		tracer().Errorf("dictionary search %q: %v", prefix, err)
		return nil
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			tracer().Errorf("dictionary scan %q: %v", prefix, err)
			return nil
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		tracer().Errorf("dictionary rows %q: %v", prefix, err)
		return nil
	}
	return words
}

// Match scans the words under each head of p. Query failures are traced
// and end the scan.
func (s *SQLite) Match(p Pattern, limit int) []string {
	if s == nil || p.Expr == nil {
		return nil
	}
	return rank(matchEntries(p, func(head string, keep func(Entry)) {
		rows, err := s.db.Query(`
			SELECT word, frequency FROM words
			WHERE word >= ? AND word < ?`, head, head+string(utf8.MaxRune))
		if err != nil {
			tracer().Errorf("dictionary match %q: %v", head, err)
			return
		}
		defer rows.Close()
		for rows.Next() {
			var e Entry
			if err := rows.Scan(&e.Word, &e.Frequency); err != nil {
				tracer().Errorf("dictionary scan %q: %v", head, err)
				return
			}
			keep(e)
		}
		if err := rows.Err(); err != nil {
			tracer().Errorf("dictionary rows %q: %v", head, err)
		}
	}), limit)
}

func (s *SQLite) Contains(word string) bool {
	word = Normalize(word)
	if s == nil || word == "" {
		return false
	}
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM words WHERE word = ?`, word).Scan(&n); err != nil {
		tracer().Errorf("dictionary lookup %q: %v", word, err)
		return false
	}
	return n > 0
}
