package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	SQLiteFile      = "dictionary.db"
	JSONFile        = "dictionary.json"
	WordListFile    = "dictionary.tsv"
	SuffixFile      = "suffix.json"
	AutoCorrectFile = "autocorrect.json"
)

// Database bundles the data found in a database directory. Every part is
// optional; a missing file leaves that part empty.
type Database struct {
	Words       Dictionary
	Suffixes    Suffixes
	AutoCorrect *AutoCorrect
}

// Open loads the database directory dir and the user's auto-correct overlay
// from userDir. Either may be empty. The word list is taken from
// dictionary.db, dictionary.json or dictionary.tsv, first found wins.
func Open(dir, userDir string) (*Database, error) {
	db := &Database{}
	var err error
	if dir != "" {
		if db.Words, err = openWords(dir); err != nil {
			return nil, err
		}
		suffixPath := filepath.Join(dir, SuffixFile)
		if exists(suffixPath) {
			if db.Suffixes, err = LoadSuffixes(suffixPath); err != nil {
				db.Close()
				return nil, err
			}
		}
	}
	var shipped, user string
	if dir != "" {
		shipped = filepath.Join(dir, AutoCorrectFile)
	}
	if userDir != "" {
		user = filepath.Join(userDir, AutoCorrectFile)
	}
	if db.AutoCorrect, err = LoadAutoCorrect(shipped, user); err != nil {
		db.Close()
		return nil, err
	}
	tracer().Debugf("database %q: words=%t suffixes=%d autocorrect=%d",
		dir, db.Words != nil, len(db.Suffixes), db.AutoCorrect.Len())
	return db, nil
}

func openWords(dir string) (Dictionary, error) {
	if path := filepath.Join(dir, SQLiteFile); exists(path) {
		return OpenSQLite(path)
	}
	if path := filepath.Join(dir, JSONFile); exists(path) {
		return LoadJSON(path)
	}
	if path := filepath.Join(dir, WordListFile); exists(path) {
		entries, err := ReadWordList(path)
		if err != nil {
			return nil, err
		}
		return NewMemory(entries), nil
	}
	return nil, nil
}

// Search queries the word list, if any.
func (db *Database) Search(prefix string, limit int) []string {
	if db == nil || db.Words == nil {
		return nil
	}
	return db.Words.Search(prefix, limit)
}

// Match runs p against the word list, if any.
func (db *Database) Match(p Pattern, limit int) []string {
	if db == nil || db.Words == nil {
		return nil
	}
	return db.Words.Match(p, limit)
}

func (db *Database) Close() error {
	if db == nil || db.Words == nil {
		return nil
	}
	if err := db.Words.Close(); err != nil {
		return fmt.Errorf("close dictionary: %w", err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
