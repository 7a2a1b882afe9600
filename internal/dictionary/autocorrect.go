package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// AutoCorrect maps a typed word to its corrected spelling. Entries of the
// user table shadow the shipped ones.
type AutoCorrect struct {
	user    map[string]string
	shipped map[string]string
}

func NewAutoCorrect(shipped, user map[string]string) *AutoCorrect {
	return &AutoCorrect{user: normalizeKeys(user), shipped: normalizeKeys(shipped)}
}

// LoadAutoCorrect reads the shipped and user tables. Either path may be
// empty or missing.
func LoadAutoCorrect(shippedPath, userPath string) (*AutoCorrect, error) {
	shipped, err := readOptionalMap(shippedPath)
	if err != nil {
		return nil, err
	}
	user, err := readOptionalMap(userPath)
	if err != nil {
		return nil, err
	}
	return NewAutoCorrect(shipped, user), nil
}

func (a *AutoCorrect) Lookup(word string) (string, bool) {
	if a == nil {
		return "", false
	}
	key := Normalize(word)
	if value, ok := a.user[key]; ok {
		return value, true
	}
	value, ok := a.shipped[key]
	return value, ok
}

func (a *AutoCorrect) Len() int {
	if a == nil {
		return 0
	}
	return len(a.user) + len(a.shipped)
}

func readOptionalMap(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := readStringMap(path, "auto-correct table")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load auto-correct: %w", err)
	}
	return raw, nil
}

func normalizeKeys(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		key = Normalize(key)
		if key == "" || strings.TrimSpace(value) == "" {
			continue
		}
		out[key] = Normalize(value)
	}
	return out
}
