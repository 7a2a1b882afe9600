package dictionary

import (
	"strings"

	"bangfe/internal/bangla"
)

// Suffixes maps a romanized suffix ("gulo") to its Bengali form ("গুলো").
type Suffixes map[string]string

func LoadSuffixes(path string) (Suffixes, error) {
	raw, err := readStringMap(path, "suffix table")
	if err != nil {
		return nil, err
	}
	table := make(Suffixes, len(raw))
	for key, value := range raw {
		key = strings.TrimSpace(key)
		if key == "" || value == "" {
			continue
		}
		table[key] = Normalize(value)
	}
	return table, nil
}

func (s Suffixes) Find(key string) (string, bool) {
	value, ok := s[key]
	return value, ok
}

// Join attaches a Bengali suffix to a base word. Khanda-ta becomes ta and
// anusvara becomes nga before the suffix, and a vowel ending meets a
// kar-initial suffix through ya.
func Join(base, suffix string) string {
	if base == "" || suffix == "" {
		return base + suffix
	}
	last := bangla.LastRune(base)
	first := bangla.FirstRune(suffix)
	stem := strings.TrimSuffix(base, string(last))
	switch {
	case bangla.IsVowel(last) && bangla.IsKar(first):
		return base + string(bangla.Y) + suffix
	case last == bangla.Khandatta:
		return stem + string(bangla.T) + suffix
	case last == bangla.Anusvara:
		return stem + string(bangla.NGA) + suffix
	}
	return base + suffix
}
