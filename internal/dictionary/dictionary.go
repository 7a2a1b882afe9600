// Package dictionary holds the word data the suggestion builder consults:
// the word list with its frequencies, the suffix table and the
// auto-correct table.
package dictionary

import (
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"

	"bangfe/internal/bangla"
)

// tracer traces with key 'bangfe.dictionary'
func tracer() tracing.Trace {
	return tracing.Select("bangfe.dictionary")
}

const DefaultLimit = 10

type Entry struct {
	Word      string
	Frequency int
}

// Dictionary is a read-only word list searched by prefix. Results come
// ordered by descending frequency, ties broken lexically.
type Dictionary interface {
	Search(prefix string, limit int) []string
	// Match returns the words p accepts, ranked like Search.
	Match(p Pattern, limit int) []string
	Contains(word string) bool
	Close() error
}

// NFC decomposes these three letters; they are folded back so that stored
// keys and emitted text carry the single code point.
var nukta = strings.NewReplacer(
	string(bangla.DD)+string(bangla.Nukta), string(bangla.RR),
	string(bangla.DDH)+string(bangla.Nukta), string(bangla.RH),
	string(bangla.Z)+string(bangla.Nukta), string(bangla.Y),
)

// Normalize brings a word into the composed form every key is stored in.
func Normalize(word string) string {
	return nukta.Replace(norm.NFC.String(strings.TrimSpace(word)))
}

// Memory is a Dictionary held in a sorted slice.
type Memory struct {
	entries []Entry
}

func NewMemory(entries []Entry) *Memory {
	merged := make(map[string]int, len(entries))
	for _, e := range entries {
		word := Normalize(e.Word)
		if word == "" {
			continue
		}
		if freq, ok := merged[word]; !ok || e.Frequency > freq {
			merged[word] = e.Frequency
		}
	}
	m := &Memory{entries: make([]Entry, 0, len(merged))}
	for word, freq := range merged {
		m.entries = append(m.entries, Entry{Word: word, Frequency: freq})
	}
	sort.Slice(m.entries, func(i, j int) bool {
		return m.entries[i].Word < m.entries[j].Word
	})
	return m
}

func (m *Memory) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the stored words in lexical order.
func (m *Memory) Entries() []Entry {
	if m == nil {
		return nil
	}
	return append([]Entry(nil), m.entries...)
}

func (m *Memory) Search(prefix string, limit int) []string {
	if m == nil {
		return nil
	}
	prefix = Normalize(prefix)
	if prefix == "" {
		return nil
	}
	start := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Word >= prefix
	})
	var matches []Entry
	for i := start; i < len(m.entries) && strings.HasPrefix(m.entries[i].Word, prefix); i++ {
		matches = append(matches, m.entries[i])
	}
	return rank(matches, limit)
}

func (m *Memory) Match(p Pattern, limit int) []string {
	if m == nil || p.Expr == nil {
		return nil
	}
	return rank(matchEntries(p, func(head string, keep func(Entry)) {
		start := sort.Search(len(m.entries), func(i int) bool {
			return m.entries[i].Word >= head
		})
		for i := start; i < len(m.entries) && strings.HasPrefix(m.entries[i].Word, head); i++ {
			keep(m.entries[i])
		}
	}), limit)
}

func (m *Memory) Contains(word string) bool {
	if m == nil {
		return false
	}
	word = Normalize(word)
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Word >= word
	})
	return i < len(m.entries) && m.entries[i].Word == word
}

func (m *Memory) Close() error { return nil }

func rank(matches []Entry, limit int) []string {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Frequency != matches[j].Frequency {
			return matches[i].Frequency > matches[j].Frequency
		}
		return matches[i].Word < matches[j].Word
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	words := make([]string, len(matches))
	for i, e := range matches {
		words[i] = e.Word
	}
	return words
}
