package dictionary

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Pattern finds words spelled a little differently from what was typed.
// Only words starting with one of Heads are tested against Expr.
type Pattern struct {
	Heads []string
	Expr  *regexp.Regexp
}

// NewPattern builds a prefix pattern from chunks, each listing the forms
// one typed chunk may take. An empty form makes its chunk optional. gap is
// a regular expression allowed after every chunk.
func NewPattern(chunks [][]string, gap string) (Pattern, error) {
	if len(chunks) == 0 {
		return Pattern{}, errors.New("empty spelling pattern")
	}
	var b strings.Builder
	b.WriteString("^")
	for _, forms := range chunks {
		b.WriteString(alternation(forms))
		b.WriteString(gap)
	}
	expr, err := regexp.Compile(b.String())
	if err != nil {
		return Pattern{}, fmt.Errorf("compile spelling pattern: %w", err)
	}

	var heads []string
	seen := make(map[string]bool)
	for _, form := range chunks[0] {
		form = Normalize(form)
		if form == "" || seen[form] {
			continue
		}
		seen[form] = true
		heads = append(heads, form)
	}
	if len(heads) == 0 {
		return Pattern{}, errors.New("spelling pattern has no leading letter")
	}
	return Pattern{Heads: heads, Expr: expr}, nil
}

func alternation(forms []string) string {
	var parts []string
	optional := false
	for _, form := range forms {
		form = Normalize(form)
		if form == "" {
			optional = true
			continue
		}
		parts = append(parts, regexp.QuoteMeta(form))
	}
	group := "(?:" + strings.Join(parts, "|") + ")"
	if optional {
		group += "?"
	}
	return group
}

// matchEntries keeps the entries p accepts, each word once.
func matchEntries(p Pattern, scan func(head string, keep func(Entry))) []Entry {
	var matches []Entry
	seen := make(map[string]bool)
	for _, head := range p.Heads {
		scan(head, func(e Entry) {
			if seen[e.Word] || !p.Expr.MatchString(e.Word) {
				return
			}
			seen[e.Word] = true
			matches = append(matches, e)
		})
	}
	return matches
}
