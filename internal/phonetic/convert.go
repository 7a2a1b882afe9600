// Package phonetic converts romanized Bengali typed on a Latin keyboard into
// Bengali script.
package phonetic

import (
	"fmt"
	"sort"
	"strings"
)

const (
	vowelLetters     = "aeiou"
	consonantLetters = "bcdfghjklmnpqrstvwxyz"
	caseSensitive    = "oiudgjnrstyz"
)

type scope int

const (
	scopePunctuation scope = iota
	scopeVowel
	scopeConsonant
	scopeExact
)

type condition struct {
	suffix bool
	negate bool
	scope  scope
	value  string
}

type rule struct {
	conditions []condition
	replace    string
}

type pattern struct {
	find    string
	replace string
	rules   []rule
}

func when(replace string, specs ...string) rule {
	r := rule{replace: replace}
	for _, spec := range specs {
		r.conditions = append(r.conditions, mustCondition(spec))
	}
	return r
}

func mustCondition(spec string) condition {
	side, rest, ok := strings.Cut(spec, ":")
	if !ok {
		panic(fmt.Sprintf("phonetic: malformed condition %q", spec))
	}
	var c condition
	switch side {
	case "prefix":
	case "suffix":
		c.suffix = true
	default:
		panic(fmt.Sprintf("phonetic: unknown condition side %q", side))
	}
	if strings.HasPrefix(rest, "!") {
		c.negate = true
		rest = rest[1:]
	}
	switch {
	case rest == "punctuation":
		c.scope = scopePunctuation
	case rest == "vowel":
		c.scope = scopeVowel
	case rest == "consonant":
		c.scope = scopeConsonant
	case strings.HasPrefix(rest, "exact:"):
		c.scope = scopeExact
		c.value = strings.TrimPrefix(rest, "exact:")
	default:
		panic(fmt.Sprintf("phonetic: unknown condition scope %q", rest))
	}
	return c
}

// Converter holds the pattern table ordered for longest-match lookup.
type Converter struct {
	patterns []pattern
	maxFind  int
}

func NewConverter() *Converter {
	patterns := make([]pattern, len(table))
	copy(patterns, table)
	sort.SliceStable(patterns, func(i, j int) bool {
		return len(patterns[i].find) > len(patterns[j].find)
	})
	maxFind := 0
	if len(patterns) > 0 {
		maxFind = len(patterns[0].find)
	}
	return &Converter{patterns: patterns, maxFind: maxFind}
}

var defaultConverter = NewConverter()

// Convert transliterates text with the shared converter.
func Convert(text string) string {
	return defaultConverter.Convert(text)
}

// Convert transliterates text. Characters no pattern covers pass through.
func (c *Converter) Convert(text string) string {
	fixed := FixCase(text)
	var out strings.Builder
	for cur := 0; cur < len(fixed); {
		p, ok := c.match(fixed, cur)
		if !ok {
			// Copy the whole rune so non-ASCII input survives.
			end := cur + 1
			for end < len(fixed) && !isRuneStart(fixed[end]) {
				end++
			}
			out.WriteString(fixed[cur:end])
			cur = end
			continue
		}
		end := cur + len(p.find)
		out.WriteString(p.apply(fixed, cur, end))
		cur = end
	}
	return out.String()
}

func (c *Converter) match(text string, cur int) (pattern, bool) {
	for _, p := range c.patterns {
		if strings.HasPrefix(text[cur:], p.find) {
			return p, true
		}
	}
	return pattern{}, false
}

func (p pattern) apply(text string, start, end int) string {
	for _, r := range p.rules {
		if r.holds(text, start, end) {
			return r.replace
		}
	}
	return p.replace
}

func (r rule) holds(text string, start, end int) bool {
	for _, c := range r.conditions {
		if !c.holds(text, start, end) {
			return false
		}
	}
	return true
}

func (c condition) holds(text string, start, end int) bool {
	var result bool
	if c.scope == scopeExact {
		from, to := start-len(c.value), start
		if c.suffix {
			from, to = end, end+len(c.value)
		}
		result = from >= 0 && to <= len(text) && text[from:to] == c.value
		return result != c.negate
	}

	at := start - 1
	if c.suffix {
		at = end
	}
	outside := at < 0 || at >= len(text)
	switch c.scope {
	case scopePunctuation:
		result = outside || IsPunctuation(text[at])
	case scopeVowel:
		result = !outside && IsVowel(text[at])
	case scopeConsonant:
		result = !outside && IsConsonant(text[at])
	}
	return result != c.negate
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func IsVowel(b byte) bool { return strings.IndexByte(vowelLetters, lower(b)) >= 0 }

func IsConsonant(b byte) bool { return strings.IndexByte(consonantLetters, lower(b)) >= 0 }

// IsPunctuation reports anything that is neither a vowel nor a consonant
// letter, digits included.
func IsPunctuation(b byte) bool { return !IsVowel(b) && !IsConsonant(b) }

// FixCase lower-cases every letter whose case carries no meaning.
func FixCase(text string) string {
	b := []byte(text)
	for i, ch := range b {
		l := lower(ch)
		if l != ch && strings.IndexByte(caseSensitive, l) < 0 {
			b[i] = l
		}
	}
	return string(b)
}
