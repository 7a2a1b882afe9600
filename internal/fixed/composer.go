// Package fixed composes the output of a fixed keyboard layout into Bengali
// text, applying the script fix-ups a typist expects.
package fixed

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"bangfe/internal/bangla"
)

type Options struct {
	AutoVowel      bool
	AutoChandra    bool
	TraditionalKar bool
	OldReph        bool
	OldKarOrder    bool
}

// A token is what one key left in the buffer. When a key rewrote earlier
// tokens they are kept in absorbed so Pop can put them back.
type token struct {
	text     string
	held     bool
	absorbed []token
}

type Composer struct {
	opts   Options
	tokens []token
}

func NewComposer(opts Options) *Composer {
	return &Composer{opts: opts}
}

func (c *Composer) Options() Options { return c.opts }

func (c *Composer) Empty() bool { return len(c.tokens) == 0 }

func (c *Composer) Len() int { return len(c.tokens) }

func (c *Composer) Reset() { c.tokens = c.tokens[:0] }

func (c *Composer) String() string {
	var b strings.Builder
	for _, t := range c.tokens {
		b.WriteString(t.text)
	}
	return b.String()
}

// Feed appends the text a key produced. It reports false for empty input.
func (c *Composer) Feed(value string) bool {
	if value == "" {
		return false
	}
	if n := len(c.tokens); n > 0 && c.tokens[n-1].held {
		if bangla.IsPureConsonant(bangla.FirstRune(value)) {
			held := c.tokens[n-1]
			c.tokens = c.tokens[:n-1]
			c.push(token{text: value + held.text, absorbed: []token{held}})
			return true
		}
		saved := append([]token(nil), c.tokens...)
		c.settleHeld()
		c.feed(value)
		c.joinSince(saved)
		return true
	}
	c.feed(value)
	return true
}

func (c *Composer) feed(value string) {
	if kar, ok := singleRune(value); ok {
		switch {
		case kar == bangla.AAKar || kar == bangla.LengthMark:
			if c.opts.OldKarOrder && c.composeWithE(kar) {
				return
			}
			if kar == bangla.AAKar {
				c.feedKar(kar)
				return
			}
		case bangla.IsKar(kar):
			if c.opts.OldKarOrder && bangla.IsPreBaseKar(kar) {
				c.push(token{text: value, held: true})
				return
			}
			c.feedKar(kar)
			return
		}
	}

	switch {
	case value == bangla.Reph && c.opts.OldReph && bangla.IsPureConsonant(c.lastRune()) &&
		!strings.HasPrefix(c.tokens[len(c.tokens)-1].text, bangla.Reph):
		c.moveReph()
	case value == bangla.ZFola && bangla.IsKar(c.lastRune()):
		c.moveZFola()
	default:
		c.push(token{text: value})
	}
}

// joinSince folds every token that differs from saved into one, so a single
// Pop brings saved back. A trailing held kar stays its own token.
func (c *Composer) joinSince(saved []token) {
	end := len(c.tokens)
	var tail []token
	if end > 0 && c.tokens[end-1].held {
		tail = []token{c.tokens[end-1]}
		end--
	}
	k := 0
	for k < end && k < len(saved) && sameToken(c.tokens[k], saved[k]) {
		k++
	}
	var b strings.Builder
	for _, t := range c.tokens[k:end] {
		b.WriteString(t.text)
	}
	merged := token{text: b.String(), absorbed: append([]token(nil), saved[k:]...)}
	c.tokens = append(append(c.tokens[:k], merged), tail...)
}

// Pop removes the last token and restores whatever it had rewritten.
func (c *Composer) Pop() bool {
	n := len(c.tokens)
	if n == 0 {
		return false
	}
	last := c.tokens[n-1]
	c.tokens = append(c.tokens[:n-1], last.absorbed...)
	return true
}

func (c *Composer) push(t token) {
	c.tokens = append(c.tokens, t)
}

func (c *Composer) lastRune() rune {
	for i := len(c.tokens) - 1; i >= 0; i-- {
		if c.tokens[i].text != "" {
			return bangla.LastRune(c.tokens[i].text)
		}
	}
	return 0
}

func (c *Composer) lastRunes(n int) []rune {
	runes := []rune(c.String())
	if len(runes) > n {
		runes = runes[len(runes)-n:]
	}
	return runes
}

// feedKar appends a vowel sign where it can attach, or its independent
// vowel where it cannot.
func (c *Composer) feedKar(kar rune) {
	tail := c.lastRunes(2)
	prev, before := rune(0), rune(0)
	if len(tail) > 0 {
		prev = tail[len(tail)-1]
	}
	if len(tail) > 1 {
		before = tail[0]
	}

	switch {
	case prev == bangla.Hasanta:
		c.push(token{text: string(bangla.ZWNJ) + string(kar)})
		return
	case prev == bangla.Chandra && bangla.IsPureConsonant(before):
		if c.opts.AutoChandra {
			n := len(c.tokens)
			last := c.tokens[n-1]
			base := strings.TrimSuffix(last.text, string(bangla.Chandra))
			c.tokens = c.tokens[:n-1]
			c.push(token{
				text:     base + string(kar) + string(bangla.Chandra),
				absorbed: []token{last},
			})
			return
		}
		c.push(token{text: string(kar)})
		return
	case bangla.IsPureConsonant(prev):
		if !c.opts.TraditionalKar && bangla.IsDetachableKar(kar) {
			c.push(token{text: string(bangla.ZWNJ) + string(kar)})
			return
		}
		c.push(token{text: string(kar)})
		return
	}

	if c.opts.AutoVowel {
		if vowel, ok := bangla.KarToVowel(kar); ok {
			c.push(token{text: string(vowel)})
			return
		}
	}
	c.push(token{text: string(kar)})
}

// settleHeld turns a held pre-base kar that found no consonant into an
// ordinary kar at its position.
func (c *Composer) settleHeld() {
	n := len(c.tokens)
	held := c.tokens[n-1]
	c.tokens = c.tokens[:n-1]
	kar, _ := utf8.DecodeRuneInString(held.text)
	c.feedKar(kar)
}

func (c *Composer) composeWithE(kar rune) bool {
	n := len(c.tokens)
	if n == 0 || bangla.LastRune(c.tokens[n-1].text) != bangla.EKar {
		return false
	}
	last := c.tokens[n-1]
	c.tokens = c.tokens[:n-1]
	c.push(token{
		text:     strings.TrimSuffix(last.text, string(bangla.EKar)) + norm.NFC.String(string(bangla.EKar)+string(kar)),
		absorbed: []token{last},
	})
	return true
}

// moveReph places the reph before the consonant cluster that ends the
// buffer.
func (c *Composer) moveReph() {
	start := len(c.tokens) - 1
	for start >= 2 &&
		c.tokens[start-1].text == string(bangla.Hasanta) &&
		isConsonantToken(c.tokens[start-2]) {
		start -= 2
	}
	cluster := append([]token(nil), c.tokens[start:]...)
	var b strings.Builder
	b.WriteString(bangla.Reph)
	for _, t := range cluster {
		b.WriteString(t.text)
	}
	c.tokens = c.tokens[:start]
	c.push(token{text: b.String(), absorbed: cluster})
}

// moveZFola puts the z-fola between the consonant and the kar that follows
// it.
func (c *Composer) moveZFola() {
	n := len(c.tokens)
	last := c.tokens[n-1]
	kar := bangla.LastRune(last.text)
	base := strings.TrimSuffix(last.text, string(kar))
	suffix := string(kar)
	if strings.HasSuffix(base, string(bangla.ZWNJ)) {
		base = strings.TrimSuffix(base, string(bangla.ZWNJ))
		suffix = string(bangla.ZWNJ) + suffix
	}
	c.tokens = c.tokens[:n-1]
	c.push(token{text: base + bangla.ZFola + suffix, absorbed: []token{last}})
}

func sameToken(a, b token) bool {
	return a.text == b.text && a.held == b.held && len(a.absorbed) == len(b.absorbed)
}

func isConsonantToken(t token) bool {
	r, ok := singleRune(t.text)
	return ok && bangla.IsPureConsonant(r)
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
