package suggest

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"bangfe/internal/bangla"
	"bangfe/internal/dictionary"
	"bangfe/internal/phonetic"
)

// tracer traces with key 'bangfe.suggest'
func tracer() tracing.Trace {
	return tracing.Select("bangfe.suggest")
}

// Selections remembers the word committed for a typed word body.
type Selections interface {
	Get(typed string) (string, bool)
	Put(typed, word string) error
}

type Options struct {
	Database       *dictionary.Database
	Selections     Selections
	IncludeEnglish bool
	// Disabled turns every result into a lonely rendering.
	Disabled bool
	Limit    int
}

type Builder struct {
	db         *dictionary.Database
	selections Selections
	english    bool
	disabled   bool
	limit      int
}

func NewBuilder(opts Options) *Builder {
	limit := opts.Limit
	if limit <= 0 {
		limit = dictionary.DefaultLimit
	}
	return &Builder{
		db:         opts.Database,
		selections: opts.Selections,
		english:    opts.IncludeEnglish,
		disabled:   opts.Disabled,
		limit:      limit,
	}
}

// Phonetic builds the suggestion for romanized input.
func (b *Builder) Phonetic(typed string) Suggestion {
	if typed == "" {
		return Empty()
	}
	pre, body, post := phonetic.SplitMeta(typed)
	pre, post = phonetic.Convert(pre), phonetic.Convert(post)
	converted := phonetic.Convert(body)
	rendered := dictionary.Normalize(pre + converted + post)

	if b.disabled || (!b.english && !bangla.ContainsBengali(rendered)) {
		return Lonely(rendered)
	}

	var list candidateList
	if corrected, ok := b.autoCorrect(body); ok {
		list.add(pre + phonetic.Convert(corrected) + post)
	}
	for _, word := range b.db.Search(converted, b.limit) {
		list.add(pre + word + post)
	}
	for _, word := range b.match(phonetic.Spellings(body), phonetic.Gap) {
		list.add(pre + word + post)
	}
	for _, word := range b.suffixJoins(body) {
		list.add(pre + word + post)
	}
	list.add(rendered)
	if b.english {
		list.add(typed)
	}

	if list.lonely(rendered) {
		return Lonely(rendered)
	}
	return Full(typed, list.items, list.selection(pre, b.previous(body, true), post))
}

// Fixed builds the suggestion for text composed from a fixed layout.
func (b *Builder) Fixed(rendered string) Suggestion {
	rendered = dictionary.Normalize(rendered)
	if rendered == "" {
		return Empty()
	}
	if b.disabled || (!b.english && !bangla.ContainsBengali(rendered)) {
		return Lonely(rendered)
	}
	pre, body, post := phonetic.SplitMeta(rendered)

	var list candidateList
	if corrected, ok := b.autoCorrect(body); ok {
		list.add(pre + corrected + post)
	}
	for _, word := range b.db.Search(body, b.limit) {
		list.add(pre + word + post)
	}
	for _, word := range b.match(letterVariants(body), "") {
		list.add(pre + word + post)
	}
	list.add(rendered)

	if list.lonely(rendered) {
		return Lonely(rendered)
	}
	return Full(rendered, list.items, list.selection(pre, b.previous(body, false), post))
}

// Remember records the committed word for the input it was chosen for.
// Meta characters around both are stripped first.
func (b *Builder) Remember(input, committed string, isPhonetic bool) {
	if b.selections == nil || input == "" || committed == "" {
		return
	}
	if !isPhonetic {
		input = dictionary.Normalize(input)
	}
	pre, body, post := phonetic.SplitMeta(input)
	if isPhonetic {
		pre, post = phonetic.Convert(pre), phonetic.Convert(post)
	}
	word := dictionary.Normalize(committed)
	if strings.HasPrefix(word, pre) && strings.HasSuffix(word[len(pre):], post) {
		word = word[len(pre) : len(word)-len(post)]
	}
	if body == "" || word == "" {
		return
	}
	if err := b.selections.Put(body, word); err != nil {
		tracer().Errorf("remember selection: %v", err)
	}
}

// match finds words spelled like chunks. They rank after the prefix matches.
func (b *Builder) match(chunks [][]string, gap string) []string {
	if b.db == nil || b.db.Words == nil || len(chunks) == 0 {
		return nil
	}
	p, err := dictionary.NewPattern(chunks, gap)
	if err != nil {
		tracer().Debugf("spelling pattern: %v", err)
		return nil
	}
	return b.db.Match(p, b.limit)
}

// letterVariants spells Bengali text one letter at a time, joiners dropped.
func letterVariants(body string) [][]string {
	var chunks [][]string
	for _, r := range body {
		if r == bangla.ZWNJ || r == bangla.ZWJ {
			continue
		}
		chunks = append(chunks, bangla.Variants(r))
	}
	return chunks
}

func (b *Builder) autoCorrect(body string) (string, bool) {
	if b.db == nil || body == "" {
		return "", false
	}
	return b.db.AutoCorrect.Lookup(body)
}

// suffixJoins splits the typed body into a known word and a known suffix
// and joins the Bengali forms of both.
func (b *Builder) suffixJoins(body string) []string {
	if b.db == nil || len(b.db.Suffixes) == 0 || len(body) <= 2 {
		return nil
	}
	var words []string
	for i := 1; i < len(body); i++ {
		suffix, ok := b.db.Suffixes.Find(body[i:])
		if !ok {
			continue
		}
		for _, base := range b.bases(body[:i]) {
			words = append(words, dictionary.Join(base, suffix))
		}
	}
	return words
}

func (b *Builder) bases(head string) []string {
	var bases []string
	if corrected, ok := b.autoCorrect(head); ok {
		bases = append(bases, dictionary.Normalize(phonetic.Convert(corrected)))
	}
	converted := phonetic.Convert(head)
	if b.db.Words != nil && b.db.Words.Contains(converted) {
		bases = append(bases, dictionary.Normalize(converted))
	}
	return bases
}

// previous finds the word committed earlier for body. Without an exact
// entry the longest remembered head whose tail is a known suffix is joined
// with that suffix.
func (b *Builder) previous(body string, withSuffixes bool) string {
	if b.selections == nil || body == "" {
		return ""
	}
	if word, ok := b.selections.Get(body); ok {
		return word
	}
	if !withSuffixes || b.db == nil || len(body) < 2 {
		return ""
	}
	for i := len(body) - 1; i >= 1; i-- {
		suffix, ok := b.db.Suffixes.Find(body[i:])
		if !ok {
			continue
		}
		if base, ok := b.selections.Get(body[:i]); ok {
			word := dictionary.Join(base, suffix)
			if err := b.selections.Put(body, word); err != nil {
				tracer().Errorf("remember derived selection: %v", err)
			}
			return word
		}
	}
	return ""
}

type candidateList struct {
	items []string
}

func (l *candidateList) add(candidate string) {
	candidate = dictionary.Normalize(candidate)
	if candidate == "" {
		return
	}
	for _, item := range l.items {
		if item == candidate {
			return
		}
	}
	l.items = append(l.items, candidate)
}

func (l *candidateList) lonely(rendered string) bool {
	return len(l.items) == 1 && l.items[0] == rendered
}

// selection is the index of the remembered word wrapped in the meta
// characters, or 0 when nothing was remembered.
func (l *candidateList) selection(pre, word, post string) int {
	if word == "" {
		return 0
	}
	selected := dictionary.Normalize(pre + word + post)
	for i, item := range l.items {
		if item == selected {
			return i
		}
	}
	return 0
}
