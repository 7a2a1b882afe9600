// Package suggest ranks candidate words for the text being composed.
package suggest

type Kind int

const (
	KindEmpty Kind = iota
	KindLonely
	KindFull
)

func (k Kind) String() string {
	switch k {
	case KindLonely:
		return "lonely"
	case KindFull:
		return "full"
	default:
		return "empty"
	}
}

// Suggestion is an immutable candidate list. A lonely suggestion carries
// exactly one string; an empty one carries nothing and every accessor
// returns the zero value.
type Suggestion struct {
	kind       Kind
	lonely     string
	candidates []string
	auxiliary  string
	selected   int
}

func Empty() Suggestion { return Suggestion{} }

func Lonely(text string) Suggestion {
	if text == "" {
		return Empty()
	}
	return Suggestion{kind: KindLonely, lonely: text}
}

// Full builds a candidate list. A selected index outside the list becomes 0.
func Full(auxiliary string, candidates []string, selected int) Suggestion {
	if len(candidates) == 0 {
		return Empty()
	}
	if selected < 0 || selected >= len(candidates) {
		selected = 0
	}
	return Suggestion{
		kind:       KindFull,
		candidates: append([]string(nil), candidates...),
		auxiliary:  auxiliary,
		selected:   selected,
	}
}

func (s Suggestion) Kind() Kind { return s.kind }

func (s Suggestion) IsEmpty() bool { return s.kind == KindEmpty }

func (s Suggestion) IsLonely() bool { return s.kind == KindLonely }

func (s Suggestion) Lonely() string { return s.lonely }

// Len is the number of candidates; a lonely suggestion counts as one.
func (s Suggestion) Len() int {
	switch s.kind {
	case KindLonely:
		return 1
	case KindFull:
		return len(s.candidates)
	}
	return 0
}

// At returns candidate i, treating a lonely suggestion as a list of one.
func (s Suggestion) At(i int) string {
	if i < 0 || i >= s.Len() {
		return ""
	}
	if s.kind == KindLonely {
		return s.lonely
	}
	return s.candidates[i]
}

func (s Suggestion) Candidates() []string {
	if s.kind != KindFull {
		return nil
	}
	return append([]string(nil), s.candidates...)
}

func (s Suggestion) Auxiliary() string { return s.auxiliary }

func (s Suggestion) PreviouslySelected() int { return s.selected }
