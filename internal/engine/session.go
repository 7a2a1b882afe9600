package engine

import (
	"fmt"

	"bangfe/internal/fixed"
	"bangfe/internal/keycode"
	"bangfe/internal/suggest"
)

type State int

const (
	Idle State = iota
	Composing
)

func (s State) String() string {
	if s == Composing {
		return "composing"
	}
	return "idle"
}

// Session is the input buffer of one word being typed. In the phonetic
// method the buffer is the typed ASCII; in the fixed method it is the
// composer's token list.
type Session struct {
	engine   *Engine
	typed    []byte
	composer *fixed.Composer
	last     suggest.Suggestion
}

func (s *Session) Engine() *Engine { return s.engine }

func (s *Session) State() State {
	if s.empty() {
		return Idle
	}
	return Composing
}

func (s *Session) Ongoing() bool { return !s.empty() }

// Suggestion is the result of the last key, Empty when idle.
func (s *Session) Suggestion() suggest.Suggestion { return s.last }

// Input is the raw typed text in the phonetic method and the rendered text
// in the fixed method.
func (s *Session) Input() string {
	if s.composer != nil {
		return s.composer.String()
	}
	return string(s.typed)
}

func (s *Session) empty() bool {
	if s.composer != nil {
		return s.composer.Empty()
	}
	return len(s.typed) == 0
}

// HandleKey applies one key. Keys the method does not map leave the
// session untouched and report false with the previous suggestion.
func (s *Session) HandleKey(ev keycode.KeyEvent) (suggest.Suggestion, bool) {
	text, ok := s.engine.translate(ev)
	if !ok {
		tracer().Debugf("key %#x (%s) not handled", ev.Code, ev.Modifiers)
		return s.last, false
	}
	if s.composer != nil {
		if !s.composer.Feed(text) {
			return s.last, false
		}
	} else {
		s.typed = append(s.typed, text...)
	}
	s.last = s.build()
	tracer().Debugf("key %#x -> %q (%s)", ev.Code, s.Input(), s.last.Kind())
	return s.last, true
}

// Backspace removes the last token. Emptying the buffer ends the session.
func (s *Session) Backspace() suggest.Suggestion {
	if s.empty() {
		return suggest.Empty()
	}
	if s.composer != nil {
		s.composer.Pop()
	} else {
		s.typed = s.typed[:len(s.typed)-1]
	}
	if s.empty() {
		s.Finish()
		return s.last
	}
	s.last = s.build()
	return s.last
}

// Commit ends the session with candidate index of the last suggestion and
// returns its text. An index outside the candidates panics before anything
// changes.
func (s *Session) Commit(index int) string {
	if s.empty() {
		return ""
	}
	if s.last.IsEmpty() {
		s.Finish()
		return ""
	}
	if index < 0 || index >= s.last.Len() {
		panic(fmt.Sprintf("engine: commit index %d out of range [0,%d)", index, s.last.Len()))
	}
	text := s.last.At(index)
	s.engine.builder.Remember(s.Input(), text, !s.engine.isFixed)
	tracer().Debugf("commit %q for %q", text, s.Input())
	s.Finish()
	return text
}

// Finish discards the buffer. Calling it while idle does nothing.
func (s *Session) Finish() {
	s.typed = s.typed[:0]
	if s.composer != nil {
		s.composer.Reset()
	}
	s.last = suggest.Empty()
}

func (s *Session) build() suggest.Suggestion {
	if s.composer != nil {
		return s.engine.builder.Fixed(s.composer.String())
	}
	return s.engine.builder.Phonetic(string(s.typed))
}
