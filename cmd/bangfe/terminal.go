package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/eiannone/keyboard"

	"bangfe/internal/app"
	"bangfe/internal/config"
	"bangfe/internal/keycode"
	"bangfe/pkg/ime"
)

var functionKeys = []keyboard.Key{
	keyboard.KeyF1, keyboard.KeyF2, keyboard.KeyF3, keyboard.KeyF4,
	keyboard.KeyF5, keyboard.KeyF6, keyboard.KeyF7, keyboard.KeyF8,
	keyboard.KeyF9, keyboard.KeyF10, keyboard.KeyF11, keyboard.KeyF12,
}

// terminal keeps the committed line and the highlighted candidate.
type terminal struct {
	rt        *app.Runtime
	out       io.Writer
	line      []rune
	current   ime.Suggestion
	highlight int
	status    string
}

func newTerminal(rt *app.Runtime, out io.Writer) *terminal {
	return &terminal{rt: rt, out: out}
}

func (t *terminal) ctx() *ime.Context { return t.rt.Context() }

// handle applies one key and reports whether to quit.
func (t *terminal) handle(ev keyboard.KeyEvent) bool {
	t.status = ""
	if ev.Rune == 0 {
		if chord, ok := chordOf(ev.Key); ok && t.rt.Toggle().Matches(chord) {
			t.toggle()
			return false
		}
	}
	switch {
	case ev.Key == keyboard.KeyCtrlC:
		t.ctx().FinishInputSession()
		return true
	case ev.Rune != 0:
		t.typeRune(ev.Rune)
	case ev.Key == keyboard.KeySpace:
		t.commit()
		t.line = append(t.line, ' ')
	case ev.Key == keyboard.KeyEnter:
		if !t.ctx().OngoingInputSession() {
			fmt.Fprintln(t.out, "\r\033[K"+string(t.line))
			t.line = t.line[:0]
		}
		t.commit()
	case ev.Key == keyboard.KeyBackspace || ev.Key == keyboard.KeyBackspace2:
		if t.ctx().OngoingInputSession() {
			t.show(t.ctx().Backspace())
		} else if len(t.line) > 0 {
			t.line = t.line[:len(t.line)-1]
		}
	case ev.Key == keyboard.KeyTab || ev.Key == keyboard.KeyArrowDown:
		t.move(1)
	case ev.Key == keyboard.KeyArrowUp:
		t.move(-1)
	case ev.Key == keyboard.KeyEsc:
		t.ctx().FinishInputSession()
		t.show(ime.Suggestion{})
	}
	return false
}

func (t *terminal) typeRune(r rune) {
	code, ok := keycode.FromRune(r)
	if ok {
		sg := t.ctx().HandleKey(code, 0)
		if t.ctx().KeyHandled() {
			t.show(sg)
			return
		}
	}
	t.commit()
	t.line = append(t.line, r)
}

func (t *terminal) show(sg ime.Suggestion) {
	t.current = sg
	t.highlight = sg.PreviouslySelected()
}

func (t *terminal) move(delta int) {
	if n := t.current.Len(); n > 1 {
		t.highlight = (t.highlight + delta + n) % n
	}
}

// preedit is the candidate under the highlight.
func (t *terminal) preedit() string {
	if t.current.IsEmpty() {
		return t.ctx().Preedit()
	}
	return t.current.At(t.highlight)
}

func (t *terminal) commit() {
	if !t.ctx().OngoingInputSession() {
		return
	}
	var text string
	if t.current.IsEmpty() {
		t.ctx().FinishInputSession()
	} else {
		text = t.ctx().Commit(t.highlight)
	}
	t.line = append(t.line, []rune(text)...)
	t.show(ime.Suggestion{})
}

func (t *terminal) toggle() {
	applied, err := t.rt.NextProfile()
	switch {
	case err != nil:
		t.status = err.Error()
	case applied:
		t.status = "profile " + t.rt.Profile().Name
	default:
		t.status = "profile " + t.rt.Profile().Name + " after this word"
	}
}

func (t *terminal) redraw() {
	var b strings.Builder
	b.WriteString("\r\033[K")
	b.WriteString(string(t.line))
	if t.ctx().OngoingInputSession() {
		b.WriteString("\033[4m" + t.preedit() + "\033[0m")
		for i, c := range t.current.Candidates() {
			if i == t.highlight {
				fmt.Fprintf(&b, "  \033[7m%d %s\033[0m", i+1, c)
			} else {
				fmt.Fprintf(&b, "  %d %s", i+1, c)
			}
		}
	}
	if t.status != "" {
		b.WriteString("  (" + t.status + ")")
	}
	io.WriteString(t.out, b.String())
}

// chordOf maps a special key to the chord it represents. Control letters
// that share a code with Tab, Enter or Backspace are not chords.
func chordOf(key keyboard.Key) (config.Chord, bool) {
	switch {
	case key == keyboard.KeyCtrlSpace:
		return config.Chord{Ctrl: true, Key: "space"}, true
	case key == keyboard.KeyTab:
		return config.Chord{Key: "tab"}, true
	case key == keyboard.KeyBackspace || key == keyboard.KeyEnter:
		return config.Chord{}, false
	case key >= keyboard.KeyCtrlA && key <= keyboard.KeyCtrlZ:
		return config.Chord{Ctrl: true, Key: string(rune('a' + int(key-keyboard.KeyCtrlA)))}, true
	}
	for i, f := range functionKeys {
		if key == f {
			return config.Chord{Key: fmt.Sprintf("f%d", i+1)}, true
		}
	}
	return config.Chord{}, false
}
