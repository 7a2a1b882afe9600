package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"bangfe/internal/keycode"
	"bangfe/internal/suggest"
	"bangfe/pkg/config"
)

func writeDictionary(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	data := []byte(`{"আমি": 0, "আমিও": 0}`)
	if err := os.WriteFile(filepath.Join(dir, "dictionary.json"), data, 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	return dir
}

func newTestEngine(t *testing.T, b *config.Builder) *Engine {
	t.Helper()
	cfg, err := b.Build()
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	eng, err := New(cfg)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	t.Cleanup(func() { eng.Close() })
	return eng
}

func phoneticEngine(t *testing.T) *Engine {
	return newTestEngine(t, config.NewBuilder().
		SetPhoneticSuggestion(true).
		SetDatabaseDir(writeDictionary(t)))
}

func press(t *testing.T, s *Session, codes ...uint16) suggest.Suggestion {
	t.Helper()
	var last suggest.Suggestion
	for _, code := range codes {
		var handled bool
		last, handled = s.HandleKey(keycode.NewKeyEvent(code, 0))
		if !handled {
			t.Fatalf("key %#x was not handled", code)
		}
	}
	return last
}

func TestPhoneticSessionCommits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bangfe.engine")
	defer teardown()

	s := phoneticEngine(t).NewSession()
	if s.State() != Idle {
		t.Fatalf("expected idle session, got %s", s.State())
	}
	sg := press(t, s, keycode.KeyA, keycode.KeyM, keycode.KeyI)
	if sg.Kind() != suggest.KindFull || sg.Len() != 2 {
		t.Fatalf("expected full suggestion of 2, got %s of %d", sg.Kind(), sg.Len())
	}
	if sg.Auxiliary() != "ami" {
		t.Fatalf("expected auxiliary %q, got %q", "ami", sg.Auxiliary())
	}
	if !s.Ongoing() || s.State() != Composing {
		t.Fatalf("expected ongoing session")
	}
	if got := s.Commit(0); got != "আমি" {
		t.Fatalf("expected %q, got %q", "আমি", got)
	}
	if s.Ongoing() || !s.Suggestion().IsEmpty() {
		t.Fatalf("expected session to end after commit")
	}
}

func TestBackspaceBackToIdle(t *testing.T) {
	s := phoneticEngine(t).NewSession()
	keys := []uint16{keycode.KeyK, keycode.KeyO, keycode.KeyR}
	press(t, s, keys...)
	if got := s.Backspace(); got.IsEmpty() || !s.Ongoing() {
		t.Fatalf("expected a suggestion after the first backspace")
	}
	for i := 1; i < len(keys); i++ {
		s.Backspace()
	}
	if s.Ongoing() {
		t.Fatalf("expected idle after %d backspaces", len(keys))
	}
	if !s.Backspace().IsEmpty() {
		t.Fatalf("expected backspace while idle to be empty")
	}
}

func TestFinishIsIdempotent(t *testing.T) {
	s := phoneticEngine(t).NewSession()
	press(t, s, keycode.KeyA)
	s.Finish()
	s.Finish()
	if s.Ongoing() {
		t.Fatalf("expected finished session")
	}
	if got := s.Commit(0); got != "" {
		t.Fatalf("expected empty commit while idle, got %q", got)
	}
}

func TestUnmappedKeyIsIgnored(t *testing.T) {
	s := phoneticEngine(t).NewSession()
	if _, handled := s.HandleKey(keycode.NewKeyEvent(0xFFFF, 0)); handled {
		t.Fatalf("expected unknown key to be ignored")
	}
	if _, handled := s.HandleKey(keycode.NewKeyEvent(keycode.KeyA, uint8(keycode.ModAltGr))); handled {
		t.Fatalf("expected AltGr key to be ignored in phonetic mode")
	}
	if s.Ongoing() {
		t.Fatalf("expected ignored keys to leave the session idle")
	}
}

func TestCommitOutOfRangePanicsWithoutChange(t *testing.T) {
	s := phoneticEngine(t).NewSession()
	press(t, s, keycode.KeyA, keycode.KeyM, keycode.KeyI)
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic")
			}
		}()
		s.Commit(5)
	}()
	if !s.Ongoing() || s.Input() != "ami" {
		t.Fatalf("expected untouched session, got %q", s.Input())
	}
}

func TestIdenticalInputIdenticalSuggestions(t *testing.T) {
	eng := phoneticEngine(t)
	a := press(t, eng.NewSession(), keycode.KeyA, keycode.KeyM)
	b := press(t, eng.NewSession(), keycode.KeyA, keycode.KeyM)
	if a.Len() != b.Len() || a.At(0) != b.At(0) || a.PreviouslySelected() != b.PreviouslySelected() {
		t.Fatalf("expected identical suggestions")
	}
}

func probhat(t *testing.T, configure func(*config.Builder)) *Session {
	t.Helper()
	b := config.NewBuilder().SetFixedSuggestion(true).SetLayoutFile("probhat")
	if configure != nil {
		configure(b)
	}
	return newTestEngine(t, b).NewSession()
}

func TestFixedAutoVowelAndOrder(t *testing.T) {
	s := probhat(t, nil)
	sg := press(t, s, keycode.KeyA)
	if !sg.IsLonely() || sg.Lonely() != "আ" {
		t.Fatalf("expected %q, got %q", "আ", sg.Lonely())
	}
	s.Finish()

	sg = press(t, s, keycode.KeyK, keycode.KeyI)
	if sg.Lonely() != "কি" {
		t.Fatalf("expected %q, got %q", "কি", sg.Lonely())
	}
}

func TestFixedNumpad(t *testing.T) {
	off := probhat(t, func(b *config.Builder) { b.SetFixedNumpad(false) })
	sg := press(t, off, keycode.KeyKP5)
	if !sg.IsLonely() || sg.Lonely() != "5" {
		t.Fatalf("expected ASCII digit, got %q", sg.Lonely())
	}

	on := probhat(t, nil)
	sg = press(t, on, keycode.KeyKP5)
	if !sg.IsLonely() || sg.Lonely() != "৫" {
		t.Fatalf("expected Bengali digit, got %q", sg.Lonely())
	}
}

func TestFixedUnmappedKey(t *testing.T) {
	s := probhat(t, nil)
	if _, handled := s.HandleKey(keycode.NewKeyEvent(keycode.KeyKPEnter, 0)); handled {
		t.Fatalf("expected unmapped key to be ignored")
	}
}

func TestFixedRejectsPhoneticLayout(t *testing.T) {
	cfg := config.NewBuilder().SetFixedSuggestion(true).SetLayoutFile("avro_phonetic").MustBuild()
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected phonetic layout to be rejected for the fixed method")
	}
	if _, err := New(config.Config{}); err == nil {
		t.Fatalf("expected unbuilt config to be rejected")
	}
}

func TestSelectionsSurviveEngines(t *testing.T) {
	dbDir := writeDictionary(t)
	userDir := t.TempDir()
	build := func() *Engine {
		return newTestEngine(t, config.NewBuilder().
			SetPhoneticSuggestion(true).
			SetDatabaseDir(dbDir).
			SetUserDir(userDir))
	}

	first := build()
	s := first.NewSession()
	press(t, s, keycode.KeyA, keycode.KeyM, keycode.KeyI)
	if got := s.Commit(1); got != "আমিও" {
		t.Fatalf("expected %q, got %q", "আমিও", got)
	}
	first.Close()

	sg := press(t, build().NewSession(), keycode.KeyA, keycode.KeyM, keycode.KeyI)
	if sg.PreviouslySelected() != 1 {
		t.Fatalf("expected remembered index 1, got %d", sg.PreviouslySelected())
	}
}

func TestFixedLayoutOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.json")
	if err := os.WriteFile(path, []byte(`[{"key": "Num5", "value": "5"}]`), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	s := probhat(t, func(b *config.Builder) { b.SetLayoutOverrides(path) })
	if sg := press(t, s, keycode.KeyKP5); sg.Lonely() != "5" {
		t.Fatalf("expected overridden digit, got %q", sg.Lonely())
	}

	missing := config.NewBuilder().
		SetFixedSuggestion(true).
		SetLayoutFile("probhat").
		SetLayoutOverrides(filepath.Join(t.TempDir(), "none.json")).
		MustBuild()
	if _, err := New(missing); err == nil {
		t.Fatalf("expected missing override file to fail")
	}
}

func TestFixedRemembersNuktaWords(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`{"\u09ac\u09a1\u09bc": 5, "\u09ac\u09a1\u09bc\u09bf": 1}`)
	if err := os.WriteFile(filepath.Join(dir, "dictionary.json"), data, 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	s := probhat(t, func(b *config.Builder) { b.SetDatabaseDir(dir) })

	sg := press(t, s, keycode.KeyB, keycode.KeyShiftR)
	if sg.Kind() != suggest.KindFull || sg.Len() != 2 {
		t.Fatalf("expected full suggestion of 2, got %s of %d", sg.Kind(), sg.Len())
	}
	if got := s.Commit(1); got != "\u09ac\u09dc\u09bf" {
		t.Fatalf("expected precomposed %q, got %q", "\u09ac\u09dc\u09bf", got)
	}

	sg = press(t, s, keycode.KeyB, keycode.KeyShiftR)
	if sg.PreviouslySelected() != 1 {
		t.Fatalf("expected remembered index 1, got %d", sg.PreviouslySelected())
	}
}
