package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"bangfe/internal/cli"
	"bangfe/internal/keycode"
)

func writeProfiles(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.ini")
	content := "[profile avro]\nmethod = phonetic\n\n[profile probhat]\nmethod = fixed\nlayout = probhat\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profiles: %v", err)
	}
	return path
}

func newRuntime(t *testing.T, opts cli.Options) *Runtime {
	t.Helper()
	rt, err := NewRuntime(opts)
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	t.Cleanup(rt.Close)
	return rt
}

func TestRuntimeFromLayout(t *testing.T) {
	rt := newRuntime(t, cli.Options{LayoutName: "probhat", NoWatch: true})
	if rt.Context().Config().IsPhonetic() {
		t.Fatalf("expected fixed context")
	}
	if rt.Reloads() != nil {
		t.Fatalf("expected no reload channel without watching")
	}
	if len(rt.Toggle().Chords) == 0 {
		t.Fatalf("expected default toggle chords")
	}
}

func TestRuntimeCyclesProfiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bangfe.frontend")
	defer teardown()

	rt := newRuntime(t, cli.Options{ProfilesPath: writeProfiles(t), NoWatch: true})
	if rt.Profile().Name != "avro" {
		t.Fatalf("expected first profile avro, got %q", rt.Profile().Name)
	}
	applied, err := rt.NextProfile()
	if err != nil || !applied {
		t.Fatalf("expected immediate switch, got applied=%t err=%v", applied, err)
	}
	if rt.Profile().Name != "probhat" || rt.Context().Config().IsPhonetic() {
		t.Fatalf("expected probhat to be active")
	}

	ctx := rt.Context()
	ctx.HandleKey(keycode.KeyK, 0)
	applied, err = rt.SelectProfile("avro")
	if err != nil || applied {
		t.Fatalf("expected deferred switch, got applied=%t err=%v", applied, err)
	}
	ctx.FinishInputSession()
	if !ctx.Config().IsPhonetic() {
		t.Fatalf("expected avro after the session ended")
	}
	if _, err := rt.SelectProfile("missing"); err == nil {
		t.Fatalf("expected unknown profile to fail")
	}
}

func TestRuntimeStartsWithToggleDefault(t *testing.T) {
	toggle := filepath.Join(t.TempDir(), "toggle.ini")
	if err := os.WriteFile(toggle, []byte("[toggle]\nkeys = f12\ndefault_profile = probhat\n"), 0o644); err != nil {
		t.Fatalf("write toggle: %v", err)
	}
	rt := newRuntime(t, cli.Options{ProfilesPath: writeProfiles(t), ToggleConfigPath: toggle, NoWatch: true})
	if rt.Profile().Name != "probhat" {
		t.Fatalf("expected probhat, got %q", rt.Profile().Name)
	}
}

func TestRuntimeReloadsOnDictionaryChange(t *testing.T) {
	dir := t.TempDir()
	rt := newRuntime(t, cli.Options{LayoutName: "avro", DatabaseDir: dir})
	if rt.Reloads() == nil {
		t.Fatalf("expected a reload channel")
	}
	if err := os.WriteFile(filepath.Join(dir, "dictionary.json"), []byte(`{"আমি": 1}`), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	select {
	case <-rt.Reloads():
	case <-time.After(5 * time.Second):
		t.Fatalf("expected a reload")
	}
	if applied, err := rt.Reload(); err != nil || !applied {
		t.Fatalf("expected reload to apply, got applied=%t err=%v", applied, err)
	}
	sg := rt.Context().HandleKey(keycode.KeyA, 0)
	if sg.IsEmpty() {
		t.Fatalf("expected a suggestion after reload")
	}
}

func TestRuntimeRejectsBrokenProfile(t *testing.T) {
	if _, err := NewRuntime(cli.Options{LayoutName: "no-such-layout", NoWatch: true}); err == nil {
		t.Fatalf("expected unknown layout to fail")
	}
}
