package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bangfe/internal/keycode"
)

func TestAvailableLayouts(t *testing.T) {
	names := AvailableLayouts()

	expected := []string{"avro_phonetic", "probhat"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d layouts, got %d (%v)", len(expected), len(names), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("expected layout %d to be %q, got %q", i, name, names[i])
		}
	}
}

func TestLoadProbhat(t *testing.T) {
	lay, err := Load("probhat")
	if err != nil {
		t.Fatalf("unexpected error loading probhat: %v", err)
	}
	if lay.Kind() != KindFixed || lay.Name() != "Probhat" {
		t.Fatalf("unexpected layout %s (%v)", lay.Name(), lay.Kind())
	}

	cases := []struct {
		code uint16
		mod  keycode.Modifier
		want string
	}{
		{keycode.KeyA, 0, "া"},
		{keycode.KeyShiftA, 0, "অ"},
		{keycode.KeyA, keycode.ModAltGr, "ঌ"},
		{keycode.KeyShiftA, keycode.ModAltGr, "ৠ"},
		{keycode.Key4, 0, "৪"},
		{keycode.Key4, keycode.ModAltGr, "৷"},
		{keycode.KeyDollar, 0, "৳"},
		{keycode.KeyDollar, keycode.ModAltGr, "৲"},
		{keycode.KeyBackSlash, 0, "\u200c"},
		{keycode.KeyBar, 0, "॥"},
	}
	for _, tc := range cases {
		got, ok := lay.Translate(tc.code, tc.mod, false)
		if !ok || got != tc.want {
			t.Fatalf("expected %q for %#x/%v, got %q ok=%v", tc.want, tc.code, tc.mod, got, ok)
		}
	}

	if _, ok := lay.Translate(0xffff, 0, false); ok {
		t.Fatalf("expected no mapping for unknown key")
	}
}

func TestProbhatMapsEveryKey(t *testing.T) {
	lay, err := Load("probhat")
	if err != nil {
		t.Fatalf("load probhat: %v", err)
	}
	for _, code := range keycode.Codes() {
		if keycode.IsNumpad(code) {
			continue
		}
		for _, mod := range []keycode.Modifier{0, keycode.ModAltGr} {
			if _, ok := lay.Translate(code, mod, false); !ok {
				name, _ := keycode.Name(code)
				t.Fatalf("expected %s/%v to be mapped", name, mod)
			}
		}
	}
}

func TestNumpadTranslation(t *testing.T) {
	lay, err := Load("probhat")
	if err != nil {
		t.Fatalf("load probhat: %v", err)
	}
	if got, ok := lay.Translate(keycode.KeyKP1, 0, false); !ok || got != "1" {
		t.Fatalf("expected ASCII digit without numpad mapping, got %q", got)
	}
	if got, ok := lay.Translate(keycode.KeyKP1, 0, true); !ok || got != "১" {
		t.Fatalf("expected localized digit with numpad mapping, got %q", got)
	}
}

func TestLoadPhonetic(t *testing.T) {
	lay, err := Load("avro")
	if err != nil {
		t.Fatalf("load phonetic: %v", err)
	}
	if lay.Kind() != KindPhonetic {
		t.Fatalf("expected phonetic layout, got %v", lay.Kind())
	}
}

func TestLoadUnknownLayout(t *testing.T) {
	_, err := Load("does-not-exist")
	if !errors.Is(err, ErrUnknownLayout) {
		t.Fatalf("expected ErrUnknownLayout, got %v", err)
	}
}

func TestLoadFileRejectsSchemaViolations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	contents := `{"info": {"name": "Broken", "type": "fixed"}, "layout": {"Key_a_Sideways": "x"}}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected schema violation to be rejected")
	}

	missing := filepath.Join(dir, "nolayout.json")
	if err := os.WriteFile(missing, []byte(`{"info": {"name": "Empty", "type": "fixed"}}`), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	if _, err := Load(missing); err == nil {
		t.Fatalf("expected fixed layout without key table to be rejected")
	}
}

func TestLoadFileLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mini.json")
	contents := `{"info": {"name": "Mini", "type": "fixed"}, "layout": {"Key_k_Normal": "ক", "Key_k_AltGr": "", "Num1": "১"}}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	lay, err := Load(path)
	if err != nil {
		t.Fatalf("load file layout: %v", err)
	}
	if got, ok := lay.Translate(keycode.KeyK, 0, false); !ok || got != "ক" {
		t.Fatalf("expected ক, got %q", got)
	}
	if _, ok := lay.Translate(keycode.KeyK, keycode.ModAltGr, false); ok {
		t.Fatalf("expected empty entry to be unmapped")
	}
	if _, ok := lay.Translate(keycode.KeyKP2, 0, true); ok {
		t.Fatalf("expected missing numpad entry to be unmapped")
	}
}

func TestApplyOverrides(t *testing.T) {
	lay, err := Load("probhat")
	if err != nil {
		t.Fatalf("load probhat: %v", err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.json")
	contents := `[{"key": "a", "value": "আ"}, {"key": "$", "altgr": true, "value": "$"}, {"key": "Num0", "value": "0"}]`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	overrides, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}
	if err := ApplyOverrides(lay, overrides); err != nil {
		t.Fatalf("apply overrides: %v", err)
	}
	if got, _ := lay.Translate(keycode.KeyA, 0, false); got != "আ" {
		t.Fatalf("expected override text 'আ', got %q", got)
	}
	if got, _ := lay.Translate(keycode.KeyDollar, keycode.ModAltGr, false); got != "$" {
		t.Fatalf("expected override text '$', got %q", got)
	}
	if got, _ := lay.Translate(keycode.KeyKP0, 0, true); got != "0" {
		t.Fatalf("expected numpad override '0', got %q", got)
	}

	if err := ApplyOverrides(lay, []Override{{Key: "Space", Value: " "}}); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}
