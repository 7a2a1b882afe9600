package keycode

import "testing"

func TestRuneMapping(t *testing.T) {
	cases := map[uint16]rune{
		KeyA:          'a',
		KeyShiftA:     'A',
		KeyZ:          'z',
		KeyShiftZ:     'Z',
		Key0:          '0',
		KeyParenRight: ')',
		KeyBackSlash:  '\\',
		KeyQuestion:   '?',
		KeyKP5:        '5',
		KeyKPDecimal:  '.',
	}
	for code, want := range cases {
		got, ok := Rune(code)
		if !ok || got != want {
			t.Fatalf("expected %q for code %#x, got %q ok=%v", want, code, got, ok)
		}
	}
	if _, ok := Rune(KeyKPEnter); ok {
		t.Fatalf("expected keypad enter to have no character")
	}
}

func TestFromRunePrefersMainKeyboard(t *testing.T) {
	code, ok := FromRune('5')
	if !ok || code != Key5 {
		t.Fatalf("expected Key5, got %#x ok=%v", code, ok)
	}
	if IsNumpad(code) {
		t.Fatalf("expected main keyboard code")
	}
	if !IsNumpad(KeyKP5) {
		t.Fatalf("expected KeyKP5 to be a numpad key")
	}
}

func TestLayoutNames(t *testing.T) {
	for code, want := range map[uint16]string{
		KeyA:        "a",
		KeyShiftQ:   "Q",
		KeyDollar:   "Dollar",
		KeyKP0:      "Num0",
		KeyKPDivide: "NumDivide",
	} {
		if got, ok := Name(code); !ok || got != want {
			t.Fatalf("expected name %q, got %q", want, got)
		}
	}
}

func TestEveryCodeRoundTrips(t *testing.T) {
	for _, code := range Codes() {
		if IsNumpad(code) {
			continue
		}
		r, _ := Rune(code)
		back, ok := FromRune(r)
		if !ok || back != code {
			t.Fatalf("expected %q to map back to %#x, got %#x", r, code, back)
		}
	}
}

func TestModifierBits(t *testing.T) {
	ev := NewKeyEvent(KeyA, 0xFE)
	if ev.Modifiers != ModAltGr {
		t.Fatalf("expected reserved bits dropped, got %v", ev.Modifiers)
	}
	if !ev.Modifiers.AltGr() || ev.Modifiers.Shift() {
		t.Fatalf("unexpected modifier state %v", ev.Modifiers)
	}
	if Modifier(3).String() != "shift+altgr" {
		t.Fatalf("unexpected string %q", Modifier(3).String())
	}
}

func TestFromName(t *testing.T) {
	if code, ok := FromName("BackSlash"); !ok || code != KeyBackSlash {
		t.Fatalf("expected KeyBackSlash, got %#x ok=%v", code, ok)
	}
	if code, ok := FromName("Num7"); !ok || code != KeyKP7 {
		t.Fatalf("expected KeyKP7, got %#x ok=%v", code, ok)
	}
	if _, ok := FromName("Space"); ok {
		t.Fatalf("expected unknown name to fail")
	}
}
