package phonetic

import (
	"reflect"
	"testing"
)

func TestConvertWords(t *testing.T) {
	cases := map[string]string{
		"ami":    "আমি",
		"bangla": "বাংলা",
		"kor":    "কর",
		"ei":     "এই",
		"kt":     "ক্ত",
		"kotha":  "কথা",
		"ah,,":   "আহ্\u200c",
		"O":      "ও",
		"kO":     "কো",
		"a`":     "া",
	}
	for in, want := range cases {
		if got := Convert(in); got != want {
			t.Fatalf("expected %q for %q, got %q", want, in, got)
		}
	}
}

func TestConvertPassesThroughUnmapped(t *testing.T) {
	if got := Convert("#"); got != "#" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := Convert("কk"); got != "কক" {
		t.Fatalf("expected non-ascii passthrough, got %q", got)
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	first := Convert("amar sonar bangla")
	for i := 0; i < 3; i++ {
		if got := Convert("amar sonar bangla"); got != first {
			t.Fatalf("expected %q, got %q", first, got)
		}
	}
}

func TestFixCaseKeepsSignificantLetters(t *testing.T) {
	if got := FixCase("KoTHA"); got != "koTha" {
		t.Fatalf("expected %q, got %q", "koTha", got)
	}
}

func TestLetterClasses(t *testing.T) {
	if !IsVowel('E') || IsVowel('k') {
		t.Fatalf("vowel class is wrong")
	}
	if !IsConsonant('K') || IsConsonant('a') {
		t.Fatalf("consonant class is wrong")
	}
	if !IsPunctuation('1') || IsPunctuation('a') {
		t.Fatalf("punctuation class is wrong")
	}
}

func TestSplitMeta(t *testing.T) {
	cases := []struct {
		in, pre, body, post string
	}{
		{"{kotha}", "{", "kotha", "}"},
		{"(as)", "(", "as", ")"},
		{"ami", "", "ami", ""},
		{".", ".", "", ""},
		{",ah,,", ",", "ah", ",,"},
	}
	for _, tc := range cases {
		pre, body, post := SplitMeta(tc.in)
		if pre != tc.pre || body != tc.body || post != tc.post {
			t.Fatalf("expected (%q, %q, %q) for %q, got (%q, %q, %q)",
				tc.pre, tc.body, tc.post, tc.in, pre, body, post)
		}
	}
}

func TestMalformedConditionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for malformed condition")
		}
	}()
	mustCondition("middle:vowel")
}

func TestSpellingsFollowConsonants(t *testing.T) {
	got := Spellings("Shokal")
	want := [][]string{{"শ", "ষ", "স"}, {"ো", ""}, {"ক"}, {"া", "্যা"}, {"ল"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := Spellings("ai"); got[0][0] != "আ" || got[1][0] != "ই" {
		t.Fatalf("expected independent vowels, got %v", got)
	}
	if got := Spellings("k1"); len(got) != 2 || got[1][0] != Convert("1") {
		t.Fatalf("expected unmapped character converted, got %v", got)
	}
	if Spellings("") != nil {
		t.Fatalf("expected no chunks for empty text")
	}
}
