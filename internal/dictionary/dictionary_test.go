package dictionary

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

var sample = []Entry{
	{Word: "আমি", Frequency: 40},
	{Word: "আমিও", Frequency: 5},
	{Word: "আমার", Frequency: 40},
	{Word: "তুমি", Frequency: 30},
}

func TestMemorySearchRanksByFrequency(t *testing.T) {
	m := NewMemory(sample)
	got := m.Search("আম", 10)
	want := []string{"আমার", "আমি", "আমিও"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := m.Search("আম", 1); len(got) != 1 || got[0] != "আমার" {
		t.Fatalf("expected limit to apply, got %v", got)
	}
	if got := m.Search("", 10); got != nil {
		t.Fatalf("expected no results for empty prefix, got %v", got)
	}
}

func TestMemoryContainsNormalizes(t *testing.T) {
	m := NewMemory([]Entry{{Word: "ক\u09c7\u09be"}})
	if !m.Contains("ক\u09cb") {
		t.Fatalf("expected decomposed spelling to match")
	}
	if m.Contains("কা") {
		t.Fatalf("expected unrelated word to be absent")
	}
}

func TestNormalizeKeepsNuktaLettersPrecomposed(t *testing.T) {
	if got := Normalize("\u09ac\u09a1\u09bc"); got != "\u09ac\u09dc" {
		t.Fatalf("expected precomposed rra, got %q", got)
	}
	if got := Normalize("\u09af\u09bc\u09be"); got != "\u09df\u09be" {
		t.Fatalf("expected precomposed ya, got %q", got)
	}
	if got := Normalize("\u09dd"); got != "\u09dd" {
		t.Fatalf("expected rha kept, got %q", got)
	}
}

func TestMemoryMatchSpellingVariants(t *testing.T) {
	m := NewMemory([]Entry{{Word: "দীন", Frequency: 3}, {Word: "দিন", Frequency: 1}, {Word: "দিনে"}, {Word: "তিন"}})
	p, err := NewPattern([][]string{{"দ"}, {"ি", "ী"}, {"ন"}}, "")
	if err != nil {
		t.Fatalf("pattern: %v", err)
	}
	got := m.Match(p, 10)
	want := []string{"দীন", "দিন", "দিনে"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := m.Match(p, 1); len(got) != 1 || got[0] != "দীন" {
		t.Fatalf("expected limit to apply, got %v", got)
	}
}

func TestPatternOptionalChunkAndGap(t *testing.T) {
	p, err := NewPattern([][]string{{"স", "শ"}, {"ো", ""}, {"ক"}}, "্?")
	if err != nil {
		t.Fatalf("pattern: %v", err)
	}
	if !reflect.DeepEqual(p.Heads, []string{"স", "শ"}) {
		t.Fatalf("unexpected heads %v", p.Heads)
	}
	for _, word := range []string{"সক", "শোক", "স্ক"} {
		if !p.Expr.MatchString(word) {
			t.Fatalf("expected %q to match", word)
		}
	}
	if p.Expr.MatchString("কস") {
		t.Fatalf("expected pattern anchored at the start")
	}
	if _, err := NewPattern(nil, ""); err == nil {
		t.Fatalf("expected empty pattern to fail")
	}
	if _, err := NewPattern([][]string{{""}}, ""); err == nil {
		t.Fatalf("expected pattern without a leading letter to fail")
	}
}

func TestMemoryKeepsHighestFrequencyOnDuplicates(t *testing.T) {
	m := NewMemory([]Entry{{Word: "বই", Frequency: 1}, {Word: " বই ", Frequency: 9}})
	entries := m.Entries()
	if len(entries) != 1 || entries[0].Frequency != 9 {
		t.Fatalf("expected one entry with frequency 9, got %v", entries)
	}
}

func TestLoadJSONAndWordList(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "words.json")
	writeFile(t, jsonPath, `{"আমি": 3, "আমিও": 1}`)
	m, err := LoadJSON(jsonPath)
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 words, got %d", m.Len())
	}

	tsvPath := filepath.Join(dir, "words.tsv")
	writeFile(t, tsvPath, "# comment\nআমি\t3\n\nতুমি\n")
	entries, err := ReadWordList(tsvPath)
	if err != nil {
		t.Fatalf("read word list: %v", err)
	}
	if len(entries) != 2 || entries[1].Word != "তুমি" || entries[1].Frequency != 0 {
		t.Fatalf("unexpected entries %v", entries)
	}

	writeFile(t, tsvPath, "আমি\tmany\n")
	if _, err := ReadWordList(tsvPath); err == nil {
		t.Fatalf("expected bad frequency to fail")
	}
	if _, err := LoadJSON(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestSQLiteImportAndSearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bangfe.dictionary")
	defer teardown()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", SQLiteFile))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	n, err := db.Import(sample)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != len(sample) {
		t.Fatalf("expected %d rows, got %d", len(sample), n)
	}
	if _, err := db.Import([]Entry{{Word: "আমিও", Frequency: 50}, {Word: "আমি", Frequency: 1}}); err != nil {
		t.Fatalf("second import: %v", err)
	}
	count, err := db.Count()
	if err != nil || count != len(sample) {
		t.Fatalf("expected %d words, got %d (%v)", len(sample), count, err)
	}

	got := db.Search("আম", 10)
	want := []string{"আমিও", "আমার", "আমি"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if !db.Contains("তুমি") || db.Contains("তুমিও") {
		t.Fatalf("contains gave wrong answers")
	}

	p, err := NewPattern([][]string{{"আ"}, {"ম"}, {"ি", "ী"}}, "")
	if err != nil {
		t.Fatalf("pattern: %v", err)
	}
	got = db.Match(p, 10)
	want = []string{"আমিও", "আমি"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSuffixJoin(t *testing.T) {
	cases := []struct{ base, suffix, want string }{
		{"কম্পিউটার", "গুলো", "কম্পিউটারগুলো"},
		{"হঠাৎ", "ই", "হঠাতই"},
		{"এবং", "ই", "এবঙই"},
		{"ভাই", "ে", "ভাই\u09df\u09c7"},
		{"আমি", "ের", "আমি\u09df\u09c7র"},
	}
	for _, tc := range cases {
		if got := Join(tc.base, tc.suffix); got != tc.want {
			t.Fatalf("expected %q for %q+%q, got %q", tc.want, tc.base, tc.suffix, got)
		}
	}
}

func TestAutoCorrectUserOverlayWins(t *testing.T) {
	ac := NewAutoCorrect(
		map[string]string{"academy": "oZakaDemi", "dhonnobad": "dhonZobad"},
		map[string]string{"academy": "Ekademi"},
	)
	if got, ok := ac.Lookup("academy"); !ok || got != "Ekademi" {
		t.Fatalf("expected user entry, got %q", got)
	}
	if got, ok := ac.Lookup("dhonnobad"); !ok || got != "dhonZobad" {
		t.Fatalf("expected shipped entry, got %q", got)
	}
	if _, ok := ac.Lookup("nai"); ok {
		t.Fatalf("expected no entry")
	}
}

func TestOpenDirectory(t *testing.T) {
	dir := t.TempDir()
	user := t.TempDir()
	writeFile(t, filepath.Join(dir, JSONFile), `{"আমি": 3, "আমিও": 1}`)
	writeFile(t, filepath.Join(dir, SuffixFile), `{"gulo": "গুলো", "er": "ের"}`)
	writeFile(t, filepath.Join(dir, AutoCorrectFile), `{"academy": "oZakaDemi"}`)
	writeFile(t, filepath.Join(user, AutoCorrectFile), `{"ami": "ami"}`)

	db, err := Open(dir, user)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if got := db.Search("আমি", 10); len(got) != 2 {
		t.Fatalf("expected 2 words, got %v", got)
	}
	if suffix, ok := db.Suffixes.Find("gulo"); !ok || suffix != "গুলো" {
		t.Fatalf("expected suffix, got %q", suffix)
	}
	if _, ok := db.Suffixes.Find("h"); ok {
		t.Fatalf("expected unknown suffix")
	}
	if db.AutoCorrect.Len() != 2 {
		t.Fatalf("expected both auto-correct tables, got %d entries", db.AutoCorrect.Len())
	}
}

func TestOpenEmptyDirectory(t *testing.T) {
	db, err := Open("", "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if db.Words != nil || db.Search("আ", 10) != nil {
		t.Fatalf("expected no word list")
	}
}

func TestOpenRejectsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, JSONFile), `{"আমি": "three"}`)
	if _, err := Open(dir, ""); err == nil {
		t.Fatalf("expected malformed dictionary to fail")
	}
}
