package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	opts, err := Parse([]string{"bangfe", "--layout=probhat", "--database", "/data", "--profiles", "p.ini", "--profile=x", "--no-watch", "--trace", "Debug"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.LayoutName != "probhat" || opts.DatabaseDir != "/data" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.ProfilesPath != "p.ini" || opts.ProfileName != "x" {
		t.Fatalf("expected --profiles and --profile to differ, got %+v", opts)
	}
	if !opts.NoWatch || opts.TraceLevel != "Debug" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]string{"bangfe", "--bogus"}); err == nil {
		t.Fatalf("expected unknown option to fail")
	}
	if _, err := Parse([]string{"bangfe", "--layout"}); err == nil {
		t.Fatalf("expected missing value to fail")
	}
}

func TestProfilesFromLayout(t *testing.T) {
	opts := Options{LayoutName: "avro"}
	profiles, index, err := opts.Profiles("")
	if err != nil || index != 0 || len(profiles.Profiles) != 1 {
		t.Fatalf("expected a single profile, got %+v %d %v", profiles, index, err)
	}
	if profiles.Profiles[0].Method != "phonetic" {
		t.Fatalf("expected phonetic method, got %q", profiles.Profiles[0].Method)
	}
	opts = Options{LayoutName: "probhat"}
	profiles, _, _ = opts.Profiles("")
	if profiles.Profiles[0].Method != "fixed" {
		t.Fatalf("expected fixed method, got %q", profiles.Profiles[0].Method)
	}
}

func TestProfilesSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.ini")
	content := "[profile a]\nmethod = phonetic\n\n[profile b]\nmethod = fixed\nlayout = probhat\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	opts := Options{ProfilesPath: path}
	if _, index, err := opts.Profiles("b"); err != nil || index != 1 {
		t.Fatalf("expected toggle default b at 1, got %d %v", index, err)
	}
	opts.ProfileName = "a"
	if _, index, err := opts.Profiles("b"); err != nil || index != 0 {
		t.Fatalf("expected --profile to win, got %d %v", index, err)
	}
	opts.ProfileName = "c"
	if _, _, err := opts.Profiles(""); err == nil {
		t.Fatalf("expected unknown profile to fail")
	}
}

func TestUsageNamesProgram(t *testing.T) {
	if !strings.HasPrefix(Usage("bangfe-repl"), "bangfe-repl - ") {
		t.Fatalf("expected usage to start with the program name")
	}
}
