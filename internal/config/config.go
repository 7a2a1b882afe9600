// Package config reads the frontend settings: the key chords that cycle
// input profiles and the profiles themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ini "github.com/go-ini/ini"
)

// Chord is a key with optional modifiers, written "ctrl+space" or "f12".
type Chord struct {
	Ctrl bool
	Alt  bool
	Key  string
}

func (c Chord) String() string {
	var b strings.Builder
	if c.Ctrl {
		b.WriteString("ctrl+")
	}
	if c.Alt {
		b.WriteString("alt+")
	}
	b.WriteString(c.Key)
	return b.String()
}

type ToggleConfig struct {
	Chords         []Chord
	DefaultProfile string
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func DefaultToggleConfig() ToggleConfig {
	return ToggleConfig{
		Chords: []Chord{{Ctrl: true, Key: "space"}, {Key: "f12"}},
	}
}

func LoadToggleConfig(path string) (ToggleConfig, error) {
	file, err := ini.Load(path)
	if err != nil {
		return ToggleConfig{}, ConfigError{msg: fmt.Sprintf("failed to load toggle config: %v", err)}
	}
	section, err := file.GetSection("toggle")
	if err != nil {
		return ToggleConfig{}, ConfigError{msg: fmt.Sprintf("no [toggle] section in %s", path)}
	}

	tokens := section.Key("keys").Strings(",")
	if len(tokens) == 0 {
		return ToggleConfig{}, ConfigError{msg: fmt.Sprintf("no toggle keys defined in %s", path)}
	}
	cfg := ToggleConfig{DefaultProfile: strings.TrimSpace(section.Key("default_profile").String())}
	for _, token := range tokens {
		chord, err := ParseChord(token)
		if err != nil {
			return ToggleConfig{}, err
		}
		cfg.Chords = append(cfg.Chords, chord)
	}
	return cfg, nil
}

// ParseChord reads "ctrl+alt+x". The key is a letter, a digit, space, tab
// or f1 to f12.
func ParseChord(text string) (Chord, error) {
	var chord Chord
	for _, part := range strings.Split(strings.ToLower(text), "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			continue
		case "ctrl", "control":
			chord.Ctrl = true
		case "alt":
			chord.Alt = true
		default:
			if chord.Key != "" {
				return Chord{}, ConfigError{msg: fmt.Sprintf("chord '%s' names more than one key", text)}
			}
			if !knownKey(part) {
				return Chord{}, ConfigError{msg: fmt.Sprintf("unknown key '%s' in chord '%s'", part, text)}
			}
			chord.Key = part
		}
	}
	if chord.Key == "" {
		return Chord{}, ConfigError{msg: fmt.Sprintf("chord '%s' has no key", text)}
	}
	return chord, nil
}

func knownKey(name string) bool {
	switch name {
	case "space", "tab":
		return true
	}
	if len(name) == 1 {
		c := name[0]
		return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
	}
	var n int
	if _, err := fmt.Sscanf(name, "f%d", &n); err == nil && fmt.Sprintf("f%d", n) == name {
		return n >= 1 && n <= 12
	}
	return false
}

// Matches reports whether any chord equals c.
func (t ToggleConfig) Matches(c Chord) bool {
	for _, chord := range t.Chords {
		if chord == c {
			return true
		}
	}
	return false
}

func ResolveToggleConfig(cliPath string) (ToggleConfig, error) {
	if cliPath != "" {
		return LoadToggleConfig(cliPath)
	}
	path, ok := inWorkingDir("toggle.ini")
	if !ok {
		return DefaultToggleConfig(), nil
	}
	return LoadToggleConfig(path)
}

func inWorkingDir(name string) (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	path := filepath.Join(cwd, name)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
