package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"bangfe/internal/keycode"
)

// Override replaces one key's output. Key is a layout key name ("a", "A",
// "Dollar", "Num1") or a single printable character.
type Override struct {
	Key   string `json:"key"`
	AltGr bool   `json:"altgr"`
	Value string `json:"value"`
}

func LoadOverrides(path string) ([]Override, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout override file: %w", err)
	}
	defer file.Close()

	var overrides []Override
	if err := json.NewDecoder(file).Decode(&overrides); err != nil {
		return nil, fmt.Errorf("parse layout override file: %w", err)
	}
	return overrides, nil
}

func ApplyOverrides(l *Layout, overrides []Override) error {
	if l.Kind() != KindFixed && len(overrides) > 0 {
		return fmt.Errorf("layout %s has no key table to override", l.Name())
	}
	for _, override := range overrides {
		code, err := resolveKeyCode(override.Key)
		if err != nil {
			return err
		}
		if err := l.ApplyOverride(code, override.AltGr, override.Value); err != nil {
			return err
		}
	}
	return nil
}

func resolveKeyCode(name string) (uint16, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, fmt.Errorf("empty key name")
	}
	if code, ok := keycode.FromName(trimmed); ok {
		return code, nil
	}
	if r := []rune(trimmed); len(r) == 1 {
		if code, ok := keycode.FromRune(r[0]); ok {
			return code, nil
		}
	}
	return 0, fmt.Errorf("unknown key name '%s'", name)
}
