package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	ini "github.com/go-ini/ini"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a configuration. Unset options keep the
// builder defaults.
type File struct {
	Method         string    `toml:"method" yaml:"method"`
	Layout         string    `toml:"layout" yaml:"layout"`
	Overrides      string    `toml:"overrides" yaml:"overrides"`
	DatabaseDir    string    `toml:"database_dir" yaml:"database_dir"`
	UserDir        string    `toml:"user_dir" yaml:"user_dir"`
	IncludeEnglish *bool     `toml:"include_english" yaml:"include_english"`
	Suggestions    *bool     `toml:"suggestions" yaml:"suggestions"`
	Fixed          FileFixed `toml:"fixed" yaml:"fixed"`
}

type FileFixed struct {
	AutoVowel      *bool `toml:"auto_vowel" yaml:"auto_vowel"`
	AutoChandra    *bool `toml:"auto_chandra" yaml:"auto_chandra"`
	TraditionalKar *bool `toml:"traditional_kar" yaml:"traditional_kar"`
	OldReph        *bool `toml:"old_reph" yaml:"old_reph"`
	Numpad         *bool `toml:"numpad" yaml:"numpad"`
	OldKarOrder    *bool `toml:"old_kar_order" yaml:"old_kar_order"`
}

// Load reads a configuration file into a fresh Builder. The format follows
// the extension: .ini, .toml, .yaml or .yml.
func Load(path string) (*Builder, error) {
	file, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	b := NewBuilder()
	if err := file.Apply(b); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return b, nil
}

func ReadFile(path string) (File, error) {
	var file File
	info, err := os.Stat(path)
	if err != nil {
		return file, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return file, fmt.Errorf("config: %s is a directory", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ini":
		return readINI(filepath.Clean(path))
	case ".toml":
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return file, fmt.Errorf("config: decode TOML: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return file, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return file, fmt.Errorf("config: decode YAML: %w", err)
		}
	default:
		return file, configErrorf("unsupported config format %q", ext)
	}
	return file, nil
}

func readINI(path string) (File, error) {
	var file File
	cfg, err := ini.Load(path)
	if err != nil {
		return file, fmt.Errorf("config: %w", err)
	}
	engine := cfg.Section("engine")
	file.Method = engine.Key("method").String()
	file.Layout = engine.Key("layout").String()
	file.Overrides = engine.Key("overrides").String()
	file.DatabaseDir = engine.Key("database_dir").String()
	file.UserDir = engine.Key("user_dir").String()
	if file.IncludeEnglish, err = iniBool(engine, "include_english"); err != nil {
		return file, err
	}
	if file.Suggestions, err = iniBool(engine, "suggestions"); err != nil {
		return file, err
	}

	fixed := cfg.Section("fixed")
	for name, dst := range map[string]**bool{
		"auto_vowel":      &file.Fixed.AutoVowel,
		"auto_chandra":    &file.Fixed.AutoChandra,
		"traditional_kar": &file.Fixed.TraditionalKar,
		"old_reph":        &file.Fixed.OldReph,
		"numpad":          &file.Fixed.Numpad,
		"old_kar_order":   &file.Fixed.OldKarOrder,
	} {
		if *dst, err = iniBool(fixed, name); err != nil {
			return file, err
		}
	}
	return file, nil
}

func iniBool(section *ini.Section, name string) (*bool, error) {
	if !section.HasKey(name) {
		return nil, nil
	}
	v, err := section.Key(name).Bool()
	if err != nil {
		return nil, fmt.Errorf("config: [%s] %s: %w", section.Name(), name, err)
	}
	return &v, nil
}

// Apply copies the file settings onto b.
func (f File) Apply(b *Builder) error {
	switch strings.ToLower(strings.TrimSpace(f.Method)) {
	case "phonetic":
		b.SetPhoneticSuggestion(true)
	case "fixed":
		b.SetFixedSuggestion(true)
	case "":
	default:
		return configErrorf("unknown method %q", f.Method)
	}
	if f.Layout != "" {
		b.SetLayoutFile(expandHome(f.Layout))
	}
	if f.Overrides != "" {
		b.SetLayoutOverrides(expandHome(f.Overrides))
	}
	if f.DatabaseDir != "" {
		b.SetDatabaseDir(expandHome(f.DatabaseDir))
	}
	if f.UserDir != "" {
		b.SetUserDir(expandHome(f.UserDir))
	}
	setBool(f.IncludeEnglish, b.SetIncludeEnglish)
	setBool(f.Suggestions, b.SetSuggestions)
	setBool(f.Fixed.AutoVowel, b.SetFixedAutoVowel)
	setBool(f.Fixed.AutoChandra, b.SetFixedAutoChandra)
	setBool(f.Fixed.TraditionalKar, b.SetFixedTraditionalKar)
	setBool(f.Fixed.OldReph, b.SetFixedOldReph)
	setBool(f.Fixed.Numpad, b.SetFixedNumpad)
	setBool(f.Fixed.OldKarOrder, b.SetFixedOldKarOrder)
	return nil
}

func setBool(v *bool, set func(bool) *Builder) {
	if v != nil {
		set(*v)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
