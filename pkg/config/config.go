// Package config describes how an input context is set up: which layout,
// which data directories and which input method with its options.
package config

import "fmt"

// Mode is either Phonetic or Fixed.
type Mode interface {
	Name() string
	isMode()
}

type Phonetic struct{}

func (Phonetic) Name() string { return "phonetic" }
func (Phonetic) isMode()      {}

// Fixed carries the options of the fixed-layout method.
type Fixed struct {
	AutoVowel      bool
	AutoChandra    bool
	TraditionalKar bool
	OldReph        bool
	Numpad         bool
	OldKarOrder    bool
}

func (Fixed) Name() string { return "fixed" }
func (Fixed) isMode()      {}

// ConfigError reports a configuration that cannot be built.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return "config: " + e.msg }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// Config is immutable once built. The zero value is unbuilt.
type Config struct {
	layout         string
	overrides      string
	databaseDir    string
	userDir        string
	includeEnglish bool
	suggestions    bool
	mode           Mode
}

func (c Config) Layout() string { return c.layout }

// Overrides is a JSON file of per-key replacements for a fixed layout.
func (c Config) Overrides() string { return c.overrides }

func (c Config) DatabaseDir() string { return c.databaseDir }

func (c Config) UserDir() string { return c.userDir }

func (c Config) IncludeEnglish() bool { return c.includeEnglish }

// Suggestions reports whether the dictionary is consulted at all.
func (c Config) Suggestions() bool { return c.suggestions }

func (c Config) Mode() Mode { return c.mode }

func (c Config) IsZero() bool { return c.mode == nil }

func (c Config) IsPhonetic() bool {
	_, ok := c.mode.(Phonetic)
	return ok
}

// FixedOptions returns the fixed-layout options and whether the mode is
// fixed at all.
func (c Config) FixedOptions() (Fixed, bool) {
	f, ok := c.mode.(Fixed)
	return f, ok
}

func (c Config) String() string {
	if c.IsZero() {
		return "config(unbuilt)"
	}
	return fmt.Sprintf("config(%s layout=%q database=%q)", c.mode.Name(), c.layout, c.databaseDir)
}

const DefaultPhoneticLayout = "avro_phonetic"

// Builder collects settings. The fixed options start out as the usual
// typing defaults.
type Builder struct {
	layout         string
	overrides      string
	databaseDir    string
	userDir        string
	includeEnglish bool
	phonetic       bool
	fixed          bool
	suggestions    bool
	fixedOptions   Fixed
}

func NewBuilder() *Builder {
	return &Builder{
		suggestions: true,
		fixedOptions: Fixed{
			AutoVowel:      true,
			AutoChandra:    true,
			TraditionalKar: true,
			OldReph:        true,
			Numpad:         true,
		},
	}
}

func (b *Builder) SetLayoutFile(layout string) *Builder {
	b.layout = layout
	return b
}

func (b *Builder) SetLayoutOverrides(path string) *Builder {
	b.overrides = path
	return b
}

func (b *Builder) SetDatabaseDir(dir string) *Builder {
	b.databaseDir = dir
	return b
}

func (b *Builder) SetUserDir(dir string) *Builder {
	b.userDir = dir
	return b
}

func (b *Builder) SetIncludeEnglish(v bool) *Builder {
	b.includeEnglish = v
	return b
}

func (b *Builder) SetPhoneticSuggestion(v bool) *Builder {
	b.phonetic = v
	return b
}

func (b *Builder) SetFixedSuggestion(v bool) *Builder {
	b.fixed = v
	return b
}

func (b *Builder) SetSuggestions(v bool) *Builder {
	b.suggestions = v
	return b
}

func (b *Builder) SetFixedAutoVowel(v bool) *Builder {
	b.fixedOptions.AutoVowel = v
	return b
}

func (b *Builder) SetFixedAutoChandra(v bool) *Builder {
	b.fixedOptions.AutoChandra = v
	return b
}

func (b *Builder) SetFixedTraditionalKar(v bool) *Builder {
	b.fixedOptions.TraditionalKar = v
	return b
}

func (b *Builder) SetFixedOldReph(v bool) *Builder {
	b.fixedOptions.OldReph = v
	return b
}

func (b *Builder) SetFixedNumpad(v bool) *Builder {
	b.fixedOptions.Numpad = v
	return b
}

func (b *Builder) SetFixedOldKarOrder(v bool) *Builder {
	b.fixedOptions.OldKarOrder = v
	return b
}

// Build validates the settings. Phonetic wins when both methods are
// enabled; enabling neither is an error, as is a fixed method without a
// layout.
func (b *Builder) Build() (Config, error) {
	cfg := Config{
		layout:         b.layout,
		overrides:      b.overrides,
		databaseDir:    b.databaseDir,
		userDir:        b.userDir,
		includeEnglish: b.includeEnglish,
		suggestions:    b.suggestions,
	}
	switch {
	case b.phonetic:
		cfg.mode = Phonetic{}
		if cfg.layout == "" {
			cfg.layout = DefaultPhoneticLayout
		}
	case b.fixed:
		if cfg.layout == "" {
			return Config{}, configErrorf("fixed method needs a layout")
		}
		cfg.mode = b.fixedOptions
	default:
		return Config{}, configErrorf("no input method selected")
	}
	return cfg, nil
}

// MustBuild panics where Build would fail.
func (b *Builder) MustBuild() Config {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}
