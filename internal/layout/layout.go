package layout

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"bangfe/internal/keycode"
)

type Kind int

const (
	KindFixed Kind = iota
	KindPhonetic
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindPhonetic:
		return "phonetic"
	default:
		return "unknown"
	}
}

// PhoneticName is the built-in phonetic layout. It carries no key table;
// keys reach the phonetic converter as ASCII.
const PhoneticName = "avro_phonetic"

var ErrUnknownLayout = errors.New("unknown layout")

//go:embed data/*.json
var builtin embed.FS

const schemaName = "data/layout.schema.json"

type LayoutEntry struct {
	Normal string
	AltGr  string
}

type Layout struct {
	name    string
	kind    Kind
	source  string
	mapping map[string]LayoutEntry
	numpad  map[string]string
}

func NewLayout(name string, kind Kind) *Layout {
	return &Layout{
		name:    name,
		kind:    kind,
		mapping: make(map[string]LayoutEntry),
		numpad:  make(map[string]string),
	}
}

func (l *Layout) Name() string { return l.name }

func (l *Layout) Kind() Kind { return l.kind }

// Source is the file or built-in name the layout was loaded from.
func (l *Layout) Source() string { return l.source }

// Translate returns the text a key produces. Numeral-pad keys use the
// layout's Num entries only when numpad is set and otherwise yield their
// ASCII character. Empty entries count as unmapped.
func (l *Layout) Translate(code uint16, mod keycode.Modifier, numpad bool) (string, bool) {
	if l == nil {
		return "", false
	}
	name, ok := keycode.Name(code)
	if !ok {
		return "", false
	}
	if keycode.IsNumpad(code) {
		if !numpad {
			r, _ := keycode.Rune(code)
			return string(r), true
		}
		value := l.numpad[name]
		return value, value != ""
	}
	entry, ok := l.mapping[name]
	if !ok {
		return "", false
	}
	value := entry.Normal
	if mod.AltGr() {
		value = entry.AltGr
	}
	return value, value != ""
}

func (l *Layout) ApplyOverride(code uint16, altgr bool, value string) error {
	if l == nil {
		return nil
	}
	name, ok := keycode.Name(code)
	if !ok {
		return fmt.Errorf("no layout key for code %#x", code)
	}
	if keycode.IsNumpad(code) {
		l.numpad[name] = value
		return nil
	}
	entry := l.mapping[name]
	if altgr {
		entry.AltGr = value
	} else {
		entry.Normal = value
	}
	l.mapping[name] = entry
	return nil
}

// AvailableLayouts lists the built-in layout names.
func AvailableLayouts() []string {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".json")
		if name == entry.Name() || strings.HasSuffix(name, ".schema") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load resolves ref as a built-in layout name first and as a file path
// otherwise.
func Load(ref string) (*Layout, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty layout reference", ErrUnknownLayout)
	}
	key := strings.ToLower(ref)
	if key == "avro" || key == "phonetic" {
		key = PhoneticName
	}
	if data, err := builtin.ReadFile("data/" + key + ".json"); err == nil {
		return Parse(data, key)
	}
	data, err := os.ReadFile(filepath.Clean(ref))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLayout, ref)
		}
		return nil, fmt.Errorf("read layout %s: %w", ref, err)
	}
	return Parse(data, ref)
}

type layoutFile struct {
	Info struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"info"`
	Layout map[string]string `json:"layout"`
}

func Parse(data []byte, source string) (*Layout, error) {
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("layout %s: %w", source, err)
	}
	var file layoutFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", source, err)
	}

	kind := KindFixed
	if file.Info.Type == "phonetic" {
		kind = KindPhonetic
	}
	l := NewLayout(file.Info.Name, kind)
	l.source = source
	for key, value := range file.Layout {
		if strings.HasPrefix(key, "Num") {
			l.numpad[key] = value
			continue
		}
		body := strings.TrimPrefix(key, "Key_")
		cut := strings.LastIndexByte(body, '_')
		name, modifier := body[:cut], body[cut+1:]
		entry := l.mapping[name]
		if modifier == "AltGr" {
			entry.AltGr = value
		} else {
			entry.Normal = value
		}
		l.mapping[name] = entry
	}
	return l, nil
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func validate(data []byte) error {
	schemaOnce.Do(func() {
		raw, err := builtin.ReadFile(schemaName)
		if err != nil {
			schemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, bytes.NewReader(raw)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = compiler.Compile(schemaName)
	})
	if schemaErr != nil {
		return fmt.Errorf("compile layout schema: %w", schemaErr)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
