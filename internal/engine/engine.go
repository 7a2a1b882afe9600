// Package engine turns key events into composed text and suggestions for
// one configuration.
package engine

import (
	"fmt"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"

	"bangfe/internal/dictionary"
	"bangfe/internal/fixed"
	"bangfe/internal/keycode"
	"bangfe/internal/layout"
	"bangfe/internal/store"
	"bangfe/internal/suggest"
	"bangfe/pkg/config"
)

// tracer traces with key 'bangfe.engine'
func tracer() tracing.Trace {
	return tracing.Select("bangfe.engine")
}

// Engine holds everything built from one Config. It never changes after
// New; sessions read from it.
type Engine struct {
	cfg        config.Config
	layout     *layout.Layout
	fixedOpts  config.Fixed
	isFixed    bool
	db         *dictionary.Database
	selections *store.Selections
	builder    *suggest.Builder
}

// New loads the layout and data a Config names.
func New(cfg config.Config) (*Engine, error) {
	if cfg.IsZero() {
		return nil, fmt.Errorf("engine: unbuilt config")
	}
	e := &Engine{cfg: cfg}
	if opts, ok := cfg.FixedOptions(); ok {
		l, err := layout.Load(cfg.Layout())
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		if l.Kind() != layout.KindFixed {
			return nil, fmt.Errorf("engine: layout %s is not a fixed layout", l.Name())
		}
		if path := cfg.Overrides(); path != "" {
			overrides, err := layout.LoadOverrides(path)
			if err != nil {
				return nil, fmt.Errorf("engine: %w", err)
			}
			if err := layout.ApplyOverrides(l, overrides); err != nil {
				return nil, fmt.Errorf("engine: %w", err)
			}
		}
		e.layout, e.fixedOpts, e.isFixed = l, opts, true
	}

	var err error
	if cfg.Suggestions() {
		if e.db, err = dictionary.Open(cfg.DatabaseDir(), cfg.UserDir()); err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
	}
	if cfg.UserDir() != "" {
		if e.selections, err = store.Open(filepath.Join(cfg.UserDir(), store.FileName)); err != nil {
			e.db.Close()
			return nil, fmt.Errorf("engine: %w", err)
		}
	} else {
		e.selections = store.NewSelections()
	}

	e.builder = suggest.NewBuilder(suggest.Options{
		Database:       e.db,
		Selections:     e.selections,
		IncludeEnglish: cfg.IncludeEnglish(),
		Disabled:       !cfg.Suggestions(),
	})
	tracer().Debugf("engine built: %s", cfg)
	return e, nil
}

func (e *Engine) Config() config.Config { return e.cfg }

// Layout is nil for the phonetic method.
func (e *Engine) Layout() *layout.Layout { return e.layout }

func (e *Engine) IsFixed() bool { return e.isFixed }

func (e *Engine) NewSession() *Session {
	s := &Session{engine: e}
	if e.isFixed {
		s.composer = fixed.NewComposer(fixed.Options{
			AutoVowel:      e.fixedOpts.AutoVowel,
			AutoChandra:    e.fixedOpts.AutoChandra,
			TraditionalKar: e.fixedOpts.TraditionalKar,
			OldReph:        e.fixedOpts.OldReph,
			OldKarOrder:    e.fixedOpts.OldKarOrder,
		})
	}
	return s
}

func (e *Engine) Close() error {
	var first error
	if err := e.db.Close(); err != nil {
		first = err
	}
	if err := e.selections.Close(); err != nil && first == nil {
		first = fmt.Errorf("close selections: %w", err)
	}
	return first
}

// translate maps a key to the text it contributes, or false when the key
// means nothing to the method.
func (e *Engine) translate(ev keycode.KeyEvent) (string, bool) {
	if e.isFixed {
		return e.layout.Translate(ev.Code, ev.Modifiers, e.fixedOpts.Numpad)
	}
	if ev.Modifiers.AltGr() {
		return "", false
	}
	r, ok := keycode.Rune(ev.Code)
	if !ok {
		return "", false
	}
	return string(r), true
}
