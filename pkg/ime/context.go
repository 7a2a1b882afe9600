// Package ime is the entry point for input-method frontends: it turns key
// events into Bengali text and candidate lists.
package ime

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"bangfe/internal/engine"
	"bangfe/internal/keycode"
	"bangfe/internal/suggest"
	"bangfe/pkg/config"
)

// tracer traces with key 'bangfe.ime'
func tracer() tracing.Trace {
	return tracing.Select("bangfe.ime")
}

// Suggestion is the candidate list produced after each key.
type Suggestion = suggest.Suggestion

// Context is one input context. It is not safe for concurrent use.
type Context struct {
	engine     *engine.Engine
	session    *engine.Session
	handled    bool
	pending    *config.Config
	pendingErr error
}

// NewContext builds a context for cfg. It panics on an unbuilt Config and
// returns an error when the layout or data cannot be loaded.
func NewContext(cfg config.Config) (*Context, error) {
	if cfg.IsZero() {
		panic("ime: NewContext with an unbuilt config")
	}
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Context{engine: eng, session: eng.NewSession()}, nil
}

func MustNewContext(cfg config.Config) *Context {
	c, err := NewContext(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Context) Config() config.Config { return c.engine.Config() }

// HandleKey feeds one key. modifier carries Shift in bit 0 and AltGr in
// bit 1.
func (c *Context) HandleKey(key uint16, modifier uint8) Suggestion {
	sg, handled := c.session.HandleKey(keycode.NewKeyEvent(key, modifier))
	c.handled = handled
	return sg
}

// KeyHandled reports whether the last HandleKey consumed its key. A
// frontend forwards unconsumed keys to the application.
func (c *Context) KeyHandled() bool { return c.handled }

func (c *Context) Backspace() Suggestion {
	sg := c.session.Backspace()
	c.afterSession()
	return sg
}

// Commit returns candidate index of the current suggestion and ends the
// session. An index out of range panics and leaves the session as it was.
func (c *Context) Commit(index int) string {
	text := c.session.Commit(index)
	c.afterSession()
	return text
}

func (c *Context) FinishInputSession() {
	c.session.Finish()
	c.afterSession()
}

func (c *Context) OngoingInputSession() bool { return c.session.Ongoing() }

// Preedit is the text shown while composing.
func (c *Context) Preedit() string {
	sg := c.session.Suggestion()
	switch {
	case sg.IsLonely():
		return sg.Lonely()
	case sg.Len() > 0:
		return sg.At(sg.PreviouslySelected())
	}
	return ""
}

// UpdateEngine switches to cfg. While idle the switch happens at once and
// applied is true. During a session cfg is kept and applied when the
// session ends; failures of that later switch show up in PendingError.
func (c *Context) UpdateEngine(cfg config.Config) (applied bool, err error) {
	if cfg.IsZero() {
		panic("ime: UpdateEngine with an unbuilt config")
	}
	if c.session.Ongoing() {
		c.pending = &cfg
		tracer().Debugf("reconfiguration deferred until the session ends")
		return false, nil
	}
	c.pending = nil
	if err := c.swap(cfg); err != nil {
		return false, err
	}
	return true, nil
}

// HasPendingUpdate reports a deferred configuration change.
func (c *Context) HasPendingUpdate() bool { return c.pending != nil }

// PendingError is the failure of the last deferred reconfiguration.
func (c *Context) PendingError() error { return c.pendingErr }

func (c *Context) Close() error {
	return c.engine.Close()
}

func (c *Context) afterSession() {
	if c.pending == nil || c.session.Ongoing() {
		return
	}
	cfg := *c.pending
	c.pending = nil
	if err := c.swap(cfg); err != nil {
		tracer().Errorf("deferred reconfiguration: %v", err)
		c.pendingErr = err
		return
	}
	c.pendingErr = nil
}

func (c *Context) swap(cfg config.Config) error {
	eng, err := engine.New(cfg)
	if err != nil {
		return fmt.Errorf("ime: update engine: %w", err)
	}
	old := c.engine
	c.engine, c.session = eng, eng.NewSession()
	if err := old.Close(); err != nil {
		tracer().Errorf("close previous engine: %v", err)
	}
	tracer().Infof("engine switched to %s", cfg)
	return nil
}

// ErrNoCandidate is returned by CommitSelected when nothing is composed.
var ErrNoCandidate = errors.New("ime: no candidate to commit")

// CommitSelected commits the previously selected candidate, or the lonely
// one.
func (c *Context) CommitSelected() (string, error) {
	sg := c.session.Suggestion()
	if sg.IsEmpty() {
		c.FinishInputSession()
		return "", ErrNoCandidate
	}
	return c.Commit(sg.PreviouslySelected()), nil
}
