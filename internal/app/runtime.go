// Package app holds what every frontend needs around an input context:
// the profile cycle, the toggle chords and data-file reloads.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"

	"bangfe/internal/cli"
	"bangfe/internal/config"
	"bangfe/internal/watch"
	"bangfe/pkg/ime"
)

// tracer traces with key 'bangfe.frontend'
func tracer() tracing.Trace {
	return tracing.Select("bangfe.frontend")
}

type Runtime struct {
	opts     cli.Options
	toggle   config.ToggleConfig
	profiles config.ProfilesConfig
	current  int
	ctx      *ime.Context
	watcher  *watch.Watcher
	cleanups []func()
}

// NewRuntime resolves the toggle and profile files, builds the context for
// the starting profile and, unless disabled, starts watching its data.
func NewRuntime(opts cli.Options) (*Runtime, error) {
	rt := &Runtime{opts: opts}
	if err := rt.prepareToggle(); err != nil {
		return nil, err
	}
	if err := rt.prepareContext(); err != nil {
		rt.Close()
		return nil, err
	}
	if !opts.NoWatch {
		if err := rt.startWatcher(); err != nil {
			rt.Close()
			return nil, err
		}
	}
	return rt, nil
}

func (rt *Runtime) prepareToggle() error {
	cfg, err := config.ResolveToggleConfig(rt.opts.ToggleConfigPath)
	if err != nil {
		return err
	}
	rt.toggle = cfg
	return nil
}

func (rt *Runtime) prepareContext() error {
	profiles, index, err := rt.opts.Profiles(rt.toggle.DefaultProfile)
	if err != nil {
		return err
	}
	rt.profiles, rt.current = profiles, index
	cfg, err := rt.Profile().Build(rt.opts.DatabaseDir, rt.opts.UserDir)
	if err != nil {
		return err
	}
	ctx, err := ime.NewContext(cfg)
	if err != nil {
		return err
	}
	rt.ctx = ctx
	rt.registerCleanup(func() {
		if err := rt.ctx.Close(); err != nil {
			tracer().Errorf("close context: %v", err)
		}
	})
	tracer().Infof("profile %s: %s", rt.Profile().Name, cfg)
	return nil
}

// startWatcher watches the data of every profile that builds, plus their
// config files, in directories that exist.
func (rt *Runtime) startWatcher() error {
	seen := map[string]bool{}
	var paths []string
	add := func(path string) {
		if path == "" || seen[path] {
			return
		}
		if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
			return
		}
		seen[path] = true
		paths = append(paths, path)
	}
	for _, p := range rt.profiles.Profiles {
		add(p.ConfigFile)
		add(p.Overrides)
		cfg, err := p.Build(rt.opts.DatabaseDir, rt.opts.UserDir)
		if err != nil {
			continue
		}
		for _, path := range watch.DataPaths(cfg.DatabaseDir(), cfg.UserDir()) {
			add(path)
		}
	}
	if len(paths) == 0 {
		return nil
	}
	w, err := watch.New(paths, watch.DefaultDelay)
	if err != nil {
		return fmt.Errorf("watch data files: %w", err)
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return fmt.Errorf("watch data files: %w", err)
	}
	rt.watcher = w
	rt.registerCleanup(func() { _ = w.Stop() })
	return nil
}

func (rt *Runtime) Context() *ime.Context { return rt.ctx }

func (rt *Runtime) Toggle() config.ToggleConfig { return rt.toggle }

func (rt *Runtime) Profiles() config.ProfilesConfig { return rt.profiles }

func (rt *Runtime) Profile() config.ProfileSpec { return rt.profiles.Profiles[rt.current] }

// Reloads delivers data-file changes. It is nil when nothing is watched.
func (rt *Runtime) Reloads() <-chan watch.Reload {
	if rt.watcher == nil {
		return nil
	}
	return rt.watcher.Reloads()
}

// NextProfile switches to the following profile. While a word is being
// composed the switch waits for the session to end and applied is false.
func (rt *Runtime) NextProfile() (applied bool, err error) {
	return rt.switchTo(rt.profiles.Next(rt.current))
}

func (rt *Runtime) SelectProfile(name string) (applied bool, err error) {
	index := rt.profiles.Index(name)
	if index < 0 {
		return false, fmt.Errorf("unknown profile: %s", name)
	}
	return rt.switchTo(index)
}

// Reload rebuilds the current profile, picking up changed data files.
func (rt *Runtime) Reload() (applied bool, err error) {
	return rt.switchTo(rt.current)
}

func (rt *Runtime) switchTo(index int) (bool, error) {
	spec := rt.profiles.Profiles[index]
	cfg, err := spec.Build(rt.opts.DatabaseDir, rt.opts.UserDir)
	if err != nil {
		return false, err
	}
	applied, err := rt.ctx.UpdateEngine(cfg)
	if err != nil {
		return false, err
	}
	rt.current = index
	tracer().Infof("profile %s selected (applied=%t)", spec.Name, applied)
	return applied, nil
}

func (rt *Runtime) Close() {
	for _, fn := range rt.cleanups {
		fn()
	}
	rt.cleanups = nil
}

func (rt *Runtime) registerCleanup(fn func()) {
	if fn == nil {
		return
	}
	rt.cleanups = append([]func(){fn}, rt.cleanups...)
}
