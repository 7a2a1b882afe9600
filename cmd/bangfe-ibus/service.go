//go:build linux

package main

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"bangfe/internal/app"
	"bangfe/pkg/ime"
)

// service is the exported D-Bus object. D-Bus calls arrive on their own
// goroutines, so every method holds mu.
type service struct {
	mu      sync.Mutex
	rt      *app.Runtime
	current ime.Suggestion
}

func newService(rt *app.Runtime) *service {
	return &service{rt: rt}
}

func (s *service) ctx() *ime.Context { return s.rt.Context() }

// candidates flattens a suggestion for the wire: a lonely suggestion is a
// list of one.
func candidates(sg ime.Suggestion) ([]string, int32) {
	switch {
	case sg.IsLonely():
		return []string{sg.Lonely()}, 0
	case sg.IsEmpty():
		return []string{}, 0
	}
	return sg.Candidates(), int32(sg.PreviouslySelected())
}

// HandleKey feeds one key. handled is false when the key should go to the
// application unchanged.
func (s *service) HandleKey(key uint16, modifier uint8) (list []string, selected int32, auxiliary string, handled bool, derr *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sg := s.ctx().HandleKey(key, modifier)
	if handled = s.ctx().KeyHandled(); handled {
		s.current = sg
	}
	list, selected = candidates(s.current)
	return list, selected, s.current.Auxiliary(), handled, nil
}

func (s *service) Backspace() ([]string, int32, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.ctx().Backspace()
	list, selected := candidates(s.current)
	return list, selected, nil
}

// Commit returns candidate index. Unlike the library call it reports a bad
// index as an error; a remote caller must not bring the service down.
func (s *service) Commit(index int32) (string, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ctx().OngoingInputSession() {
		return "", dbus.MakeFailedError(fmt.Errorf("no input session"))
	}
	if n := s.current.Len(); index < 0 || int(index) >= n {
		return "", dbus.MakeFailedError(fmt.Errorf("index %d out of range [0,%d)", index, n))
	}
	text := s.ctx().Commit(int(index))
	s.current = ime.Suggestion{}
	return text, nil
}

func (s *service) Finish() *dbus.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx().FinishInputSession()
	s.current = ime.Suggestion{}
	return nil
}

func (s *service) Ongoing() (bool, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx().OngoingInputSession(), nil
}

func (s *service) Preedit() (string, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx().Preedit(), nil
}

// NextProfile cycles the profile and returns its name.
func (s *service) NextProfile() (string, bool, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	applied, err := s.rt.NextProfile()
	if err != nil {
		return "", false, dbus.MakeFailedError(err)
	}
	return s.rt.Profile().Name, applied, nil
}

func (s *service) reload(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.rt.Reload(); err != nil {
		tracer().Errorf("reload after %v: %v", paths, err)
		return
	}
	tracer().Infof("reloaded after %v", paths)
}
