package window

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// fakeHandle records operations so tests can assert ordering and state.
type fakeHandle struct {
	mu        sync.Mutex
	label     string
	visible   bool
	minimised bool
	focused   bool
	destroyed bool
	ignoring  bool
	bounds    Rect
	scale     float64
	ops       []string

	showErr    error
	destroyErr error
}

func (h *fakeHandle) record(op string) {
	h.ops = append(h.ops, op)
}

func (h *fakeHandle) Show() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.showErr != nil {
		return h.showErr
	}
	h.record("show")
	h.visible = true
	return nil
}

func (h *fakeHandle) Hide() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record("hide")
	h.visible = false
	return nil
}

func (h *fakeHandle) Focus() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record("focus")
	h.focused = true
	return nil
}

func (h *fakeHandle) Destroy() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyErr != nil {
		return h.destroyErr
	}
	h.record("destroy")
	h.destroyed = true
	return nil
}

func (h *fakeHandle) IsVisible() (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.visible, nil
}

func (h *fakeHandle) IsMinimised() (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.minimised, nil
}

func (h *fakeHandle) Unminimise() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record("unminimise")
	h.minimised = false
	return nil
}

func (h *fakeHandle) SetPosition(x, y int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(fmt.Sprintf("position(%d,%d)", x, y))
	h.bounds.X, h.bounds.Y = x, y
	return nil
}

func (h *fakeHandle) SetSize(width, height float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(fmt.Sprintf("size(%g,%g)", width, height))
	h.bounds.Width = int(width * h.scale)
	h.bounds.Height = int(height * h.scale)
	return nil
}

func (h *fakeHandle) SetIgnoreCursorEvents(ignore bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ignoring = ignore
	return nil
}

func (h *fakeHandle) Bounds() (Rect, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bounds, nil
}

func (h *fakeHandle) ScaleFactor() float64 { return h.scale }

// fakeHost builds fakeHandles and serves a configurable monitor list.
type fakeHost struct {
	mu       sync.Mutex
	handles  map[string]*fakeHandle
	monitors []Monitor
	createN  int

	createErr error
}

func newFakeHost() *fakeHost {
	return &fakeHost{handles: make(map[string]*fakeHandle)}
}

func (f *fakeHost) CreateWindow(cfg Config, parent Handle) (Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createN++
	h := &fakeHandle{
		label:   cfg.Label,
		visible: cfg.Visible,
		scale:   1,
		bounds:  Rect{Width: int(cfg.Width), Height: int(cfg.Height)},
	}
	f.handles[cfg.Label] = h
	return h, nil
}

func (f *fakeHost) Monitors() ([]Monitor, error) {
	if f.monitors == nil {
		return nil, errors.New("no monitors")
	}
	return f.monitors, nil
}

// recordingEmitter captures emitted notifications.
type recordingEmitter struct {
	mu     sync.Mutex
	events []emitted
}

type emitted struct {
	name    string
	payload []interface{}
}

func (e *recordingEmitter) Emit(event string, payload ...interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, emitted{name: event, payload: payload})
}

func (e *recordingEmitter) count(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, ev := range e.events {
		if ev.name == name {
			n++
		}
	}
	return n
}

func (e *recordingEmitter) last(name string) (emitted, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := len(e.events) - 1; i >= 0; i-- {
		if e.events[i].name == name {
			return e.events[i], true
		}
	}
	return emitted{}, false
}

// memStore is an in-memory StateStore.
type memStore struct {
	mu    sync.Mutex
	state map[string]Geometry
}

func newMemStore() *memStore {
	return &memStore{state: make(map[string]Geometry)}
}

func (s *memStore) SaveGeometry(label string, g Geometry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[label] = g
	return nil
}

func (s *memStore) LoadGeometry(label string) (Geometry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.state[label]
	return g, ok, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestManager() (*Manager, *fakeHost, *recordingEmitter) {
	host := newFakeHost()
	emitter := &recordingEmitter{}
	mgr := NewManager(host, emitter, nil, nil, nil, testLogger())
	return mgr, host, emitter
}
