package wailshost

import (
	"fmt"
	"sync"

	"gmplayer/internal/window"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// surfaceHandle is a frontend-hosted window surface (mini player,
// lyrics overlay, settings, popup). Lifecycle commands are forwarded to
// the frontend over runtime events; the handle mirrors the resulting
// state so queries stay synchronous.
type surfaceHandle struct {
	host  *Host
	label string

	mu        sync.Mutex
	visible   bool
	minimised bool
	destroyed bool
	bounds    window.Rect
}

func newSurfaceHandle(h *Host, cfg window.Config) *surfaceHandle {
	scale := h.ScaleFactor()
	return &surfaceHandle{
		host:    h,
		label:   cfg.Label,
		visible: cfg.Visible,
		bounds: window.Rect{
			Width:  int(cfg.Width * scale),
			Height: int(cfg.Height * scale),
		},
	}
}

func (s *surfaceHandle) Label() string { return s.label }

// send forwards a surface command to the frontend.
func (s *surfaceHandle) send(op string, payload map[string]interface{}) error {
	ctx, err := s.host.context()
	if err != nil {
		return err
	}
	s.mu.Lock()
	dead := s.destroyed
	s.mu.Unlock()
	if dead {
		return fmt.Errorf("surface %q destroyed", s.label)
	}
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payload["label"] = s.label
	runtime.EventsEmit(ctx, "surface:"+op, payload)
	return nil
}

func (s *surfaceHandle) Show() error {
	if err := s.send("show", nil); err != nil {
		return err
	}
	s.mu.Lock()
	s.visible = true
	s.mu.Unlock()
	return nil
}

func (s *surfaceHandle) Hide() error {
	if err := s.send("hide", nil); err != nil {
		return err
	}
	s.mu.Lock()
	s.visible = false
	s.mu.Unlock()
	return nil
}

func (s *surfaceHandle) Focus() error {
	return s.send("focus", nil)
}

func (s *surfaceHandle) Destroy() error {
	if err := s.send("destroy", nil); err != nil {
		return err
	}
	s.mu.Lock()
	s.destroyed = true
	s.visible = false
	s.mu.Unlock()
	return nil
}

func (s *surfaceHandle) IsVisible() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible, nil
}

func (s *surfaceHandle) IsMinimised() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minimised, nil
}

func (s *surfaceHandle) Unminimise() error {
	if err := s.send("unminimise", nil); err != nil {
		return err
	}
	s.mu.Lock()
	s.minimised = false
	s.mu.Unlock()
	return nil
}

func (s *surfaceHandle) SetPosition(x, y int) error {
	if err := s.send("position", map[string]interface{}{"x": x, "y": y}); err != nil {
		return err
	}
	s.mu.Lock()
	s.bounds.X, s.bounds.Y = x, y
	s.mu.Unlock()
	return nil
}

func (s *surfaceHandle) SetSize(width, height float64) error {
	if err := s.send("size", map[string]interface{}{"width": width, "height": height}); err != nil {
		return err
	}
	scale := s.ScaleFactor()
	s.mu.Lock()
	s.bounds.Width = int(width * scale)
	s.bounds.Height = int(height * scale)
	s.mu.Unlock()
	return nil
}

func (s *surfaceHandle) SetIgnoreCursorEvents(ignore bool) error {
	return s.send("ignore-cursor", map[string]interface{}{"ignore": ignore})
}

func (s *surfaceHandle) Bounds() (window.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bounds, nil
}

func (s *surfaceHandle) ScaleFactor() float64 {
	return s.host.ScaleFactor()
}
