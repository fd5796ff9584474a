package wailshost

import (
	"context"
	"sync"

	"gmplayer/internal/window"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// mainHandle drives the native Wails window. Wails has no visibility
// query, so visibility is tracked on the handle; the manager serializes
// operations, keeping the flag consistent.
type mainHandle struct {
	host *Host

	mu      sync.Mutex
	visible bool
	title   string
}

func (m *mainHandle) Label() string { return window.LabelMain }

// Title is used by platform code to locate the native window.
func (m *mainHandle) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.title
}

// applyConfig pushes the preset onto the already-running native window.
func (m *mainHandle) applyConfig(ctx context.Context, cfg window.Config) {
	m.mu.Lock()
	m.title = cfg.Title
	m.mu.Unlock()
	runtime.WindowSetTitle(ctx, cfg.Title)
	runtime.WindowSetSize(ctx, int(cfg.Width), int(cfg.Height))
	if cfg.MinWidth > 0 && cfg.MinHeight > 0 {
		runtime.WindowSetMinSize(ctx, int(cfg.MinWidth), int(cfg.MinHeight))
	}
	if cfg.MaxWidth > 0 && cfg.MaxHeight > 0 {
		runtime.WindowSetMaxSize(ctx, int(cfg.MaxWidth), int(cfg.MaxHeight))
	}
	runtime.WindowSetAlwaysOnTop(ctx, cfg.AlwaysOnTop)
	if cfg.Center {
		runtime.WindowCenter(ctx)
	}
	if cfg.Visible {
		runtime.WindowShow(ctx)
	} else {
		runtime.WindowHide(ctx)
	}
}

func (m *mainHandle) Show() error {
	ctx, err := m.host.context()
	if err != nil {
		return err
	}
	runtime.WindowShow(ctx)
	m.mu.Lock()
	m.visible = true
	m.mu.Unlock()
	return nil
}

func (m *mainHandle) Hide() error {
	ctx, err := m.host.context()
	if err != nil {
		return err
	}
	runtime.WindowHide(ctx)
	m.mu.Lock()
	m.visible = false
	m.mu.Unlock()
	return nil
}

// Focus brings the window to the front. Wails v2 has no direct focus
// call; the always-on-top pulse is the established workaround.
func (m *mainHandle) Focus() error {
	ctx, err := m.host.context()
	if err != nil {
		return err
	}
	runtime.WindowSetAlwaysOnTop(ctx, true)
	runtime.WindowSetAlwaysOnTop(ctx, false)
	return nil
}

// Destroy quits the app: the native window is the process.
func (m *mainHandle) Destroy() error {
	ctx, err := m.host.context()
	if err != nil {
		return err
	}
	runtime.Quit(ctx)
	return nil
}

func (m *mainHandle) IsVisible() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible, nil
}

func (m *mainHandle) IsMinimised() (bool, error) {
	ctx, err := m.host.context()
	if err != nil {
		return false, err
	}
	return runtime.WindowIsMinimised(ctx), nil
}

func (m *mainHandle) IsMaximised() (bool, error) {
	ctx, err := m.host.context()
	if err != nil {
		return false, err
	}
	return runtime.WindowIsMaximised(ctx), nil
}

func (m *mainHandle) IsFullscreen() (bool, error) {
	ctx, err := m.host.context()
	if err != nil {
		return false, err
	}
	return runtime.WindowIsFullscreen(ctx), nil
}

func (m *mainHandle) Unminimise() error {
	ctx, err := m.host.context()
	if err != nil {
		return err
	}
	runtime.WindowUnminimise(ctx)
	return nil
}

func (m *mainHandle) SetPosition(x, y int) error {
	ctx, err := m.host.context()
	if err != nil {
		return err
	}
	scale := m.ScaleFactor()
	runtime.WindowSetPosition(ctx, int(float64(x)/scale), int(float64(y)/scale))
	return nil
}

func (m *mainHandle) SetSize(width, height float64) error {
	ctx, err := m.host.context()
	if err != nil {
		return err
	}
	runtime.WindowSetSize(ctx, int(width), int(height))
	return nil
}

// SetIgnoreCursorEvents has no Wails v2 runtime call.
func (m *mainHandle) SetIgnoreCursorEvents(bool) error {
	return window.ErrPlatformUnsupported
}

func (m *mainHandle) Bounds() (window.Rect, error) {
	ctx, err := m.host.context()
	if err != nil {
		return window.Rect{}, err
	}
	x, y := runtime.WindowGetPosition(ctx)
	w, h := runtime.WindowGetSize(ctx)
	scale := m.ScaleFactor()
	return window.Rect{
		X:      int(float64(x) * scale),
		Y:      int(float64(y) * scale),
		Width:  int(float64(w) * scale),
		Height: int(float64(h) * scale),
	}, nil
}

func (m *mainHandle) ScaleFactor() float64 {
	return m.host.ScaleFactor()
}
