// Package wailshost adapts the Wails v2 runtime to the window.Host
// capability. Wails drives a single native webview window, so the main
// label binds to the native window while every other label is a
// frontend-hosted surface controlled through runtime events. The
// manager is agnostic to the difference.
package wailshost

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"gmplayer/internal/window"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Host implements window.Host over the Wails runtime. The runtime
// context arrives only at startup, so the host is constructed empty and
// armed with SetContext.
type Host struct {
	mu  sync.RWMutex
	ctx context.Context
	log *slog.Logger
}

// New returns a host without a runtime context. Calls before SetContext
// fail with an explicit error rather than panicking.
func New(log *slog.Logger) *Host {
	return &Host{log: log}
}

// SetContext arms the host with the Wails runtime context.
func (h *Host) SetContext(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ctx = ctx
}

func (h *Host) context() (context.Context, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.ctx == nil {
		return nil, fmt.Errorf("wails runtime not started")
	}
	return h.ctx, nil
}

// CreateWindow builds a handle for the label. The main label attaches to
// the native Wails window and applies the config to it; other labels
// become frontend surfaces announced via a "surface:create" event.
func (h *Host) CreateWindow(cfg window.Config, parent window.Handle) (window.Handle, error) {
	ctx, err := h.context()
	if err != nil {
		return nil, err
	}

	if cfg.Label == window.LabelMain {
		mh := &mainHandle{host: h, visible: cfg.Visible}
		mh.applyConfig(ctx, cfg)
		return mh, nil
	}

	sh := newSurfaceHandle(h, cfg)
	payload := map[string]interface{}{
		"config": cfg,
	}
	if parent != nil {
		if p, ok := parent.(interface{ Label() string }); ok {
			payload["parent"] = p.Label()
		}
	}
	runtime.EventsEmit(ctx, "surface:create", payload)
	return sh, nil
}

// Monitors enumerates screens. Wails v2 does not expose screen origins,
// so screens are laid out left to right from the primary; single-monitor
// setups (the common case) are exact.
func (h *Host) Monitors() ([]window.Monitor, error) {
	ctx, err := h.context()
	if err != nil {
		return nil, err
	}
	screens, err := runtime.ScreenGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("screen enumeration: %w", err)
	}

	monitors := make([]window.Monitor, 0, len(screens))
	x := 0
	for _, s := range screens {
		w := s.PhysicalSize.Width
		hgt := s.PhysicalSize.Height
		if w == 0 || hgt == 0 {
			w, hgt = s.Size.Width, s.Size.Height
		}
		scale := 1.0
		if s.Size.Width > 0 {
			scale = float64(s.PhysicalSize.Width) / float64(s.Size.Width)
		}
		monitors = append(monitors, window.Monitor{
			Bounds: window.Rect{X: x, Y: 0, Width: w, Height: hgt},
			Scale:  scale,
		})
		x += w
	}
	return monitors, nil
}

// ScaleFactor reports the DPI scale of the current screen.
func (h *Host) ScaleFactor() float64 {
	ctx, err := h.context()
	if err != nil {
		return 1
	}
	screens, err := runtime.ScreenGetAll(ctx)
	if err != nil {
		return 1
	}
	for _, s := range screens {
		if s.IsCurrent && s.Size.Width > 0 && s.PhysicalSize.Width > 0 {
			return float64(s.PhysicalSize.Width) / float64(s.Size.Width)
		}
	}
	return 1
}

// Emitter adapts runtime.EventsEmit to window.Emitter. Emissions before
// the runtime context arrives are dropped, matching the fire-and-forget
// notification contract.
type Emitter struct {
	host *Host
}

// NewEmitter returns an emitter bound to the host's runtime context.
func NewEmitter(host *Host) *Emitter {
	return &Emitter{host: host}
}

func (e *Emitter) Emit(event string, payload ...interface{}) {
	ctx, err := e.host.context()
	if err != nil {
		return
	}
	runtime.EventsEmit(ctx, event, payload...)
}
