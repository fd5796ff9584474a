// Package platform holds the per-OS capability implementations the
// window manager depends on: named visual effects, cursor location,
// titlebar cosmetics and the tray edge convention. The manager only
// ever sees the interfaces in package window.
package platform

import (
	"runtime"

	"gmplayer/internal/window"
)

// TrayEdge reports which screen edge the platform's tray lives on.
// macOS puts the menu bar on top; Windows and the common Linux desktops
// put the taskbar on the bottom.
func TrayEdge() window.TrayEdge {
	if runtime.GOOS == "darwin" {
		return window.TrayEdgeTop
	}
	return window.TrayEdgeBottom
}

// Titlebar applies overlay-titlebar cosmetics by notifying the frontend,
// which renders the DOM titlebar on Windows and Linux. Failures are
// impossible by construction; the manager still treats them as
// best-effort.
type Titlebar struct {
	emitter window.Emitter
}

// NewTitlebar returns a styler that forwards cosmetics to the frontend.
func NewTitlebar(emitter window.Emitter) *Titlebar {
	return &Titlebar{emitter: emitter}
}

func (t *Titlebar) ApplyOverlayTitlebar(h window.Handle) error {
	t.emitter.Emit("titlebar:overlay", labelOf(h))
	return nil
}

func (t *Titlebar) SetTrafficLightsInset(h window.Handle, x, y float64) error {
	// Traffic lights only exist on macOS; elsewhere the event is simply
	// unhandled by the frontend.
	t.emitter.Emit("titlebar:inset", map[string]interface{}{
		"label": labelOf(h),
		"x":     x,
		"y":     y,
	})
	return nil
}

func labelOf(h window.Handle) string {
	if l, ok := h.(interface{ Label() string }); ok {
		return l.Label()
	}
	return ""
}
