package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func popupRect(x, y int, scale float64) Rect {
	cfg := TrayPopupConfig()
	return Rect{X: x, Y: y, Width: int(cfg.Width * scale), Height: int(cfg.Height * scale)}
}

func rectWithin(t *testing.T, inner Rect, outer Rect) {
	t.Helper()
	assert.GreaterOrEqual(t, inner.X, outer.X, "left edge")
	assert.GreaterOrEqual(t, inner.Y, outer.Y, "top edge")
	assert.LessOrEqual(t, inner.X+inner.Width, outer.X+outer.Width, "right edge")
	assert.LessOrEqual(t, inner.Y+inner.Height, outer.Y+outer.Height, "bottom edge")
}

func TestPopupStaysWithinMonitor(t *testing.T) {
	cfg := TrayPopupConfig()
	monitor := Monitor{Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}
	anchor := AnchorRect{X: 960, Y: 1050, Width: 24, Height: 24, Physical: true}

	for _, edge := range []TrayEdge{TrayEdgeBottom, TrayEdgeTop} {
		x, y := PopupPosition(anchor, cfg.Width, cfg.Height, 1, edge, []Monitor{monitor})
		rectWithin(t, popupRect(x, y, 1), monitor.Bounds)
	}
}

func TestPopupOpensAboveOnBottomEdge(t *testing.T) {
	cfg := TrayPopupConfig()
	monitor := Monitor{Bounds: Rect{X: 0, Y: 0, Width: 2560, Height: 1440}}
	anchor := AnchorRect{X: 2400, Y: 1410, Width: 24, Height: 24, Physical: true}

	_, y := PopupPosition(anchor, cfg.Width, cfg.Height, 1, TrayEdgeBottom, []Monitor{monitor})
	assert.Less(t, float64(y)+cfg.Height, anchor.Y, "popup sits above the anchor")
}

func TestPopupOpensBelowOnTopEdge(t *testing.T) {
	cfg := TrayPopupConfig()
	monitor := Monitor{Bounds: Rect{X: 0, Y: 0, Width: 2560, Height: 1440}}
	anchor := AnchorRect{X: 2400, Y: 4, Width: 24, Height: 24, Physical: true}

	_, y := PopupPosition(anchor, cfg.Width, cfg.Height, 1, TrayEdgeTop, []Monitor{monitor})
	assert.Greater(t, float64(y), anchor.Y+anchor.Height, "popup sits below the anchor")
}

func TestPopupClampsToMonitorRightEdge(t *testing.T) {
	cfg := TrayPopupConfig()
	monitor := Monitor{Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}
	// Anchor flush against the right edge: the centered candidate would
	// overflow the monitor.
	anchor := AnchorRect{X: 1910, Y: 1050, Width: 10, Height: 24, Physical: true}

	x, y := PopupPosition(anchor, cfg.Width, cfg.Height, 1, TrayEdgeBottom, []Monitor{monitor})
	got := popupRect(x, y, 1)
	assert.Equal(t, monitor.Bounds.Width, got.X+got.Width, "right edges align exactly")
	rectWithin(t, got, monitor.Bounds)
}

func TestPopupClampOnSecondaryMonitor(t *testing.T) {
	cfg := TrayPopupConfig()
	monitors := []Monitor{
		{Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{Bounds: Rect{X: 1920, Y: 0, Width: 1280, Height: 1024}},
	}
	anchor := AnchorRect{X: 3180, Y: 1000, Width: 20, Height: 20, Physical: true}

	x, y := PopupPosition(anchor, cfg.Width, cfg.Height, 1, TrayEdgeBottom, monitors)
	rectWithin(t, popupRect(x, y, 1), monitors[1].Bounds)
}

func TestPopupNoContainingMonitorSkipsClamp(t *testing.T) {
	cfg := TrayPopupConfig()
	monitors := []Monitor{{Bounds: Rect{X: 0, Y: 0, Width: 800, Height: 600}}}
	anchor := AnchorRect{X: 5000, Y: 5000, Width: 24, Height: 24, Physical: true}

	x, _ := PopupPosition(anchor, cfg.Width, cfg.Height, 1, TrayEdgeBottom, monitors)
	want := int(anchor.X + anchor.Width/2 - cfg.Width/2)
	assert.Equal(t, want, x, "unclamped candidate when the anchor is on no monitor")
}

func TestPopupScalesLogicalAnchor(t *testing.T) {
	cfg := TrayPopupConfig()
	// Logical anchor at 2x scale: everything doubles in physical space.
	logical := AnchorRect{X: 500, Y: 20, Width: 12, Height: 12}
	physical := AnchorRect{X: 1000, Y: 40, Width: 24, Height: 24, Physical: true}

	lx, ly := PopupPosition(logical, cfg.Width, cfg.Height, 2, TrayEdgeTop, nil)
	px, py := PopupPosition(physical, cfg.Width, cfg.Height, 2, TrayEdgeTop, nil)
	assert.Equal(t, px, lx)
	assert.Equal(t, py, ly)
}

func TestPopupWiderThanMonitorCollapsesToOrigin(t *testing.T) {
	cfg := TrayPopupConfig()
	monitor := Monitor{Bounds: Rect{X: 100, Y: 50, Width: 200, Height: 150}}
	anchor := AnchorRect{X: 150, Y: 60, Width: 10, Height: 10, Physical: true}

	x, y := PopupPosition(anchor, cfg.Width, cfg.Height, 1, TrayEdgeBottom, []Monitor{monitor})
	assert.Equal(t, monitor.Bounds.X, x, "oversized popup pins to monitor left")
	assert.Equal(t, monitor.Bounds.Y, y, "oversized popup pins to monitor top")
}

func TestShowTrayPopupLazilyCreates(t *testing.T) {
	mgr, host, emitter := newTestManager()
	host.monitors = []Monitor{{Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}}

	anchor := AnchorRect{X: 1880, Y: 1056, Width: 24, Height: 24, Physical: true}
	require.NoError(t, mgr.ShowTrayPopup(anchor, TrayEdgeBottom))

	assert.True(t, mgr.Exists(LabelTrayPopup), "popup created on demand")
	visible, err := mgr.IsVisible(LabelTrayPopup)
	require.NoError(t, err)
	assert.True(t, visible)
	assert.Equal(t, 1, emitter.count(EventTrayPopupOpened))
}

func TestShowTrayPopupForcesPresetSize(t *testing.T) {
	mgr, host, _ := newTestManager()
	host.monitors = []Monitor{{Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}}
	cfg := TrayPopupConfig()

	require.NoError(t, mgr.CreateFromPreset(LabelTrayPopup))
	// Simulate stale persisted dimensions.
	require.NoError(t, mgr.Resize(LabelTrayPopup, 900, 900))

	anchor := AnchorRect{X: 960, Y: 1056, Width: 24, Height: 24, Physical: true}
	require.NoError(t, mgr.ShowTrayPopup(anchor, TrayEdgeBottom))

	bounds, err := mgr.Bounds(LabelTrayPopup)
	require.NoError(t, err)
	assert.Equal(t, int(cfg.Width), bounds.Width)
	assert.Equal(t, int(cfg.Height), bounds.Height)
}

func TestShowTrayPopupSurvivesMonitorFailure(t *testing.T) {
	mgr, host, _ := newTestManager()
	host.monitors = nil // Monitors() errors

	anchor := AnchorRect{X: 100, Y: 100, Width: 24, Height: 24, Physical: true}
	require.NoError(t, mgr.ShowTrayPopup(anchor, TrayEdgeBottom),
		"monitor enumeration failure must not abort the popup")
	visible, _ := mgr.IsVisible(LabelTrayPopup)
	assert.True(t, visible)
}
