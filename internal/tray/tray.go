// Package tray owns the system tray icon. Activation delegates to the
// window manager: opening the player shows the main window, the player
// controls item opens the borderless popup near the tray.
package tray

import (
	"errors"
	"log/slog"
	"sync"

	"gmplayer/internal/platform"
	"gmplayer/internal/window"

	"github.com/getlantern/systray"
)

// Controller wires the tray icon and its menu to the window manager.
type Controller struct {
	mgr    *window.Manager
	cursor window.CursorLocator
	log    *slog.Logger
	icon   []byte
	onQuit func()

	mu      sync.Mutex
	ready   bool
	readyCh chan struct{}
}

// New builds a controller. onQuit runs when the user picks Quit from the
// tray menu.
func New(mgr *window.Manager, cursor window.CursorLocator, icon []byte, onQuit func(), log *slog.Logger) *Controller {
	return &Controller{
		mgr:     mgr,
		cursor:  cursor,
		log:     log,
		icon:    icon,
		onQuit:  onQuit,
		readyCh: make(chan struct{}),
	}
}

// Run starts the tray icon loop in the background and returns once the
// icon is registered. Tray failures are startup-cosmetic: callers log
// them and continue without a tray.
func (c *Controller) Run() {
	go systray.Run(c.onReady, c.onExit)
	<-c.readyCh
}

func (c *Controller) onReady() {
	if len(c.icon) > 0 {
		systray.SetIcon(c.icon)
	}
	systray.SetTooltip("GMPlayer")

	open := systray.AddMenuItem("Open GMPlayer", "Show the player window")
	controls := systray.AddMenuItem("Player controls", "Open the quick controls popup")
	systray.AddSeparator()
	quit := systray.AddMenuItem("Quit", "Quit GMPlayer")

	go func() {
		for {
			select {
			case <-open.ClickedCh:
				if err := c.mgr.Show(window.LabelMain); err != nil {
					c.log.Warn("show main from tray failed", "error", err)
				}
			case <-controls.ClickedCh:
				if err := c.ShowPopup(); err != nil {
					c.log.Warn("tray popup failed", "error", err)
				}
			case <-quit.ClickedCh:
				if c.onQuit != nil {
					c.onQuit()
				}
				return
			}
		}
	}()

	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
	close(c.readyCh)

	c.log.Info("system tray initialized", "mode", "popup")
}

func (c *Controller) onExit() {}

// SetTooltip updates the tray tooltip, e.g. "Song Name - Artist".
func (c *Controller) SetTooltip(text string) error {
	c.mu.Lock()
	ready := c.ready
	c.mu.Unlock()
	if !ready {
		return errors.New("tray icon not ready")
	}
	systray.SetTooltip(text)
	return nil
}

// ShowPopup opens the popup anchored to the tray interaction point.
// The Go tray layer does not report the icon's rectangle, so the anchor
// is synthesized from the cursor position at click time; when even the
// cursor is unavailable the popup falls back to the primary monitor's
// tray corner.
func (c *Controller) ShowPopup() error {
	anchor, ok := c.cursorAnchor()
	if !ok {
		anchor = c.fallbackAnchor()
	}
	return c.mgr.ShowTrayPopup(anchor, platform.TrayEdge())
}

func (c *Controller) cursorAnchor() (window.AnchorRect, bool) {
	x, y, err := c.cursor.CursorPosition()
	if err != nil {
		if !errors.Is(err, window.ErrPlatformUnsupported) {
			c.log.Warn("cursor position failed", "error", err)
		}
		return window.AnchorRect{}, false
	}
	return window.AnchorRect{X: float64(x), Y: float64(y), Physical: true}, true
}

// fallbackAnchor synthesizes an anchor at the primary monitor's tray
// corner, one pixel inside the bounds so the positioner still finds a
// containing monitor and clamps the popup on-screen.
func (c *Controller) fallbackAnchor() window.AnchorRect {
	monitors, err := c.mgr.Host().Monitors()
	if err != nil || len(monitors) == 0 {
		return window.AnchorRect{Physical: true}
	}
	b := monitors[0].Bounds
	if platform.TrayEdge() == window.TrayEdgeTop {
		return window.AnchorRect{X: float64(b.X + b.Width - 1), Y: float64(b.Y), Physical: true}
	}
	return window.AnchorRect{X: float64(b.X + b.Width - 1), Y: float64(b.Y + b.Height - 1), Physical: true}
}
