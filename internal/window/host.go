package window

// Rect is a rectangle in physical pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x < float64(r.X+r.Width) &&
		y >= float64(r.Y) && y < float64(r.Y+r.Height)
}

// Monitor is one monitor's physical position and size.
type Monitor struct {
	Bounds Rect
	Scale  float64
}

// AnchorRect is the tray icon's on-screen bounds as supplied by the host,
// in either logical or physical pixel space.
type AnchorRect struct {
	X, Y          float64
	Width, Height float64
	// Physical is true when the coordinates are already physical pixels;
	// otherwise they are logical and must be scaled before use.
	Physical bool
}

// physical normalizes the anchor to physical pixels using scale.
func (a AnchorRect) physical(scale float64) AnchorRect {
	if a.Physical {
		return a
	}
	return AnchorRect{
		X:        a.X * scale,
		Y:        a.Y * scale,
		Width:    a.Width * scale,
		Height:   a.Height * scale,
		Physical: true,
	}
}

// Handle is an opaque capability token for one live window, owned by the
// windowing host. The manager, not the host, is the source of truth for
// whether a label currently has a window.
type Handle interface {
	Show() error
	Hide() error
	Focus() error
	Destroy() error

	IsVisible() (bool, error)
	IsMinimised() (bool, error)
	Unminimise() error

	// SetPosition moves the window to physical coordinates.
	SetPosition(x, y int) error
	// SetSize resizes the window to a logical size.
	SetSize(width, height float64) error
	SetIgnoreCursorEvents(ignore bool) error

	// Bounds returns the outer position and size in physical pixels.
	Bounds() (Rect, error)
	// ScaleFactor is the DPI scale of the monitor hosting the window.
	ScaleFactor() float64
}

// Host is the windowing capability the manager drives. Construction
// failures are structural and fail the whole create call.
type Host interface {
	// CreateWindow builds a new window from config. parent is nil unless
	// the config names a parent label.
	CreateWindow(cfg Config, parent Handle) (Handle, error)
	// Monitors enumerates available monitors in physical pixels.
	Monitors() ([]Monitor, error)
}

// Emitter delivers fire-and-forget notifications to any subscribed UI
// listener. A missed emission has no effect on manager state.
type Emitter interface {
	Emit(event string, payload ...interface{})
}

// Effects applies named platform visual effects. Implementations treat
// unrecognized effect names as a no-op.
type Effects interface {
	Apply(h Handle, effect string, r, g, b, a uint8) error
}

// TitlebarStyler applies platform cosmetic titlebar adjustments after a
// window is constructed. Purely cosmetic; failures never roll back a
// created window.
type TitlebarStyler interface {
	ApplyOverlayTitlebar(h Handle) error
	SetTrafficLightsInset(h Handle, x, y float64) error
}

// CursorLocator reports the screen cursor position in physical pixels.
// Platforms without an implementation return ErrPlatformUnsupported.
type CursorLocator interface {
	CursorPosition() (x, y int, err error)
}

// Geometry is the persisted per-label window state. Visibility is
// deliberately excluded so every window starts hidden on relaunch.
type Geometry struct {
	X, Y          int
	Width, Height int
	Maximized     bool
	Fullscreen    bool
	Decorations   bool
}

// StateStore persists window geometry across restarts.
type StateStore interface {
	SaveGeometry(label string, g Geometry) error
	LoadGeometry(label string) (Geometry, bool, error)
}

// NopEmitter discards all notifications.
type NopEmitter struct{}

func (NopEmitter) Emit(string, ...interface{}) {}
