package window

import (
	"fmt"
	"log/slog"
	"sync"
)

// Notification names emitted to the UI layer.
const (
	EventMainVisibility     = "main-window-visibility"
	EventMainCloseRequested = "main-close-requested"
	EventLyricsMoved        = "desktop-lyrics-moved"
	EventLyricsResized      = "desktop-lyrics-resized"
	EventTrayPopupOpened    = "tray-popup-opened"
)

// State is the answer to a get-state query.
type State struct {
	Exists  bool `json:"exists"`
	Visible bool `json:"visible"`
}

type liveWindow struct {
	handle      Handle
	decorations bool
}

// Manager owns the label → live window registry and all lifecycle
// operations. Cosmetic steps (effects, titlebar styling, persistence,
// notifications) are best-effort and never fail an operation; structural
// failures (missing window, missing parent, host construction errors)
// abort it.
type Manager struct {
	host     Host
	emitter  Emitter
	effects  Effects
	titlebar TitlebarStyler
	store    StateStore
	log      *slog.Logger

	mu      sync.Mutex
	windows map[string]*liveWindow
	tint    [4]uint8
}

// NewManager builds a manager over the given host. effects, titlebar and
// store are optional capabilities and may be nil.
func NewManager(host Host, emitter Emitter, effects Effects, titlebar TitlebarStyler, store StateStore, log *slog.Logger) *Manager {
	if emitter == nil {
		emitter = NopEmitter{}
	}
	return &Manager{
		host:     host,
		emitter:  emitter,
		effects:  effects,
		titlebar: titlebar,
		store:    store,
		log:      log,
		windows:  make(map[string]*liveWindow),
		tint:     [4]uint8{defaultTintR, defaultTintG, defaultTintB, defaultTintA},
	}
}

// SetDefaultTint sets the tint applied to effect-bearing windows on
// creation, e.g. the user's persisted choice loaded at startup.
func (m *Manager) SetDefaultTint(r, g, b, a uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tint = [4]uint8{r, g, b, a}
}

// Host returns the windowing host the manager drives.
func (m *Manager) Host() Host { return m.host }

// CreateFromPreset creates the window for a known label.
func (m *Manager) CreateFromPreset(label string) error {
	cfg, ok := Preset(label)
	if !ok {
		return fmt.Errorf("label %q: %w", label, ErrNoPreset)
	}
	return m.Create(cfg)
}

// Create constructs a window from config. A label never has more than
// one live window: when cfg.SingleInstance is set and the label is live,
// the call degrades to a focus on the existing window and reports
// success without creating a handle; otherwise a live label fails with
// ErrWindowExists.
func (m *Manager) Create(cfg Config) error {
	if cfg.Label == "" {
		return ErrEmptyLabel
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if lw, ok := m.windows[cfg.Label]; ok {
		if cfg.SingleInstance {
			m.log.Info("window already exists, focusing", "label", cfg.Label)
			return m.focusLocked(cfg.Label, lw.handle)
		}
		return fmt.Errorf("window %q: %w", cfg.Label, ErrWindowExists)
	}

	var parent Handle
	if cfg.ParentLabel != "" {
		lw, ok := m.windows[cfg.ParentLabel]
		if !ok {
			return fmt.Errorf("window %q: parent %q: %w", cfg.Label, cfg.ParentLabel, ErrParentNotFound)
		}
		parent = lw.handle
	}

	m.log.Info("creating window", "label", cfg.Label)
	h, err := m.host.CreateWindow(cfg, parent)
	if err != nil {
		return fmt.Errorf("create window %q: %w", cfg.Label, err)
	}
	m.windows[cfg.Label] = &liveWindow{handle: h, decorations: cfg.Decorations}

	// Restore persisted geometry, excluding visibility: every window
	// starts hidden on relaunch and the UI controls the reveal moment.
	if m.store != nil && !cfg.Center {
		if g, ok, err := m.store.LoadGeometry(cfg.Label); err == nil && ok {
			if err := h.SetPosition(g.X, g.Y); err != nil {
				m.log.Warn("restore position failed", "label", cfg.Label, "error", err)
			}
			if cfg.Resizable && g.Width > 0 && g.Height > 0 {
				scale := h.ScaleFactor()
				if scale <= 0 {
					scale = 1
				}
				if err := h.SetSize(float64(g.Width)/scale, float64(g.Height)/scale); err != nil {
					m.log.Warn("restore size failed", "label", cfg.Label, "error", err)
				}
			}
		}
	}

	// Cosmetic refinements are best-effort: a platform quirk must never
	// prevent a window from existing.
	if cfg.WindowEffect != "" && m.effects != nil {
		if err := m.effects.Apply(h, cfg.WindowEffect, m.tint[0], m.tint[1], m.tint[2], m.tint[3]); err != nil {
			m.log.Warn("window effect failed", "label", cfg.Label, "effect", cfg.WindowEffect, "error", err)
		}
	}
	if m.titlebar != nil {
		if cfg.UseOverlayTitlebar {
			if err := m.titlebar.ApplyOverlayTitlebar(h); err != nil {
				m.log.Warn("overlay titlebar failed", "label", cfg.Label, "error", err)
			}
		}
		if cfg.TrafficLightsInset != nil {
			if err := m.titlebar.SetTrafficLightsInset(h, cfg.TrafficLightsInset.X, cfg.TrafficLightsInset.Y); err != nil {
				m.log.Warn("traffic lights inset failed", "label", cfg.Label, "error", err)
			}
		}
	}

	m.log.Info("window created", "label", cfg.Label)
	return nil
}

// Default effect tint, matching the acrylic base color.
const (
	defaultTintR = 30
	defaultTintG = 30
	defaultTintB = 30
	defaultTintA = 200
)

// Show makes a window visible and claims input focus.
func (m *Manager) Show(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	if err := lw.handle.Show(); err != nil {
		return fmt.Errorf("show %q: %w", label, err)
	}
	if err := lw.handle.Focus(); err != nil {
		return fmt.Errorf("focus %q: %w", label, err)
	}
	m.notifyVisibility(label, true)
	return nil
}

// Hide makes a window invisible without destroying it.
func (m *Manager) Hide(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hideLocked(label)
}

func (m *Manager) hideLocked(label string) error {
	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	if err := lw.handle.Hide(); err != nil {
		return fmt.Errorf("hide %q: %w", label, err)
	}
	m.notifyVisibility(label, false)
	return nil
}

// Close destroys a window, unless its preset is closeable-to-tray, in
// which case the window is hidden and stays re-showable.
func (m *Manager) Close(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if preset, ok := Preset(label); ok && preset.CloseableToTray {
		m.log.Info("window is closeable-to-tray, hiding instead", "label", label)
		return m.hideLocked(label)
	}

	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	if err := lw.handle.Destroy(); err != nil {
		return fmt.Errorf("destroy %q: %w", label, err)
	}
	delete(m.windows, label)
	return nil
}

// Toggle flips a window's visibility. Hiding emits the visibility
// notification for main; showing additionally un-minimizes only when the
// window is actually minimized (un-minimizing a hidden window resets its
// size on some platforms) and then focuses.
func (m *Manager) Toggle(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	visible, err := lw.handle.IsVisible()
	if err != nil {
		return fmt.Errorf("toggle %q: %w", label, err)
	}
	if visible {
		return m.hideLocked(label)
	}
	return m.focusLocked(label, lw.handle)
}

// Focus shows, conditionally un-minimizes and focuses a window.
func (m *Manager) Focus(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	return m.focusLocked(label, lw.handle)
}

func (m *Manager) focusLocked(label string, h Handle) error {
	if err := h.Show(); err != nil {
		return fmt.Errorf("show %q: %w", label, err)
	}
	if min, err := h.IsMinimised(); err == nil && min {
		if err := h.Unminimise(); err != nil {
			return fmt.Errorf("unminimise %q: %w", label, err)
		}
	}
	if err := h.Focus(); err != nil {
		return fmt.Errorf("focus %q: %w", label, err)
	}
	m.notifyVisibility(label, true)
	return nil
}

// Exists reports whether a label has a live window.
func (m *Manager) Exists(label string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.windows[label]
	return ok
}

// IsVisible reports a live window's visibility.
func (m *Manager) IsVisible(label string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lw, ok := m.windows[label]
	if !ok {
		return false, notFound(label)
	}
	return lw.handle.IsVisible()
}

// GetState answers the exists/visible query without a not-found failure.
func (m *Manager) GetState(label string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lw, ok := m.windows[label]
	if !ok {
		return State{}, nil
	}
	visible, err := lw.handle.IsVisible()
	if err != nil {
		return State{}, fmt.Errorf("state %q: %w", label, err)
	}
	return State{Exists: true, Visible: visible}, nil
}

// Labels returns a snapshot of live window labels. Order is not
// significant.
func (m *Manager) Labels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	labels := make([]string, 0, len(m.windows))
	for label := range m.windows {
		labels = append(labels, label)
	}
	return labels
}

// ShowAt repositions a window to physical coordinates, then shows and
// focuses it, so the window appears already placed instead of flashing
// at its previous position.
func (m *Manager) ShowAt(label string, x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	if err := lw.handle.SetPosition(x, y); err != nil {
		return fmt.Errorf("position %q: %w", label, err)
	}
	if err := lw.handle.Show(); err != nil {
		return fmt.Errorf("show %q: %w", label, err)
	}
	return lw.handle.Focus()
}

// SetIgnoreCursorEvents toggles click-through for a window.
func (m *Manager) SetIgnoreCursorEvents(label string, ignore bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	return lw.handle.SetIgnoreCursorEvents(ignore)
}

// Resize sets a window's logical size.
func (m *Manager) Resize(label string, width, height float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	return lw.handle.SetSize(width, height)
}

// SetPosition moves a window to physical coordinates.
func (m *Manager) SetPosition(label string, x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	return lw.handle.SetPosition(x, y)
}

// Bounds returns a window's outer position and size in physical pixels.
func (m *Manager) Bounds(label string) (Rect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lw, ok := m.windows[label]
	if !ok {
		return Rect{}, notFound(label)
	}
	return lw.handle.Bounds()
}

// SetEffectColor reapplies the label's preset effect with a custom tint.
// Labels whose preset has no effect configured are a no-op.
func (m *Manager) SetEffectColor(label string, r, g, b, a uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	preset, ok := Preset(label)
	if !ok || preset.WindowEffect == "" || m.effects == nil {
		return nil
	}
	return m.effects.Apply(lw.handle, preset.WindowEffect, r, g, b, a)
}

// PersistGeometry saves one window's geometry. Best-effort: callers
// treat failures as log-only.
func (m *Manager) PersistGeometry(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persistLocked(label)
}

// PersistAll saves geometry for every live window, e.g. before quitting.
func (m *Manager) PersistAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for label := range m.windows {
		if err := m.persistLocked(label); err != nil {
			m.log.Warn("persist window state failed", "label", label, "error", err)
		}
	}
}

func (m *Manager) persistLocked(label string) error {
	if m.store == nil {
		return nil
	}
	lw, ok := m.windows[label]
	if !ok {
		return notFound(label)
	}
	bounds, err := lw.handle.Bounds()
	if err != nil {
		return fmt.Errorf("bounds %q: %w", label, err)
	}
	g := Geometry{
		X:           bounds.X,
		Y:           bounds.Y,
		Width:       bounds.Width,
		Height:      bounds.Height,
		Decorations: lw.decorations,
	}
	if mx, ok := lw.handle.(interface{ IsMaximised() (bool, error) }); ok {
		g.Maximized, _ = mx.IsMaximised()
	}
	if fs, ok := lw.handle.(interface{ IsFullscreen() (bool, error) }); ok {
		g.Fullscreen, _ = fs.IsFullscreen()
	}
	return m.store.SaveGeometry(label, g)
}

// dropWindow removes a label from the registry after the host reported
// the window destroyed.
func (m *Manager) dropWindow(label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.windows[label]; ok {
		m.log.Info("window destroyed by host, dropping", "label", label)
		delete(m.windows, label)
	}
}

// handleFor returns the live handle for a label, or nil.
func (m *Manager) handleFor(label string) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if lw, ok := m.windows[label]; ok {
		return lw.handle
	}
	return nil
}

// notifyVisibility emits the visibility-changed notification for the
// distinguished main label.
func (m *Manager) notifyVisibility(label string, visible bool) {
	if label == LabelMain {
		m.emitter.Emit(EventMainVisibility, visible)
	}
}

// Emit forwards a notification through the manager's emitter.
func (m *Manager) Emit(event string, payload ...interface{}) {
	m.emitter.Emit(event, payload...)
}
