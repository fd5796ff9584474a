package main

import (
	"context"
	"log/slog"

	"gmplayer/internal/api"
	"gmplayer/internal/config"
	"gmplayer/internal/diag"
	"gmplayer/internal/logger"
	"gmplayer/internal/storage"
	"gmplayer/internal/tray"
	"gmplayer/internal/updater"
	"gmplayer/internal/window"
	"gmplayer/internal/window/wailshost"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct
type App struct {
	ctx          context.Context
	logger       *slog.Logger
	wailsHandler *logger.WailsHandler
	host         *wailshost.Host
	mgr          *window.Manager
	payloads     *window.PayloadCache
	cursor       window.CursorLocator
	cfg          *config.ConfigManager
	store        *storage.Storage
	tray         *tray.Controller
	control      *api.ControlServer
	isQuitting   bool
}

// NewApp creates a new App application struct
func NewApp(log *slog.Logger, wailsHandler *logger.WailsHandler, host *wailshost.Host, mgr *window.Manager, cursor window.CursorLocator, cfg *config.ConfigManager, store *storage.Storage) *App {
	return &App{
		logger:       log,
		wailsHandler: wailsHandler,
		host:         host,
		mgr:          mgr,
		payloads:     window.NewPayloadCache(),
		cursor:       cursor,
		cfg:          cfg,
		store:        store,
		isQuitting:   false,
	}
}

// SetTray injects the tray controller. Separate from NewApp because the
// tray needs the manager, which needs the host that App owns.
func (a *App) SetTray(t *tray.Controller) {
	a.tray = t
}

// SetControlServer injects the loopback control server.
func (a *App) SetControlServer(s *api.ControlServer) {
	a.control = s
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.host.SetContext(ctx)
	if a.wailsHandler != nil {
		a.wailsHandler.SetContext(ctx)
	}
	a.logger.Info("App started")

	// Register the native window under its label so every manager
	// operation works on it from the first frame.
	if err := a.mgr.CreateFromPreset(window.LabelMain); err != nil {
		a.logger.Error("Failed to register main window", "error", err)
	}

	// Pre-create the tray popup hidden so the first click shows it
	// without a cold webview start.
	if err := a.mgr.CreateFromPreset(window.LabelTrayPopup); err != nil {
		a.logger.Warn("Tray popup pre-create failed", "error", err)
	}

	if a.tray != nil {
		a.tray.Run()
		if tip := a.cfg.GetTrayTooltip(); tip != "" {
			if err := a.tray.SetTooltip(tip); err != nil {
				a.logger.Warn("Tray tooltip failed", "error", err)
			}
		}
	}

	if a.control != nil {
		a.control.Start(a.cfg.GetControlAPIPort())
	}
}

// beforeClose is called when the main window is about to close. The
// close behavior setting decides between quitting and hiding to tray;
// "ask" defers the decision to the frontend via the close event.
func (a *App) beforeClose(ctx context.Context) (prevent bool) {
	if a.isQuitting {
		return false
	}

	if a.cfg.GetCloseBehavior() == config.CloseBehaviorQuit {
		a.mgr.PersistAll()
		return false
	}

	prevent = a.mgr.HandleHostEvent(window.Event{
		Label: window.LabelMain,
		Kind:  window.EventCloseRequested,
	})

	if a.cfg.GetCloseBehavior() == config.CloseBehaviorTray {
		if err := a.mgr.Hide(window.LabelMain); err != nil {
			a.logger.Warn("Hide to tray failed", "error", err)
		}
	}
	return prevent
}

// Window lifecycle commands

// CreateWindow creates (or focuses) the preset window for a label.
func (a *App) CreateWindow(label string) error {
	a.logger.Info("frontend_request", "method", "CreateWindow", "label", label)
	return a.mgr.CreateFromPreset(label)
}

// CreateCustomWindow creates a window from a caller-supplied config.
// An empty label gets a generated one.
func (a *App) CreateCustomWindow(cfg window.Config) (string, error) {
	if cfg.Label == "" {
		cfg.Label = "custom-" + uuid.NewString()
	}
	a.logger.Info("frontend_request", "method", "CreateCustomWindow", "label", cfg.Label)
	if err := a.mgr.Create(cfg); err != nil {
		return "", err
	}
	return cfg.Label, nil
}

// CreateWindowWithPayload stores a payload for the new window to pick up
// once its frontend boots, then creates it.
func (a *App) CreateWindowWithPayload(label string, payload interface{}) error {
	a.payloads.Set(label, payload)
	return a.mgr.CreateFromPreset(label)
}

func (a *App) ShowWindow(label string) error {
	return a.mgr.Show(label)
}

func (a *App) HideWindow(label string) error {
	return a.mgr.Hide(label)
}

func (a *App) CloseWindow(label string) error {
	return a.mgr.Close(label)
}

func (a *App) ToggleWindow(label string) error {
	return a.mgr.Toggle(label)
}

func (a *App) FocusWindow(label string) error {
	return a.mgr.Focus(label)
}

// GetWindowState reports whether a label exists and is visible. Unknown
// labels are a valid query, not an error.
func (a *App) GetWindowState(label string) (window.State, error) {
	return a.mgr.GetState(label)
}

func (a *App) WindowExists(label string) bool {
	return a.mgr.Exists(label)
}

// IsWindowVisible errors on labels without a live window; use
// GetWindowState for the soft query.
func (a *App) IsWindowVisible(label string) (bool, error) {
	return a.mgr.IsVisible(label)
}

func (a *App) ListWindows() []string {
	return a.mgr.Labels()
}

// Payload commands

func (a *App) SetWindowPayload(label string, payload interface{}) {
	a.payloads.Set(label, payload)
}

// TakeWindowPayload consumes the payload for a label. The second return
// distinguishes "no payload" from a stored nil.
func (a *App) TakeWindowPayload(label string) (interface{}, bool) {
	return a.payloads.Take(label)
}

func (a *App) PeekWindowPayload(label string) (interface{}, bool) {
	return a.payloads.Peek(label)
}

// Geometry commands

// ShowWindowAtPosition places a window at physical coordinates before
// showing and focusing it.
func (a *App) ShowWindowAtPosition(label string, x, y int) error {
	return a.mgr.ShowAt(label, x, y)
}

func (a *App) ResizeWindow(label string, width, height float64) error {
	return a.mgr.Resize(label, width, height)
}

func (a *App) SetWindowPosition(label string, x, y int) error {
	return a.mgr.SetPosition(label, x, y)
}

func (a *App) GetWindowBounds(label string) (window.Rect, error) {
	return a.mgr.Bounds(label)
}

// ResetWindowLayout wipes all persisted window geometry; windows come
// back at their preset positions on the next launch.
func (a *App) ResetWindowLayout() error {
	a.logger.Info("frontend_request", "method", "ResetWindowLayout")
	return a.store.ClearGeometry()
}

// SetIgnoreCursorEvents toggles click-through, used by desktop lyrics.
func (a *App) SetIgnoreCursorEvents(label string, ignore bool) error {
	return a.mgr.SetIgnoreCursorEvents(label, ignore)
}

// SetWindowEffectColor retints a window's acrylic backdrop and persists
// the choice; windows created later pick it up as their default tint.
func (a *App) SetWindowEffectColor(label string, r, g, b, alpha int) error {
	if err := a.cfg.SetEffectTint(uint8(r), uint8(g), uint8(b), uint8(alpha)); err != nil {
		a.logger.Warn("Effect tint not persisted", "error", err)
	}
	a.mgr.SetDefaultTint(uint8(r), uint8(g), uint8(b), uint8(alpha))
	return a.mgr.SetEffectColor(label, uint8(r), uint8(g), uint8(b), uint8(alpha))
}

// ReportWindowEvent is called by frontend-hosted surfaces to feed their
// window events back into the manager. Returns whether the default
// handling should be prevented.
func (a *App) ReportWindowEvent(label, kind string, x, y, width, height int) bool {
	k, ok := eventKind(kind)
	if !ok {
		a.logger.Warn("Unknown window event", "label", label, "kind", kind)
		return false
	}
	return a.mgr.HandleHostEvent(window.Event{
		Label: label, Kind: k,
		X: x, Y: y, Width: width, Height: height,
	})
}

func eventKind(kind string) (window.EventKind, bool) {
	switch kind {
	case "close-requested":
		return window.EventCloseRequested, true
	case "focus-gained":
		return window.EventFocusGained, true
	case "focus-lost":
		return window.EventFocusLost, true
	case "moved":
		return window.EventMoved, true
	case "resized":
		return window.EventResized, true
	case "destroyed":
		return window.EventDestroyed, true
	default:
		return 0, false
	}
}

// Cursor / environment commands

type CursorPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GetCursorPosition returns the screen cursor position in physical
// pixels. Unsupported platforms return an error the frontend can treat
// as "feature unavailable".
func (a *App) GetCursorPosition() (CursorPosition, error) {
	x, y, err := a.cursor.CursorPosition()
	if err != nil {
		return CursorPosition{}, err
	}
	return CursorPosition{X: x, Y: y}, nil
}

// DetectDesktop reports whether we run in a desktop session.
func (a *App) DetectDesktop() bool {
	return diag.IsDesktop()
}

// GetHostInfo returns host details for the About window.
func (a *App) GetHostInfo() diag.Snapshot {
	return diag.Collect()
}

// Tray commands

// SetTrayTooltip updates the tray icon tooltip and persists it.
func (a *App) SetTrayTooltip(text string) error {
	if err := a.cfg.SetTrayTooltip(text); err != nil {
		a.logger.Warn("Tray tooltip not persisted", "error", err)
	}
	if a.tray == nil {
		return nil
	}
	return a.tray.SetTooltip(text)
}

// Settings commands

func (a *App) GetCloseBehavior() string {
	return a.cfg.GetCloseBehavior()
}

func (a *App) SetCloseBehavior(behavior string) {
	if err := a.cfg.SetCloseBehavior(behavior); err != nil {
		a.logger.Warn("Close behavior not persisted", "error", err)
		return
	}
	a.logger.Info("Close behavior changed", "behavior", behavior)
}

func (a *App) GetEnableControlAPI() bool {
	return a.cfg.GetEnableControlAPI()
}

func (a *App) SetEnableControlAPI(enabled bool) {
	if err := a.cfg.SetEnableControlAPI(enabled); err != nil {
		a.logger.Warn("Control API setting not persisted", "error", err)
		return
	}
	a.logger.Info("Control API setting changed (requires restart)", "enabled", enabled)
}

func (a *App) GetControlAPIToken() string {
	return a.cfg.GetControlAPIToken()
}

func (a *App) GetControlAPIPort() int {
	return a.cfg.GetControlAPIPort()
}

func (a *App) SetControlAPIPort(port int) {
	if err := a.cfg.SetControlAPIPort(port); err != nil {
		a.logger.Warn("Control API port not persisted", "error", err)
		return
	}
	a.logger.Info("Control API port changed (requires restart)", "port", port)
}

// QuitApp is called from the tray menu to truly exit. Geometry is
// persisted first so the next launch restores window placement.
func (a *App) QuitApp() {
	a.isQuitting = true
	a.mgr.PersistAll()
	runtime.Quit(a.ctx)
}

// CheckForUpdates checks for new releases on GitHub
func (a *App) CheckForUpdates() {
	a.logger.Info("Checking for updates...")
	owner := "gmplayer-org"
	repo := "gmplayer"
	currentVersion := "v0.1.0"

	rel, err := updater.CheckForUpdates(currentVersion, owner, repo)
	if err != nil {
		a.logger.Error("Update check failed", "error", err)
		return
	}

	if rel != nil {
		a.logger.Info("Update available", "version", rel.TagName)
		runtime.EventsEmit(a.ctx, "update:available", map[string]string{
			"version":  rel.TagName,
			"body":     rel.Body,
			"html_url": rel.HTMLURL,
		})
	} else {
		a.logger.Info("No updates available")
	}
}
