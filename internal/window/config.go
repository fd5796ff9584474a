package window

// DefaultAdditionalArgs are extra webview arguments applied to the
// player-facing windows for smoother GPU rasterization.
const DefaultAdditionalArgs = "--enable-gpu-rasterization --enable-zero-copy --ignore-gpu-blocklist --use-gl=angle --disable-features=VaapiVideoDecoder,UseChromeOSDirectVideoDecoder,msWebOOUI,msPdfOOUI --enable-threaded-compositing --num-raster-threads=4"

// Inset is a titlebar traffic-lights inset in logical pixels.
type Inset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Config describes one window's desired shape. Values are immutable once
// handed to the manager; presets are pure functions of the label.
type Config struct {
	Label  string  `json:"label"`
	Title  string  `json:"title"`
	URL    string  `json:"url"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	MinWidth  float64 `json:"minWidth,omitempty"`
	MinHeight float64 `json:"minHeight,omitempty"`
	MaxWidth  float64 `json:"maxWidth,omitempty"`
	MaxHeight float64 `json:"maxHeight,omitempty"`

	Resizable   bool `json:"resizable"`
	Decorations bool `json:"decorations"`
	Transparent bool `json:"transparent"`
	AlwaysOnTop bool `json:"alwaysOnTop"`
	SkipTaskbar bool `json:"skipTaskbar"`
	Center      bool `json:"center"`
	Visible     bool `json:"visible"`

	// SingleInstance makes a second create on the same label focus the
	// existing window instead of building a duplicate.
	SingleInstance bool `json:"singleInstance"`
	// CloseableToTray makes close hide the window instead of destroying it.
	CloseableToTray bool `json:"closeableToTray"`

	UseOverlayTitlebar bool   `json:"useOverlayTitlebar"`
	TrafficLightsInset *Inset `json:"trafficLightsInset,omitempty"`

	// WindowEffect is a named platform visual effect (e.g. "acrylic").
	// Unrecognized names are a no-op.
	WindowEffect string `json:"windowEffect,omitempty"`
	Shadow       bool   `json:"shadow"`

	// ParentLabel parents the new window to another live window.
	ParentLabel string `json:"parentLabel,omitempty"`

	AdditionalArgs string `json:"additionalArgs,omitempty"`
}

// MainConfig is the primary app window preset.
func MainConfig() Config {
	return Config{
		Label:              LabelMain,
		Title:              "GMPlayer",
		URL:                "/",
		Width:              881,
		Height:             653,
		MinWidth:           680,
		MinHeight:          500,
		Resizable:          true,
		Visible:            true,
		SingleInstance:     true,
		CloseableToTray:    true,
		UseOverlayTitlebar: true,
		TrafficLightsInset: &Inset{X: 12, Y: 16},
		Shadow:             true,
		AdditionalArgs:     DefaultAdditionalArgs,
	}
}

// MiniPlayerConfig is the compact always-on-top player preset.
func MiniPlayerConfig() Config {
	return Config{
		Label:          LabelMiniPlayer,
		Title:          "Mini Player",
		URL:            "/slave.html#/mini-player",
		Width:          350,
		Height:         80,
		Transparent:    true,
		AlwaysOnTop:    true,
		SkipTaskbar:    true,
		Visible:        true,
		SingleInstance: true,
		WindowEffect:   "acrylic",
		Shadow:         true,
		AdditionalArgs: DefaultAdditionalArgs,
	}
}

// DesktopLyricsConfig is the floating lyrics overlay preset.
func DesktopLyricsConfig() Config {
	return Config{
		Label:          LabelDesktopLyrics,
		Title:          "Desktop Lyrics",
		URL:            "/slave.html#/desktop-lyrics",
		Width:          800,
		Height:         120,
		MinWidth:       400,
		MinHeight:      60,
		Resizable:      true,
		Transparent:    true,
		AlwaysOnTop:    true,
		SkipTaskbar:    true,
		Visible:        true,
		SingleInstance: true,
		AdditionalArgs: DefaultAdditionalArgs,
	}
}

// SettingsConfig is the settings window preset.
func SettingsConfig() Config {
	return Config{
		Label:              LabelSettings,
		Title:              "Settings",
		URL:                "/setting",
		Width:              700,
		Height:             500,
		MinWidth:           500,
		MinHeight:          400,
		Resizable:          true,
		Center:             true,
		Visible:            true,
		SingleInstance:     true,
		UseOverlayTitlebar: true,
		TrafficLightsInset: &Inset{X: 12, Y: 16},
		Shadow:             true,
	}
}

// AboutConfig is the about window preset.
func AboutConfig() Config {
	return Config{
		Label:              LabelAbout,
		Title:              "About",
		URL:                "/about",
		Width:              400,
		Height:             350,
		AlwaysOnTop:        true,
		Center:             true,
		Visible:            true,
		SingleInstance:     true,
		UseOverlayTitlebar: true,
		TrafficLightsInset: &Inset{X: 12, Y: 16},
		Shadow:             true,
	}
}

// TrayPopupConfig is the borderless popup shown near the system tray.
// It uses a standalone HTML page so opening it never spins up the full
// player frontend, and starts hidden so it can be pre-created at startup.
func TrayPopupConfig() Config {
	return Config{
		Label:          LabelTrayPopup,
		Title:          "Tray Popup",
		URL:            "/tray-popup.html",
		Width:          260,
		Height:         310,
		Transparent:    true,
		AlwaysOnTop:    true,
		SkipTaskbar:    true,
		SingleInstance: true,
		WindowEffect:   "acrylic",
		Shadow:         true,
		AdditionalArgs: DefaultAdditionalArgs,
	}
}

// Preset looks up the preset configuration for a label.
// Unknown labels return false; callers treat that as "no preset", not as
// an error about the window itself.
func Preset(label string) (Config, bool) {
	switch label {
	case LabelMain:
		return MainConfig(), true
	case LabelMiniPlayer:
		return MiniPlayerConfig(), true
	case LabelDesktopLyrics:
		return DesktopLyricsConfig(), true
	case LabelSettings:
		return SettingsConfig(), true
	case LabelAbout:
		return AboutConfig(), true
	case LabelTrayPopup:
		return TrayPopupConfig(), true
	default:
		return Config{}, false
	}
}
