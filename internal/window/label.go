// Package window implements the window lifecycle manager: the preset
// catalog, the label-addressed registry, the cross-window payload cache,
// the tray popup positioner and the host event router. All host windowing
// operations go through the Host capability so the package stays testable
// without a real windowing runtime.
package window

// Well-known window labels. Any other string is a custom label.
const (
	LabelMain          = "main"
	LabelMiniPlayer    = "mini-player"
	LabelDesktopLyrics = "desktop-lyrics"
	LabelSettings      = "settings"
	LabelAbout         = "about"
	LabelTrayPopup     = "tray-popup"
)

// KnownLabels lists the labels with preset configurations, in catalog order.
var KnownLabels = []string{
	LabelMain,
	LabelMiniPlayer,
	LabelDesktopLyrics,
	LabelSettings,
	LabelAbout,
	LabelTrayPopup,
}

// IsKnownLabel reports whether label has a preset configuration.
func IsKnownLabel(label string) bool {
	for _, l := range KnownLabels {
		if l == label {
			return true
		}
	}
	return false
}
