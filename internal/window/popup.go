package window

// TrayEdge is the screen edge the platform's tray lives on. It decides
// whether the popup opens above or below the anchor.
type TrayEdge int

const (
	// TrayEdgeBottom (Windows, most Linux desktops): popup opens above
	// the anchor.
	TrayEdgeBottom TrayEdge = iota
	// TrayEdgeTop (macOS menu bar): popup opens below the anchor.
	TrayEdgeTop
)

// popupGap is the logical gap between the anchor and the popup.
const popupGap = 8.0

// PopupPosition computes the physical top-left corner for a popup of
// logical size popupW x popupH anchored to the tray icon.
//
// The candidate is horizontally centered on the anchor midpoint and
// vertically offset by the anchor height plus a gap (below) or by the
// popup height plus a gap (above). It is then clamped into the monitor
// containing the anchor's top-left point; when no monitor contains the
// anchor the candidate is returned unclamped rather than failing.
func PopupPosition(anchor AnchorRect, popupW, popupH, scale float64, edge TrayEdge, monitors []Monitor) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	a := anchor.physical(scale)

	w := popupW * scale
	h := popupH * scale
	gap := popupGap * scale

	x := a.X + a.Width/2 - w/2
	var y float64
	if edge == TrayEdgeTop {
		y = a.Y + a.Height + gap
	} else {
		y = a.Y - h - gap
	}

	for _, mon := range monitors {
		if !mon.Bounds.Contains(a.X, a.Y) {
			continue
		}
		left := float64(mon.Bounds.X)
		top := float64(mon.Bounds.Y)
		right := left + float64(mon.Bounds.Width)
		bottom := top + float64(mon.Bounds.Height)

		x = clamp(x, left, maxf(right-w, left))
		y = clamp(y, top, maxf(bottom-h, top))
		break
	}

	return int(x), int(y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ShowTrayPopup positions the tray popup next to the anchor and shows
// it. The popup is normally pre-created hidden at startup; if it does
// not exist yet it is created lazily from its preset.
func (m *Manager) ShowTrayPopup(anchor AnchorRect, edge TrayEdge) error {
	cfg := TrayPopupConfig()

	if !m.Exists(LabelTrayPopup) {
		if err := m.Create(cfg); err != nil {
			return err
		}
	}

	// Force the preset size: persisted state may have restored old
	// dimensions.
	if err := m.Resize(LabelTrayPopup, cfg.Width, cfg.Height); err != nil {
		m.log.Warn("tray popup resize failed", "error", err)
	}

	scale := 1.0
	if h := m.handleFor(LabelTrayPopup); h != nil {
		scale = h.ScaleFactor()
	}

	var monitors []Monitor
	if mons, err := m.host.Monitors(); err == nil {
		monitors = mons
	} else {
		m.log.Warn("monitor enumeration failed, skipping clamp", "error", err)
	}

	x, y := PopupPosition(anchor, cfg.Width, cfg.Height, scale, edge, monitors)
	if err := m.ShowAt(LabelTrayPopup, x, y); err != nil {
		return err
	}

	// Tell the popup to pull fresh player state.
	m.emitter.Emit(EventTrayPopupOpened)
	return nil
}
