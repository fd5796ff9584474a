package window

import "errors"

// EventKind classifies a raw window event from the host runtime.
type EventKind int

const (
	EventCloseRequested EventKind = iota
	EventFocusGained
	EventFocusLost
	EventMoved
	EventResized
	EventDestroyed
)

// Event is a raw window event as delivered by the host. Coordinates and
// dimensions are physical pixels.
type Event struct {
	Label         string
	Kind          EventKind
	X, Y          int
	Width, Height int
}

// ActionKind classifies a manager action produced by Translate.
type ActionKind int

const (
	// ActionPreventClose stops the host's default destruction.
	ActionPreventClose ActionKind = iota
	// ActionPersistState saves the window's geometry.
	ActionPersistState
	// ActionHide hides the window.
	ActionHide
	// ActionEmit sends a notification to the UI layer.
	ActionEmit
	// ActionDrop removes the label from the registry.
	ActionDrop
)

// Action is one manager action to apply in response to a host event.
type Action struct {
	Kind    ActionKind
	Label   string
	Event   string
	Payload []interface{}
}

// Translate maps a raw host event to the manager actions it requires.
// It is a pure function; all label/event combinations not listed are
// ignored.
//
//   - Close-requested on main: intercept, persist geometry, notify the
//     UI which decides close-vs-minimize-to-tray.
//   - Focus-lost on the tray popup: hide it (click-away dismissal).
//   - Moved/resized on desktop lyrics: re-emit with the new physical
//     coordinates for UI that mirrors window chrome.
//   - Destroyed (any label): drop the registry entry.
func Translate(ev Event) []Action {
	if ev.Kind == EventDestroyed {
		return []Action{{Kind: ActionDrop, Label: ev.Label}}
	}

	switch {
	case ev.Label == LabelMain && ev.Kind == EventCloseRequested:
		return []Action{
			{Kind: ActionPreventClose, Label: ev.Label},
			{Kind: ActionPersistState, Label: ev.Label},
			{Kind: ActionEmit, Event: EventMainCloseRequested},
		}
	case ev.Label == LabelTrayPopup && ev.Kind == EventFocusLost:
		return []Action{{Kind: ActionHide, Label: ev.Label}}
	case ev.Label == LabelDesktopLyrics && ev.Kind == EventMoved:
		return []Action{{Kind: ActionEmit, Event: EventLyricsMoved, Payload: []interface{}{ev.X, ev.Y}}}
	case ev.Label == LabelDesktopLyrics && ev.Kind == EventResized:
		return []Action{{Kind: ActionEmit, Event: EventLyricsResized, Payload: []interface{}{ev.Width, ev.Height}}}
	}
	return nil
}

// HandleHostEvent translates a host event and applies the resulting
// actions. It reports whether the host's default handling (window
// destruction on close) should be prevented.
func (m *Manager) HandleHostEvent(ev Event) (prevent bool) {
	for _, act := range Translate(ev) {
		switch act.Kind {
		case ActionPreventClose:
			prevent = true
		case ActionPersistState:
			if err := m.PersistGeometry(act.Label); err != nil {
				m.log.Warn("persist on close failed", "label", act.Label, "error", err)
			}
		case ActionHide:
			if err := m.Hide(act.Label); err != nil && !errors.Is(err, ErrWindowNotFound) {
				m.log.Warn("hide on focus loss failed", "label", act.Label, "error", err)
			}
		case ActionEmit:
			m.emitter.Emit(act.Event, act.Payload...)
		case ActionDrop:
			m.dropWindow(act.Label)
		}
	}
	return prevent
}
