//go:build darwin

package platform

import "gmplayer/internal/window"

// Cursor has no pure-Go implementation on macOS; reading the pointer
// needs CoreGraphics. Callers get an explicit unsupported failure
// instead of a silent default.
type Cursor struct{}

// NewCursor returns the macOS cursor locator.
func NewCursor() *Cursor { return &Cursor{} }

func (c *Cursor) CursorPosition() (int, int, error) {
	return 0, 0, window.ErrPlatformUnsupported
}
