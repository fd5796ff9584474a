//go:build windows

package platform

import (
	"fmt"
	"unsafe"
)

var procGetCursorPos = user32.NewProc("GetCursorPos")

type point struct {
	X int32
	Y int32
}

// Cursor reports the screen cursor position via GetCursorPos.
type Cursor struct{}

// NewCursor returns the Windows cursor locator.
func NewCursor() *Cursor { return &Cursor{} }

func (c *Cursor) CursorPosition() (int, int, error) {
	var pt point
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return 0, 0, fmt.Errorf("GetCursorPos: %w", err)
	}
	return int(pt.X), int(pt.Y), nil
}
