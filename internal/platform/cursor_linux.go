//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Cursor reports the pointer position by querying the X server root
// window. Each query opens a short-lived connection; cursor lookups are
// rare (tray interactions), so connection reuse is not worth the
// lifetime management.
type Cursor struct{}

// NewCursor returns the X11 cursor locator.
func NewCursor() *Cursor { return &Cursor{} }

func (c *Cursor) CursorPosition() (int, int, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, 0, fmt.Errorf("x11 connect: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	root := setup.DefaultScreen(conn).Root
	pointer, err := xproto.QueryPointer(conn, root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("query pointer: %w", err)
	}
	return int(pointer.RootX), int(pointer.RootY), nil
}
