//go:build windows

package platform

import (
	"fmt"
	"log/slog"
	"unsafe"

	"gmplayer/internal/window"

	"golang.org/x/sys/windows"
)

var (
	user32                            = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW                   = user32.NewProc("FindWindowW")
	procSetWindowCompositionAttribute = user32.NewProc("SetWindowCompositionAttribute")
)

const (
	accentEnableAcrylicBlurBehind = 4
	wcaAccentPolicy               = 19
)

type accentPolicy struct {
	AccentState   int32
	AccentFlags   int32
	GradientColor uint32
	AnimationID   int32
}

type windowCompositionAttributeData struct {
	Attribute  uintptr
	Data       unsafe.Pointer
	SizeOfData uintptr
}

// Effects applies native acrylic blur through the undocumented
// SetWindowCompositionAttribute call, the same route the desktop
// shells use. Unrecognized effect names are a no-op.
type Effects struct {
	log *slog.Logger
}

// NewEffects returns the Windows effects capability.
func NewEffects(log *slog.Logger) *Effects {
	return &Effects{log: log}
}

func (e *Effects) Apply(h window.Handle, effect string, r, g, b, a uint8) error {
	if effect != "acrylic" {
		return nil
	}

	hwnd, ok := nativeWindow(h)
	if !ok {
		// Frontend surfaces draw their own translucency.
		return nil
	}

	// Gradient color is ABGR.
	tint := uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
	policy := accentPolicy{
		AccentState:   accentEnableAcrylicBlurBehind,
		GradientColor: tint,
	}
	data := windowCompositionAttributeData{
		Attribute:  wcaAccentPolicy,
		Data:       unsafe.Pointer(&policy),
		SizeOfData: unsafe.Sizeof(policy),
	}
	ret, _, err := procSetWindowCompositionAttribute.Call(hwnd, uintptr(unsafe.Pointer(&data)))
	if ret == 0 {
		return fmt.Errorf("SetWindowCompositionAttribute: %w", err)
	}
	return nil
}

// nativeWindow locates the HWND for handles backed by a native window.
func nativeWindow(h window.Handle) (uintptr, bool) {
	titled, ok := h.(interface{ Title() string })
	if !ok {
		return 0, false
	}
	title, err := windows.UTF16PtrFromString(titled.Title())
	if err != nil {
		return 0, false
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(title)))
	if hwnd == 0 {
		return 0, false
	}
	return hwnd, true
}
