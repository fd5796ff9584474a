//go:build !windows

package platform

import (
	"log/slog"

	"gmplayer/internal/window"
)

// Effects is a no-op outside Windows: macOS vibrancy needs the native
// layer and frontend surfaces draw their own translucency, so named
// effects resolve to nothing here.
type Effects struct {
	log *slog.Logger
}

// NewEffects returns the effects capability for this platform.
func NewEffects(log *slog.Logger) *Effects {
	return &Effects{log: log}
}

func (e *Effects) Apply(_ window.Handle, effect string, _, _, _, _ uint8) error {
	if effect != "" {
		e.log.Debug("window effect not available on this platform", "effect", effect)
	}
	return nil
}
