package window

import (
	"errors"
	"fmt"
)

var (
	// ErrWindowNotFound is returned by every label-addressed operation
	// when the label has no live window.
	ErrWindowNotFound = errors.New("window not found")

	// ErrNoPreset is returned by preset-based creation for labels with no
	// catalog entry.
	ErrNoPreset = errors.New("no preset for label")

	// ErrWindowExists is returned when a non-single-instance create names
	// a label that already has a live window.
	ErrWindowExists = errors.New("window already exists")

	// ErrEmptyLabel is returned when a config carries no label.
	ErrEmptyLabel = errors.New("empty window label")

	// ErrParentNotFound is returned when a config names a parent label
	// with no live window.
	ErrParentNotFound = errors.New("parent window not found")

	// ErrPlatformUnsupported is returned by operations with no
	// implementation on the current platform.
	ErrPlatformUnsupported = errors.New("unsupported on this platform")
)

func notFound(label string) error {
	return fmt.Errorf("window %q: %w", label, ErrWindowNotFound)
}
