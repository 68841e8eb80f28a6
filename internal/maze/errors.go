package maze

import (
	"errors"
	"fmt"
)

// ErrUnreachable is returned when a solve exhausts its frontier without
// reaching the end cell. A well-formed maze never triggers it; the
// caller should treat it as a malformed maze and regenerate.
var ErrUnreachable = errors.New("maze: end cell unreachable from start")

// DimensionError reports a generation request outside the supported
// bounds.
type DimensionError struct {
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("maze: dimensions %dx%d outside supported range %d..%d per side",
		e.Width, e.Height, MinDimension, MaxDimension)
}

// UnknownAlgorithmError reports an unsupported algorithm selector.
type UnknownAlgorithmError struct {
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("maze: unknown algorithm %q", e.Name)
}
