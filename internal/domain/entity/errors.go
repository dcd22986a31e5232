package entity

import "errors"

// ErrInvalidConfiguration is returned when a pane set is structurally invalid:
// a min bound above its max, a negative bound, or non-contiguous indices.
var ErrInvalidConfiguration = errors.New("invalid splitter configuration")
