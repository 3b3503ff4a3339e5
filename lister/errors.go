package lister

import "errors"

// ErrUnmatchedClose is returned when a ']' has no corresponding '[' to its
// left.
var ErrUnmatchedClose = errors.New("lister: unmatched ']'")

// ErrUnmatchedOpen is returned when a '[' is never closed.
var ErrUnmatchedOpen = errors.New("lister: unmatched '['")
