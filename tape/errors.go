package tape

import "errors"

// ErrUnderflow is returned when code attempts to move the head left of
// address 0. Fatal: the tape has no negative addresses.
var ErrUnderflow = errors.New("tape: head moved left of address 0")

// ErrReadFailure is returned when a ',' instruction cannot read a byte,
// either because no Stdin was configured or the underlying reader failed
// (including EOF on a closed stream).
var ErrReadFailure = errors.New("tape: read failed")
