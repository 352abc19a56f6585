package protocol

import "fmt"

// CannotPlayError wraps whatever stopped a Player from producing a valid
// decision: bad input, a rule violation or an I/O failure.
type CannotPlayError struct {
	Err error
}

func (e *CannotPlayError) Error() string {
	return fmt.Sprintf("cannot play: %s", e.Err)
}

func (e *CannotPlayError) Unwrap() error { return e.Err }
func (e *CannotPlayError) Cause() error  { return e.Err }

// IOError wraps a failure of the reader or writer a Player talks through
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("I/O error: %s", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
func (e *IOError) Cause() error  { return e.Err }
