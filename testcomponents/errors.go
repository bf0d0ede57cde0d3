package testcomponents

import "fmt"

// MissingBindingError reports an identifier absent from the model or bound
// to a different kind of entry.
type MissingBindingError struct {
	ID string
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("no matching binding for %s", e.ID)
}

// UnsupportedHandlerError reports a handler whose signature the test engine
// cannot call.
type UnsupportedHandlerError struct {
	ID string
	Fn any
}

func (e *UnsupportedHandlerError) Error() string {
	return fmt.Sprintf("handler %s has unsupported signature %T", e.ID, e.Fn)
}
