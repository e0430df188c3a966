package css

import (
	"errors"
	"fmt"
)

// Selector construction errors. Both are usage errors: a builder which
// returned one of them should be discarded.
var (
	//lint:ignore ST1005 message text is relied upon by callers
	ErrDuplicateFragment = errors.New("Element, id and pseudo-element should not occur more than one time inside the selector")
	//lint:ignore ST1005 message text is relied upon by callers
	ErrOrderViolation = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// FragmentError describes the call which broke builder invariants.
type FragmentError struct {
	Fragment Fragment
	Value    string
	Err      error
}

func (e *FragmentError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Fragment, e.Value, e.Err)
}

func (e *FragmentError) Unwrap() error {
	return e.Err
}
