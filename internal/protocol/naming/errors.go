package naming

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewFields          = errors.New("naming: too few fields")
	ErrTooManyFields         = errors.New("naming: too many fields")
	ErrMissingNode           = errors.New("naming: missing node name")
	ErrMissingApplication    = errors.New("naming: missing application name")
	ErrBadNamespaceSeparator = errors.New("naming: malformed namespace separator")
	ErrNamespaceWithoutID    = errors.New("naming: namespace requires an application id")
	ErrInvalidCharacter      = errors.New("naming: reserved character in field")
	ErrUnknownMode           = errors.New("naming: unknown mode")
)

// SyntaxError reports a structurally malformed name.
type SyntaxError struct {
	Raw  string
	Mode Mode
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v (%s name %q)", e.Err, e.Mode, e.Raw)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
