package symbol

import (
	"errors"

	"github.com/ezrec/gasp/translate"
)

var f = translate.From

var (
	ErrRedefinition = errors.New(f("redefinition not allowed"))
)

// ErrRedefined reports which name could not be rebound.
type ErrRedefined string

func (err ErrRedefined) Error() string {
	return f("%v: %v", string(err), ErrRedefinition)
}

func (err ErrRedefined) Unwrap() error {
	return ErrRedefinition
}
