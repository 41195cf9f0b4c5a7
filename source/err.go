package source

import (
	"errors"

	"github.com/ezrec/gasp/translate"
)

var f = translate.From

var (
	ErrUnreasonableNesting   = errors.New(f("unreasonable nesting"))
	ErrUnreasonableExpansion = errors.New(f("unreasonable expansion (-u turns off check)"))
)

// ErrDepth reports the depth at which the nesting limit was hit.
type ErrDepth int

func (err ErrDepth) Error() string {
	return f("%v (%d)", ErrUnreasonableNesting, int(err))
}

func (err ErrDepth) Unwrap() error {
	return ErrUnreasonableNesting
}
