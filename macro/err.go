package macro

import (
	"errors"

	"github.com/ezrec/gasp/translate"
)

var f = translate.From

var (
	ErrMacroName      = errors.New(f("MACRO without a name"))
	ErrMacroLonely    = errors.New(f("MACRO without ENDM"))
	ErrMacroFormal    = errors.New(f("bad formal parameter"))
	ErrMacroExtraArgs = errors.New(f("too many actual arguments"))
	ErrMacroKeyword   = errors.New(f("unknown keyword argument"))
	ErrIrpSymbol      = errors.New(f("IRP without a symbol"))
	ErrIrpLonely      = errors.New(f("IRP without ENDR"))
)

// ErrMacro locates an error in the expansion of a named macro.
type ErrMacro struct {
	Macro string
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v %v", err.Macro, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}

// ErrFormalDuplicate names a formal given twice.
type ErrFormalDuplicate string

func (err ErrFormalDuplicate) Error() string {
	return f("formal %v duplicated", string(err))
}

func (err ErrFormalDuplicate) Unwrap() error {
	return ErrMacroFormal
}
