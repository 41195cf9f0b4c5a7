package expr

import (
	"errors"

	"github.com/ezrec/gasp/translate"
)

var f = translate.From

var (
	ErrNotAbsolute  = errors.New(f("expression is not absolute"))
	ErrDivideByZero = errors.New(f("attempt to divide by zero"))
	ErrRelocatable  = errors.New(f("can't add two relocatable expressions"))
	ErrPrimary      = errors.New(f("can't find primary in expression"))
	ErrString       = errors.New(f("string where expression expected"))
	ErrParens       = errors.New(f("misplaced closing parens"))
)

// Error locates a recoverable expression error in its text.
type Error struct {
	Offset int   // Byte offset of the offending character.
	Err    error // What went wrong.
}

func (err *Error) Error() string {
	return f("column %d: %v", err.Offset+1, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}

// ErrOperand is an operator that was given a symbolic operand.
type ErrOperand byte

func (err ErrOperand) Error() string {
	return f("the %c operator cannot take non-absolute arguments", byte(err))
}

func (err ErrOperand) Unwrap() error {
	return ErrNotAbsolute
}

// ErrNeedAbsolute names the construct that needed an absolute expression.
type ErrNeedAbsolute string

func (err ErrNeedAbsolute) Error() string {
	return f("%v needs an absolute expression", string(err))
}

func (err ErrNeedAbsolute) Unwrap() error {
	return ErrNotAbsolute
}
