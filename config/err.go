package config

import (
	"errors"

	"github.com/ezrec/gasp/translate"
)

var f = translate.From

var (
	ErrRadix   = errors.New(f("radix must be 2, 8, 10 or 16"))
	ErrComment = errors.New(f("comment must be a single character"))
)

// ErrUnknown is a configuration global that sets no option.
type ErrUnknown string

func (err ErrUnknown) Error() string {
	return f("unknown configuration setting %v", string(err))
}

// ErrType is a configuration global of the wrong type.
type ErrType struct {
	Name string // Setting.
	Want string // Expected starlark type.
	Got  string // Actual starlark type.
}

func (err *ErrType) Error() string {
	return f("setting %v: want %v, got %v", err.Name, err.Want, err.Got)
}

// ErrFile wraps an error from a configuration file.
type ErrFile struct {
	File string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.File, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
