package gasp

import (
	"errors"

	"github.com/ezrec/gasp/translate"
)

var f = translate.From

var (
	ErrAElseWithoutAIf    = errors.New(f("AELSE without AIF"))
	ErrAEndIWithoutAIf    = errors.New(f("AENDI without AIF"))
	ErrAElseMultiple      = errors.New(f("Multiple AELSEs in AIF"))
	ErrAIfNesting         = errors.New(f("AIF nesting unreasonable"))
	ErrAIfUnterminated    = errors.New(f("AIF without AENDI at end of file"))
	ErrComparison         = errors.New(f("Comparison operator must be one of EQ, NE, LT, LE, GT or GE"))
	ErrStringComparison   = errors.New(f("Comparison operator for strings must be EQ or NE"))
	ErrMixedComparison    = errors.New(f("Can't mix string and expression in comparison"))
	ErrAEndRWithoutLoop   = errors.New(f("AENDR without a AREPEAT"))
	ErrAEndWWithoutLoop   = errors.New(f("AENDW without a AWHILE"))
	ErrExitMOutside       = errors.New(f("EXITM not inside a macro or loop"))
	ErrEndMWithoutMacro   = errors.New(f("ENDM without a matching MACRO"))
	ErrLocalOutside       = errors.New(f("LOCAL outside of MACRO"))
	ErrOrg                = errors.New(f("ORG command not allowed"))
	ErrRadix              = errors.New(f("radix must be one of B, Q, D or H"))
	ErrBaseChar           = errors.New(f("Illegal base character"))
	ErrSize               = errors.New(f("size must be one of B, W or L"))
	ErrAlign              = errors.New(f("alignment must be one of 1, 2 or 4"))
	ErrSDataCLength       = errors.New(f("string for SDATAC longer than 255 characters"))
	ErrSDataBCount        = errors.New(f("Must have positive SDATAB count"))
	ErrComma              = errors.New(f("comma expected"))
	ErrParen              = errors.New(f("missing closing paren"))
	ErrStringUnterminated = errors.New(f("unterminated string"))
	ErrStringExpected     = errors.New(f("string expected"))
	ErrPrintOption        = errors.New(f("PRINT needs LIST or NOLIST"))
	ErrFormOption         = errors.New(f("FORM needs LIN= or COL="))
	ErrDefine             = errors.New(f("bad variable definition"))
	ErrEndMissing         = errors.New(f("END missing from end of file"))
	ErrNeedLabel          = errors.New(f("directive needs a label"))
	ErrIncludeNotFound    = errors.New(f("can't open include file"))
	ErrJunk               = errors.New(f("junk at end of line"))
	ErrEofMidLine         = errors.New(f("End of file not at start of line"))
)

// ErrLabelless names the directive that was given no label.
type ErrLabelless Code

func (err ErrLabelless) Error() string {
	return f("%v without label", Code(err))
}

func (err ErrLabelless) Unwrap() error {
	return ErrNeedLabel
}

// ErrUnset names a preprocessor variable that has no value.
type ErrUnset string

func (err ErrUnset) Error() string {
	return f("Can't find preprocessor variable %v", string(err))
}

// ErrInclude names an include file that could not be found.
type ErrInclude string

func (err ErrInclude) Error() string {
	return f("%v `%v'", ErrIncludeNotFound, string(err))
}

func (err ErrInclude) Unwrap() error {
	return ErrIncludeNotFound
}

// ErrUnterminated is a block that ran off the end of the input.
type ErrUnterminated struct {
	Open   string // Opening directive.
	Close  string // Missing terminator.
	LineNo int    // Line of the opening directive.
}

func (err *ErrUnterminated) Error() string {
	return f("%v without a %v at %d", err.Open, err.Close, err.LineNo)
}

// ErrFatal aborts a session.
type ErrFatal struct {
	Err error
}

func (err *ErrFatal) Error() string {
	return f("fatal: %v", err.Err)
}

func (err *ErrFatal) Unwrap() error {
	return err.Err
}
