// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gasp

import (
	"bufio"
	"io"
	"io/fs"
	"iter"
	"log"
	"os"
	"strings"

	"github.com/ezrec/gasp/expr"
	"github.com/ezrec/gasp/internal"
	"github.com/ezrec/gasp/macro"
	"github.com/ezrec/gasp/source"
	"github.com/ezrec/gasp/symbol"
)

const (
	IF_NESTING   = 100 // Default limit of AIF nesting.
	COMMENT_CHAR = '#' // Default comment character.
)

// MacroProcessor defines and expands macros. Each method is handed the
// whole line, the offset of its operands, and a function that supplies
// the following source lines.
type MacroProcessor interface {
	// Define reads a MACRO definition, returning the macro name.
	Define(line string, start int, label string, next func() (string, bool)) (name string, err error)
	// Expand expands a macro invocation. ok is false if line does not
	// invoke a macro.
	Expand(line string, start int, next func() (string, bool)) (text string, ok bool, err error)
	// ExpandIRP expands an IRP, or with chars set an IRPC.
	ExpandIRP(chars bool, line string, start int, next func() (string, bool)) (text string, err error)
}

// Options configure a Session.
type Options struct {
	Alternate    bool     // Alternate syntax, no leading dot needed.
	MRI          bool     // MRI compatible syntax.
	Strict       bool     // Directive names are case sensitive.
	CopySource   bool     // Copy each source line to the output as a comment.
	PrintLineNo  bool     // Prefix copied source lines with their line number.
	Unreasonable bool     // Disable the expansion limit.
	Verbose      bool     // Log each logical line.
	CommentChar  byte     // Comment character, COMMENT_CHAR if zero.
	Radix        int      // Initial radix, 10 if zero.
	IfNesting    int      // AIF nesting limit, IF_NESTING if zero.
	MaxDepth     int      // Input nesting limit, source.MAX_DEPTH if zero.
	MaxExpansion int      // Expansion limit, source.MAX_EXPANSION if zero.
	IncludePath  []string // Directories searched by INCLUDE after ".".

	FS          fs.FS          // Include file system, the host's if nil.
	Output      io.Writer      // Expanded text, os.Stdout if nil.
	Diagnostics io.Writer      // Diagnostics, os.Stderr if nil.
	Macros      MacroProcessor // Macro processor, a macro.Processor if nil.
}

// Session is one run of the preprocessor.
type Session struct {
	Options

	Warnings int // Number of warnings reported.
	Errors   int // Number of errors reported.
	Fatals   int // Number of fatal errors reported.

	Keywords *symbol.Table // Directive names to codes.
	Assigns  *symbol.Table // Label substitutions.
	Vars     *symbol.Table // Preprocessor variables.

	stack  source.Stack
	cond   []condEntry
	hadEnd bool
	out    *bufio.Writer
	diag   *log.Logger
}

// hostFS opens host paths, absolute or relative to the working directory.
type hostFS struct{}

func (hostFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// New creates a session.
func New(opts Options) (s *Session) {
	s = &Session{
		Options: opts,
		Assigns: symbol.NewTable(false),
		Vars:    symbol.NewTable(false),
		cond:    []condEntry{{active: true}},
	}

	if s.CommentChar == 0 {
		s.CommentChar = COMMENT_CHAR
	}
	if s.Radix == 0 {
		s.Radix = 10
	}
	if s.IfNesting == 0 {
		s.IfNesting = IF_NESTING
	}
	if s.FS == nil {
		s.FS = hostFS{}
	}
	if s.Output == nil {
		s.Output = os.Stdout
	}
	if s.Diagnostics == nil {
		s.Diagnostics = os.Stderr
	}
	if s.Macros == nil {
		s.Macros = macro.NewProcessor(s.syntax())
	}

	s.stack.MaxDepth = s.MaxDepth
	s.stack.MaxExpansion = s.MaxExpansion
	s.stack.Unreasonable = s.Unreasonable

	s.diag = log.New(s.Diagnostics, "", 0)
	s.out = bufio.NewWriter(s.Output)

	s.Keywords = newKeywords(!s.Strict, s.MRI)

	return
}

func (s *Session) syntax() macro.Syntax {
	return macro.Syntax{Alternate: s.Alternate, MRI: s.MRI}
}

// parser returns an expression parser for the current radix and dialect.
func (s *Session) parser() *expr.Parser {
	return &expr.Parser{Radix: s.Radix, MRI: s.MRI}
}

// Process preprocesses one top-level source. It returns an *ErrFatal if
// processing was aborted.
func (s *Session) Process(name string, r io.Reader) (err error) {
	defer func() {
		ferr := s.out.Flush()
		if err == nil && ferr != nil {
			err = ferr
		}
	}()
	defer s.stack.Close()

	s.hadEnd = false

	err = s.pushFile(name, r)
	if err != nil {
		return
	}

	err = s.run()
	return
}

// ProcessFile preprocesses a top-level source file.
func (s *Session) ProcessFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = s.fatal(err)
		return
	}

	err = s.Process(path, inf)
	return
}

// Define sets a preprocessor variable from a name[=expr] definition. The
// value is 1 when there is no expression.
func (s *Session) Define(def string) (err error) {
	name, text, found := strings.Cut(def, "=")
	name = strings.TrimSpace(name)
	if len(name) == 0 || !expr.IsFirstChar(name[0], s.MRI) {
		err = ErrDefine
		s.report(ERROR, err)
		return
	}

	value := 1
	if found {
		value, _ = s.absolute(text, 0, name)
	}

	s.Vars.BindInteger(name, value)
	return
}

// Status returns the process exit code for the session so far.
func (s *Session) Status() int {
	if s.Errors > 0 || s.Fatals > 0 {
		return 1
	}
	return 0
}

// Symbols iterates over the label substitutions, then the preprocessor
// variables, each tagged with the table it came from.
func (s *Session) Symbols() iter.Seq2[string, internal.Tagged[*symbol.Entry]] {
	return internal.IterSeq2Concat(
		internal.IterSeq2Tag("assign", s.Assigns.All()),
		internal.IterSeq2Tag("var", s.Vars.All()),
	)
}
