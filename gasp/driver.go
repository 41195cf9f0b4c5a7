// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gasp

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ezrec/gasp/expr"
	"github.com/ezrec/gasp/source"
)

// line is one logical source line on its way through dispatch.
type line struct {
	code   Code   // Directive.
	orig   string // As read, with comments blanked.
	text   string // Line handed to the directive.
	label  string // Label, without its colon.
	at     int    // Offset in text just past the directive word.
	lineNo int    // Line number of the directive.
}

func (s *Session) write(text ...string) {
	for _, t := range text {
		s.out.WriteString(t)
	}
}

// emitLabel starts an output line with the label, or a tab.
func (s *Session) emitLabel(label string) {
	if len(label) == 0 {
		s.write("\t")
	} else {
		s.write(label, ":\t")
	}
}

func (s *Session) lineNo() int {
	fr := s.stack.Top()
	if fr == nil {
		return 0
	}
	return fr.LineNo
}

// push stacks an expansion with a fresh generation index.
func (s *Session) push(name string, text string, kind source.Kind) (err error) {
	index, err := s.stack.NextGeneration()
	if err != nil {
		err = s.fatal(err)
		return
	}

	err = s.stack.Push(name, text, kind, index)
	if err != nil {
		err = s.fatal(err)
		return
	}

	s.stack.Top().CondDepth = len(s.cond)
	return
}

// pushFile stacks a source file.
func (s *Session) pushFile(name string, r io.Reader) (err error) {
	err = s.stack.PushFile(name, r)
	if err != nil {
		err = s.fatal(err)
		return
	}

	s.stack.Top().CondDepth = len(s.cond)
	return
}

// getLine reads a logical line. A line that starts with '+' continues
// the one before it.
func (s *Session) getLine() (text string, ok bool) {
	var buf []byte

	for {
		fr := s.stack.Top()
		c, more := s.stack.GetChar()
		if !more {
			break
		}

		// A file that ends mid-line ends the line.
		if ok && fr.Kind == source.FILE && s.stack.Top() != fr {
			s.stack.UngetChar(c)
			s.warn(ErrEofMidLine)
			break
		}
		ok = true

		if c == '\n' {
			if c, more = s.stack.PeekChar(); more && c == '+' {
				s.stack.GetChar()
				continue
			}
			break
		}
		if c == '\r' {
			continue
		}
		buf = append(buf, c)
	}

	text = string(buf)
	return
}

// bodyLine supplies the lines of a macro or loop body.
func (s *Session) bodyLine() (text string, ok bool) {
	text, ok = s.getLine()
	text = s.blank(text)
	return
}

// blank replaces comments with spaces, keeping the columns of the line.
func (s *Session) blank(text string) string {
	var quote byte

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || (c == '\'' && s.Alternate):
			quote = c
		case c == s.CommentChar:
			return text[:i] + strings.Repeat(" ", len(text)-i)
		}
	}

	return text
}

// grabLabel reads a label from the first column. A line led by a directive
// has no label.
func (s *Session) grabLabel(text string) (label string, idx int, colon bool) {
	if len(text) == 0 {
		return
	}

	c := text[0]
	if c != '\\' && !expr.IsFirstChar(c, s.MRI) {
		return
	}
	if c == '.' {
		if _, _, ok := s.keyword(text, 0); ok {
			return
		}
	}

loop:
	for idx < len(text) {
		c = text[idx]
		switch {
		case c == '\\' && idx+1 < len(text) && strings.IndexByte("&$@", text[idx+1]) >= 0:
			idx += 2
		case c == '\\' || expr.IsNextChar(c, s.MRI):
			idx++
		default:
			break loop
		}
	}

	label = text[:idx]
	if idx < len(text) && text[idx] == ':' {
		idx++
		colon = true
	}
	return
}

func (s *Session) copySource(raw string) {
	s.write(string(s.CommentChar))
	if s.PrintLineNo {
		s.write(fmt.Sprintf("%d\t", s.lineNo()))
	}
	s.write(raw, "\n")
}

// processLine dispatches a logical line. A non-nil error is fatal.
func (s *Session) processLine(raw string) (err error) {
	if s.Verbose {
		log.Printf("%v: %v", s.stack.Where(), raw)
	}

	if s.CopySource {
		s.copySource(raw)
	}

	text := s.blank(raw)

	if s.MRI && len(text) > 0 && text[0] == '*' {
		if s.active() {
			s.write(text, "\n")
		}
		return
	}

	label, idx, colon := s.grabLabel(text)
	idx = skipWhite(text, idx)

	code, next, isKeyword := s.keyword(text, idx)

	// A lone word in the first column may be a dotless directive.
	if !isKeyword && !colon && len(label) != 0 && idx == len(text) && (s.Alternate || s.MRI) {
		code, next, isKeyword = s.keyword(text, 0)
		if isKeyword {
			label = ""
			idx = 0
		}
	}

	if !s.active() {
		dir := directives[code]
		if isKeyword && dir.Flags&FLAG_INACTIVE != 0 {
			err = dir.Handle(s, &line{code: code, orig: text, text: text, at: next, lineNo: s.lineNo()})
		}
		return
	}

	if !isKeyword {
		err = s.plain(text, label, idx)
		return
	}

	dir := directives[code]
	ln := &line{
		code:   code,
		orig:   text,
		text:   text,
		label:  label,
		at:     next,
		lineNo: s.lineNo(),
	}

	if dir.Flags&FLAG_NAMED == 0 && len(label) != 0 {
		ln.label = s.processAssigns(label)
	}
	if dir.Flags&FLAG_PROCESS != 0 {
		ln.text = text[:next] + s.processAssigns(text[next:])
	}

	switch {
	case dir.Flags&FLAG_LABEL != 0:
		s.emitLabel(ln.label)
	case dir.Flags&FLAG_NAMED == 0 && len(ln.label) != 0:
		s.write(ln.label, ":\n")
	}

	err = dir.Handle(s, ln)
	return
}

// plain handles a line that is not a directive: a macro invocation, or
// text for the assembler.
func (s *Session) plain(text string, label string, idx int) (err error) {
	if len(label) != 0 {
		label = s.processAssigns(label)
	}

	rest := strings.TrimRight(text[idx:], " \t")
	if len(rest) == 0 {
		if len(label) != 0 {
			s.write(label, ":\n")
		}
		return
	}

	body, ok, merr := s.Macros.Expand(text, idx, s.bodyLine)
	if ok {
		if merr != nil {
			s.fail(merr)
			return
		}
		if len(label) != 0 {
			s.write(label, ":\n")
		}
		name, _ := ident(text, idx, false)
		err = s.push(name, body, source.MACRO)
		return
	}
	s.fail(merr)

	s.emitLabel(label)
	s.write(s.changeBase(s.processAssigns(rest)), "\n")
	return
}

// run processes lines until the end of the top-level source, or END.
func (s *Session) run() (err error) {
	for !s.hadEnd {
		raw, ok := s.getLine()
		if !ok {
			break
		}

		err = s.processLine(raw)
		if err != nil {
			return
		}
	}

	if !s.hadEnd && !s.MRI {
		s.warn(ErrEndMissing)
	}

	if len(s.cond) > 1 {
		s.fail(ErrAIfUnterminated)
		s.cond = s.cond[:1]
	}

	return
}
