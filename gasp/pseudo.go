package gasp

import (
	"fmt"
	"path"
	"strings"

	"github.com/ezrec/gasp/expr"
	"github.com/ezrec/gasp/macro"
)

// doAssign binds the label to the rendered expression. EQU refuses to
// rebind a label, ASSIGN overwrites it.
func (s *Session) doAssign(ln *line) error {
	if len(ln.label) == 0 {
		s.fail(ErrLabelless(ln.code))
		return nil
	}

	v, _ := s.expression(ln.text, ln.at)
	s.fail(s.Assigns.BindString(ln.label, v.String(), ln.code == K_ASSIGN))
	return nil
}

// doReg binds the label to a register name, given in parentheses.
func (s *Session) doReg(ln *line) error {
	if len(ln.label) == 0 {
		s.fail(ErrLabelless(ln.code))
		return nil
	}

	idx := skipWhite(ln.text, ln.at)

	var reg string
	if s.MRI {
		reg = strings.TrimSpace(ln.text[idx:])
	} else {
		if idx >= len(ln.text) || ln.text[idx] != '(' {
			s.fail(ErrParen)
			return nil
		}
		end := strings.IndexByte(ln.text[idx:], ')')
		if end < 0 {
			s.fail(ErrParen)
			return nil
		}
		reg = ln.text[idx+1 : idx+end]
	}

	s.fail(s.Assigns.BindString(ln.label, reg, true))
	return nil
}

func (s *Session) doAssignA(ln *line) error {
	if len(ln.label) == 0 {
		s.fail(ErrLabelless(ln.code))
		return nil
	}

	n, _ := s.absolute(ln.text, ln.at, "ASSIGNA")
	s.Vars.BindInteger(ln.label, n)
	return nil
}

func (s *Session) doAssignC(ln *line) error {
	if len(ln.label) == 0 {
		s.fail(ErrLabelless(ln.code))
		return nil
	}

	idx := skipWhite(ln.text, ln.at)
	if !s.isString(ln.text, idx) {
		s.fail(ErrStringExpected)
		return nil
	}

	str, _ := s.getString(ln.text, idx)
	s.fail(s.Vars.BindString(ln.label, str, true))
	return nil
}

func (s *Session) doOrg(ln *line) error {
	s.fail(ErrOrg)
	return nil
}

// doRadix sets the radix of numbers without a base prefix.
func (s *Session) doRadix(ln *line) error {
	idx := skipWhite(ln.text, ln.at)
	if idx < len(ln.text) {
		if radix, ok := expr.BaseOf(ln.text[idx]); ok {
			s.Radix = radix
			return nil
		}
	}

	s.fail(ErrRadix)
	s.Radix = 10
	return nil
}

func (s *Session) doAlternate(ln *line) error {
	s.Alternate = true
	if setter, ok := s.Macros.(interface{ SetSyntax(macro.Syntax) }); ok {
		setter.SetSyntax(s.syntax())
	}
	return nil
}

// doInclude pushes a source file, searching the current directory and
// then the include path.
func (s *Session) doInclude(ln *line) (err error) {
	idx := skipWhite(ln.text, ln.at)

	var name string
	if s.MRI && !s.isString(ln.text, idx) {
		end := idx
		for end < len(ln.text) && !expr.IsWhite(ln.text[end]) {
			end++
		}
		name = ln.text[idx:end]
	} else {
		name, _ = s.getString(ln.text, idx)
	}

	if len(name) == 0 {
		s.fail(ErrStringExpected)
		return
	}

	dirs := append([]string{"."}, s.IncludePath...)
	for _, dir := range dirs {
		candidate := name
		if !path.IsAbs(name) && dir != "." {
			candidate = path.Join(dir, name)
		}

		inf, oerr := s.FS.Open(candidate)
		if oerr != nil {
			continue
		}

		err = s.pushFile(candidate, inf)
		return
	}

	err = s.fatal(ErrInclude(name))
	return
}

// doEnd stops processing of the top-level source.
func (s *Session) doEnd(ln *line) error {
	s.hadEnd = true
	if s.MRI {
		s.write("\tEND", strings.TrimRight(ln.text[ln.at:], " \t"), "\n")
	}
	return nil
}

func (s *Session) doMacro(ln *line) error {
	_, err := s.Macros.Define(ln.text, ln.at, ln.label, s.bodyLine)
	s.fail(err)
	return nil
}

func (s *Session) doEndM(ln *line) error {
	s.fail(ErrEndMWithoutMacro)
	return nil
}

func (s *Session) doLocal(ln *line) error {
	s.fail(ErrLocalOutside)
	return nil
}

func (s *Session) doIgnore(ln *line) error {
	return nil
}

func (s *Session) doGlobal(ln *line) error {
	s.write(".global\t", strings.TrimSpace(ln.text[ln.at:]), "\n")
	return nil
}

func (s *Session) doPrint(ln *line) error {
	idx := skipWhite(ln.text, ln.at)
	word, _ := ident(ln.text, idx, false)

	switch strings.ToUpper(word) {
	case "LIST":
		s.write(".list\n")
	case "NOLIST":
		s.write(".nolist\n")
	default:
		s.fail(ErrPrintOption)
		s.write("\n")
	}
	return nil
}

// doForm sets the listing page size.
func (s *Session) doForm(ln *line) error {
	lines, columns := 60, 132

	idx := ln.at
	for {
		idx = skipWhite(ln.text, idx)
		if idx < len(ln.text) && ln.text[idx] == ',' {
			idx++
			continue
		}
		if idx >= len(ln.text) {
			break
		}

		word, after := ident(ln.text, idx, false)
		if after >= len(ln.text) || ln.text[after] != '=' {
			s.fail(ErrFormOption)
			break
		}

		var n int
		n, idx = s.absolute(ln.text, after+1, "FORM")

		switch strings.ToUpper(word) {
		case "LIN":
			lines = n
		case "COL":
			columns = n
		default:
			s.fail(ErrFormOption)
		}
	}

	s.write(fmt.Sprintf(".psize %d,%d\n", lines, columns))
	return nil
}

func (s *Session) doHeading(ln *line) error {
	title, _ := s.getString(ln.text, ln.at)
	s.write(".title\t\"", strings.ReplaceAll(title, `"`, `""`), "\"\n")
	return nil
}

func (s *Session) doPage(ln *line) error {
	s.write(".eject\n")
	return nil
}
