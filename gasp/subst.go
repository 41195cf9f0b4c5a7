package gasp

import (
	"strconv"
	"strings"

	"github.com/ezrec/gasp/expr"
	"github.com/ezrec/gasp/symbol"
)

// expression evaluates an expression, reporting its errors.
func (s *Session) expression(text string, idx int) (v expr.Value, next int) {
	v, next, err := s.parser().Parse(text, idx)
	s.fail(err)
	return
}

// absolute evaluates an expression that must be absolute, reporting its
// errors.
func (s *Session) absolute(text string, idx int, what string) (n int, next int) {
	n, next, err := s.parser().Absolute(text, idx, what)
	s.fail(err)
	return
}

// variable is the text of a preprocessor variable. An unset variable is
// empty text and a warning when warn is set, or 0.
func (s *Session) variable(name string, warn bool) string {
	e, ok := s.Vars.Lookup(name)
	if !ok {
		if warn {
			s.warn(ErrUnset(name))
			return ""
		}
		return "0"
	}
	return e.String()
}

// processAssigns substitutes \&name and \$name variables, the string
// functions and label substitutions. \(...) is copied as is.
func (s *Session) processAssigns(text string) string {
	var out strings.Builder

outer:
	for i := 0; i < len(text); {
		c := text[i]

		if c == '.' {
			for _, fn := range stringFuncs {
				if len(text)-i >= len(fn.Prefix) && strings.EqualFold(text[i:i+len(fn.Prefix)], fn.Prefix) {
					var val string
					val, i = fn.Eval(s, text, i+len(fn.Prefix))
					out.WriteString(val)
					continue outer
				}
			}
		}

		switch {
		case c == '\\' && i+1 < len(text) && text[i+1] == '(':
			end := strings.IndexByte(text[i:], ')')
			if end < 0 {
				end = len(text) - i - 1
			}
			out.WriteString(text[i : i+end+1])
			i += end + 1
			continue
		case c == '\\' && i+1 < len(text) && (text[i+1] == '&' || text[i+1] == '$'):
			name, next := ident(text, i+2, s.MRI)
			out.WriteString(s.variable(name, text[i+1] == '&'))
			i = next
			if i < len(text) && text[i] == '\'' {
				i++
			}
			continue
		case expr.IsDigit(c):
			next := i
			for next < len(text) && expr.IsNextChar(text[next], false) {
				next++
			}
			out.WriteString(text[i:next])
			i = next
			continue
		case expr.IsFirstChar(c, s.MRI):
			name, next := ident(text, i, s.MRI)
			if e, ok := s.Assigns.Lookup(name); ok && e.Kind == symbol.STRING {
				out.WriteString(e.Str)
			} else {
				out.WriteString(name)
			}
			i = next
			continue
		}

		out.WriteByte(c)
		i++
	}

	return out.String()
}

// changeBase renders numbers in decimal: native B'..., Q'..., D'... and
// H'... literals, and bare numbers in the current radix. Identifiers and
// strings are copied through, and \(...) is unwrapped.
func (s *Session) changeBase(text string) string {
	var out strings.Builder

	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '\\' && i+1 < len(text) && text[i+1] == '(':
			end := strings.IndexByte(text[i:], ')')
			if end < 0 {
				out.WriteString(text[i+2:])
				i = len(text)
				continue
			}
			out.WriteString(text[i+2 : i+end])
			i += end + 1
			continue
		case c == '"' || (c == '\'' && s.Alternate):
			next := i + 1
			for next < len(text) && text[next] != c {
				next++
			}
			next = min(next+1, len(text))
			out.WriteString(text[i:next])
			i = next
			continue
		case !s.MRI && i+1 < len(text) && text[i+1] == '\'' && expr.IsFirstChar(c, false):
			if radix, ok := expr.BaseOf(c); ok {
				n, next := expr.ParseNumber(text, i+2, radix)
				out.WriteString(strconv.Itoa(n))
				i = next
				continue
			}
			if !s.Alternate {
				s.fail(ErrBaseChar)
			}
			out.WriteByte(c)
			i++
			continue
		case expr.IsFirstChar(c, s.MRI):
			name, next := ident(text, i, s.MRI)
			out.WriteString(name)
			i = next
			continue
		case expr.IsDigit(c):
			n, next := expr.ParseNumber(text, i, s.Radix)
			if next > i {
				out.WriteString(strconv.Itoa(n))
			}
			for next < len(text) && expr.IsNextChar(text[next], false) {
				out.WriteByte(text[next])
				next++
			}
			i = next
			continue
		}

		out.WriteByte(c)
		i++
	}

	return out.String()
}
