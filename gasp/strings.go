package gasp

import (
	"strconv"
	"strings"

	"github.com/ezrec/gasp/expr"
)

func skipWhite(text string, idx int) int {
	for idx < len(text) && expr.IsWhite(text[idx]) {
		idx++
	}
	return idx
}

// ident reads an identifier at text[idx], if there is one.
func ident(text string, idx int, mri bool) (name string, next int) {
	next = idx
	if next < len(text) && expr.IsFirstChar(text[next], mri) {
		for next < len(text) && expr.IsNextChar(text[next], mri) {
			next++
		}
	}
	name = text[idx:next]
	return
}

// expectComma skips a comma, reporting its absence.
func (s *Session) expectComma(text string, idx int) (next int, ok bool) {
	next = skipWhite(text, idx)
	if next < len(text) && text[next] == ',' {
		next++
		ok = true
		return
	}

	s.fail(ErrComma)
	return
}

// closeParen skips a closing paren, reporting its absence.
func (s *Session) closeParen(text string, idx int) (next int) {
	next = skipWhite(text, idx)
	if next < len(text) && text[next] == ')' {
		next++
		return
	}

	s.fail(ErrParen)
	return
}

// isString reports whether text[idx] opens a string literal.
func (s *Session) isString(text string, idx int) bool {
	if idx >= len(text) {
		return false
	}

	switch text[idx] {
	case '"':
		return true
	case '\'':
		return s.Alternate
	case '<':
		return s.Alternate || s.MRI
	}
	return false
}

// getString reads adjacent string literals, returning their contents.
// A doubled quote stands for itself. In native syntax <expr> is the
// character with that code; otherwise <...> quotes text, with ! escaping
// the next character.
func (s *Session) getString(text string, idx int) (str string, next int) {
	var out strings.Builder

	idx = skipWhite(text, idx)
	for idx < len(text) {
		c := text[idx]
		switch {
		case c == '<' && (s.Alternate || s.MRI):
			idx++
			for idx < len(text) && text[idx] != '>' {
				if text[idx] == '!' && idx+1 < len(text) {
					idx++
				}
				out.WriteByte(text[idx])
				idx++
			}
			if idx < len(text) {
				idx++
			} else {
				s.fail(ErrStringUnterminated)
			}
		case c == '<':
			n, after := s.absolute(text, idx+1, "<>")
			after = skipWhite(text, after)
			if after < len(text) && text[after] == '>' {
				after++
			} else {
				s.fail(ErrStringUnterminated)
			}
			out.WriteByte(byte(n))
			idx = after
		case c == '"' || (c == '\'' && s.Alternate):
			idx++
			for {
				if idx >= len(text) {
					s.fail(ErrStringUnterminated)
					break
				}
				if text[idx] == c {
					if idx+1 < len(text) && text[idx+1] == c {
						out.WriteByte(c)
						idx += 2
						continue
					}
					idx++
					break
				}
				out.WriteByte(text[idx])
				idx++
			}
		default:
			str = out.String()
			next = idx
			return
		}
	}

	str = out.String()
	next = idx
	return
}

// getAnyString reads a string literal, a number rendered in decimal, or
// a raw token ending at a blank, comma or closing paren.
func (s *Session) getAnyString(text string, idx int) (str string, next int) {
	idx = skipWhite(text, idx)
	if idx >= len(text) {
		next = idx
		return
	}

	c := text[idx]
	switch {
	case s.isString(text, idx) || c == '<':
		str, next = s.getString(text, idx)
	case expr.IsDigit(c):
		var n int
		n, next = s.absolute(text, idx, "string")
		str = strconv.Itoa(n)
	default:
		next = idx
		for next < len(text) {
			c = text[next]
			if expr.IsWhite(c) || c == ',' || c == ')' {
				break
			}
			next++
		}
		str = text[idx:next]
	}
	return
}

// anyNumber reads a string function argument as a number.
func (s *Session) anyNumber(text string, idx int, what string) (n int, next int) {
	arg, next := s.getAnyString(text, idx)
	n, _ = s.absolute(s.processAssigns(arg), 0, what)
	return
}

// anyText reads a string function argument, with variables substituted.
func (s *Session) anyText(text string, idx int) (str string, next int) {
	str, next = s.getAnyString(text, idx)
	str = s.processAssigns(str)
	return
}

// stringFunc is an inline string function.
type stringFunc struct {
	Prefix string // Case insensitive opening text.
	Eval   func(s *Session, text string, idx int) (out string, next int)
}

var stringFuncs []stringFunc

func init() {
	stringFuncs = []stringFunc{
		{".LEN(", (*Session).doLen},
		{".INSTR(", (*Session).doInstr},
		{".SUBSTR(", (*Session).doSubstr},
	}
}

// doLen is the length of a string.
func (s *Session) doLen(text string, idx int) (out string, next int) {
	str, next := s.anyText(text, idx)
	next = s.closeParen(text, next)
	out = strconv.Itoa(len(str))
	return
}

// doInstr is the index of a search string in a string, from an optional
// start index, or -1.
func (s *Session) doInstr(text string, idx int) (out string, next int) {
	str, next := s.anyText(text, idx)

	var search string
	if after, ok := s.expectComma(text, next); ok {
		search, next = s.anyText(text, after)
	}

	start := 0
	if after := skipWhite(text, next); after < len(text) && text[after] == ',' {
		start, next = s.anyNumber(text, after+1, ".INSTR")
	}
	next = s.closeParen(text, next)

	at := -1
	if start >= 0 && start <= len(str) {
		at = strings.Index(str[start:], search)
		if at >= 0 {
			at += start
		}
	}

	out = strconv.Itoa(at)
	return
}

// doSubstr is a quoted piece of a string, or a quoted blank if the
// piece lies outside it.
func (s *Session) doSubstr(text string, idx int) (out string, next int) {
	str, next := s.anyText(text, idx)

	pos, length := -1, -1
	if after, ok := s.expectComma(text, next); ok {
		pos, next = s.anyNumber(text, after, ".SUBSTR")
		if after, ok = s.expectComma(text, next); ok {
			length, next = s.anyNumber(text, after, ".SUBSTR")
		}
	}
	next = s.closeParen(text, next)

	if pos < 0 || length < 0 || pos > len(str) || pos+length > len(str) {
		out = `" "`
		return
	}

	out = `"` + str[pos:pos+length] + `"`
	return
}
