// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package expr

import (
	"errors"
	"strconv"
	"strings"
)

// Symbol is an unresolved symbolic term. The empty symbol is absent.
type Symbol string

// Value is a quasi-relocatable expression result: a number plus at most
// one positive and one negative symbolic term.
type Value struct {
	Number int
	Add    Symbol
	Sub    Symbol
}

// Absolute reports whether the value carries no symbolic term.
func (v Value) Absolute() bool {
	return len(v.Add) == 0 && len(v.Sub) == 0
}

// String renders the value for the downstream assembler.
func (v Value) String() string {
	var text strings.Builder

	if len(v.Add) != 0 {
		text.WriteString(string(v.Add))
	}
	if v.Number != 0 {
		if len(v.Add) != 0 && v.Number > 0 {
			text.WriteByte('+')
		}
		text.WriteString(strconv.Itoa(v.Number))
	}
	if len(v.Sub) != 0 {
		text.WriteByte('-')
		text.WriteString(string(v.Sub))
	}
	if text.Len() == 0 {
		return "0"
	}

	return text.String()
}

// negate swaps the symbolic slots and negates the number.
func (v Value) negate() Value {
	return Value{Number: -v.Number, Add: v.Sub, Sub: v.Add}
}

// Parser evaluates expressions.
type Parser struct {
	Radix int  // Radix of unprefixed literals. Zero is decimal.
	MRI   bool // MRI literal prefixes ($ % @) instead of B' Q' D' H'.
}

// scan is the cursor of a single Parse.
type scan struct {
	*Parser
	text string
	pos  int
	errs []error
}

// Parse evaluates the expression at text[start:], returning its value and
// the offset of the first unconsumed character. Recoverable errors are
// joined into err; value is still usable.
func (p *Parser) Parse(text string, start int) (value Value, next int, err error) {
	s := &scan{Parser: p, text: text, pos: start}

	s.skipWhite()
	value = s.level5()

	next = s.pos
	err = errors.Join(s.errs...)

	return
}

// Absolute evaluates an expression that must not carry symbolic terms.
func (p *Parser) Absolute(text string, start int, what string) (value int, next int, err error) {
	v, next, err := p.Parse(text, start)
	if !v.Absolute() {
		err = errors.Join(err, &Error{Offset: start, Err: ErrNeedAbsolute(what)})
		return
	}
	value = v.Number
	return
}

func (s *scan) radix() int {
	if s.Radix == 0 {
		return 10
	}
	return s.Radix
}

func (s *scan) fail(at int, err error) {
	s.errs = append(s.errs, &Error{Offset: at, Err: err})
}

func (s *scan) peek() byte {
	if s.pos < len(s.text) {
		return s.text[s.pos]
	}
	return 0
}

func (s *scan) peekAt(n int) byte {
	if s.pos+n < len(s.text) {
		return s.text[s.pos+n]
	}
	return 0
}

func (s *scan) skipWhite() {
	for s.pos < len(s.text) && IsWhite(s.text[s.pos]) {
		s.pos++
	}
}

// absolute checks the operands of op, recording an error if any of them
// carries a symbolic term.
func (s *scan) absolute(at int, op byte, vals ...Value) (ok bool) {
	for _, v := range vals {
		if !v.Absolute() {
			s.fail(at, ErrOperand(op))
			return false
		}
	}
	return true
}

// combine adds two values, slot by slot.
func (s *scan) combine(at int, lhs, rhs Value) (v Value) {
	v = lhs
	v.Number += rhs.Number
	if len(rhs.Add) != 0 {
		if len(v.Add) != 0 {
			s.fail(at, ErrRelocatable)
		} else {
			v.Add = rhs.Add
		}
	}
	if len(rhs.Sub) != 0 {
		if len(v.Sub) != 0 {
			s.fail(at, ErrRelocatable)
		} else {
			v.Sub = rhs.Sub
		}
	}
	return
}

// level0 is a primary: literal, identifier, or error.
func (s *scan) level0() (v Value) {
	s.skipWhite()

	c := s.peek()
	switch {
	case IsDigit(c):
		v.Number, s.pos = ParseNumber(s.text, s.pos, s.radix())
	case !s.MRI && s.peekAt(1) == '\'' && isBase(c):
		radix, _ := BaseOf(c)
		v.Number, s.pos = ParseNumber(s.text, s.pos+2, radix)
	case s.MRI && c == '$' && isDigitOf(s.peekAt(1), 16):
		v.Number, s.pos = ParseNumber(s.text, s.pos+1, 16)
	case s.MRI && c == '%' && isDigitOf(s.peekAt(1), 2):
		v.Number, s.pos = ParseNumber(s.text, s.pos+1, 2)
	case s.MRI && c == '@' && isDigitOf(s.peekAt(1), 8):
		v.Number, s.pos = ParseNumber(s.text, s.pos+1, 8)
	case IsFirstChar(c, s.MRI):
		start := s.pos
		for s.pos < len(s.text) && IsNextChar(s.text[s.pos], s.MRI) {
			s.pos++
		}
		v.Add = Symbol(s.text[start:s.pos])
	case c == '"':
		s.fail(s.pos, ErrString)
		s.skipString()
	default:
		s.fail(s.pos, ErrPrimary)
		if s.pos < len(s.text) {
			s.pos++
		}
	}

	s.skipWhite()
	return
}

func isBase(c byte) bool {
	_, ok := BaseOf(c)
	return ok
}

func isDigitOf(c byte, radix int) bool {
	d, ok := digit(c)
	return ok && d < radix
}

// skipString steps over a quoted string, with doubled quotes as escapes.
func (s *scan) skipString() {
	quote := s.text[s.pos]
	s.pos++
	for s.pos < len(s.text) {
		if s.text[s.pos] == quote {
			s.pos++
			if s.peek() != quote {
				return
			}
		}
		s.pos++
	}
}

// level1 is unary + - ~ and parenthesization.
func (s *scan) level1() (v Value) {
	s.skipWhite()

	switch s.peek() {
	case '+':
		s.pos++
		v = s.level1()
	case '-':
		s.pos++
		v = s.level1().negate()
	case '~':
		at := s.pos
		s.pos++
		v = s.level1()
		if s.absolute(at, '~', v) {
			v.Number = ^v.Number
		} else {
			v = Value{}
		}
	case '(':
		s.pos++
		v = s.level5()
		if s.peek() != ')' {
			s.fail(s.pos, ErrParens)
		} else {
			s.pos++
		}
	default:
		v = s.level0()
	}

	s.skipWhite()
	return
}

// level2 is * and /.
func (s *scan) level2() (lhs Value) {
	lhs = s.level1()

	for op := s.peek(); op == '*' || op == '/'; op = s.peek() {
		at := s.pos
		s.pos++
		rhs := s.level1()
		if !s.absolute(at, op, lhs, rhs) {
			lhs = Value{}
			continue
		}
		switch op {
		case '*':
			lhs.Number *= rhs.Number
		case '/':
			if rhs.Number == 0 {
				s.fail(at, ErrDivideByZero)
			} else {
				lhs.Number /= rhs.Number
			}
		}
	}

	return
}

// level3 is + and -.
func (s *scan) level3() (lhs Value) {
	lhs = s.level2()

	for op := s.peek(); op == '+' || op == '-'; op = s.peek() {
		at := s.pos
		s.pos++
		rhs := s.level2()
		if op == '-' {
			rhs = rhs.negate()
		}
		lhs = s.combine(at, lhs, rhs)
	}

	return
}

// level4 is &.
func (s *scan) level4() (lhs Value) {
	lhs = s.level3()

	for s.peek() == '&' {
		at := s.pos
		s.pos++
		rhs := s.level3()
		if !s.absolute(at, '&', lhs, rhs) {
			lhs = Value{}
			continue
		}
		lhs.Number &= rhs.Number
	}

	return
}

// level5 is | and infix ~ (exclusive or).
func (s *scan) level5() (lhs Value) {
	lhs = s.level4()

	for op := s.peek(); op == '|' || op == '~'; op = s.peek() {
		at := s.pos
		s.pos++
		rhs := s.level4()
		if !s.absolute(at, op, lhs, rhs) {
			lhs = Value{}
			continue
		}
		switch op {
		case '|':
			lhs.Number |= rhs.Number
		case '~':
			lhs.Number ^= rhs.Number
		}
	}

	return
}
