package gasp

import (
	"strings"
)

// condEntry is one level of conditional assembly.
type condEntry struct {
	active  bool // Lines at this level are processed.
	hadElse bool // AELSE has been seen at this level.
}

func (s *Session) active() bool {
	return s.cond[len(s.cond)-1].active
}

// pushCond opens a conditional level. test is only run when the
// enclosing level is active.
func (s *Session) pushCond(test func() bool) (err error) {
	if len(s.cond)-1 >= s.IfNesting {
		err = s.fatal(ErrAIfNesting)
		return
	}

	on := s.active() && test()
	s.cond = append(s.cond, condEntry{active: on})
	return
}

func (s *Session) doAIf(ln *line) error {
	return s.pushCond(func() bool { return s.isTrue(ln.text, ln.at) })
}

func (s *Session) doAElse(ln *line) error {
	if len(s.cond) == 1 {
		s.fail(ErrAElseWithoutAIf)
		return nil
	}

	top := &s.cond[len(s.cond)-1]
	if top.hadElse {
		s.fail(ErrAElseMultiple)
		return nil
	}

	top.active = s.cond[len(s.cond)-2].active && !top.active
	top.hadElse = true
	return nil
}

func (s *Session) doAEndI(ln *line) error {
	if len(s.cond) == 1 {
		s.fail(ErrAEndIWithoutAIf)
		return nil
	}

	s.cond = s.cond[:len(s.cond)-1]
	return nil
}

// doIf handles the MRI comparisons against zero.
func (s *Session) doIf(ln *line) error {
	return s.pushCond(func() bool {
		n, _ := s.absolute(ln.text, ln.at, ln.code.String())
		switch ln.code {
		case K_IFEQ:
			return n == 0
		case K_IFNE:
			return n != 0
		case K_IFGT:
			return n > 0
		case K_IFLT:
			return n < 0
		case K_IFGE:
			return n >= 0
		default:
			return n <= 0
		}
	})
}

// doIfC handles the MRI string comparisons.
func (s *Session) doIfC(ln *line) error {
	return s.pushCond(func() bool {
		a, idx := s.getAnyString(ln.text, ln.at)
		idx, ok := s.expectComma(ln.text, idx)
		if !ok {
			return false
		}
		b, _ := s.getAnyString(ln.text, idx)

		if ln.code == K_IFC {
			return a == b
		}
		return a != b
	})
}

// compareOp reads a two letter comparison operator.
func compareOp(text string, idx int) (op string, next int) {
	idx = skipWhite(text, idx)
	if idx+2 > len(text) {
		next = idx
		return
	}

	op = strings.ToUpper(text[idx : idx+2])
	next = idx + 2
	return
}

// isTrue evaluates an AIF condition: two strings or two expressions joined
// by a comparison operator, or a single expression tested against zero.
func (s *Session) isTrue(text string, idx int) bool {
	idx = skipWhite(text, idx)

	if s.isString(text, idx) {
		a, idx := s.getString(text, idx)
		op, idx := compareOp(text, idx)
		idx = skipWhite(text, idx)
		if !s.isString(text, idx) {
			s.warn(ErrMixedComparison)
			return false
		}
		b, _ := s.getString(text, idx)

		switch op {
		case "EQ":
			return a == b
		case "NE":
			return a != b
		}
		s.fail(ErrStringComparison)
		return false
	}

	lhs, idx := s.absolute(text, idx, "AIF")
	idx = skipWhite(text, idx)
	if idx >= len(text) {
		return lhs != 0
	}

	op, idx := compareOp(text, idx)
	idx = skipWhite(text, idx)
	if s.isString(text, idx) {
		s.warn(ErrMixedComparison)
		return false
	}

	switch op {
	case "EQ", "NE", "LT", "LE", "GT", "GE":
	default:
		s.fail(ErrComparison)
		return false
	}

	rhs, _ := s.absolute(text, idx, "AIF")

	switch op {
	case "EQ":
		return lhs == rhs
	case "NE":
		return lhs != rhs
	case "LT":
		return lhs < rhs
	case "LE":
		return lhs <= rhs
	case "GT":
		return lhs > rhs
	default:
		return lhs >= rhs
	}
}
