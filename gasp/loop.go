package gasp

import (
	"fmt"

	"github.com/ezrec/gasp/expr"
	"github.com/ezrec/gasp/macro"
	"github.com/ezrec/gasp/source"
)

// Openers and terminators of ENDR terminated blocks, so that an IRP nested
// in a repeat, or the other way around, pairs up.
var (
	repeatOpen  = []string{"AREPEAT", "REPT", "IRP", "IRPC"}
	repeatClose = []string{"AENDR", "ENDR"}
	whileOpen   = []string{"AWHILE"}
	whileClose  = []string{"AENDW"}
)

// doARepeat unrolls one iteration of a counted loop. The remaining count
// is re-emitted after the body, in the current radix.
func (s *Session) doARepeat(ln *line) (err error) {
	n, _ := s.absolute(ln.text, ln.at, "AREPEAT")

	body, ok := macro.Collect(s.syntax(), repeatOpen, repeatClose, s.bodyLine)
	if !ok {
		err = s.fatal(&ErrUnterminated{Open: "AREPEAT", Close: "AENDR", LineNo: ln.lineNo})
		return
	}

	if n <= 0 {
		return
	}

	text := body
	if n > 1 {
		count := expr.Format(n-1, s.Radix)
		if s.MRI {
			text += fmt.Sprintf("\tREPT\t%s\n%s\tENDR\n", count, body)
		} else {
			text += fmt.Sprintf("\t.AREPEAT\t%s\n%s\t.AENDR\n", count, body)
		}
	}

	err = s.push("AREPEAT", text, source.REPEAT)
	return
}

func (s *Session) doAEndR(ln *line) error {
	s.fail(ErrAEndRWithoutLoop)
	return nil
}

// doAWhile unrolls one iteration of a conditional loop. The unsubstituted
// AWHILE line follows the body, so the condition is tested again.
func (s *Session) doAWhile(ln *line) (err error) {
	test := s.isTrue(s.processAssigns(ln.text[ln.at:]), 0)

	body, ok := macro.Collect(s.syntax(), whileOpen, whileClose, s.bodyLine)
	if !ok {
		err = s.fatal(&ErrUnterminated{Open: "AWHILE", Close: "AENDW", LineNo: ln.lineNo})
		return
	}

	if !test {
		return
	}

	text := body + ln.orig + "\n" + body + "\t.AENDW\n"
	err = s.push("AWHILE", text, source.WHILE)
	return
}

func (s *Session) doAEndW(ln *line) error {
	s.fail(ErrAEndWWithoutLoop)
	return nil
}

// doExitM abandons the innermost macro or loop expansion.
func (s *Session) doExitM(ln *line) error {
	last, ok := s.stack.Exit()
	if !ok {
		s.warn(ErrExitMOutside)
		return nil
	}

	if depth := max(last.CondDepth, 1); depth < len(s.cond) {
		s.cond = s.cond[:depth]
	}
	return nil
}

func (s *Session) doIrp(ln *line) (err error) {
	text, ierr := s.Macros.ExpandIRP(ln.code == K_IRPC, ln.text, ln.at, s.bodyLine)
	if ierr != nil {
		s.fail(ierr)
		return
	}

	err = s.push(ln.code.String(), text, source.REPEAT)
	return
}
