package gasp

import (
	"errors"
)

// report counts a diagnostic and writes it, prefixed by the input
// location stack. Joined errors are reported one by one.
func (s *Session) report(sev Severity, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			s.report(sev, e)
		}
		return
	}

	switch sev {
	case WARNING:
		s.Warnings++
	case ERROR:
		s.Errors++
	default:
		s.Fatals++
	}

	where := s.stack.Where()
	if len(where) == 0 {
		s.diag.Print(f("%v: %v", sev, err))
	} else {
		s.diag.Print(f("%v %v: %v", where, sev, err))
	}
}

// warn reports a non-nil err as a warning.
func (s *Session) warn(err error) {
	if err != nil {
		s.report(WARNING, err)
	}
}

// fail reports a non-nil err as an error.
func (s *Session) fail(err error) {
	if err != nil {
		s.report(ERROR, err)
	}
}

// fatal reports err and wraps it so the session unwinds.
func (s *Session) fatal(err error) error {
	var fe *ErrFatal
	if errors.As(err, &fe) {
		return fe
	}

	s.report(FATAL, err)
	return &ErrFatal{Err: err}
}
