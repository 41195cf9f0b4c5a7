package source

import (
	"bufio"
	"io"
)

// Frame is one virtual input source.
type Frame struct {
	Name      string // Source name, for diagnostics.
	Kind      Kind   // Kind of source.
	Index     int    // Expansion generation. Zero for files.
	LineNo    int    // Completed lines read so far.
	CondDepth int    // Conditional nesting depth when the frame was pushed.

	pushback []byte // Pending characters.
	pos      int    // Read cursor into pushback.

	input  *bufio.Reader // Live source, if any.
	closer io.Closer     // Closed on pop, if any.
}

// get reads the next character of the frame itself.
func (fr *Frame) get() (c byte, ok bool) {
	if fr.pos < len(fr.pushback) {
		c = fr.pushback[fr.pos]
		fr.pos++
		// When they've all gone, reset the buffer.
		if fr.pos == len(fr.pushback) {
			fr.pushback = fr.pushback[:0]
			fr.pos = 0
		}
		return c, true
	}

	if fr.input == nil {
		return
	}

	c, err := fr.input.ReadByte()
	if err != nil {
		return
	}

	return c, true
}

// peek returns the next character without consuming it.
func (fr *Frame) peek() (c byte, ok bool) {
	if fr.pos < len(fr.pushback) {
		return fr.pushback[fr.pos], true
	}

	if fr.input == nil {
		return
	}

	next, err := fr.input.Peek(1)
	if err != nil || len(next) == 0 {
		return
	}

	return next[0], true
}

// unget pushes c back in front of the frame's remaining input.
func (fr *Frame) unget(c byte) {
	if fr.pos > 0 {
		fr.pos--
		fr.pushback[fr.pos] = c
		return
	}

	fr.pushback = append([]byte{c}, fr.pushback...)
}

// Exhausted reports whether the frame can produce no more input.
func (fr *Frame) Exhausted() bool {
	_, ok := fr.peek()
	return !ok
}

func (fr *Frame) close() (err error) {
	if fr.closer != nil {
		err = fr.closer.Close()
		fr.closer = nil
	}
	fr.input = nil
	return
}
