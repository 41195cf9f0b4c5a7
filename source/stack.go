// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	MAX_DEPTH     = 30   // Default frame nesting limit.
	MAX_EXPANSION = 1000 // Default expansion generation ceiling.
)

// Stack is the stack of input frames.
type Stack struct {
	MaxDepth     int  // Frame nesting limit. Zero is MAX_DEPTH.
	MaxExpansion int  // Generation ceiling. Zero is MAX_EXPANSION.
	Unreasonable bool // If set, the generation ceiling is not checked.

	frames     []*Frame
	generation int
}

func (st *Stack) maxDepth() int {
	if st.MaxDepth == 0 {
		return MAX_DEPTH
	}
	return st.MaxDepth
}

func (st *Stack) maxExpansion() int {
	if st.MaxExpansion == 0 {
		return MAX_EXPANSION
	}
	return st.MaxExpansion
}

// trim pops exhausted frames above the outermost one, so an unrolled loop
// replaces its finished iteration instead of nesting on top of it.
func (st *Stack) trim() {
	for len(st.frames) > 1 && st.Top().Exhausted() {
		st.Pop()
	}
}

func (st *Stack) push(fr *Frame) (err error) {
	st.trim()

	if len(st.frames) >= st.maxDepth() {
		fr.close()
		err = ErrDepth(len(st.frames))
		return
	}

	st.frames = append(st.frames, fr)
	return
}

// Push pushes a synthesized text frame.
func (st *Stack) Push(name string, text string, kind Kind, index int) (err error) {
	fr := &Frame{
		Name:     name,
		Kind:     kind,
		Index:    index,
		pushback: []byte(text),
	}
	return st.push(fr)
}

// PushFile pushes a FILE frame reading from r. If r is also an io.Closer it
// is closed when the frame is popped.
func (st *Stack) PushFile(name string, r io.Reader) (err error) {
	fr := &Frame{
		Name:  name,
		Kind:  FILE,
		input: bufio.NewReader(r),
	}
	if closer, ok := r.(io.Closer); ok {
		fr.closer = closer
	}
	return st.push(fr)
}

// Pop removes the top frame, closing its file if it has one.
func (st *Stack) Pop() (fr *Frame, err error) {
	if len(st.frames) == 0 {
		return
	}

	fr = st.frames[len(st.frames)-1]
	st.frames = st.frames[:len(st.frames)-1]
	err = fr.close()
	return
}

// Close pops every frame.
func (st *Stack) Close() (err error) {
	for len(st.frames) > 0 {
		_, perr := st.Pop()
		if err == nil {
			err = perr
		}
	}
	return
}

// Top returns the current frame, or nil.
func (st *Stack) Top() *Frame {
	if len(st.frames) == 0 {
		return nil
	}
	return st.frames[len(st.frames)-1]
}

// Depth returns the number of frames.
func (st *Stack) Depth() int {
	return len(st.frames)
}

// Empty reports an empty stack.
func (st *Stack) Empty() bool {
	return len(st.frames) == 0
}

// GetChar reads the next character. An exhausted frame is popped and
// reading continues in its parent; ok is false once the outermost frame is
// exhausted. The outermost frame is left for the caller to pop.
func (st *Stack) GetChar() (c byte, ok bool) {
	for {
		fr := st.Top()
		if fr == nil {
			return
		}

		c, ok = fr.get()
		if ok {
			if c == '\n' {
				fr.LineNo++
			}
			return
		}

		if len(st.frames) == 1 {
			return
		}
		st.Pop()
	}
}

// PeekChar returns the next character of the current frame, without
// consuming it and without crossing into a parent frame.
func (st *Stack) PeekChar() (c byte, ok bool) {
	fr := st.Top()
	if fr == nil {
		return
	}
	return fr.peek()
}

// UngetChar pushes c back onto the current frame.
func (st *Stack) UngetChar(c byte) {
	fr := st.Top()
	if fr == nil {
		return
	}

	if c == '\n' {
		fr.LineNo--
	}
	fr.unget(c)
}

// CurrentGeneration returns the generation index of the current frame.
func (st *Stack) CurrentGeneration() int {
	fr := st.Top()
	if fr == nil {
		return 0
	}
	return fr.Index
}

// CurrentKind returns the kind of the current frame.
func (st *Stack) CurrentKind() Kind {
	fr := st.Top()
	if fr == nil {
		return FILE
	}
	return fr.Kind
}

// Generation returns the last generation index handed out.
func (st *Stack) Generation() int {
	return st.generation
}

// NextGeneration returns a fresh generation index.
func (st *Stack) NextGeneration() (index int, err error) {
	if !st.Unreasonable && st.generation >= st.maxExpansion() {
		err = ErrUnreasonableExpansion
		return
	}

	st.generation++
	index = st.generation
	return
}

// Exit unwinds the frames belonging to the current loop or macro
// generation. It returns the last frame popped, or ok false if the current
// frame is not an expansion.
func (st *Stack) Exit() (last *Frame, ok bool) {
	top := st.Top()
	if top == nil || top.Kind == FILE {
		return
	}

	kind, index := top.Kind, top.Index
	for len(st.frames) > 1 {
		fr := st.Top()
		if fr.Kind != kind || fr.Index != index {
			break
		}
		last, _ = st.Pop()
	}

	ok = last != nil
	return
}

// Where renders the source location stack as "name:line name:line ...".
func (st *Stack) Where() string {
	where := make([]string, 0, len(st.frames))
	for _, fr := range st.frames {
		where = append(where, fmt.Sprintf("%v:%d", fr.Name, fr.LineNo))
	}
	return strings.Join(where, " ")
}
