package source

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// readAll drains the stack through GetChar.
func readAll(st *Stack) string {
	var out strings.Builder
	for c, ok := st.GetChar(); ok; c, ok = st.GetChar() {
		out.WriteByte(c)
	}
	return out.String()
}

type closeCounter struct {
	io.Reader
	closed int
}

func (cc *closeCounter) Close() error {
	cc.closed++
	return nil
}

func TestStack_Empty(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{}
	assert.True(st.Empty())
	assert.Nil(st.Top())

	_, ok := st.GetChar()
	assert.False(ok)
	assert.Equal(FILE, st.CurrentKind())
	assert.Equal(0, st.CurrentGeneration())
	assert.Equal("", st.Where())
}

func TestStack_File(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{}
	input := &closeCounter{Reader: strings.NewReader("ab\ncd\n")}
	assert.NoError(st.PushFile("test.s", input))

	assert.Equal("ab\ncd\n", readAll(st))
	assert.Equal(2, st.Top().LineNo)
	assert.Equal("test.s:2", st.Where())

	// The outermost frame is left for the caller.
	assert.Equal(1, st.Depth())
	assert.Equal(0, input.closed)

	_, err := st.Pop()
	assert.NoError(err)
	assert.Equal(1, input.closed)
	assert.True(st.Empty())
}

func TestStack_Nested(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{}
	assert.NoError(st.PushFile("top.s", strings.NewReader("12\n34\n")))

	c, ok := st.GetChar()
	assert.True(ok)
	assert.Equal(byte('1'), c)

	index, err := st.NextGeneration()
	assert.NoError(err)
	assert.Equal(1, index)

	assert.NoError(st.Push("AREPEAT", "xy\n", REPEAT, index))
	assert.Equal(REPEAT, st.CurrentKind())
	assert.Equal(1, st.CurrentGeneration())
	assert.Equal("top.s:0 AREPEAT:0", st.Where())

	// The pushed frame is read first, then the parent resumes.
	assert.Equal("xy\n2\n34\n", readAll(st))
	assert.Equal(1, st.Depth())
	assert.Equal(FILE, st.CurrentKind())
}

func TestStack_Unget(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{}
	assert.NoError(st.PushFile("top.s", strings.NewReader("a\nb")))

	c, _ := st.GetChar()
	assert.Equal(byte('a'), c)
	c, _ = st.GetChar()
	assert.Equal(byte('\n'), c)
	assert.Equal(1, st.Top().LineNo)

	st.UngetChar('\n')
	assert.Equal(0, st.Top().LineNo)
	st.UngetChar('z')

	assert.Equal("z\nb", readAll(st))
	assert.Equal(1, st.Top().LineNo)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{}
	assert.NoError(st.PushFile("top.s", strings.NewReader("+")))
	assert.NoError(st.Push("MACRO", "m", MACRO, 1))

	c, ok := st.PeekChar()
	assert.True(ok)
	assert.Equal(byte('m'), c)

	c, _ = st.GetChar()
	assert.Equal(byte('m'), c)

	// Peek does not look through into the parent.
	_, ok = st.PeekChar()
	assert.False(ok)
	assert.Equal(MACRO, st.CurrentKind())

	c, ok = st.GetChar()
	assert.True(ok)
	assert.Equal(byte('+'), c)
}

func TestStack_NestingLimit(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{MaxDepth: 3}
	assert.NoError(st.PushFile("top.s", strings.NewReader("x")))
	assert.NoError(st.Push("a", "a", MACRO, 1))
	assert.NoError(st.Push("b", "b", MACRO, 2))

	err := st.Push("c", "c", MACRO, 3)
	assert.True(errors.Is(err, ErrUnreasonableNesting))
	assert.Equal(3, st.Depth())

	input := &closeCounter{Reader: strings.NewReader("y")}
	err = st.PushFile("inc.s", input)
	assert.True(errors.Is(err, ErrUnreasonableNesting))
	assert.Equal(1, input.closed)
}

func TestStack_TrimExhausted(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{MaxDepth: 3}
	assert.NoError(st.PushFile("top.s", strings.NewReader("")))

	// Each finished iteration is replaced, not nested.
	for n := range 10 {
		index, err := st.NextGeneration()
		assert.NoError(err)
		assert.NoError(st.Push("AREPEAT", "x", REPEAT, index), n)
		c, ok := st.GetChar()
		assert.True(ok)
		assert.Equal(byte('x'), c)
		assert.Equal(2, st.Depth())
	}
}

func TestStack_Expansion(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{MaxExpansion: 2}
	_, err := st.NextGeneration()
	assert.NoError(err)
	_, err = st.NextGeneration()
	assert.NoError(err)
	_, err = st.NextGeneration()
	assert.True(errors.Is(err, ErrUnreasonableExpansion))
	assert.Equal(2, st.Generation())

	st.Unreasonable = true
	index, err := st.NextGeneration()
	assert.NoError(err)
	assert.Equal(3, index)
}

func TestStack_Exit(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{}
	assert.NoError(st.PushFile("top.s", strings.NewReader("rest\n")))

	// Exit outside of any expansion does nothing.
	_, ok := st.Exit()
	assert.False(ok)
	assert.Equal(1, st.Depth())

	assert.NoError(st.Push("outer", "outer\n", REPEAT, 1))
	assert.NoError(st.Push("inner", "inner\n", REPEAT, 2))
	assert.Equal(3, st.Depth())

	st.Top().CondDepth = 4
	last, ok := st.Exit()
	assert.True(ok)
	assert.Equal("inner", last.Name)
	assert.Equal(4, last.CondDepth)
	assert.Equal(2, st.Depth())

	assert.Equal("outer\nrest\n", readAll(st))
}

func TestStack_ExitGeneration(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{}
	assert.NoError(st.PushFile("top.s", strings.NewReader("")))
	assert.NoError(st.Push("m1", "a", MACRO, 7))
	assert.NoError(st.Push("m2", "b", MACRO, 7))
	assert.NoError(st.Push("m3", "c", MACRO, 8))

	last, ok := st.Exit()
	assert.True(ok)
	assert.Equal("m3", last.Name)
	assert.Equal(3, st.Depth())

	// All frames of one generation go together.
	last, ok = st.Exit()
	assert.True(ok)
	assert.Equal("m1", last.Name)
	assert.Equal(1, st.Depth())
}

func TestStack_Close(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{}
	one := &closeCounter{Reader: strings.NewReader("1")}
	two := &closeCounter{Reader: strings.NewReader("2")}
	assert.NoError(st.PushFile("one.s", one))
	assert.NoError(st.PushFile("two.s", two))
	assert.NoError(st.Push("buf", "b", WHILE, 1))

	assert.NoError(st.Close())
	assert.True(st.Empty())
	assert.Equal(1, one.closed)
	assert.Equal(1, two.closed)

	assert.NoError(st.Close())
	assert.Equal(1, one.closed)
}

func TestKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("file", FILE.String())
	assert.Equal("repeat", REPEAT.String())
	assert.Equal("while", WHILE.String())
	assert.Equal("macro", MACRO.String())
}
