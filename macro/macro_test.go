package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lines(text ...string) func() (string, bool) {
	return func() (line string, ok bool) {
		if len(text) == 0 {
			return
		}
		line, text = text[0], text[1:]
		ok = true
		return
	}
}

func TestProcessor_Define(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{})
	name, err := p.Define(".MACRO swap a,b", 6, "", lines("\tmov \\a,\\b", "\tmov \\b,\\a", ".ENDM", "after"))
	assert.NoError(err)
	assert.Equal("swap", name)

	m, ok := p.Lookup("SWAP")
	assert.True(ok)
	assert.Equal([]string{"a", "b"}, m.Args)
	assert.Equal("\tmov \\a,\\b\n\tmov \\b,\\a\n", m.Body)

	text, ok, err := p.Expand("swap r1, r2", 0, nil)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("\tmov r1,r2\n\tmov r2,r1\n", text)
}

func TestProcessor_NotMacro(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{})
	text, ok, err := p.Expand("\tnop", 0, nil)
	assert.NoError(err)
	assert.False(ok)
	assert.Empty(text)
}

func TestProcessor_Defaults(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{})
	_, err := p.Define(".MACRO sum x=1,y=2", 6, "", lines("\t.long \\x+\\y", ".ENDM"))
	assert.NoError(err)

	table := map[string]string{
		"sum":         "\t.long 1+2\n",
		"sum 7":       "\t.long 7+2\n",
		"sum ,9":      "\t.long 1+9\n",
		"sum y=5":     "\t.long 1+5\n",
		"sum y=5,x=3": "\t.long 3+5\n",
		"sum <4,4>":   "\t.long 4,4+2\n",
		"sum (1,2)":   "\t.long (1,2)+2\n",
		`sum "a b"`:   "\t.long \"a b\"+2\n",
	}

	for line, expected := range table {
		text, ok, err := p.Expand(line, 0, nil)
		assert.NoError(err, line)
		assert.True(ok, line)
		assert.Equal(expected, text, line)
	}
}

func TestProcessor_BadArgs(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{})
	_, err := p.Define(".MACRO one a", 6, "", lines("\\a", ".ENDM"))
	assert.NoError(err)

	_, ok, err := p.Expand("one 1,2", 0, nil)
	assert.True(ok)
	assert.ErrorIs(err, ErrMacroExtraArgs)

	_, _, err = p.Expand("one b=2", 0, nil)
	assert.ErrorIs(err, ErrMacroKeyword)
}

func TestProcessor_DefineErrors(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{})

	_, err := p.Define(".MACRO", 6, "", lines(".ENDM"))
	assert.ErrorIs(err, ErrMacroName)

	_, err = p.Define(".MACRO dup a,a", 6, "", lines(".ENDM"))
	assert.ErrorIs(err, ErrMacroFormal)

	_, err = p.Define(".MACRO open", 6, "", lines("\tnop"))
	assert.ErrorIs(err, ErrMacroLonely)
}

func TestProcessor_Counter(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{})
	_, err := p.Define(".MACRO here", 6, "", lines("L\\@:", ".ENDM"))
	assert.NoError(err)

	text, _, _ := p.Expand("here", 0, nil)
	assert.Equal("L0:\n", text)
	text, _, _ = p.Expand("here", 0, nil)
	assert.Equal("L1:\n", text)
}

func TestProcessor_Local(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{})
	_, err := p.Define(".MACRO loop", 6, "", lines("\t.LOCAL top, out", "\\top:\tnop", "\tbra \\top,\\out", ".ENDM"))
	assert.NoError(err)

	text, _, _ := p.Expand("loop", 0, nil)
	assert.Equal("LL0000:\tnop\n\tbra LL0000,LL0001\n", text)
	text, _, _ = p.Expand("loop", 0, nil)
	assert.Equal("LL0002:\tnop\n\tbra LL0002,LL0003\n", text)
}

func TestProcessor_Nested(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{})
	_, err := p.Define(".MACRO outer", 6, "", lines(".MACRO inner", ".ENDM", "x", ".ENDM"))
	assert.NoError(err)

	m, _ := p.Lookup("outer")
	assert.Equal(".MACRO inner\n.ENDM\nx\n", m.Body)
}

func TestProcessor_Passthrough(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{})
	_, err := p.Define(".MACRO keep a", 6, "", lines("\\(\\a) \\&var \\a", ".ENDM"))
	assert.NoError(err)

	text, _, _ := p.Expand("keep 1", 0, nil)
	assert.Equal("\\(\\a) \\&var 1\n", text)
}

func TestProcessor_Alternate(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{Alternate: true})
	_, err := p.Define("MACRO put a", 5, "", lines("\tdc a,\"a\",\\a", "ENDM"))
	assert.NoError(err)

	text, ok, err := p.Expand("put 7", 0, nil)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("\tdc 7,\"a\",7\n", text)
}

func TestProcessor_MRI(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{MRI: true})
	name, err := p.Define("foo MACRO a", 9, "foo", lines("\tmove.l a,d0", "\tENDM"))
	assert.NoError(err)
	assert.Equal("foo", name)

	text, ok, err := p.Expand("FOO.L #1", 0, nil)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("\tmove.l #1,d0\n", text)
}

func TestProcessor_IRP(t *testing.T) {
	assert := assert.New(t)

	p := NewProcessor(Syntax{})

	text, err := p.ExpandIRP(false, ".IRP r,1,2", 4, lines("\t.byte \\r", ".ENDR"))
	assert.NoError(err)
	assert.Equal("\t.byte 1\n\t.byte 2\n", text)

	text, err = p.ExpandIRP(true, ".IRPC c,ab", 5, lines("\t.byte \\c", ".ENDR"))
	assert.NoError(err)
	assert.Equal("\t.byte a\n\t.byte b\n", text)

	text, err = p.ExpandIRP(false, ".IRP r", 4, lines("[\\r]", ".ENDR"))
	assert.NoError(err)
	assert.Equal("[]\n", text)

	text, err = p.ExpandIRP(false, ".IRP r,x", 4, lines(".AREPEAT 2", "\\r", ".AENDR", ".ENDR"))
	assert.NoError(err)
	assert.Equal(".AREPEAT 2\nx\n.AENDR\n", text)

	_, err = p.ExpandIRP(false, ".IRP", 4, lines(".ENDR"))
	assert.ErrorIs(err, ErrIrpSymbol)

	_, err = p.ExpandIRP(false, ".IRP r,1", 4, lines("\tnop"))
	assert.ErrorIs(err, ErrIrpLonely)
}

func TestCollect(t *testing.T) {
	assert := assert.New(t)

	syn := Syntax{}
	body, ok := Collect(syn, []string{"AREPEAT"}, []string{"AENDR"},
		lines("a", "lab: .AREPEAT 2", "b", "  .aendr", "c", ".AENDRX", ".AENDR", "tail"))
	assert.True(ok)
	assert.Equal("a\nlab: .AREPEAT 2\nb\n  .aendr\nc\n.AENDRX\n", body)

	body, ok = Collect(syn, []string{"AREPEAT"}, []string{"AENDR"}, lines("a", "AENDR"))
	assert.False(ok)
	assert.Equal("a\nAENDR\n", body)

	body, ok = Collect(Syntax{MRI: true}, []string{"REPT"}, []string{"ENDR"}, lines("a", "\tENDR"))
	assert.True(ok)
	assert.Equal("a\n", body)
}

func TestSyntax_Directive(t *testing.T) {
	assert := assert.New(t)

	table := map[string]string{
		".aif 1":      "AIF",
		"lab: .ENDM":  "ENDM",
		"lab .endm":   "ENDM",
		"\tmov r1":    "",
		"":            "",
		". x":         "",
		"\t.data.b 1": "DATA",
	}

	for line, word := range table {
		assert.Equal(word, Syntax{}.Directive(line), line)
	}

	assert.Equal("MOV", Syntax{Alternate: true}.Directive("\tmov r1"))
	assert.Equal("ENDM", Syntax{Alternate: true}.Directive("ENDM"))
	assert.Equal("ENDR", Syntax{MRI: true}.Directive("lab ENDR"))
}
