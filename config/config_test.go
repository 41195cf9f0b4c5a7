package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(byte('#'), cfg.CommentChar)
	assert.Equal(10, cfg.Radix)
	assert.Equal(100, cfg.IfNesting)
	assert.Equal(30, cfg.MaxDepth)
	assert.Equal(1000, cfg.MaxExpansion)

	opts := cfg.Options()
	assert.Equal(byte('#'), opts.CommentChar)
	assert.Equal(30, opts.MaxDepth)
	assert.False(opts.MRI)
}

func TestFromEnv(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("GASP_INCLUDE", "inc:lib")
	t.Setenv("GASP_COMMENT", ";")
	t.Setenv("GASP_MRI", "true")
	t.Setenv("GASP_NESTING", "7")
	t.Setenv("GASP_EXPANSION", "50")
	t.Setenv("GASP_DEPTH", "12")

	cfg := Default()
	assert.NoError(cfg.FromEnv())
	assert.Equal([]string{"inc", "lib"}, cfg.IncludePath)
	assert.Equal(byte(';'), cfg.CommentChar)
	assert.True(cfg.MRI)
	assert.False(cfg.Alternate)
	assert.Equal(7, cfg.IfNesting)
	assert.Equal(50, cfg.MaxExpansion)
	assert.Equal(12, cfg.MaxDepth)

	t.Setenv("GASP_COMMENT", ";;")
	assert.ErrorIs(Default().FromEnv(), ErrComment)
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	src := `
_base = "inc"
include = [_base, _base + "/cpu"]
define = {"DEBUG": 1, "CPU": "68000", "TRACE": False}
comment = "!"
alternate = True
copysource = True
nesting = 1 + 2
depth = 8
radix = 16
`
	cfg := Default()
	assert.NoError(cfg.LoadFile("gasp.star", src))
	assert.Equal([]string{"inc", "inc/cpu"}, cfg.IncludePath)
	assert.Equal([]string{"DEBUG=1", "CPU=68000", "TRACE=0"}, cfg.Defines)
	assert.Equal(byte('!'), cfg.CommentChar)
	assert.True(cfg.Alternate)
	assert.True(cfg.CopySource)
	assert.Equal(3, cfg.IfNesting)
	assert.Equal(8, cfg.MaxDepth)
	assert.Equal(16, cfg.Radix)

	opts := cfg.Options()
	assert.True(opts.Alternate)
	assert.Equal(16, opts.Radix)
	assert.Equal(8, opts.MaxDepth)
	assert.Equal([]string{"inc", "inc/cpu"}, opts.IncludePath)
}

func TestLoadFile_DefineList(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.NoError(cfg.LoadFile("gasp.star", `define = ["A", "B=2"]`))
	assert.Equal([]string{"A", "B=2"}, cfg.Defines)
}

func TestLoadFile_Errors(t *testing.T) {
	assert := assert.New(t)

	table := map[string]error{
		`radix = 7`:     ErrRadix,
		`comment = ""`:  ErrComment,
		`colour = 1`:    ErrUnknown("colour"),
		`mri = 1`:       &ErrType{Name: "mri", Want: "bool", Got: "int"},
		`nesting = "3"`: &ErrType{Name: "nesting", Want: "int", Got: "string"},
		`depth = True`:  &ErrType{Name: "depth", Want: "int", Got: "bool"},
	}

	for src, expected := range table {
		err := Default().LoadFile("bad.star", src)

		var fe *ErrFile
		assert.True(errors.As(err, &fe), src)
		assert.Equal("bad.star", fe.File, src)
		assert.Equal(expected, fe.Err, src)
	}

	err := Default().LoadFile("bad.star", "x = ")
	assert.Error(err)
}
