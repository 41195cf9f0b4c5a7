package gasp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestData(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		input    string
		expected string
	}{
		{"\t.DATA 1,2", "\t.long\t1,2\n"},
		{"\t.DATA.W 1,2,sym+4", "\t.short\t1,2,sym+4\n"},
		{"\t.DATA.B -1", "\t.byte\t-1\n"},
		{"\t.DB 1", "\t.byte\t1\n"},
		{"\t.DW 2", "\t.short\t2\n"},
		{"\t.DL 3", "\t.long\t3\n"},
		{"lab:\t.DATAB.B 3,7", "lab:\t.fill\t3,1,7\n"},
		{"\t.DATAB 2", "\t.fill\t2,4,0\n"},
		{"\t.SDATA \"ab\"", "\t.byte\t97,98\n"},
		{"\t.SDATA \"a\",<13>", "\t.byte\t97,13\n"},
		{"\t.SDATA \"a\"\"b\"", "\t.byte\t97,34,98\n"},
		{"\t.SDATAZ \"ab\"", "\t.byte\t97,98,0\n"},
		{"\t.SDATAC \"ab\"", "\t.byte\t2,97,98\n"},
		{"\t.SDATAB 2,\"x\"", "\t.byte\t120\n\t.byte\t120\n"},
		{"\t.RES.W 3", "\t.space\t6\n"},
		{"\t.RES 2", "\t.space\t8\n"},
		{"\t.SRES 3", "\t.space\t3\n"},
		{"\t.SRESC 3", "\t.space\t4\n"},
		{"\t.SRESZ.W 3", "\t.space\t8\n"},
		{"\t.ALIGN 4", "\t.align\t4\n"},
	}

	for _, entry := range table {
		out, diag, s, err := preprocess(Options{}, entry.input+"\n\t.END\n")
		assert.NoError(err, entry.input)
		assert.Empty(diag, entry.input)
		assert.Equal(entry.expected, out, entry.input)
		assert.Equal(0, s.Status(), entry.input)
	}
}

func TestData_Warnings(t *testing.T) {
	assert := assert.New(t)

	out, _, s, err := preprocess(Options{}, "\t.ALIGN 8,0\n\t.END\n")
	assert.NoError(err)
	assert.Equal("\t.align\t8,0\n", out)
	assert.Equal(1, s.Warnings)

	out, _, s, err = preprocess(Options{}, "\t.DATA 1 2\n\t.END\n")
	assert.NoError(err)
	assert.Equal("\t.long\t1\n", out)
	assert.Equal(1, s.Warnings)
}

func TestData_Errors(t *testing.T) {
	assert := assert.New(t)

	out, _, s, err := preprocess(Options{}, "\t.SDATAB 0,\"x\"\n\t.END\n")
	assert.NoError(err)
	assert.Equal("\t.byte\t120\n", out)
	assert.Equal(1, s.Errors)

	_, _, s, err = preprocess(Options{}, "\t.SDATA 12\n\t.END\n")
	assert.NoError(err)
	assert.Equal(1, s.Errors)

	_, _, s, err = preprocess(Options{}, "\t.DATA.Q 1\n\t.END\n")
	assert.NoError(err)
	assert.Equal(1, s.Errors)
}

func TestData_Alternate(t *testing.T) {
	assert := assert.New(t)

	out, diag, _, err := preprocess(Options{Alternate: true}, "\tDATA.B \"AB\",1\n\tSDATA 'c'\n\tSDATA <a!>b>\n\tEND\n")
	assert.NoError(err)
	assert.Empty(diag)
	assert.Equal("\t.byte\t65,66,1\n\t.byte\t99\n\t.byte\t97,62,98\n", out)
}

func TestData_Variables(t *testing.T) {
	assert := assert.New(t)

	out, diag, _, err := preprocess(Options{}, "N\t.ASSIGNA 5\nK\t.ASSIGN 3\n\t.DATA \\&N+K\n\t.END\n")
	assert.NoError(err)
	assert.Empty(diag)
	assert.Equal("\t.long\t8\n", out)
}
