package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Stdin(t *testing.T) {
	assert := assert.New(t)

	var stdout, stderr strings.Builder
	status := run(nil, strings.NewReader("\t.AREPEAT 2\n\tnop\n\t.AENDR\n\t.END\n"), &stdout, &stderr)
	assert.Equal(0, status)
	assert.Equal("\tnop\n\tnop\n", stdout.String())
	assert.Empty(stderr.String())
}

func TestRun_Flags(t *testing.T) {
	assert := assert.New(t)

	var stdout, stderr strings.Builder
	args := []string{"-a", "-c", ";", "-D", "N=3", "-D", "FLAG"}
	input := "\tAIF \\&N EQ 3 ; test\n\tv \\&FLAG\n\tAENDI\n\tEND\n"

	status := run(args, strings.NewReader(input), &stdout, &stderr)
	assert.Equal(0, status)
	assert.Equal("\tv 1\n", stdout.String())
	assert.Empty(stderr.String())
}

func TestRun_Files(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	inc := filepath.Join(dir, "inc")
	assert.NoError(os.Mkdir(inc, 0o755))
	assert.NoError(os.WriteFile(filepath.Join(inc, "defs.s"), []byte("V\t.ASSIGNA 9\n"), 0o644))

	src := filepath.Join(dir, "main.s")
	assert.NoError(os.WriteFile(src, []byte("\t.INCLUDE \"defs.s\"\n\tx \\&V\n\t.END\n"), 0o644))

	out := filepath.Join(dir, "main.out")

	var stdout, stderr strings.Builder
	status := run([]string{"-I", inc, "-o", out, src}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(0, status)
	assert.Empty(stdout.String())
	assert.Empty(stderr.String())

	data, err := os.ReadFile(out)
	assert.NoError(err)
	assert.Equal("\tx 9\n", string(data))
}

func TestRun_Config(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	star := filepath.Join(dir, "gasp.star")
	assert.NoError(os.WriteFile(star, []byte("define = {\"N\": 4}\nradix = 16\n"), 0o644))

	var stdout, stderr strings.Builder
	status := run([]string{"--config", star}, strings.NewReader("\tx \\&N,10\n\t.END\n"), &stdout, &stderr)
	assert.Equal(0, status)
	assert.Equal("\tx 4,16\n", stdout.String())
}

func TestRun_Version(t *testing.T) {
	assert := assert.New(t)

	var stdout, stderr strings.Builder
	status := run([]string{"--version"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(0, status)
	assert.Equal("gasp version "+VERSION+"\n", stdout.String())
}

func TestRun_Errors(t *testing.T) {
	assert := assert.New(t)

	var stdout, stderr strings.Builder
	status := run([]string{"--bogus"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(1, status)
	assert.Contains(stderr.String(), "bogus")

	stdout.Reset()
	stderr.Reset()
	status = run([]string{"-c", "ab"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(1, status)
	assert.Contains(stderr.String(), ErrCommentChar.Error())

	stdout.Reset()
	stderr.Reset()
	status = run(nil, strings.NewReader("\t.ORG 0\n\t.END\n"), &stdout, &stderr)
	assert.Equal(1, status)
	assert.Contains(stderr.String(), "<stdin>:1 Error")

	stdout.Reset()
	stderr.Reset()
	status = run([]string{"no/such/file.s"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(1, status)
	assert.Contains(stderr.String(), "Fatal")
}
