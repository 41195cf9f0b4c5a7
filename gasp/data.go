package gasp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/gasp/expr"
)

// Assembler directive for each data size.
var sizeName = map[int]string{
	1: ".byte",
	2: ".short",
	4: ".long",
}

// opsize reads an optional .B, .W or .L size suffix.
func (s *Session) opsize(text string, idx int, def int) (size int, next int) {
	size, next = def, idx
	if next >= len(text) || text[next] != '.' {
		return
	}

	next++
	if next < len(text) {
		switch text[next] {
		case 'b', 'B':
			size = 1
		case 'w', 'W':
			size = 2
		case 'l', 'L':
			size = 4
		default:
			s.fail(ErrSize)
		}
		next++
	}
	return
}

// junk reports anything but blanks after the operands.
func (s *Session) junk(text string, idx int) {
	if len(strings.TrimSpace(text[min(idx, len(text)):])) != 0 {
		s.warn(ErrJunk)
	}
}

func byteCodes(data []byte) string {
	codes := make([]string, len(data))
	for n, c := range data {
		codes[n] = strconv.Itoa(int(c))
	}
	return strings.Join(codes, ",")
}

// doData emits a list of expressions. In alternate syntax a string
// contributes its character codes.
func (s *Session) doData(ln *line) error {
	var size int
	idx := ln.at

	switch ln.code {
	case K_DB:
		size = 1
	case K_DW:
		size = 2
	case K_DL:
		size = 4
	default:
		size, idx = s.opsize(ln.text, idx, 4)
	}

	var items []string
	for {
		idx = skipWhite(ln.text, idx)
		if idx >= len(ln.text) {
			break
		}

		if s.Alternate && s.isString(ln.text, idx) {
			var str string
			str, idx = s.getString(ln.text, idx)
			for _, c := range []byte(str) {
				items = append(items, strconv.Itoa(int(c)))
			}
		} else {
			var v expr.Value
			v, idx = s.expression(ln.text, idx)
			items = append(items, v.String())
		}

		idx = skipWhite(ln.text, idx)
		if idx >= len(ln.text) || ln.text[idx] != ',' {
			break
		}
		idx++
	}
	s.junk(ln.text, idx)

	s.write(sizeName[size], "\t", strings.Join(items, ","), "\n")
	return nil
}

// doDataB emits a block of repeated values.
func (s *Session) doDataB(ln *line) error {
	size, idx := s.opsize(ln.text, ln.at, 4)

	n, idx := s.absolute(ln.text, idx, "DATAB")

	fill := "0"
	if next, ok := s.expectComma(ln.text, idx); ok {
		v, after := s.expression(ln.text, next)
		fill = v.String()
		idx = after
	}
	s.junk(ln.text, idx)

	s.write(fmt.Sprintf(".fill\t%d,%d,%s\n", n, size, fill))
	return nil
}

// stringList reads a comma separated list of strings as one run of bytes.
func (s *Session) stringList(text string, idx int) (data []byte, next int) {
	for {
		idx = skipWhite(text, idx)
		if idx >= len(text) {
			break
		}
		if !s.isString(text, idx) && text[idx] != '<' {
			s.fail(ErrStringExpected)
			break
		}

		var str string
		str, idx = s.getString(text, idx)
		data = append(data, str...)

		idx = skipWhite(text, idx)
		if idx >= len(text) || text[idx] != ',' {
			break
		}
		idx++
	}

	next = idx
	return
}

// doSData emits the character codes of strings. SDATAZ appends a zero,
// SDATAC prefixes the length.
func (s *Session) doSData(ln *line) error {
	data, idx := s.stringList(ln.text, ln.at)
	s.junk(ln.text, idx)

	switch ln.code {
	case K_SDATAZ:
		data = append(data, 0)
	case K_SDATAC:
		if len(data) > 255 {
			s.fail(ErrSDataCLength)
		}
		data = append([]byte{byte(len(data))}, data...)
	}

	s.write(".byte\t", byteCodes(data), "\n")
	return nil
}

// doSDataB emits a string a number of times.
func (s *Session) doSDataB(ln *line) error {
	n, idx := s.absolute(ln.text, ln.at, "SDATAB")
	if n <= 0 {
		s.fail(ErrSDataBCount)
		n = 1
	}

	var data []byte
	if next, ok := s.expectComma(ln.text, idx); ok {
		data, idx = s.stringList(ln.text, next)
	}
	s.junk(ln.text, idx)

	codes := byteCodes(data)
	for i := range n {
		if i > 0 {
			s.write("\t")
		}
		s.write(".byte\t", codes, "\n")
	}
	return nil
}

// doRes reserves space. The string forms count bytes, SRESC and SRESZ
// add one for the count or the terminator.
func (s *Session) doRes(ln *line) error {
	def := 1
	if ln.code == K_RES {
		def = 4
	}

	size, idx := s.opsize(ln.text, ln.at, def)
	n, idx := s.absolute(ln.text, idx, ln.code.String())
	s.junk(ln.text, idx)

	if ln.code == K_SRESC || ln.code == K_SRESZ {
		n++
	}

	s.write(fmt.Sprintf(".space\t%d\n", n*size))
	return nil
}

func (s *Session) doAlign(ln *line) error {
	n, idx := s.absolute(ln.text, ln.at, "ALIGN")
	if n != 1 && n != 2 && n != 4 {
		s.warn(ErrAlign)
	}

	out := fmt.Sprintf(".align\t%d", n)

	idx = skipWhite(ln.text, idx)
	if idx < len(ln.text) && ln.text[idx] == ',' {
		var fill int
		fill, idx = s.absolute(ln.text, idx+1, "ALIGN")
		out += fmt.Sprintf(",%d", fill)
	}
	s.junk(ln.text, idx)

	s.write(out, "\n")
	return nil
}
