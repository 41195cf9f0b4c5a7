// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package macro

import (
	"fmt"
	"strings"

	"github.com/ezrec/gasp/expr"
	"github.com/ezrec/gasp/symbol"
)

// Macro is a single macro definition.
type Macro struct {
	Name    string        // Name as defined.
	Args    []string      // Formal names, in order.
	Formals *symbol.Table // FORMAL entries, by name.
	Body    string        // Lines of macro text, newline terminated.
}

// Processor defines and expands macros.
type Processor struct {
	Syntax
	Macros *symbol.Table // MACRO entries, by name.

	count  int // Invocation counter for \@.
	locals int // Counter for LOCAL label names.
}

// NewProcessor creates a processor with an empty macro table.
func NewProcessor(syn Syntax) (p *Processor) {
	p = &Processor{
		Syntax: syn,
		Macros: symbol.NewTable(true),
	}
	return
}

// SetSyntax changes the dialect of later definitions and expansions.
func (p *Processor) SetSyntax(syn Syntax) {
	p.Syntax = syn
}

func skipWhite(line string, i int) int {
	for i < len(line) && expr.IsWhite(line[i]) {
		i++
	}
	return i
}

// ident reads a macro or formal name. Dots end a name in every dialect.
func (p *Processor) ident(line string, i int) (name string, next int) {
	next = i
	if next < len(line) && expr.IsFirstChar(line[next], false) {
		for next < len(line) && expr.IsNextChar(line[next], false) {
			next++
		}
	}
	name = line[i:next]
	return
}

// actual reads one actual argument. Quoted strings are kept with their
// quotes, <...> brackets are removed.
func (p *Processor) actual(line string, i int) (text string, next int) {
	var out strings.Builder

	i = skipWhite(line, i)
	if i < len(line) && line[i] == '<' {
		depth := 0
		for i < len(line) {
			c := line[i]
			switch {
			case c == '!' && (p.Alternate || p.MRI) && i+1 < len(line):
				i++
				c = line[i]
			case c == '<':
				depth++
				if depth == 1 {
					i++
					continue
				}
			case c == '>':
				depth--
				if depth == 0 {
					i++
					text = out.String()
					next = i
					return
				}
			}
			out.WriteByte(c)
			i++
		}
		text = out.String()
		next = i
		return
	}

	parens := 0
	for i < len(line) {
		c := line[i]
		if parens == 0 && (c == ',' || expr.IsWhite(c)) {
			break
		}
		switch c {
		case '(':
			parens++
		case ')':
			parens--
		case '"', '\'':
			if c == '\'' && !p.Alternate {
				break
			}
			out.WriteByte(c)
			for i++; i < len(line); i++ {
				out.WriteByte(line[i])
				if line[i] == c {
					if i+1 < len(line) && line[i+1] == c {
						i++
						out.WriteByte(line[i])
						continue
					}
					break
				}
			}
			i++
			continue
		}
		out.WriteByte(c)
		i++
	}

	text = out.String()
	next = min(i, len(line))
	return
}

// Define reads a macro definition. The directive word has been consumed,
// start is the offset of its operands, and next supplies the body lines.
func (p *Processor) Define(line string, start int, label string, next func() (string, bool)) (name string, err error) {
	i := skipWhite(line, start)
	if p.MRI {
		name = label
	} else {
		name, i = p.ident(line, i)
	}

	if len(name) == 0 {
		err = ErrMacroName
		return
	}

	m := &Macro{
		Name:    name,
		Formals: symbol.NewTable(true),
	}

	for {
		i = skipWhite(line, i)
		if i < len(line) && line[i] == ',' {
			i++
			continue
		}
		if i >= len(line) {
			break
		}
		if line[i] == '\\' {
			i++
		}

		var formal string
		formal, i = p.ident(line, i)
		if len(formal) == 0 {
			err = &ErrMacro{Macro: name, Err: ErrMacroFormal}
			return
		}

		if _, ok := m.Formals.Lookup(formal); ok {
			err = &ErrMacro{Macro: name, Err: ErrFormalDuplicate(formal)}
			return
		}

		var def string
		if i < len(line) && line[i] == '=' {
			def, i = p.actual(line, i+1)
		}

		m.Formals.BindFormal(formal, len(m.Args), def)
		m.Args = append(m.Args, formal)
	}

	body, ok := Collect(p.Syntax, []string{"MACRO"}, []string{"ENDM"}, next)
	if !ok {
		err = &ErrMacro{Macro: name, Err: ErrMacroLonely}
		return
	}
	m.Body = body

	p.Macros.BindMacro(name, m)
	return
}

// Lookup finds a macro definition by name.
func (p *Processor) Lookup(name string) (m *Macro, ok bool) {
	e, ok := p.Macros.Lookup(name)
	if !ok || e.Kind != symbol.MACRO {
		ok = false
		return
	}
	m, ok = e.Macro.(*Macro)
	return
}

// Expand expands a macro invocation. ok is false if the line does not
// start with the name of a defined macro.
func (p *Processor) Expand(line string, start int, next func() (string, bool)) (text string, ok bool, err error) {
	i := skipWhite(line, start)
	name, i := p.ident(line, i)
	m, ok := p.Lookup(name)
	if !ok {
		return
	}

	// MRI size suffix.
	if p.MRI && i < len(line) && line[i] == '.' {
		for i++; i < len(line) && expr.IsNextChar(line[i], false); i++ {
		}
	}

	given := make([]string, len(m.Args))
	set := make([]bool, len(m.Args))

	pos := 0
	for {
		i = skipWhite(line, i)
		if i >= len(line) {
			break
		}
		if line[i] == ',' {
			pos++
			i++
			continue
		}

		index := pos
		keyword, after := p.ident(line, i)
		if len(keyword) != 0 && after < len(line) && line[after] == '=' {
			e, found := m.Formals.Lookup(keyword)
			if !found {
				err = &ErrMacro{Macro: m.Name, Err: ErrMacroKeyword}
				return
			}
			index = e.Int
			i = after + 1
		} else if index >= len(m.Args) {
			err = &ErrMacro{Macro: m.Name, Err: ErrMacroExtraArgs}
			return
		}

		given[index], i = p.actual(line, i)
		set[index] = true

		i = skipWhite(line, i)
		if i < len(line) && line[i] == ',' {
			i++
		}
		pos++
	}

	value := make(map[string]string, len(m.Args))
	for n, formal := range m.Args {
		e, _ := m.Formals.Lookup(formal)
		if set[n] {
			value[strings.ToUpper(formal)] = given[n]
		} else {
			value[strings.ToUpper(formal)] = e.Str
		}
	}

	body := p.bindLocals(m.Body, value)
	text = p.substitute(body, value)
	return
}

// bindLocals removes the LOCAL lines of a body, binding each name to a
// fresh label.
func (p *Processor) bindLocals(body string, value map[string]string) string {
	var out strings.Builder

	for _, line := range strings.SplitAfter(body, "\n") {
		word, i := p.directive(line)
		if word != "LOCAL" {
			out.WriteString(line)
			continue
		}

		for {
			i = skipWhite(line, i)
			for i < len(line) && line[i] == ',' {
				i = skipWhite(line, i+1)
			}
			var name string
			name, i = p.ident(line, i)
			if len(name) == 0 {
				break
			}
			value[strings.ToUpper(name)] = fmt.Sprintf("LL%04x", p.locals)
			p.locals++
		}
	}

	return out.String()
}

// substitute replaces formals in body, one invocation of \@.
func (p *Processor) substitute(body string, value map[string]string) string {
	var out strings.Builder

	count := p.count
	p.count++

	bare := p.Alternate || p.MRI
	var quote byte

	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body):
			n := body[i+1]
			switch {
			case n == '@':
				fmt.Fprintf(&out, "%d", count)
				i += 2
				continue
			case n == '(':
				end := strings.IndexByte(body[i:], ')')
				if end < 0 {
					end = len(body) - i - 1
				}
				out.WriteString(body[i : i+end+1])
				i += end + 1
				continue
			case expr.IsFirstChar(n, false):
				name, after := p.ident(body, i+1)
				if val, ok := value[strings.ToUpper(name)]; ok {
					out.WriteString(val)
				} else {
					out.WriteString(body[i:after])
				}
				i = after
				continue
			}
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || (c == '\'' && p.Alternate):
			quote = c
		case bare && expr.IsFirstChar(c, false):
			name, after := p.ident(body, i)
			if val, ok := value[strings.ToUpper(name)]; ok {
				out.WriteString(val)
			} else {
				out.WriteString(name)
			}
			i = after
			continue
		}
		out.WriteByte(c)
		i++
	}

	return out.String()
}

// ExpandIRP expands an IRP (or, with chars set, IRPC) iteration. The
// directive word has been consumed, and next supplies the body lines.
func (p *Processor) ExpandIRP(chars bool, line string, start int, next func() (string, bool)) (text string, err error) {
	i := skipWhite(line, start)
	if i < len(line) && line[i] == '\\' {
		i++
	}
	sym, i := p.ident(line, i)
	if len(sym) == 0 {
		err = ErrIrpSymbol
		return
	}

	i = skipWhite(line, i)
	if i < len(line) && line[i] == ',' {
		i++
	}

	var items []string
	if chars {
		var arg string
		arg, _ = p.actual(line, i)
		if len(arg) >= 2 && arg[0] == '"' && arg[len(arg)-1] == '"' {
			arg = strings.ReplaceAll(arg[1:len(arg)-1], `""`, `"`)
		}
		for n := range len(arg) {
			items = append(items, arg[n:n+1])
		}
	} else {
		for {
			i = skipWhite(line, i)
			if i >= len(line) {
				break
			}
			var arg string
			arg, i = p.actual(line, i)
			items = append(items, arg)
			i = skipWhite(line, i)
			if i < len(line) && line[i] == ',' {
				i++
			}
		}
	}

	if len(items) == 0 {
		items = []string{""}
	}

	body, ok := Collect(p.Syntax, []string{"IRP", "IRPC", "AREPEAT", "REPT"}, []string{"ENDR", "AENDR"}, next)
	if !ok {
		err = ErrIrpLonely
		return
	}

	var out strings.Builder
	key := strings.ToUpper(sym)
	for _, item := range items {
		out.WriteString(p.substitute(body, map[string]string{key: item}))
	}

	text = out.String()
	return
}
