package macro

import (
	"strings"

	"github.com/ezrec/gasp/expr"
)

// Syntax selects the source dialect.
type Syntax struct {
	Alternate bool // Directives need no leading dot.
	MRI       bool // MRI directive spellings, no leading dot.
}

// Directive returns the directive word of a source line, upper cased, or
// the empty string if the line does not start with one.
func (syn Syntax) Directive(line string) (word string) {
	word, _ = syn.directive(line)
	return
}

func (syn Syntax) directive(line string) (word string, i int) {
	dotless := syn.Alternate || syn.MRI

	// Skip over a label in the first column. Without a sigil, a lone word
	// in the first column is the directive itself.
	if len(line) > 0 && line[0] != '.' && expr.IsFirstChar(line[0], syn.MRI) {
		for i < len(line) && expr.IsNextChar(line[i], syn.MRI) {
			i++
		}
		if i < len(line) && line[i] == ':' {
			i++
		} else if dotless && skipWhite(line, i) == len(line) {
			word = strings.ToUpper(line[:i])
			return
		}
	}

	i = skipWhite(line, i)

	if i >= len(line) {
		return
	}

	if line[i] == '.' {
		i++
	} else if !dotless {
		return
	}

	start := i
	for i < len(line) && expr.IsNextChar(line[i], false) {
		i++
	}

	word = strings.ToUpper(line[start:i])
	if len(word) == 0 {
		i = 0
	}
	return
}

// Collect reads lines up to the terminator that matches the opening
// directive, counting nested openers. The body excludes the terminator.
// ok is false if the input ran out first.
func Collect(syn Syntax, from []string, to []string, next func() (string, bool)) (body string, ok bool) {
	var text strings.Builder

	depth := 1
	for line, more := next(); more; line, more = next() {
		word := syn.Directive(line)
		if len(word) != 0 {
			switch {
			case contains(from, word):
				depth++
			case contains(to, word):
				depth--
			}
			if depth == 0 {
				ok = true
				break
			}
		}
		text.WriteString(line)
		text.WriteByte('\n')
	}

	body = text.String()
	return
}

func contains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
