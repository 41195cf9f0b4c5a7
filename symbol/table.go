package symbol

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Entry is a single named binding.
type Entry struct {
	Name  string // Name as first defined.
	Kind  Kind   // Kind of the bound value.
	Int   int    // INTEGER value, or the code of a keyword.
	Str   string // STRING value, or the default text of a FORMAL.
	Macro any    // MACRO definition handle.
}

// String renders the bound value as substitution text.
func (e *Entry) String() string {
	switch e.Kind {
	case INTEGER:
		return fmt.Sprintf("%d", e.Int)
	case STRING, FORMAL:
		return e.Str
	default:
		return ""
	}
}

// Table is a string keyed store of entries.
type Table struct {
	Fold bool // If set, names are compared case insensitively.

	entry map[string](*Entry)
}

// NewTable creates an empty table.
func NewTable(fold bool) (tab *Table) {
	tab = &Table{
		Fold:  fold,
		entry: make(map[string](*Entry)),
	}
	return
}

func (tab *Table) key(name string) string {
	if tab.Fold {
		return strings.ToUpper(name)
	}
	return name
}

// Lookup finds an existing entry.
func (tab *Table) Lookup(name string) (e *Entry, ok bool) {
	e, ok = tab.entry[tab.key(name)]
	return
}

// Create returns the existing entry for name, or inserts a fresh INTEGER
// entry with a zero value.
func (tab *Table) Create(name string) (e *Entry) {
	if tab.entry == nil {
		tab.entry = make(map[string](*Entry))
	}

	key := tab.key(name)
	e, ok := tab.entry[key]
	if !ok {
		e = &Entry{Name: name, Kind: INTEGER}
		tab.entry[key] = e
	}

	return
}

// Reset frees the previous payload of an entry before it is rebound.
func (tab *Table) Reset(e *Entry) {
	e.Int = 0
	e.Str = ""
	e.Macro = nil
}

// BindString binds text to name. An entry that already holds a non-empty
// string can only be rebound when allowRedefine is set.
func (tab *Table) BindString(name string, text string, allowRedefine bool) (err error) {
	e := tab.Create(name)
	if e.Kind == STRING && len(e.Str) != 0 && !allowRedefine {
		err = ErrRedefined(name)
		return
	}

	tab.Reset(e)
	e.Kind = STRING
	e.Str = text

	return
}

// BindInteger binds an integer value to name, overwriting any previous value.
func (tab *Table) BindInteger(name string, value int) {
	e := tab.Create(name)
	tab.Reset(e)
	e.Kind = INTEGER
	e.Int = value
}

// BindMacro binds a macro definition handle to name.
func (tab *Table) BindMacro(name string, macro any) {
	e := tab.Create(name)
	tab.Reset(e)
	e.Kind = MACRO
	e.Macro = macro
}

// BindFormal binds a formal macro parameter, with its default text.
func (tab *Table) BindFormal(name string, index int, def string) {
	e := tab.Create(name)
	tab.Reset(e)
	e.Kind = FORMAL
	e.Int = index
	e.Str = def
}

// Len returns the number of entries.
func (tab *Table) Len() int {
	return len(tab.entry)
}

// All iterates over the entries in name order.
func (tab *Table) All() iter.Seq2[string, *Entry] {
	return func(yield func(string, *Entry) bool) {
		for _, key := range slices.Sorted(maps.Keys(tab.entry)) {
			e := tab.entry[key]
			if !yield(e.Name, e) {
				return
			}
		}
	}
}
