package symbol

// Kind is the type of value bound to an entry.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	INTEGER = Kind(0) // integer
	STRING  = Kind(1) // string
	MACRO   = Kind(2) // macro
	FORMAL  = Kind(3) // formal
)
