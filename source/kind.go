package source

// Kind is the type of an input frame.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	FILE   = Kind(0) // file
	REPEAT = Kind(1) // repeat
	WHILE  = Kind(2) // while
	MACRO  = Kind(3) // macro
)
