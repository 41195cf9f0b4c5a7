package gasp

// Severity grades a diagnostic.
type Severity int

//go:generate go tool stringer -linecomment -type=Severity
const (
	WARNING = Severity(0) // Warning
	ERROR   = Severity(1) // Error
	FATAL   = Severity(2) // Fatal
)
