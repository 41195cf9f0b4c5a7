// Package macro is the default macro processor of gasp: MACRO/ENDM
// definitions with formal parameters and defaults, LOCAL labels, and the
// IRP/IRPC iterators.
package macro
