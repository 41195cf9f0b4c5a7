// Package gasp is a preprocessor for assembly source.
//
// A Session reads assembly source and writes it with macros expanded,
// conditional blocks resolved, loops unrolled and preprocessor variables
// substituted, ready for a downstream assembler.
//
// The native dialect spells directives with a leading dot, as in
//
//	COUNT	.ASSIGNA 3
//		.AREPEAT \&COUNT
//		.DATA.B	0
//		.AENDR
//
// The alternate dialect drops the dot, and the MRI dialect adds the
// IFxx, ENDC, ELSEC, REPT and MEXIT spellings.
package gasp
