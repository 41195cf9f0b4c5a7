// Package source implements the stack of virtual input sources that gasp
// reads from: files, and text buffers synthesized by loop unrolling and
// macro expansion.
//
// Every synthesized frame carries a generation index taken from a global
// counter, so an early exit can tell the current loop iteration apart from
// an outer loop of the same kind.
package source
