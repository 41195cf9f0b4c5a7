// Package symbol implements the string keyed tables of gasp.
//
// A Table binds names to tagged entries: an integer, a string, a macro
// definition handle or a formal macro parameter. The preprocessor keeps one
// read-only table of directive keywords, one of label substitutions and one
// of preprocessor variables.
package symbol
