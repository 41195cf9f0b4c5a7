// Package expr evaluates gasp expressions.
//
// Values are quasi-relocatable: a number plus at most one positive and one
// negative symbolic term, carried through arithmetic unresolved so they can
// be rendered back as text for the downstream assembler.
//
// Precedence, lowest first: | and infix ~ (xor), &, + and -, * and /, then
// unary + - ~ and parentheses.
package expr
