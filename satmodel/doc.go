// Package satmodel builds a propositional CNF model incrementally and
// renders it as DIMACS: a growing variable pool keyed by small tuples of
// ints (one family per variable kind — rel, page, track, sp, st, and
// whatever a layout feature needs), a clause list built from Lit
// literals referencing those variables, and a reader for a solver's
// DIMACS result line.
//
// A Model is mutated while the encoder runs, then handed to
// Clauses/WriteDIMACS once the caller is done adding variables and
// constraints.
package satmodel
