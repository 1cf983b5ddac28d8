// Package bob encodes linear-layout feasibility questions — does an
// undirected graph admit a stack, queue, track, mixed, or mixed-page
// layout under a given resource budget? — as DIMACS CNF SAT instances,
// and decodes a solver's satisfying assignment back into a concrete
// layout.
//
// Three subpackages carry the pipeline:
//
//	glayout/  — the frozen input graph, its side-channels, and the
//	            per-flavor resource-budget parameters
//	satmodel/ — the SAT variable registry and DIMACS CNF codec
//	layout/   — the flavor encoders, optional feature encoders,
//	            symmetry breaking, lower-bound oracle, and decoder
//
// layout.Run is the orchestrator entry point: given a *glayout.Graph
// and a *glayout.Params, it returns a three-valued Sat/Unsat/
// Indeterminate Outcome.
package bob
