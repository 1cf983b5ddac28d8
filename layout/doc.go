// Package layout wires glayout's graph model and satmodel's CNF builder
// into the linear-layout encoder: order/page/track variable creation,
// the flavor-specific forbidden-pattern encoders (stack/queue/track/
// mixed/mixed-page), the optional feature encoders (trees, adjacency,
// directed, dispersible, local), a symmetry breaker, a closed-form
// lower-bound oracle, and a decoder that rebuilds a layout from a
// solver's DIMACS result.
//
// Run is the package's single entry point, the orchestrator: it drives
// the pipeline lower-bound check → structural encoding → feature
// encoders → symmetry breaker → custom constraints → DIMACS emit →
// optional DIMACS consume and decode.
package layout
