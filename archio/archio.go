// Package archio decodes the external JSON architecture contract
// (spec.md §6) into an arch.Spec. It is decode-only: it never validates
// routing invariants itself, leaving that to arch.New.
package archio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qcompiler/telesabre/arch"
)

// edge is the wire shape for both intra_core_edges and inter_core_edges:
// a two-element [p1, p2] array.
type edge [2]int

// document is the on-wire JSON shape (spec.md §6).
type document struct {
	Name           string      `json:"name"`
	NumQubits      int         `json:"num_qubits"`
	NumCores       int         `json:"num_cores"`
	QubitToCore    []int       `json:"qubit_to_core"`
	IntraCoreEdges []edge      `json:"intra_core_edges"`
	InterCoreEdges []edge      `json:"inter_core_edges"`
	NodePositions  [][2]float64 `json:"node_positions"`
}

// Decode reads a single JSON architecture document from r and converts it
// into an arch.Spec. It performs no validation beyond what is needed to
// build the Spec's slices; all invariant checking happens in arch.New.
func Decode(r io.Reader) (arch.Spec, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return arch.Spec{}, fmt.Errorf("archio: decode: %w", err)
	}

	spec := arch.Spec{
		Name:          doc.Name,
		NumQubits:     doc.NumQubits,
		NumCores:      doc.NumCores,
		QubitToCore:   doc.QubitToCore,
		NodePositions: doc.NodePositions,
	}
	spec.IntraCoreEdges = make([]arch.Edge, len(doc.IntraCoreEdges))
	for i, e := range doc.IntraCoreEdges {
		spec.IntraCoreEdges[i] = arch.Edge{P1: e[0], P2: e[1]}
	}
	spec.InterCoreEdges = make([]arch.Edge, len(doc.InterCoreEdges))
	for i, e := range doc.InterCoreEdges {
		spec.InterCoreEdges[i] = arch.Edge{P1: e[0], P2: e[1]}
	}
	return spec, nil
}

// Encode writes spec back out in the same JSON contract Decode reads,
// for tooling that round-trips an architecture (spec.md §6).
func Encode(w io.Writer, spec arch.Spec) error {
	doc := document{
		Name:          spec.Name,
		NumQubits:     spec.NumQubits,
		NumCores:      spec.NumCores,
		QubitToCore:   spec.QubitToCore,
		NodePositions: spec.NodePositions,
	}
	doc.IntraCoreEdges = make([]edge, len(spec.IntraCoreEdges))
	for i, e := range spec.IntraCoreEdges {
		doc.IntraCoreEdges[i] = edge{e.P1, e.P2}
	}
	doc.InterCoreEdges = make([]edge, len(spec.InterCoreEdges))
	for i, e := range spec.InterCoreEdges {
		doc.InterCoreEdges[i] = edge{e.P1, e.P2}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("archio: encode: %w", err)
	}
	return nil
}
