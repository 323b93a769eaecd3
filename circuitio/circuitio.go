// Package circuitio ingests the external circuit contract (spec.md §6):
// a flat list of (op_name, target_qubits) tuples, with no other metadata.
package circuitio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qcompiler/telesabre/circuit"
)

// GateSpec is the wire shape of one circuit entry.
type GateSpec struct {
	Op      string `json:"op"`
	Targets []int  `json:"targets"`
}

// FromGates builds a circuit.Circuit from a decoded gate list, preserving
// program order. It performs no decoding itself beyond the type
// conversion: arity and qubit-range validation happen in circuit.New.
func FromGates(numQubits int, gates []GateSpec) (*circuit.Circuit, error) {
	converted := make([]circuit.Gate, len(gates))
	for i, g := range gates {
		converted[i] = circuit.Gate{Op: g.Op, Targets: append([]int(nil), g.Targets...)}
	}
	c, err := circuit.New(numQubits, converted)
	if err != nil {
		return nil, fmt.Errorf("circuitio: %w", err)
	}
	return c, nil
}

// document is the on-wire JSON shape: qubit count plus the gate list.
type document struct {
	NumQubits int        `json:"num_qubits"`
	Gates     []GateSpec `json:"gates"`
}

// Decode reads a JSON circuit document from r and builds a circuit.Circuit.
func Decode(r io.Reader) (*circuit.Circuit, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("circuitio: decode: %w", err)
	}
	return FromGates(doc.NumQubits, doc.Gates)
}

// Encode writes c back out in the same JSON contract Decode reads.
func Encode(w io.Writer, c *circuit.Circuit) error {
	doc := document{
		NumQubits: c.NumQubits,
		Gates:     make([]GateSpec, len(c.Gates)),
	}
	for i, g := range c.Gates {
		doc.Gates[i] = GateSpec{Op: g.Op, Targets: g.Targets}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("circuitio: encode: %w", err)
	}
	return nil
}
