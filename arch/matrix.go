// File: matrix.go
// Role: a small dense float64 matrix with an in-place Floyd-Warshall closure,
// adapted from lvlath/matrix's Dense + FloydWarshall for this package's one
// use: all-pairs shortest paths over a handful of physical-qubit graphs.
//
// Contract (same as the source it is adapted from):
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before closure.
//   - Loop order is fixed (k -> i -> j) for deterministic accumulation.
package arch

import (
	"fmt"
	"math"
)

// Matrix is a row-major square matrix of float64 distances.
type Matrix struct {
	n    int       // dimension (n x n)
	data []float64 // flat backing storage, length n*n
}

// NewMatrix allocates an n x n Matrix with every off-diagonal entry set to
// +Inf ("no path") and every diagonal entry set to 0.
//
// Complexity: O(n^2).
func NewMatrix(n int) *Matrix {
	data := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				data[i*n+j] = math.Inf(1)
			}
		}
	}
	return &Matrix{n: n, data: data}
}

// Dim returns the matrix's dimension.
func (m *Matrix) Dim() int { return m.n }

// At returns m[i][j]. Panics on out-of-range indices: this is an internal
// type used only with indices already validated as qubit IDs.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Set assigns m[i][j] = v.
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.n+j] = v
}

// AddEdge records an undirected edge (i, j) of the given weight, keeping
// the shorter of any existing and the new weight (parallel-edge safe).
func (m *Matrix) AddEdge(i, j int, weight float64) {
	if weight < m.At(i, j) {
		m.Set(i, j, weight)
		m.Set(j, i, weight)
	}
}

// Closure runs the all-pairs-shortest-path closure in place.
//
// Fixed k -> i -> j loop order for deterministic accumulation, matching
// lvlath/matrix's FloydWarshall. Time: O(n^3); extra space O(1).
func (m *Matrix) Closure() {
	n := m.n
	data := m.data
	var k, i, j, baseK, baseI int
	var ik, kj, ij, cand float64
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if cand < ij {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// String renders the matrix for debugging (small matrices only).
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%dx%d)", m.n, m.n)
}
