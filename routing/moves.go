package routing

import (
	"sort"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/circuit"
	"github.com/qcompiler/telesabre/config"
	"github.com/qcompiler/telesabre/layout"
	"github.com/qcompiler/telesabre/pqueue"
)

// Kind identifies the primitive a Candidate would apply.
type Kind int

const (
	KindSwap Kind = iota
	KindTeleport
	KindTelegate
)

// Candidate is one admissible move for the current iteration.
//
// Qubits holds (p1, p2) for a swap, (src, med, tgt) for a teleport, and
// (g1, m1, m2, g2) for a telegate. Node is the frontier DAG node a telegate
// would consume; unused otherwise.
type Candidate struct {
	Kind   Kind
	Qubits []int
	Node   int
}

// SeparatedPair is a frontier two-qubit gate whose virtual qubits
// currently sit on different cores.
type SeparatedPair struct {
	Node        int
	Virt1, Virt2 int
	Phys1, Phys2 int
	Path        []int
}

// SeparatedPairs returns every frontier gate whose endpoints are
// cross-core under l, in frontier order (spec.md §4.5 step 1).
func SeparatedPairs(a *arch.Architecture, l *layout.Layout, c *circuit.Circuit, front []int, queues *pqueue.Registry, cfg config.Config) []SeparatedPair {
	var out []SeparatedPair
	for _, node := range front {
		g := c.Gates[node]
		if !g.IsTwoQubit() {
			continue
		}
		v1, v2 := g.Targets[0], g.Targets[1]
		p1, p2 := l.GetPhys(v1), l.GetPhys(v2)
		if a.CoreOf(p1) == a.CoreOf(p2) {
			continue
		}
		cg := BuildContractedGraph(a, l, queues, cfg, [2]int{p1, p2})
		path, _ := cg.ShortestPath(p1, p2)
		out = append(out, SeparatedPair{Node: node, Virt1: v1, Virt2: v2, Phys1: p1, Phys2: p2, Path: path})
	}
	return out
}

// Enumerate produces every admissible SWAP / TELEPORT / TELEGATE candidate
// for the current frontier, per spec.md §4.5.
func Enumerate(a *arch.Architecture, l *layout.Layout, front []int, c *circuit.Circuit, queues *pqueue.Registry, cfg config.Config) []Candidate {
	separated := SeparatedPairs(a, l, c, front, queues, cfg)

	var candidates []Candidate
	candidates = append(candidates, swapCandidates(a, l, front, c, separated, queues)...)
	candidates = append(candidates, teleportCandidates(a, l, separated)...)
	candidates = append(candidates, telegateCandidates(a, l, separated)...)
	return candidates
}

// swapCandidates: every intra-core edge incident to a frontier gate's
// physical qubit, or to a nearest-free-qubit along a planned route,
// excluding edges between two free slots.
func swapCandidates(a *arch.Architecture, l *layout.Layout, front []int, c *circuit.Circuit, separated []SeparatedPair, queues *pqueue.Registry) []Candidate {
	touched := make(map[int]bool)
	for _, node := range front {
		for _, v := range c.Gates[node].Targets {
			touched[l.GetPhys(v)] = true
		}
	}
	for _, sp := range separated {
		for _, p := range sp.Path {
			if !a.IsCommQubit(p) {
				continue
			}
			if free, _, ok := queues.Nearest(p); ok {
				touched[free] = true
			}
		}
	}

	seen := make(map[[2]int]bool)
	var out []Candidate
	for p := range touched {
		for _, ei := range a.QubitToEdges[p] {
			e := a.Edges[ei]
			other := e.P1
			if other == p {
				other = e.P2
			}
			if l.IsPhysFree(e.P1) && l.IsPhysFree(e.P2) {
				continue
			}
			key := normalizedPair(e.P1, e.P2)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, Candidate{Kind: KindSwap, Qubits: []int{e.P1, e.P2}})
			_ = other
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Qubits[0] != out[j].Qubits[0] {
			return out[i].Qubits[0] < out[j].Qubits[0]
		}
		return out[i].Qubits[1] < out[j].Qubits[1]
	})
	return out
}

// teleportCandidates: forward fringe (phys(v1), mediator, target) and
// backward fringe (phys(v2), mediator, target) for every separated pair
// whose planned path supports it (spec.md §4.5 step 3).
func teleportCandidates(a *arch.Architecture, l *layout.Layout, separated []SeparatedPair) []Candidate {
	var out []Candidate
	for _, sp := range separated {
		if len(sp.Path) < 3 {
			continue
		}
		if admissibleTeleport(a, l, sp.Path[0], sp.Path[1], sp.Path[2]) {
			out = append(out, Candidate{Kind: KindTeleport, Qubits: []int{sp.Path[0], sp.Path[1], sp.Path[2]}})
		}
		n := len(sp.Path)
		if admissibleTeleport(a, l, sp.Path[n-1], sp.Path[n-2], sp.Path[n-3]) {
			out = append(out, Candidate{Kind: KindTeleport, Qubits: []int{sp.Path[n-1], sp.Path[n-2], sp.Path[n-3]}})
		}
	}
	return out
}

func admissibleTeleport(a *arch.Architecture, l *layout.Layout, src, med, tgt int) bool {
	if !l.IsPhysFree(med) || !l.IsPhysFree(tgt) {
		return false
	}
	if !a.IsCommQubit(med) || !a.IsCommQubit(tgt) {
		return false
	}
	if !a.HasEdge(src, med) || !a.HasInterCoreEdge(med, tgt) {
		return false
	}
	return l.CoreCapacity(a.CoreOf(tgt)) >= 2
}

// telegateCandidates: a separated pair whose planned path has exactly 4
// nodes (phys(v1), m1, m2, phys(v2)) with both mediators free comm qubits
// across one inter-core edge (spec.md §4.5 step 4).
func telegateCandidates(a *arch.Architecture, l *layout.Layout, separated []SeparatedPair) []Candidate {
	var out []Candidate
	for _, sp := range separated {
		if len(sp.Path) != 4 {
			continue
		}
		g1, m1, m2, g2 := sp.Path[0], sp.Path[1], sp.Path[2], sp.Path[3]
		if !l.IsPhysFree(m1) || !l.IsPhysFree(m2) {
			continue
		}
		if !a.IsCommQubit(m1) || !a.IsCommQubit(m2) {
			continue
		}
		if !a.HasEdge(g1, m1) || !a.HasInterCoreEdge(m1, m2) || !a.HasEdge(m2, g2) {
			continue
		}
		out = append(out, Candidate{Kind: KindTelegate, Qubits: []int{g1, m1, m2, g2}, Node: sp.Node})
	}
	return out
}
