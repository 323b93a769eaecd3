// Package routing builds the per-iteration contracted communication graph
// (spec.md §4.3), scores hypothetical layouts (§4.4), and enumerates SWAP /
// TELEPORT / TELEGATE candidates (§4.5).
//
// Grounded on the Python prototype's sabre_mapping: its contracted_graph
// (a clique over each core's communication qubits plus the raw inter-core
// edges) is generalized here with the occupancy and traffic penalties the
// distilled spec adds on top, and its shortest-path search is reimplemented
// with the teacher's lazy-decrease-key container/heap idiom
// (dijkstra/dijkstra.go) instead of networkx.
package routing

import (
	"container/heap"
	"math"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/config"
	"github.com/qcompiler/telesabre/layout"
	"github.com/qcompiler/telesabre/pqueue"
)

// ContractedGraph is a sparse weighted graph over physical qubits, rebuilt
// fresh for one separated pair within one iteration.
type ContractedGraph struct {
	adj   map[int]map[int]float64
	nodes map[int]bool
	arch  *arch.Architecture
}

func newContractedGraph() *ContractedGraph {
	return &ContractedGraph{adj: make(map[int]map[int]float64), nodes: make(map[int]bool)}
}

func (g *ContractedGraph) addEdge(u, v int, w float64) {
	g.nodes[u], g.nodes[v] = true, true
	if g.adj[u] == nil {
		g.adj[u] = make(map[int]float64)
	}
	if g.adj[v] == nil {
		g.adj[v] = make(map[int]float64)
	}
	if cur, ok := g.adj[u][v]; !ok || w < cur {
		g.adj[u][v] = w
		g.adj[v][u] = w
	}
}

// BuildContractedGraph constructs the graph used to route between
// endpoints[0] and endpoints[1] (physical qubits), per spec.md §4.3:
//   - a clique on each core's communication qubits, weighted by intra-core
//     distance;
//   - every inter-core edge, base weight 2;
//   - fringe edges from each endpoint to every communication qubit in its
//     own core (weight = intra-core distance; +1 if the endpoint is itself
//     a communication qubit, the "gate-on-comm" penalty);
//   - an occupancy penalty added to edges touching a comm qubit whose core
//     is neither endpoint's core.
func BuildContractedGraph(a *arch.Architecture, l *layout.Layout, queues *pqueue.Registry, cfg config.Config, endpoints [2]int) *ContractedGraph {
	g := newContractedGraph()
	g.arch = a
	p1, p2 := endpoints[0], endpoints[1]
	core1, core2 := a.CoreOf(p1), a.CoreOf(p2)

	for c := 0; c < a.NumCores; c++ {
		comm := a.CoreCommQubits[c]
		for i := range comm {
			for j := i + 1; j < len(comm); j++ {
				g.addEdge(comm[i], comm[j], a.LocalDist.At(comm[i], comm[j]))
			}
		}
	}

	for _, e := range a.InterCoreEdges {
		w := 2.0
		w += occupancyPenalty(a, l, queues, cfg, e.P1, e.P2, core1, core2)
		g.addEdge(e.P1, e.P2, w)
	}

	addFringe(g, a, p1, core1)
	addFringe(g, a, p2, core2)

	return g
}

func addFringe(g *ContractedGraph, a *arch.Architecture, p, core int) {
	for _, c := range a.CoreCommQubits[core] {
		if c == p {
			continue
		}
		w := a.LocalDist.At(p, c)
		if a.IsCommQubit(p) {
			w += 1 // gate-on-comm penalty
		}
		g.addEdge(p, c, w)
	}
}

// occupancyPenalty implements spec.md §4.3's endpoint/non-endpoint comm
// qubit occupancy terms for the inter-core edge (c1, c2).
func occupancyPenalty(a *arch.Architecture, l *layout.Layout, queues *pqueue.Registry, cfg config.Config, c1, c2, endpointCore1, endpointCore2 int) float64 {
	core1, core2 := a.CoreOf(c1), a.CoreOf(c2)
	isEndpointCore := func(c int) bool { return c == endpointCore1 || c == endpointCore2 }

	full1 := l.CoreCapacity(core1) < 2
	full2 := l.CoreCapacity(core2) < 2

	if cfg.FullCorePenaltyBothFull && full1 && full2 && core1 != core2 {
		return float64(cfg.FullCorePenalty) * 100
	}

	var penalty float64
	_, qmin1, ok1 := queues.Nearest(c1)
	if !ok1 {
		qmin1 = 0
	}
	_, qmin2, ok2 := queues.Nearest(c2)
	if !ok2 {
		qmin2 = 0
	}

	if isEndpointCore(core1) {
		penalty += qmin1
	} else {
		if full1 {
			penalty += float64(cfg.FullCorePenalty) / 2
		}
		penalty += qmin1 / 2
	}
	if isEndpointCore(core2) {
		penalty += qmin2
	} else {
		if full2 {
			penalty += float64(cfg.FullCorePenalty) / 2
		}
		penalty += qmin2 / 2
	}
	return penalty
}

// ApplyTraffic implements §4.3's traffic penalty: every inter-core edge on
// path gets +1 weight for subsequent shortest-path queries within the same
// energy evaluation.
func (g *ContractedGraph) ApplyTraffic(path []int) {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if _, ok := g.adj[u][v]; ok && g.arch.HasInterCoreEdge(u, v) {
			g.adj[u][v]++
			g.adj[v][u]++
		}
	}
}

type heapItem struct {
	node int
	dist float64
}

type nodeHeap []heapItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// ShortestPath computes the shortest path from p1 to p2 in g using a
// lazy-decrease-key Dijkstra (the teacher's dijkstra.go idiom, adapted to
// int node IDs and float64 weights). Returns the path (inclusive of both
// endpoints) and its total weight; a nil path means p2 is unreachable.
func (g *ContractedGraph) ShortestPath(p1, p2 int) ([]int, float64) {
	dist := make(map[int]float64)
	prev := make(map[int]int)
	visited := make(map[int]bool)
	dist[p1] = 0

	h := &nodeHeap{{node: p1, dist: 0}}
	heap.Init(h)

	for h.Len() > 0 {
		item := heap.Pop(h).(heapItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == p2 {
			break
		}
		for v, w := range g.adj[u] {
			if visited[v] {
				continue
			}
			nd := dist[u] + w
			if cur, ok := dist[v]; !ok || nd < cur {
				dist[v] = nd
				prev[v] = u
				heap.Push(h, heapItem{node: v, dist: nd})
			}
		}
	}

	d, ok := dist[p2]
	if !ok {
		return nil, math.Inf(1)
	}
	var path []int
	for cur := p2; ; {
		path = append([]int{cur}, path...)
		if cur == p1 {
			break
		}
		cur = prev[cur]
	}
	return path, d
}
