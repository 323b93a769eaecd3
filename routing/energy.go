package routing

import (
	"math"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/circuit"
	"github.com/qcompiler/telesabre/config"
	"github.com/qcompiler/telesabre/layout"
	"github.com/qcompiler/telesabre/pqueue"
)

// Mode selects the energy heuristic variant (spec.md §4.4).
type Mode int

const (
	// ModeExtendedSet scores the frontier at full weight and ignores
	// deeper layers beyond the extended-set budget (default).
	ModeExtendedSet Mode = iota
	// ModeExponential scores every reachable layer with an exponential
	// depth decay, layer 0 boosted.
	ModeExponential
)

// remainingLayers walks c's DAG from removed forward, yielding successive
// topological generations of not-yet-removed gates (c.Frontier generalized
// to every subsequent layer, since c itself never mutates).
func remainingLayers(c *circuit.Circuit, removed map[int]bool) [][]int {
	r := make(map[int]bool, len(removed)+8)
	for k, v := range removed {
		r[k] = v
	}
	var layers [][]int
	for len(r) < len(c.Gates) {
		front := c.Frontier(r)
		if len(front) == 0 {
			break
		}
		layers = append(layers, front)
		for _, n := range front {
			r[n] = true
		}
	}
	return layers
}

// Energy computes the scalar cost of hyp against c's remaining gates
// (those not in removed), per spec.md §4.4.
//
// queues supplies nearest-free-qubit distances for cross-core routing; a
// ContractedGraph is built and its traffic updated per layer, mirroring
// the prototype's per-layer traffic accumulation. When restrictToFirst is
// set (deadlock-solving mode, §4.7), only the first two-qubit gate of the
// frontier is scored.
func Energy(c *circuit.Circuit, removed map[int]bool, hyp *layout.Layout, a *arch.Architecture, queues *pqueue.Registry, decayFactor float64, cfg config.Config, mode Mode, restrictToFirst bool) float64 {
	layers := remainingLayers(c, removed)
	if len(layers) == 0 {
		return 0
	}

	if restrictToFirst {
		first := firstTwoQubitGate(c, layers[0])
		if first < 0 {
			return 0
		}
		layers = [][]int{{first}}
	}

	var front, future float64
	var frontCount, futureCount int
	var seenTwoQubit int

	for depth, layer := range layers {
		var lookahead float64
		switch mode {
		case ModeExponential:
			if depth == 0 {
				lookahead = 100
			} else {
				lookahead = math.Pow(2, -float64(depth)/5)
			}
		default: // ModeExtendedSet
			lookahead = 1
		}

		graphCache := make(map[[2]int]*ContractedGraph)

		for _, node := range layer {
			g := c.Gates[node]
			if !g.IsTwoQubit() {
				continue
			}
			if mode == ModeExtendedSet && depth > 0 {
				if seenTwoQubit >= cfg.ExtendedSetSize {
					continue
				}
				seenTwoQubit++
			}

			p1, p2 := hyp.GetPhys(g.Targets[0]), hyp.GetPhys(g.Targets[1])
			var d float64
			if a.CoreOf(p1) == a.CoreOf(p2) {
				d = a.LocalDist.At(p1, p2)
			} else {
				key := normalizedPair(a.CoreOf(p1), a.CoreOf(p2))
				cg, ok := graphCache[key]
				if !ok {
					cg = BuildContractedGraph(a, hyp, queues, cfg, [2]int{p1, p2})
					graphCache[key] = cg
				} else {
					// The cached graph has fringe edges only for the gate it
					// was built for; connect this gate's endpoints as well.
					addFringe(cg, a, p1, a.CoreOf(p1))
					addFringe(cg, a, p2, a.CoreOf(p2))
				}
				path, dist := cg.ShortestPath(p1, p2)
				d = dist
				if path != nil {
					cg.ApplyTraffic(path)
				}
			}

			if depth == 0 {
				front += d * lookahead
				frontCount++
			} else {
				future += d * lookahead
				futureCount++
			}
		}
	}

	frontAvg := front
	if frontCount > 0 {
		frontAvg = front / float64(frontCount)
	}
	futureAvg := future
	if futureCount > 0 {
		futureAvg = future / float64(futureCount)
	}

	return (frontAvg + 0.05*futureAvg) * decayFactor
}

func firstTwoQubitGate(c *circuit.Circuit, frontier []int) int {
	for _, node := range frontier {
		if c.Gates[node].IsTwoQubit() {
			return node
		}
	}
	if len(frontier) > 0 {
		return frontier[0]
	}
	return -1
}

func normalizedPair(a, b int) [2]int {
	if a <= b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
