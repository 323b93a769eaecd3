package sabre

import (
	"context"
	"math/rand"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/circuit"
	"github.com/qcompiler/telesabre/config"
	"github.com/qcompiler/telesabre/layout"
)

// naiveLayoutMapping distributes virtual qubits to physical slots core by
// core, reserving at least one free slot per core (spec.md §4.8,
// grounded on the Python prototype's initial_layout).
func naiveLayoutMapping(a *arch.Architecture, numVirtual int) []int {
	remaining := make([]int, a.NumCores)
	for c := range remaining {
		remaining[c] = a.CoreCapacityTotal(c)
	}
	physToVirt := make([]int, a.NumQubits)
	virt := 0
	virtEmpty := numVirtual
	for p := 0; p < a.NumQubits; p++ {
		core := a.CoreOf(p)
		if remaining[core] > 1 && virt < numVirtual {
			remaining[core]--
			physToVirt[p] = virt
			virt++
		} else {
			physToVirt[p] = virtEmpty
			virtEmpty++
		}
	}
	return physToVirt
}

// buildInitialLayout constructs the seed layout per spec.md §4.8: a naive
// distribution, optionally refined by a three-pass forward/reverse/stitched
// anneal when cfg requests it. Pass 2 runs over circuit.Stitched(c,
// reversed) rather than over c a second time, so the layout the reverse
// pass leaves behind is judged against the same forward-then-undo
// continuity the stitched DAG's terminal-layer join models, instead of
// restarting cold at c's first layer.
func buildInitialLayout(a *arch.Architecture, c *circuit.Circuit, cfg config.Config, rng *rand.Rand, hooks Hooks) (*layout.Layout, error) {
	l, err := layout.New(a, naiveLayoutMapping(a, c.NumQubits), c.NumQubits)
	if err != nil {
		return nil, err
	}
	if cfg.InitialLayout != config.InitialLayoutHungarianLike && !cfg.OptimizeInitial {
		return l, nil
	}

	hooks.pass(InitialPass0)
	pass0, err := routeForLayoutOnly(a, c, cfg, rng, l)
	if err != nil {
		return nil, err
	}

	reversed := c.Reversed()
	hooks.pass(InitialPass1)
	pass1, err := routeForLayoutOnly(a, reversed, cfg, rng, pass0)
	if err != nil {
		return nil, err
	}

	hooks.pass(InitialPass2)
	stitched := c.Stitched(c, reversed)
	pass2, err := routeForLayoutOnly(a, stitched, cfg, rng, pass1)
	if err != nil {
		return nil, err
	}
	return pass2, nil
}

// routeForLayoutOnly runs the main loop over circ starting from seed, to
// completion or abort, and returns the resulting layout. Operations and
// metrics are discarded: only the final layout matters to the caller.
func routeForLayoutOnly(a *arch.Architecture, circ *circuit.Circuit, cfg config.Config, rng *rand.Rand, seed *layout.Layout) (*layout.Layout, error) {
	ds := newDriverState(a, circ, cfg, rng, seed.Clone())
	if _, err := ds.runMainLoop(context.Background(), Hooks{}); err != nil {
		return nil, err
	}
	return ds.l, nil
}
