package sabre

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/circuit"
	"github.com/qcompiler/telesabre/config"
	"github.com/qcompiler/telesabre/layout"
	"github.com/qcompiler/telesabre/metrics"
	"github.com/qcompiler/telesabre/pqueue"
	"github.com/qcompiler/telesabre/routing"
)

const isCloseTolerance = 1e-9

// driverState is the mutable state of one routing run: the layout, the
// per-comm-qubit nearest-free-qubit registry, per-qubit decay, the set of
// already-executed DAG nodes, and deadlock bookkeeping.
type driverState struct {
	a   *arch.Architecture
	c   *circuit.Circuit
	cfg config.Config
	rng *rand.Rand

	l       *layout.Layout
	queues  *pqueue.Registry
	decay   []float64
	removed map[int]bool

	ops                     []Op
	swaps, teleports, telegates int

	iterationsSinceProgress int
	solvingDeadlock         bool
	deadlockBudget          int
	deadlocksRecovered      int

	lastProgress snapshot
}

type snapshot struct {
	l       *layout.Layout
	queues  *pqueue.Registry
	removed map[int]bool
	ops     []Op
	swaps, teleports, telegates int
}

func newDriverState(a *arch.Architecture, c *circuit.Circuit, cfg config.Config, rng *rand.Rand, l *layout.Layout) *driverState {
	decay := make([]float64, a.NumQubits)
	for i := range decay {
		decay[i] = 1.0
	}
	ds := &driverState{
		a:       a,
		c:       c,
		cfg:     cfg,
		rng:     rng,
		l:       l,
		queues:  initialQueues(a, l),
		decay:   decay,
		removed: make(map[int]bool, len(c.Gates)),
	}
	ds.lastProgress = ds.snapshot()
	return ds
}

func initialQueues(a *arch.Architecture, l *layout.Layout) *pqueue.Registry {
	r := pqueue.NewRegistry()
	for _, pc := range a.CommunicationQubits {
		core := a.CoreOf(pc)
		for _, p := range a.CoreQubits[core] {
			if l.IsPhysFree(p) {
				r.For(pc).AddOrUpdate(p, a.LocalDist.At(pc, p))
			}
		}
	}
	return r
}

func (ds *driverState) snapshot() snapshot {
	return snapshot{
		l:         ds.l.Clone(),
		queues:    ds.queues.Clone(),
		removed:   copyRemoved(ds.removed),
		ops:       append([]Op(nil), ds.ops...),
		swaps:     ds.swaps,
		teleports: ds.teleports,
		telegates: ds.telegates,
	}
}

func (ds *driverState) restore(s snapshot) {
	ds.l = s.l
	ds.queues = s.queues
	ds.removed = copyRemoved(s.removed)
	ds.ops = append([]Op(nil), s.ops...)
	ds.swaps = s.swaps
	ds.teleports = s.teleports
	ds.telegates = s.telegates
}

func copyRemoved(m map[int]bool) map[int]bool {
	c := make(map[int]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Run executes the TeleSABRE driver over c on architecture a, to
// completion, cooperative cancellation, or deadlock-budget exhaustion.
func Run(ctx context.Context, a *arch.Architecture, c *circuit.Circuit, cfg config.Config, seed int64, hooks Hooks) (Result, error) {
	rng := rand.New(rand.NewSource(seed))
	initLayout, err := buildInitialLayout(a, c, cfg, rng, hooks)
	if err != nil {
		return Result{}, err
	}
	firstLayout := append([]int(nil), initLayout.PhysToVirt...)

	ds := newDriverState(a, c, cfg, rng, initLayout)
	result, err := ds.runMainLoop(ctx, hooks)
	result.FirstLayout = firstLayout
	return result, err
}

func (ds *driverState) runMainLoop(ctx context.Context, hooks Hooks) (Result, error) {
	iter := 0
	for len(ds.removed) < len(ds.c.Gates) {
		select {
		case <-ctx.Done():
			return ds.result(false), nil
		default:
		}

		front := ds.c.Frontier(ds.removed)
		if ds.solvingDeadlock && len(front) > 0 {
			front = []int{front[0]}
		}
		hooks.iteration(iter, len(front))

		if ds.executeReady(front, hooks) {
			ds.iterationsSinceProgress = 0
			ds.solvingDeadlock = false
			ds.lastProgress = ds.snapshot()
		} else {
			cand, err := ds.bestCandidate(front)
			if err != nil {
				return ds.result(false), err
			}
			if ds.commit(cand, hooks) {
				ds.iterationsSinceProgress = 0
				ds.solvingDeadlock = false
				ds.lastProgress = ds.snapshot()
			} else {
				ds.iterationsSinceProgress++
			}
		}

		if ds.iterationsSinceProgress > ds.cfg.SafetyValveIters && !ds.solvingDeadlock {
			hooks.deadlock(iter, iter-ds.iterationsSinceProgress)
			ds.restore(ds.lastProgress)
			ds.solvingDeadlock = true
			ds.deadlocksRecovered++
			ds.deadlockBudget = ds.cfg.MaxSolvingDeadlockIterations
			ds.iterationsSinceProgress = 0
		}
		if ds.solvingDeadlock {
			ds.deadlockBudget--
			if ds.deadlockBudget <= 0 {
				return ds.result(true), nil
			}
		}

		iter++
		if iter%ds.cfg.DecayReset == 0 {
			for i := range ds.decay {
				ds.decay[i] = 1.0
			}
		}
	}
	return ds.result(false), nil
}

// executeReady drains every frontier gate whose physical qubits are
// currently adjacent, in node-index order (spec.md §5(c)). Returns whether
// any gate executed.
func (ds *driverState) executeReady(front []int, hooks Hooks) bool {
	sorted := append([]int(nil), front...)
	sort.Ints(sorted)

	executed := false
	for _, node := range sorted {
		g := ds.c.Gates[node]
		if !ds.l.CanExecuteGate(g) {
			continue
		}
		qubits := make([]int, len(g.Targets))
		for i, v := range g.Targets {
			qubits[i] = ds.l.GetPhys(v)
		}
		op := Op{Kind: OpGate, Qubits: qubits, GateNode: node}
		ds.ops = append(ds.ops, op)
		ds.removed[node] = true
		hooks.commit(op)
		executed = true
	}
	return executed
}

// bestCandidate scores every admissible move and returns one chosen
// uniformly at random among those within isCloseTolerance of the minimum
// score (spec.md §4.6).
func (ds *driverState) bestCandidate(front []int) (routing.Candidate, error) {
	cands := routing.Enumerate(ds.a, ds.l, front, ds.c, ds.queues, ds.cfg)
	if len(cands) == 0 {
		return routing.Candidate{}, ErrEmptyCandidateSet
	}

	scores := make([]float64, len(cands))
	for i, cand := range cands {
		scores[i] = ds.score(cand)
	}

	minScore := math.Inf(1)
	for _, s := range scores {
		if s < minScore {
			minScore = s
		}
	}
	var ties []int
	for i, s := range scores {
		if math.Abs(s-minScore) < isCloseTolerance {
			ties = append(ties, i)
		}
	}
	return cands[ties[ds.rng.Intn(len(ties))]], nil
}

func (ds *driverState) mode() routing.Mode {
	if ds.cfg.EnergyType == config.EnergyExponential {
		return routing.ModeExponential
	}
	return routing.ModeExtendedSet
}

func (ds *driverState) score(cand routing.Candidate) float64 {
	switch cand.Kind {
	case routing.KindSwap:
		p1, p2 := cand.Qubits[0], cand.Qubits[1]
		undo, err := ds.l.ApplySwap(p1, p2)
		if err != nil {
			return math.Inf(1)
		}
		defer undo()
		decay := math.Max(ds.decay[p1], ds.decay[p2])
		return routing.Energy(ds.c, ds.removed, ds.l, ds.a, ds.queues, decay, ds.cfg, ds.mode(), ds.solvingDeadlock)

	case routing.KindTeleport:
		src, med, tgt := cand.Qubits[0], cand.Qubits[1], cand.Qubits[2]
		undo, err := ds.l.ApplyTeleport(src, med, tgt)
		if err != nil {
			return math.Inf(1)
		}
		defer undo()
		decay := math.Max(ds.decay[src], math.Max(ds.decay[med], ds.decay[tgt]))
		return routing.Energy(ds.c, ds.removed, ds.l, ds.a, ds.queues, decay, ds.cfg, ds.mode(), ds.solvingDeadlock) - float64(ds.cfg.TeleportBonus)

	default: // routing.KindTelegate
		decay := 1.0
		for _, q := range cand.Qubits {
			decay = math.Max(decay, ds.decay[q])
		}
		return routing.Energy(ds.c, ds.removed, ds.l, ds.a, ds.queues, decay, ds.cfg, ds.mode(), ds.solvingDeadlock) - float64(ds.cfg.TelegateBonus)
	}
}

// commit applies the chosen candidate, updates decay and the nearest-free
// registry, and records the emitted Op (spec.md §4.6). It reports whether
// the candidate executed a gate (a telegate), which counts as progress the
// same as executeReady does.
func (ds *driverState) commit(cand routing.Candidate, hooks Hooks) bool {
	switch cand.Kind {
	case routing.KindSwap:
		p1, p2 := cand.Qubits[0], cand.Qubits[1]
		_ = ds.l.Swap(p1, p2)
		ds.decay[p1] += ds.cfg.SwapDecay
		ds.decay[p2] += ds.cfg.SwapDecay
		ds.updateQueuesAfterSwap(p1, p2)
		ds.swaps++
		op := Op{Kind: OpSwap, Qubits: []int{p1, p2}, GateNode: -1}
		ds.ops = append(ds.ops, op)
		hooks.commit(op)

	case routing.KindTeleport:
		src, med, tgt := cand.Qubits[0], cand.Qubits[1], cand.Qubits[2]
		_ = ds.l.Teleport(src, med, tgt)
		ds.decay[src] += ds.cfg.TeleportDecay
		ds.decay[med] += ds.cfg.TeleportDecay
		ds.decay[tgt] += ds.cfg.TeleportDecay
		ds.updateQueuesAfterTeleport(src, tgt)
		ds.teleports++
		op := Op{Kind: OpTeleport, Qubits: []int{src, med, tgt}, GateNode: -1}
		ds.ops = append(ds.ops, op)
		hooks.commit(op)

	case routing.KindTelegate:
		g1, m1, m2, g2 := cand.Qubits[0], cand.Qubits[1], cand.Qubits[2], cand.Qubits[3]
		ds.removed[cand.Node] = true
		for _, q := range cand.Qubits {
			ds.decay[q] += ds.cfg.TelegateDecay
		}
		ds.telegates++
		op := Op{Kind: OpTelegate, Qubits: []int{g1, m1, m2, g2}, GateNode: cand.Node}
		ds.ops = append(ds.ops, op)
		hooks.commit(op)
		return true
	}
	return false
}

// updateQueuesAfterSwap refreshes every comm qubit's registry entry in the
// affected core for both endpoints (spec.md §4.6).
func (ds *driverState) updateQueuesAfterSwap(p1, p2 int) {
	core := ds.a.CoreOf(p1)
	for _, q := range ds.a.CoreCommQubits[core] {
		for _, p := range [2]int{p1, p2} {
			if ds.l.IsPhysFree(p) {
				ds.queues.For(q).AddOrUpdate(p, ds.a.LocalDist.At(q, p))
			} else {
				ds.queues.For(q).Remove(p)
			}
		}
	}
}

// updateQueuesAfterTeleport removes tgt (now occupied) from its core's
// comm-qubit queues and adds src (now free) to its core's (spec.md §4.6).
func (ds *driverState) updateQueuesAfterTeleport(src, tgt int) {
	tgtCore := ds.a.CoreOf(tgt)
	for _, q := range ds.a.CoreCommQubits[tgtCore] {
		ds.queues.For(q).Remove(tgt)
	}
	srcCore := ds.a.CoreOf(src)
	for _, q := range ds.a.CoreCommQubits[srcCore] {
		ds.queues.For(q).AddOrUpdate(src, ds.a.LocalDist.At(q, src))
	}
}

func (ds *driverState) result(aborted bool) Result {
	metricOps := make([]metrics.Op, len(ds.ops))
	for i, op := range ds.ops {
		metricOps[i] = metrics.Op{Kind: metrics.OpKind(op.Kind), Qubits: op.Qubits}
	}
	summary := metrics.Compute(metricOps)

	return Result{
		Ops:                append([]Op(nil), ds.ops...),
		Swaps:              ds.swaps,
		Teleports:          ds.teleports,
		Telegates:          ds.telegates,
		Depth:              summary.Depth,
		InterCoreDepth:     summary.InterCoreDepth,
		DeadlocksRecovered: ds.deadlocksRecovered,
		Aborted:            aborted,
	}
}
