// Package config holds the tunable parameters of the routing pass, mirrored
// field-for-field from the Python prototype's Config dataclass, plus the
// functional-option constructors the teacher's builder package uses for
// ergonomic test/CLI wiring.
package config

// EnergyType selects the cost-heuristic mode (spec.md §4.4).
type EnergyType int

const (
	// EnergyExtendedSet scores only the current frontier plus a bounded
	// lookahead window (default; matches the prototype's depth==0 branch).
	EnergyExtendedSet EnergyType = iota
	// EnergyExponential scores every reachable layer, weighting layer d by
	// 2^(-d/5) and the first layer by 100 (the prototype's dead branch).
	EnergyExponential
)

// InitialLayoutStrategy selects how the seed layout is constructed
// (spec.md §4.8, resolving the "initial_layout_hun_like" open question).
type InitialLayoutStrategy int

const (
	// InitialLayoutNaive fills physical qubits in physical-index order,
	// leaving the last slot of every core free (the prototype's
	// initial_layout).
	InitialLayoutNaive InitialLayoutStrategy = iota
	// InitialLayoutHungarianLike runs the three-pass forward/reverse/
	// forward refinement before settling on a seed layout.
	InitialLayoutHungarianLike
)

// Config is the full set of routing-pass parameters.
type Config struct {
	Name string

	EnergyType   EnergyType
	DecayFactor  float64 // parsed and stored; unread by EnergyExtendedSet, see DESIGN.md
	DecayReset   int
	OptimizeInitial bool

	TeleportBonus int
	TelegateBonus int

	SafetyValveIters           int
	ExtendedSetSize            int
	FullCorePenalty            int
	FullCorePenaltyBothFull    bool
	MaxSolvingDeadlockIterations int

	SwapDecay     float64
	TeleportDecay float64
	TelegateDecay float64

	InitialLayout InitialLayoutStrategy
}

// Default returns the prototype's documented defaults with opts applied on
// top.
func Default(opts ...Option) Config {
	cfg := Config{
		Name:                         "default",
		EnergyType:                   EnergyExtendedSet,
		DecayFactor:                  0.9,
		DecayReset:                   5,
		OptimizeInitial:              false,
		TeleportBonus:                100,
		TelegateBonus:                100,
		SafetyValveIters:             100,
		ExtendedSetSize:              20,
		FullCorePenalty:              10,
		FullCorePenaltyBothFull:      true,
		MaxSolvingDeadlockIterations: 300,
		SwapDecay:                    0.002,
		TeleportDecay:                0.005,
		TelegateDecay:                0.005,
		InitialLayout:                InitialLayoutHungarianLike,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
