// File: options.go — functional options for config.Default, mirroring
// builder.BuilderOption: Option constructors validate and panic on
// meaningless inputs; Default itself never fails.
package config

// Option customizes a Config before the routing pass begins.
type Option func(*Config)

// WithName sets the configuration's label (used in metrics/CLI output).
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithEnergyType selects the cost-heuristic mode.
func WithEnergyType(t EnergyType) Option {
	return func(c *Config) { c.EnergyType = t }
}

// WithDecayFactor sets Config.DecayFactor. No energy mode reads it.
func WithDecayFactor(v float64) Option {
	if v <= 0 {
		panic("config: WithDecayFactor requires v > 0")
	}
	return func(c *Config) { c.DecayFactor = v }
}

// WithDecayReset sets the iteration count after which decay resets to 1.
func WithDecayReset(n int) Option {
	if n <= 0 {
		panic("config: WithDecayReset requires n > 0")
	}
	return func(c *Config) { c.DecayReset = n }
}

// WithTeleportBonus sets the energy bonus subtracted when a candidate is a
// teleport.
func WithTeleportBonus(v int) Option {
	return func(c *Config) { c.TeleportBonus = v }
}

// WithTelegateBonus sets the energy bonus subtracted when a candidate is a
// telegate.
func WithTelegateBonus(v int) Option {
	return func(c *Config) { c.TelegateBonus = v }
}

// WithSafetyValveIters sets how many iterations without progress the driver
// allows before it rolls back into deadlock-solving mode (spec.md §7).
func WithSafetyValveIters(n int) Option {
	if n <= 0 {
		panic("config: WithSafetyValveIters requires n > 0")
	}
	return func(c *Config) { c.SafetyValveIters = n }
}

// WithExtendedSetSize bounds how many gates beyond the frontier the
// extended-set energy mode considers.
func WithExtendedSetSize(n int) Option {
	if n < 0 {
		panic("config: WithExtendedSetSize requires n >= 0")
	}
	return func(c *Config) { c.ExtendedSetSize = n }
}

// WithFullCorePenalty sets the penalty multiplier applied when a bridging
// move's destination core is full.
func WithFullCorePenalty(v int) Option {
	return func(c *Config) { c.FullCorePenalty = v }
}

// WithFullCorePenaltyBothFull toggles the FullCorePenalty·100 lockout on an
// inter-core edge whose two cores both have fewer than 2 free slots (true).
// With false the lockout never applies, and each full non-endpoint core on
// the edge adds FullCorePenalty/2 instead.
func WithFullCorePenaltyBothFull(b bool) Option {
	return func(c *Config) { c.FullCorePenaltyBothFull = b }
}

// WithMaxSolvingDeadlockIterations caps how many restricted-mode iterations
// the deadlock recovery path may take before the driver aborts.
func WithMaxSolvingDeadlockIterations(n int) Option {
	if n <= 0 {
		panic("config: WithMaxSolvingDeadlockIterations requires n > 0")
	}
	return func(c *Config) { c.MaxSolvingDeadlockIterations = n }
}

// WithSwapDecay sets the per-swap decay growth increment.
func WithSwapDecay(v float64) Option {
	return func(c *Config) { c.SwapDecay = v }
}

// WithTeleportDecay sets the per-teleport decay growth increment.
func WithTeleportDecay(v float64) Option {
	return func(c *Config) { c.TeleportDecay = v }
}

// WithTelegateDecay sets the per-telegate decay growth increment.
func WithTelegateDecay(v float64) Option {
	return func(c *Config) { c.TelegateDecay = v }
}

// WithInitialLayout selects the seed-layout construction strategy.
func WithInitialLayout(s InitialLayoutStrategy) Option {
	return func(c *Config) { c.InitialLayout = s }
}

// WithOptimizeInitial toggles whether the three-pass refinement runs before
// the main loop regardless of InitialLayout (kept distinct from
// InitialLayoutHungarianLike so callers can request refinement atop a
// naive seed, matching the prototype's independent optimize_initial flag).
func WithOptimizeInitial(b bool) Option {
	return func(c *Config) { c.OptimizeInitial = b }
}
