package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qcompiler/telesabre/config"
)

func TestDefault_MatchesDocumentedDefaults(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "default", cfg.Name)
	assert.Equal(t, config.EnergyExtendedSet, cfg.EnergyType)
	assert.Equal(t, 0.9, cfg.DecayFactor)
	assert.Equal(t, 5, cfg.DecayReset)
	assert.False(t, cfg.OptimizeInitial)
	assert.Equal(t, 100, cfg.TeleportBonus)
	assert.Equal(t, 100, cfg.TelegateBonus)
	assert.Equal(t, 100, cfg.SafetyValveIters)
	assert.Equal(t, 20, cfg.ExtendedSetSize)
	assert.Equal(t, 10, cfg.FullCorePenalty)
	assert.Equal(t, 300, cfg.MaxSolvingDeadlockIterations)
	assert.Equal(t, 0.002, cfg.SwapDecay)
	assert.Equal(t, 0.005, cfg.TeleportDecay)
	assert.Equal(t, 0.005, cfg.TelegateDecay)
}

func TestDefault_AppliesOptions(t *testing.T) {
	cfg := config.Default(
		config.WithEnergyType(config.EnergyExponential),
		config.WithTeleportBonus(50),
		config.WithFullCorePenaltyBothFull(false),
	)
	assert.Equal(t, config.EnergyExponential, cfg.EnergyType)
	assert.Equal(t, 50, cfg.TeleportBonus)
	assert.False(t, cfg.FullCorePenaltyBothFull)
}

func TestWithDecayFactor_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() {
		config.Default(config.WithDecayFactor(0))
	})
}

func TestWithSafetyValveIters_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() {
		config.Default(config.WithSafetyValveIters(-1))
	})
}
