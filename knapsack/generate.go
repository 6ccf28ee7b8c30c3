// Package knapsack - deterministic instance generation.
//
// Goals:
//   - Determinism: same GenConfig ⇒ identical TaskSet across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every Generate call owns its stream.
package knapsack

import "math/rand"

// defaultGenSeed is the fixed seed used when GenConfig.Seed == 0.
const defaultGenSeed int64 = 1

// GenConfig describes a random instance.
//
// Fields:
//   - N:                        number of tasks (≥ 0).
//   - Seed:                     RNG seed; 0 selects defaultGenSeed.
//   - MinDuration, MaxDuration: inclusive duration range (0 ≤ Min ≤ Max).
//   - MinValue, MaxValue:       inclusive value range (0 ≤ Min ≤ Max).
//   - Capacity:                 explicit budget when ≥ 0.
//   - CapacityRatio:            used when Capacity < 0: budget = ⌊ratio·Σduration⌋.
type GenConfig struct {
	N             int
	Seed          int64
	MinDuration   int
	MaxDuration   int
	MinValue      int
	MaxValue      int
	Capacity      int
	CapacityRatio float64
}

// DefaultGenConfig returns a config for n tasks with durations 1..20, values 1..50
// and a budget of half the total duration.
func DefaultGenConfig(n int) GenConfig {
	return GenConfig{
		N:             n,
		Seed:          0,
		MinDuration:   1,
		MaxDuration:   20,
		MinValue:      1,
		MaxValue:      50,
		Capacity:      -1,
		CapacityRatio: 0.5,
	}
}

// rngFromSeed returns a deterministic *rand.Rand (seed 0 ⇒ defaultGenSeed).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultGenSeed
	}

	return rand.New(rand.NewSource(s))
}

// intIn draws uniformly from [lo, hi].
func intIn(r *rand.Rand, lo, hi int) int {
	if hi == lo {
		return lo
	}

	return lo + r.Intn(hi-lo+1)
}

// Generate builds a random TaskSet from cfg.
//
// Errors: ErrInvalidGenConfig for negative N, empty or negative ranges,
// or a negative ratio when the capacity is derived.
//
// Complexity: O(n).
func Generate(cfg GenConfig) (TaskSet, error) {
	if cfg.N < 0 ||
		cfg.MinDuration < 0 || cfg.MaxDuration < cfg.MinDuration ||
		cfg.MinValue < 0 || cfg.MaxValue < cfg.MinValue ||
		(cfg.Capacity < 0 && cfg.CapacityRatio < 0) {
		return TaskSet{}, ErrInvalidGenConfig
	}

	var (
		r     = rngFromSeed(cfg.Seed)
		tasks = make([]Task, cfg.N)
		total int
		i     int
	)
	for i = 0; i < cfg.N; i++ {
		tasks[i].Duration = intIn(r, cfg.MinDuration, cfg.MaxDuration)
		tasks[i].Value = intIn(r, cfg.MinValue, cfg.MaxValue)
		total += tasks[i].Duration
	}

	capacity := cfg.Capacity
	if capacity < 0 {
		capacity = int(cfg.CapacityRatio * float64(total))
	}

	return NewTaskSet(capacity, tasks)
}
