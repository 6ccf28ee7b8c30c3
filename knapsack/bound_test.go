package knapsack_test

import (
	"testing"

	"github.com/katalvlaran/taskpack/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBound_Infeasible(t *testing.T) {
	o := knapsack.SortByDensity(mustTaskSet(t, 5, [2]int{2, 3}, [2]int{3, 4}))
	assert.Equal(t, 0.0, knapsack.Bound(o, knapsack.Node{Level: -1, Value: 50, Weight: 6}))
}

func TestBound_WholeTasksOnly(t *testing.T) {
	// 2+3 fills the budget exactly; the third task contributes a zero fraction.
	o := knapsack.SortByDensity(mustTaskSet(t, 5, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}))
	assert.Equal(t, 7.0, knapsack.Bound(o, knapsack.Node{Level: -1}))
}

func TestBound_Fractional(t *testing.T) {
	// capacity 4: take (2,3), then 2/3 of (3,4).
	o := knapsack.SortByDensity(mustTaskSet(t, 4, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}))
	assert.InDelta(t, 3.0+2.0*4.0/3.0, knapsack.Bound(o, knapsack.Node{Level: -1}), 1e-12)

	// From a node that already decided position 0 (excluded).
	assert.InDelta(t, 4.0+1.0*5.0/4.0, knapsack.Bound(o, knapsack.Node{Level: 0}), 1e-12)
}

func TestBound_FullCapacityKeepsFreeTasks(t *testing.T) {
	// capacity 0: only the free task can still be added.
	o := knapsack.SortByDensity(mustTaskSet(t, 0, [2]int{1, 9}, [2]int{0, 7}))
	assert.Equal(t, 7.0, knapsack.Bound(o, knapsack.Node{Level: -1}))

	// Ordinary tasks only: a full node is bounded by its own value.
	o = knapsack.SortByDensity(mustTaskSet(t, 3, [2]int{3, 6}, [2]int{1, 1}))
	assert.Equal(t, 6.0, knapsack.Bound(o, knapsack.Node{Level: 0, Value: 6, Weight: 3, Items: []int{0}}))
}

func TestBound_NeverBelowOptimum(t *testing.T) {
	var seed int64
	for seed = 1; seed <= propertySeeds; seed++ {
		cfg := knapsack.DefaultGenConfig(int(seed % 15))
		cfg.Seed = seed
		ts, err := knapsack.Generate(cfg)
		require.NoError(t, err)

		opt, err := knapsack.SolveDynamicProgramming(ts, knapsack.DefaultOptions())
		require.NoError(t, err)

		root := knapsack.Bound(knapsack.SortByDensity(ts), knapsack.Node{Level: -1})
		require.GreaterOrEqual(t, root+1e-9, float64(opt.Value), "seed %d", seed)
	}
}
