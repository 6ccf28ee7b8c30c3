package knapsack_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/taskpack/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_DispatchesEveryAlgorithm(t *testing.T) {
	ts := mustTaskSet(t, 5, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5})

	for _, a := range knapsack.Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			opts := knapsack.DefaultOptions()
			opts.Algo = a
			res, err := knapsack.Solve(ts, opts)
			require.NoError(t, err)
			assert.Equal(t, a, res.Algorithm)
			assert.Equal(t, 7, res.Value)
			mustConsistent(t, ts, res)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	ts := mustTaskSet(t, 5, [2]int{2, 3})

	opts := knapsack.DefaultOptions()
	opts.Algo = 0
	_, err := knapsack.Solve(ts, opts)
	mustErrIs(t, err, knapsack.ErrUnsupportedAlgorithm)

	opts.Algo = knapsack.Algorithm(5)
	_, err = knapsack.Solve(ts, opts)
	mustErrIs(t, err, knapsack.ErrUnsupportedAlgorithm)

	opts = knapsack.DefaultOptions()
	opts.Algo = knapsack.Greedy
	opts.TimeLimit = -time.Millisecond
	_, err = knapsack.Solve(ts, opts)
	mustErrIs(t, err, knapsack.ErrNegativeTimeLimit)
}

func TestAlgorithm_Names(t *testing.T) {
	cases := []struct {
		algo  knapsack.Algorithm
		name  string
		title string
		exact bool
	}{
		{knapsack.BruteForce, "brute-force", "Brute Force", true},
		{knapsack.BranchAndBound, "branch-and-bound", "Branch and Bound", true},
		{knapsack.DynamicProgramming, "dynamic-programming", "Dynamic Programming", true},
		{knapsack.Greedy, "greedy", "Linear Programming (Greedy Approximation)", false},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.name, tc.algo.String())
		assert.Equal(t, tc.title, tc.algo.Title())
		assert.Equal(t, tc.exact, tc.algo.Exact())
		assert.Equal(t, i+1, int(tc.algo), "menu number")
	}
	assert.Equal(t, "Algorithm(9)", knapsack.Algorithm(9).String())
	assert.Equal(t, knapsack.Algorithms(), []knapsack.Algorithm{
		knapsack.BruteForce, knapsack.BranchAndBound, knapsack.DynamicProgramming, knapsack.Greedy,
	})
}

func TestAlgorithmFromChoice(t *testing.T) {
	a, err := knapsack.AlgorithmFromChoice(3)
	require.NoError(t, err)
	assert.Equal(t, knapsack.DynamicProgramming, a)

	for _, bad := range []int{0, 5, -1} {
		_, err = knapsack.AlgorithmFromChoice(bad)
		mustErrIs(t, err, knapsack.ErrUnsupportedAlgorithm)
	}
}

func TestParseAlgorithm(t *testing.T) {
	good := map[string]knapsack.Algorithm{
		"brute-force":         knapsack.BruteForce,
		"BF":                  knapsack.BruteForce,
		" bnb ":               knapsack.BranchAndBound,
		"bb":                  knapsack.BranchAndBound,
		"dynamic-programming": knapsack.DynamicProgramming,
		"dp":                  knapsack.DynamicProgramming,
		"Greedy":              knapsack.Greedy,
		"4":                   knapsack.Greedy,
		"1":                   knapsack.BruteForce,
	}
	for in, want := range good {
		got, err := knapsack.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "fast", "0", "7"} {
		_, err := knapsack.ParseAlgorithm(in)
		mustErrIs(t, err, knapsack.ErrUnsupportedAlgorithm)
	}
}

func TestParsePrunePolicy(t *testing.T) {
	for in, want := range map[string]knapsack.PrunePolicy{
		"":             knapsack.PruneStrict,
		"strict":       knapsack.PruneStrict,
		"TIES":         knapsack.PruneExploreTies,
		"explore-ties": knapsack.PruneExploreTies,
	} {
		got, err := knapsack.ParsePrunePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := knapsack.ParsePrunePolicy("loose")
	mustErrIs(t, err, knapsack.ErrUnknownPrunePolicy)

	assert.Equal(t, "strict", knapsack.PruneStrict.String())
	assert.Equal(t, "ties", knapsack.PruneExploreTies.String())
	assert.Equal(t, "PrunePolicy(4)", knapsack.PrunePolicy(4).String())
}
