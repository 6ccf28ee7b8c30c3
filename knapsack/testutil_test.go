// Package knapsack_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package knapsack_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/taskpack/knapsack"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// propertySeeds is the number of generated instances per property test.
	propertySeeds = 60

	// maxPropertyN keeps brute force tractable in property tests (2¹² subsets).
	maxPropertyN = 12
)

// solverFunc is the common signature of the four solvers.
type solverFunc func(knapsack.TaskSet, knapsack.Options) (knapsack.Result, error)

// solvers lists every solver with its Algorithm, in menu order.
var solvers = []struct {
	algo knapsack.Algorithm
	fn   solverFunc
}{
	{knapsack.BruteForce, knapsack.SolveBruteForce},
	{knapsack.BranchAndBound, knapsack.SolveBranchAndBound},
	{knapsack.DynamicProgramming, knapsack.SolveDynamicProgramming},
	{knapsack.Greedy, knapsack.SolveGreedy},
}

// mustTaskSet builds a TaskSet from (duration, value) pairs or fails the test.
func mustTaskSet(t testing.TB, capacity int, pairs ...[2]int) knapsack.TaskSet {
	t.Helper()
	tasks := make([]knapsack.Task, len(pairs))
	var i int
	for i = range pairs {
		tasks[i] = knapsack.Task{Duration: pairs[i][0], Value: pairs[i][1]}
	}
	ts, err := knapsack.NewTaskSet(capacity, tasks)
	require.NoError(t, err)

	return ts
}

// Repeat runs fn n times to shake out hidden state between runs.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts errors.Is(err, target).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustConsistent checks the invariants every Result must satisfy:
// feasible, no duplicates, Value equals the value of Selected, Selected ascending.
func mustConsistent(t *testing.T, ts knapsack.TaskSet, res knapsack.Result) {
	t.Helper()
	require.NoError(t, knapsack.ValidateSelection(ts, res.Selected))
	require.True(t, knapsack.Feasible(ts, res.Selected), "%s returned an infeasible selection %v", res.Algorithm, res.Selected)
	v, err := knapsack.SelectionValue(ts, res.Selected)
	require.NoError(t, err)
	require.Equal(t, res.Value, v, "%s: Value disagrees with Selected", res.Algorithm)
	require.IsIncreasing(t, append([]int{-1}, res.Selected...), "Selected must be ascending")
	require.Len(t, res.SolverSelected, len(res.Selected))
}
