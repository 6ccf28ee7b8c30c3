package knapsack

import (
	"errors"
	"time"
)

// Sentinel errors returned by the knapsack solvers.
var (
	// ErrNegativeCapacity indicates a TaskSet with a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNegativeDuration indicates a task with a duration below zero.
	ErrNegativeDuration = errors.New("knapsack: task duration must be non-negative")

	// ErrNegativeValue indicates a task with a value below zero.
	ErrNegativeValue = errors.New("knapsack: task value must be non-negative")

	// ErrTooManyTasks is returned by BruteForce when the subsets of n tasks
	// cannot be enumerated by an int bitmask (n ≥ 63).
	ErrTooManyTasks = errors.New("knapsack: too many tasks for exhaustive enumeration")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrUnknownPrunePolicy indicates an unknown PrunePolicy value or name.
	ErrUnknownPrunePolicy = errors.New("knapsack: unknown prune policy")

	// ErrNegativeTimeLimit indicates Options.TimeLimit < 0.
	ErrNegativeTimeLimit = errors.New("knapsack: time limit must be non-negative")

	// ErrTimeLimit is returned when a positive Options.TimeLimit is exceeded.
	ErrTimeLimit = errors.New("knapsack: time limit exceeded")

	// ErrIndexOutOfRange indicates a selection index outside [0, n).
	ErrIndexOutOfRange = errors.New("knapsack: selection index out of range")

	// ErrDuplicateIndex indicates a selection that references a task twice.
	ErrDuplicateIndex = errors.New("knapsack: duplicate selection index")

	// ErrInvalidGenConfig indicates an impossible GenConfig (empty ranges, n < 0).
	ErrInvalidGenConfig = errors.New("knapsack: invalid generator configuration")
)

// Algorithm selects one of the four solving strategies.
// The numeric values match the interactive menu (1..4).
type Algorithm int

const (
	// BruteForce enumerates every subset. Exact, O(2ⁿ·n).
	BruteForce Algorithm = iota + 1

	// BranchAndBound runs a pruned depth-first search. Exact.
	BranchAndBound

	// DynamicProgramming tabulates (task count × capacity). Exact, O(n·C).
	DynamicProgramming

	// Greedy accepts tasks in density order until the first overflow. Approximate.
	Greedy
)

// PrunePolicy decides what BranchAndBound does with a child whose bound
// exactly equals the best value found so far.
type PrunePolicy int

const (
	// PruneStrict discards such children: only bound > best is explored.
	PruneStrict PrunePolicy = iota

	// PruneExploreTies keeps such children on the frontier (bound ≥ best).
	// The optimal value is unchanged; the reported selection may differ
	// when several optima exist.
	PruneExploreTies
)

// Options configures Solve and the individual solvers.
//
// Fields:
//   - Algo:      strategy used by Solve (ignored by direct solver calls).
//   - Prune:     tie policy at the BranchAndBound pruning boundary.
//   - TimeLimit: soft budget for BruteForce and BranchAndBound; 0 means unlimited.
type Options struct {
	Algo      Algorithm
	Prune     PrunePolicy
	TimeLimit time.Duration
}

// DefaultOptions returns the options that reproduce the reference behaviour:
// BranchAndBound, strict pruning, no time limit.
func DefaultOptions() Options {
	return Options{
		Algo:      BranchAndBound,
		Prune:     PruneStrict,
		TimeLimit: 0,
	}
}

// Result holds the outcome of a solver.
type Result struct {
	// Value is the total value of the selection.
	Value int

	// Selected lists the chosen tasks as ORIGINAL indices, ascending.
	Selected []int

	// SolverSelected lists the chosen tasks in the solver's own index space,
	// in the order the solver recorded them. For BranchAndBound and Greedy these
	// are positions in the density-sorted sequence.
	SolverSelected []int

	// Algorithm that produced the result.
	Algorithm Algorithm

	// Explored counts the work units of the run: subsets for BruteForce,
	// popped nodes for BranchAndBound, table cells for DynamicProgramming,
	// scanned tasks for Greedy.
	Explored int
}

// Node is a partial branch-and-bound search state.
// Level is the density-order position of the last decided task (-1 at the root).
// Items holds the density-order positions included so far; every Node owns its copy.
type Node struct {
	Level  int
	Value  int
	Weight int
	Bound  float64
	Items  []int
}
