// Package knapsack solves the time-budgeted task selection problem (0/1 knapsack).
//
// Given a TaskSet (tasks with a duration and a value, plus a capacity that is the
// time budget) it selects a subset whose total duration fits the capacity and whose
// total value is maximal. Four interchangeable strategies share one contract:
//
//   - BruteForce:         exhaustive enumeration of all 2ⁿ subsets.
//   - Complexity: O(2ⁿ·n) time, O(n) memory.
//
//   - BranchAndBound:     depth-first search over include/exclude decisions,
//     pruned by a fractional-relaxation upper bound (see Bound).
//   - Complexity: O(2ⁿ) worst case, far smaller in practice.
//
//   - DynamicProgramming: tabulation over (task count × capacity).
//   - Complexity: O(n·C) time and memory.
//
//   - Greedy:             single pass in descending value/duration density.
//   - Complexity: O(n log n); approximate for the 0/1 problem.
//
// Index spaces:
//
//	Result.Selected is always reported in the ORIGINAL task order, sorted ascending,
//	whatever the solver did internally. Result.SolverSelected keeps the indices in
//	the solver's own working sequence (density-sorted positions for BranchAndBound
//	and Greedy), which is what a caller asking for "solver" index space prints.
//
// Density order:
//
//	BranchAndBound, Greedy and Bound work on a DensityOrder, a typed view built only
//	by SortByDensity. The type makes the sortedness precondition explicit: an
//	unsorted sequence cannot be passed where a bound is computed.
//	Zero-duration tasks rank first (infinite density); densities are compared by
//	integer cross-multiplication, so no division by zero can occur.
//
// Errors are strict sentinels (see types.go). The package never logs and never
// panics on user input.
package knapsack
