// Package taskpack picks the most valuable set of tasks that fits a time
// budget: the 0/1 knapsack problem with durations as weights.
//
// What is inside?
//
//	knapsack/          the solvers and their shared pieces:
//	                   TaskSet, DensityOrder, Bound, Feasible, Solve
//	internal/loader/   plain-text and YAML instance files
//	internal/config/   YAML config, TASKPICK_* env overrides
//	internal/logger/   slog text logger on stderr
//	internal/app/      load → choose → timed solve → report; compare; generate
//	cmd/taskpick/      the CLI (cobra)
//	examples/          a runnable sprint-planning scenario
//
// Four strategies, one contract (TaskSet, Options) → (Result, error):
//
//	BruteForce          exact, every subset, O(2ⁿ·n)
//	BranchAndBound      exact, depth-first with a fractional bound
//	DynamicProgramming  exact, O(n·capacity) table
//	Greedy              approximate, density order, O(n log n)
//
// Quick example:
//
//	ts, _ := knapsack.NewTaskSet(5, []knapsack.Task{{2, 3}, {3, 4}, {4, 5}})
//	res, _ := knapsack.Solve(ts, knapsack.DefaultOptions())
//	// res.Value == 7, res.Selected == []int{0, 1}
//
//	go install github.com/katalvlaran/taskpack/cmd/taskpick@latest
package taskpack
