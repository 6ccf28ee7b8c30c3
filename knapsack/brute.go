package knapsack

import "math/bits"

// SolveBruteForce enumerates every subset of the tasks and returns the most valuable
// one that fits the capacity.
//
// Subsets are visited as bitmasks 0, 1, …, 2ⁿ−1 (bit i ⇔ task i). A subset replaces
// the incumbent only when its value is strictly greater, so among equal-value
// optima the first one in enumeration order wins. The empty subset (value 0) is the
// initial incumbent.
//
// Contracts:
//   - opts.Algo is ignored; opts.TimeLimit is honoured (0 = unlimited).
//   - Result.Selected and Result.SolverSelected are both original indices, ascending.
//
// Errors: ErrTooManyTasks (n ≥ 63), ErrTimeLimit, option sentinels.
//
// Complexity: O(2ⁿ·n) time, O(n) memory. There is no safeguard for large n
// beyond the bitmask width; the run simply gets slow.
func SolveBruteForce(ts TaskSet, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	var n = ts.Len()
	if n >= bits.UintSize-1 {
		return Result{}, ErrTooManyTasks
	}

	var (
		limit    = 1 << n
		mask     int
		i        int
		dur, val int
		bestVal  int
		bestMask int
		dl       = newDeadline(opts.TimeLimit)
	)
	for mask = 0; mask < limit; mask++ {
		if dl.expired() {
			return Result{}, ErrTimeLimit
		}
		dur, val = 0, 0
		for i = 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				dur += ts.tasks[i].Duration
				val += ts.tasks[i].Value
			}
		}
		if dur <= ts.capacity && val > bestVal {
			bestVal = val
			bestMask = mask
		}
	}

	sel := make([]int, 0, bits.OnesCount(uint(bestMask)))
	for i = 0; i < n; i++ {
		if bestMask&(1<<i) != 0 {
			sel = append(sel, i)
		}
	}

	return Result{
		Value:          bestVal,
		Selected:       sel,
		SolverSelected: append([]int(nil), sel...),
		Algorithm:      BruteForce,
		Explored:       limit,
	}, nil
}
