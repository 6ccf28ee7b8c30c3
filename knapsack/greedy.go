package knapsack

// SolveGreedy is the fast approximate solver: it scans tasks in descending density and
// accepts each one while the running duration stays within the capacity, stopping
// for good at the first task that would overflow (no skip-and-continue, no
// backtracking).
//
// The result is feasible but not necessarily optimal for the 0/1 problem; it is
// the integral prefix of the fractional relaxation used by Bound.
//
// Contracts:
//   - Result.SolverSelected holds density-order positions (0, 1, …, k−1);
//     Result.Selected holds the same tasks as original indices, ascending.
//
// Complexity: O(n log n), dominated by the sort.
func SolveGreedy(ts TaskSet, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	var (
		order   = SortByDensity(ts)
		n       = order.Len()
		k       int
		used    int
		value   int
		scanned int
	)
	solverSel := make([]int, 0, n)
	for k = 0; k < n; k++ {
		scanned++
		t := order.tasks[k]
		if used+t.Duration > order.capacity {
			break
		}
		used += t.Duration
		value += t.Value
		solverSel = append(solverSel, k)
	}

	return Result{
		Value:          value,
		Selected:       order.ToOriginal(solverSel),
		SolverSelected: solverSel,
		Algorithm:      Greedy,
		Explored:       scanned,
	}, nil
}
