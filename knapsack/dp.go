package knapsack

// SolveDynamicProgramming solves the instance exactly by tabulation in original order.
//
// Recurrence (i = 1..n, t = 0..C, task i−1 has duration d and value v):
//
//	dp[0][t] = 0
//	dp[i][t] = dp[i-1][t]                               if d > t
//	dp[i][t] = max(dp[i-1][t], dp[i-1][t-d] + v)        otherwise
//
// The answer is dp[n][C]. Reconstruction walks i = n..1 from t = C: whenever
// dp[i][t] != dp[i-1][t], task i−1 is selected and t -= d. Column t = 0 is filled
// and the walk does not stop at t = 0, so zero-duration tasks are counted and
// reported; d = 0 simply reads dp[i-1][t] in the same column.
//
// Contracts:
//   - opts is validated but otherwise unused.
//   - Result.Selected and Result.SolverSelected are original indices;
//     SolverSelected is in reconstruction order (descending), Selected ascending.
//
// Complexity: O(n·C) time and memory, independent of how many tasks fit.
// Large capacities make this solver impractical regardless of n.
func SolveDynamicProgramming(ts TaskSet, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	var (
		n    = ts.Len()
		c    = ts.capacity
		cols = c + 1
		i, t int
		d, v int
	)

	// One backing array, row views into it.
	cells := make([]int, (n+1)*cols)
	dp := make([][]int, n+1)
	for i = 0; i <= n; i++ {
		dp[i] = cells[i*cols : (i+1)*cols]
	}

	for i = 1; i <= n; i++ {
		d = ts.tasks[i-1].Duration
		v = ts.tasks[i-1].Value
		for t = 0; t <= c; t++ {
			dp[i][t] = dp[i-1][t]
			if d <= t {
				if take := dp[i-1][t-d] + v; take > dp[i][t] {
					dp[i][t] = take
				}
			}
		}
	}

	solverSel := make([]int, 0, n)
	t = c
	for i = n; i > 0; i-- {
		if dp[i][t] != dp[i-1][t] {
			solverSel = append(solverSel, i-1)
			t -= ts.tasks[i-1].Duration
		}
	}

	sel := make([]int, len(solverSel))
	for i = range solverSel {
		sel[len(solverSel)-1-i] = solverSel[i]
	}

	return Result{
		Value:          dp[n][c],
		Selected:       sel,
		SolverSelected: solverSel,
		Algorithm:      DynamicProgramming,
		Explored:       n * cols,
	}, nil
}
