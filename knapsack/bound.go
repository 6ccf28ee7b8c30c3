package knapsack

// Bound returns an upper bound on the best value reachable by completing node u,
// computed by the fractional relaxation over the density order o.
//
// Procedure:
//  1. u.Weight > capacity ⇒ the node is infeasible: bound 0.
//  2. Start from u.Value and walk tasks Level+1, Level+2, … in density order,
//     adding whole tasks while they fit the remaining capacity.
//  3. At the first task that does not fit, add remaining·value/duration (the
//     fractional share of that task) and stop.
//
// When u.Weight equals the capacity only zero-duration tasks still fit, so the
// bound is u.Value plus whatever free tasks remain; the fractional share is 0.
// A task reaching step 3 always has duration > remaining ≥ 0, hence > 0.
//
// Because the density order is optimal for the relaxation, the result is never
// below the best 0/1 completion, which makes it safe for pruning.
//
// Complexity: O(n − Level).
func Bound(o DensityOrder, u Node) float64 {
	if u.Weight > o.capacity {
		return 0
	}

	var (
		n      = len(o.tasks)
		j      = u.Level + 1
		weight = u.Weight
		profit = float64(u.Value)
	)
	for j < n && weight+o.tasks[j].Duration <= o.capacity {
		weight += o.tasks[j].Duration
		profit += float64(o.tasks[j].Value)
		j++
	}
	if j < n && o.tasks[j].Duration > 0 {
		profit += float64(o.capacity-weight) * float64(o.tasks[j].Value) / float64(o.tasks[j].Duration)
	}

	return profit
}
