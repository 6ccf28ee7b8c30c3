// Package knapsack - Branch-and-Bound (exact search with a fractional upper bound).
//
// SolveBranchAndBound explores the binary decision tree "include task k / exclude task k"
// over the density order, depth first, with a LIFO frontier of Node values.
//
// Search order and pruning:
//  1. Sorting by density makes the fractional relaxation (Bound) tight early and
//     lets the greedy prefix of the bound double as a good first incumbent.
//  2. Every child is checked as an incumbent the moment it is built, before its
//     bound is computed, so the best value only grows while the frontier drains.
//  3. A child is pushed only if its bound beats the incumbent (PruneStrict) or
//     at least ties it (PruneExploreTies). Infeasible children are never pushed:
//     their durations can only grow.
//  4. Include is pushed before exclude, so the exclude branch is expanded first.
//     This order decides which optimum is reported when several exist.
//  5. Soft time limit: sparse deadline checks (every 4096 pops).
//
// Complexity:
//   - Worst case O(2ⁿ) nodes, O(n) work per node (bound + item copy).
//   - Memory: O(n) nodes on the frontier at a time for DFS, each with O(n) items.

package knapsack

// bbEngine holds the search data and policies of one SolveBranchAndBound run.
type bbEngine struct {
	order DensityOrder
	prune PrunePolicy
	dl    deadline

	frontier []Node

	bestValue int
	bestItems []int

	explored int
}

// consider records c as the incumbent if it improves it, then bounds c and pushes
// it when the prune policy admits it.
func (e *bbEngine) consider(c Node) {
	if c.Weight > e.order.capacity {
		return
	}
	if c.Value > e.bestValue {
		e.bestValue = c.Value
		e.bestItems = append(e.bestItems[:0], c.Items...)
	}
	c.Bound = Bound(e.order, c)
	if e.admit(c.Bound) {
		e.frontier = append(e.frontier, c)
	}
}

// admit applies the tie policy at the pruning boundary.
func (e *bbEngine) admit(bound float64) bool {
	best := float64(e.bestValue)
	if e.prune == PruneExploreTies {
		return bound >= best
	}

	return bound > best
}

// run drains the frontier.
func (e *bbEngine) run() error {
	var (
		n    = e.order.Len()
		u    Node
		next int
		t    Task
	)
	root := Node{Level: -1}
	root.Bound = Bound(e.order, root)
	e.frontier = append(e.frontier, root)

	for len(e.frontier) > 0 {
		if e.dl.expired() {
			return ErrTimeLimit
		}
		u = e.frontier[len(e.frontier)-1]
		e.frontier = e.frontier[:len(e.frontier)-1]
		e.explored++

		next = u.Level + 1
		if next >= n {
			continue
		}
		t = e.order.tasks[next]

		items := make([]int, len(u.Items), len(u.Items)+1)
		copy(items, u.Items)
		e.consider(Node{
			Level:  next,
			Value:  u.Value + t.Value,
			Weight: u.Weight + t.Duration,
			Items:  append(items, next),
		})

		// u is discarded after this point, so the exclude child takes over its items.
		e.consider(Node{
			Level:  next,
			Value:  u.Value,
			Weight: u.Weight,
			Items:  u.Items,
		})
	}

	return nil
}

// SolveBranchAndBound returns an optimal selection using pruned depth-first search.
//
// Contracts:
//   - opts.Prune chooses the tie policy; opts.TimeLimit is a soft budget.
//   - Result.SolverSelected holds density-order positions (ascending);
//     Result.Selected holds the same tasks as original indices (ascending).
//
// Errors: ErrTimeLimit, option sentinels.
func SolveBranchAndBound(ts TaskSet, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	e := bbEngine{
		order:    SortByDensity(ts),
		prune:    opts.Prune,
		dl:       newDeadline(opts.TimeLimit),
		frontier: make([]Node, 0, ts.Len()+1),
	}
	if err := e.run(); err != nil {
		return Result{}, err
	}

	solverSel := append([]int{}, e.bestItems...)

	return Result{
		Value:          e.bestValue,
		Selected:       e.order.ToOriginal(solverSel),
		SolverSelected: solverSel,
		Algorithm:      BranchAndBound,
		Explored:       e.explored,
	}, nil
}
