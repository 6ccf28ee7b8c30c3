package knapsack

import "sort"

// DensityOrder is a TaskSet view sorted by descending value/duration density.
// It can only be built by SortByDensity, which makes "sorted" a typed precondition
// of Bound and of the solvers that rely on density order.
type DensityOrder struct {
	tasks    []Task // tasks in density order
	orig     []int  // orig[k] = original index of tasks[k]
	capacity int
}

// SortByDensity returns the density-ordered view of ts.
//
// Ordering:
//   - Zero-duration tasks first (infinite density).
//   - Then descending value/duration, compared as v₁·d₂ vs v₂·d₁ (no division).
//   - Equal densities keep original index order, so the view is deterministic.
//
// Complexity: O(n log n) time, O(n) space.
func SortByDensity(ts TaskSet) DensityOrder {
	var (
		n = ts.Len()
		i int
	)
	orig := make([]int, n)
	for i = 0; i < n; i++ {
		orig[i] = i
	}
	by := densityRank{ts: ts.tasks, idx: orig}
	sort.Sort(&by)

	tasks := make([]Task, n)
	for i = 0; i < n; i++ {
		tasks[i] = ts.tasks[orig[i]]
	}

	return DensityOrder{tasks: tasks, orig: orig, capacity: ts.capacity}
}

// Len returns the number of tasks.
func (o DensityOrder) Len() int { return len(o.tasks) }

// Capacity returns the time budget of the underlying TaskSet.
func (o DensityOrder) Capacity() int { return o.capacity }

// Task returns the task at density position k.
func (o DensityOrder) Task(k int) Task { return o.tasks[k] }

// Original maps density position k back to the original task index.
func (o DensityOrder) Original(k int) int { return o.orig[k] }

// ToOriginal maps density positions to original indices and returns them ascending.
// The input slice is not modified.
func (o DensityOrder) ToOriginal(positions []int) []int {
	out := make([]int, len(positions))
	var i int
	for i = range positions {
		out[i] = o.orig[positions[i]]
	}
	sort.Ints(out)

	return out
}

// densityRank implements sort.Interface over an index permutation.
type densityRank struct {
	ts  []Task
	idx []int
}

func (r densityRank) Len() int { return len(r.idx) }
func (r densityRank) Less(i, j int) bool {
	a, b := r.idx[i], r.idx[j]
	if c := compareDensity(r.ts[a], r.ts[b]); c != 0 {
		return c > 0
	}

	return a < b
}
func (r *densityRank) Swap(i, j int) { r.idx[i], r.idx[j] = r.idx[j], r.idx[i] }

// compareDensity returns +1 if a is denser than b, -1 if b is denser, 0 if equal.
// Durations of zero are treated as infinite density; two free tasks compare equal.
// Products are computed in int64.
func compareDensity(a, b Task) int {
	switch {
	case a.Duration == 0 && b.Duration == 0:
		return 0
	case a.Duration == 0:
		return 1
	case b.Duration == 0:
		return -1
	}
	lhs := int64(a.Value) * int64(b.Duration)
	rhs := int64(b.Value) * int64(a.Duration)
	switch {
	case lhs > rhs:
		return 1
	case lhs < rhs:
		return -1
	default:
		return 0
	}
}
