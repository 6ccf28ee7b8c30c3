package knapsack

// Feasible reports whether the tasks referenced by sel (original indices) fit the
// capacity of ts. A selection with an out-of-range index is never feasible.
//
// Feasible is an independent post-solve check; no solver relies on it.
//
// Complexity: O(len(sel)).
func Feasible(ts TaskSet, sel []int) bool {
	d, ok := selectionDuration(ts, sel)

	return ok && d <= ts.capacity
}

// SelectionDuration returns the total duration of sel.
//
// Errors: ErrIndexOutOfRange.
func SelectionDuration(ts TaskSet, sel []int) (int, error) {
	d, ok := selectionDuration(ts, sel)
	if !ok {
		return 0, ErrIndexOutOfRange
	}

	return d, nil
}

// SelectionValue returns the total value of sel.
//
// Errors: ErrIndexOutOfRange.
func SelectionValue(ts TaskSet, sel []int) (int, error) {
	var sum int
	for _, i := range sel {
		if i < 0 || i >= len(ts.tasks) {
			return 0, ErrIndexOutOfRange
		}
		sum += ts.tasks[i].Value
	}

	return sum, nil
}

// ValidateSelection checks that sel references each task at most once and only
// existing tasks. It does not check the capacity (see Feasible).
//
// Errors: ErrIndexOutOfRange, ErrDuplicateIndex.
//
// Complexity: O(n + len(sel)).
func ValidateSelection(ts TaskSet, sel []int) error {
	seen := make([]bool, len(ts.tasks))
	for _, i := range sel {
		if i < 0 || i >= len(ts.tasks) {
			return ErrIndexOutOfRange
		}
		if seen[i] {
			return ErrDuplicateIndex
		}
		seen[i] = true
	}

	return nil
}

func selectionDuration(ts TaskSet, sel []int) (int, bool) {
	var sum int
	for _, i := range sel {
		if i < 0 || i >= len(ts.tasks) {
			return 0, false
		}
		sum += ts.tasks[i].Duration
	}

	return sum, true
}
