package knapsack

// Task is a unit of work with a duration (its cost against the budget)
// and a value (its contribution to the objective).
type Task struct {
	Duration int
	Value    int
}

// TaskSet is an ordered, immutable collection of tasks plus the time budget.
// Construct it with NewTaskSet; the zero value is an empty set with capacity 0.
type TaskSet struct {
	tasks    []Task
	capacity int
}

// NewTaskSet validates its input and returns a TaskSet owning a copy of tasks.
//
// Errors: ErrNegativeCapacity, ErrNegativeDuration, ErrNegativeValue.
//
// Complexity: O(n).
func NewTaskSet(capacity int, tasks []Task) (TaskSet, error) {
	if capacity < 0 {
		return TaskSet{}, ErrNegativeCapacity
	}
	var i int
	for i = range tasks {
		if tasks[i].Duration < 0 {
			return TaskSet{}, ErrNegativeDuration
		}
		if tasks[i].Value < 0 {
			return TaskSet{}, ErrNegativeValue
		}
	}
	cp := make([]Task, len(tasks))
	copy(cp, tasks)

	return TaskSet{tasks: cp, capacity: capacity}, nil
}

// Len returns the number of tasks.
func (ts TaskSet) Len() int { return len(ts.tasks) }

// Capacity returns the time budget.
func (ts TaskSet) Capacity() int { return ts.capacity }

// Task returns the i-th task in original order. It panics if i is out of range,
// like a slice index.
func (ts TaskSet) Task(i int) Task { return ts.tasks[i] }

// Tasks returns a copy of the tasks in original order.
func (ts TaskSet) Tasks() []Task {
	cp := make([]Task, len(ts.tasks))
	copy(cp, ts.tasks)

	return cp
}

// TotalDuration returns the sum of all task durations.
func (ts TaskSet) TotalDuration() int {
	var sum int
	for _, t := range ts.tasks {
		sum += t.Duration
	}

	return sum
}
