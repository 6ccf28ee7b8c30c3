// Package knapsack_test provides runnable, deterministic examples for the
// knapsack solvers. Each example prints a stable // Output: block.
//
// Contents:
//  1. ExampleSolve                  (dispatcher, default Branch and Bound)
//  2. ExampleSolveGreedy            (approximation gap vs the optimum)
//  3. ExampleSolveBranchAndBound    (original vs density index spaces)
//  4. ExampleFeasible               (checking a hand-picked selection)
package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/taskpack/knapsack"
)

func ExampleSolve() {
	ts, err := knapsack.NewTaskSet(5, []knapsack.Task{
		{Duration: 2, Value: 3},
		{Duration: 3, Value: 4},
		{Duration: 4, Value: 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := knapsack.Solve(ts, knapsack.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("value=%d selected=%v\n", res.Value, res.Selected)
	// Output:
	// value=7 selected=[0 1]
}

func ExampleSolveGreedy() {
	ts, _ := knapsack.NewTaskSet(10, []knapsack.Task{
		{Duration: 6, Value: 30},
		{Duration: 5, Value: 25},
		{Duration: 5, Value: 25},
	})

	greedy, _ := knapsack.SolveGreedy(ts, knapsack.DefaultOptions())
	exact, _ := knapsack.SolveDynamicProgramming(ts, knapsack.DefaultOptions())
	fmt.Printf("greedy=%d %v\n", greedy.Value, greedy.Selected)
	fmt.Printf("optimal=%d %v\n", exact.Value, exact.Selected)
	// Output:
	// greedy=30 [0]
	// optimal=50 [1 2]
}

func ExampleSolveBranchAndBound() {
	ts, _ := knapsack.NewTaskSet(3, []knapsack.Task{
		{Duration: 3, Value: 3},
		{Duration: 1, Value: 5},
		{Duration: 2, Value: 8},
	})

	res, _ := knapsack.SolveBranchAndBound(ts, knapsack.DefaultOptions())
	fmt.Printf("value=%d selected=%v solver=%v\n", res.Value, res.Selected, res.SolverSelected)
	// Output:
	// value=13 selected=[1 2] solver=[0 1]
}

func ExampleFeasible() {
	ts, _ := knapsack.NewTaskSet(5, []knapsack.Task{
		{Duration: 2, Value: 3},
		{Duration: 3, Value: 4},
		{Duration: 4, Value: 5},
	})

	fmt.Println(knapsack.Feasible(ts, []int{0, 1}))
	fmt.Println(knapsack.Feasible(ts, []int{1, 2}))
	// Output:
	// true
	// false
}
