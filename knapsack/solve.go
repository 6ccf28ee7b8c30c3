// Package knapsack - unified dispatcher for the four solvers.
//
// Solve validates Options, routes to the requested Algorithm and stamps the result.
// The name helpers below are shared by the CLI (menu numbers and flag values).
package knapsack

import (
	"strconv"
	"strings"
)

// algorithmNames maps each Algorithm to its canonical flag/config name.
var algorithmNames = map[Algorithm]string{
	BruteForce:         "brute-force",
	BranchAndBound:     "branch-and-bound",
	DynamicProgramming: "dynamic-programming",
	Greedy:             "greedy",
}

// algorithmAliases lists the accepted short forms.
var algorithmAliases = map[string]Algorithm{
	"bf":     BruteForce,
	"bb":     BranchAndBound,
	"bnb":    BranchAndBound,
	"dp":     DynamicProgramming,
	"greedy": Greedy,
}

// Algorithms returns the four strategies in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{BruteForce, BranchAndBound, DynamicProgramming, Greedy}
}

// String returns the canonical name, or "Algorithm(<n>)" for unknown values.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return "Algorithm(" + strconv.Itoa(int(a)) + ")"
}

// Title returns the human-readable menu label.
func (a Algorithm) Title() string {
	switch a {
	case BruteForce:
		return "Brute Force"
	case BranchAndBound:
		return "Branch and Bound"
	case DynamicProgramming:
		return "Dynamic Programming"
	case Greedy:
		return "Linear Programming (Greedy Approximation)"
	default:
		return a.String()
	}
}

// Exact reports whether the algorithm always returns an optimal value.
func (a Algorithm) Exact() bool {
	return a == BruteForce || a == BranchAndBound || a == DynamicProgramming
}

// AlgorithmFromChoice converts a menu number (1..4) into an Algorithm.
//
// Errors: ErrUnsupportedAlgorithm for any other number.
func AlgorithmFromChoice(choice int) (Algorithm, error) {
	a := Algorithm(choice)
	if err := validateAlgorithm(a); err != nil {
		return 0, err
	}

	return a, nil
}

// ParseAlgorithm accepts a canonical name, a short alias or a menu number.
// Matching is case-insensitive and ignores surrounding spaces.
//
// Errors: ErrUnsupportedAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	for a, name := range algorithmNames {
		if name == key {
			return a, nil
		}
	}
	if n, err := strconv.Atoi(key); err == nil {
		return AlgorithmFromChoice(n)
	}

	return 0, ErrUnsupportedAlgorithm
}

// String returns "strict" or "ties".
func (p PrunePolicy) String() string {
	switch p {
	case PruneStrict:
		return "strict"
	case PruneExploreTies:
		return "ties"
	default:
		return "PrunePolicy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePrunePolicy accepts "strict" or "ties" (case-insensitive).
//
// Errors: ErrUnknownPrunePolicy.
func ParsePrunePolicy(s string) (PrunePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return PruneStrict, nil
	case "ties", "explore-ties":
		return PruneExploreTies, nil
	default:
		return 0, ErrUnknownPrunePolicy
	}
}

// Solve validates opts and runs the solver selected by opts.Algo.
//
// Errors: ErrUnsupportedAlgorithm, ErrNegativeTimeLimit, ErrUnknownPrunePolicy,
// and whatever the chosen solver returns (ErrTooManyTasks, ErrTimeLimit).
//
// Complexity: per algorithm; see the solver docs.
func Solve(ts TaskSet, opts Options) (Result, error) {
	if err := validateAlgorithm(opts.Algo); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	switch opts.Algo {
	case BruteForce:
		return SolveBruteForce(ts, opts)
	case BranchAndBound:
		return SolveBranchAndBound(ts, opts)
	case DynamicProgramming:
		return SolveDynamicProgramming(ts, opts)
	case Greedy:
		return SolveGreedy(ts, opts)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
