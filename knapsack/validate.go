// Package knapsack - validation and time-budget helpers shared by the solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package knapsack

import "time"

// deadlineMask sets how often the soft deadline is sampled (every 4096 steps).
const deadlineMask = 4095

// validateOptions checks Options without looking at a TaskSet.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrNegativeTimeLimit
	}
	switch opts.Prune {
	case PruneStrict, PruneExploreTies:
	default:
		return ErrUnknownPrunePolicy
	}

	return nil
}

// validateAlgorithm accepts only the four known strategies.
func validateAlgorithm(a Algorithm) error {
	switch a {
	case BruteForce, BranchAndBound, DynamicProgramming, Greedy:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}

// deadline is a sparse wall-clock check; the zero value never expires.
type deadline struct {
	use   bool
	at    time.Time
	steps int
	hit   bool
}

func newDeadline(limit time.Duration) deadline {
	if limit <= 0 {
		return deadline{}
	}

	return deadline{use: true, at: time.Now().Add(limit)}
}

// expired samples the clock every deadlineMask+1 calls and latches once passed.
func (d *deadline) expired() bool {
	if !d.use {
		return false
	}
	if d.hit {
		return true
	}
	d.steps++
	if d.steps&deadlineMask != 0 {
		return false
	}
	d.hit = time.Now().After(d.at)

	return d.hit
}
