// Package app implements the application layer for taskpick.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/taskpack/internal/config"
	"github.com/katalvlaran/taskpack/internal/loader"
	"github.com/katalvlaran/taskpack/knapsack"
	"go.trai.ch/zerr"
)

// ErrInvalidChoice is returned when the menu answer is not a number in 1..4.
var ErrInvalidChoice = zerr.New("invalid choice")

// Logger is the subset of internal/logger.Logger the app needs.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// App wires loading, algorithm selection, solving and reporting.
type App struct {
	logger Logger
	in     *bufio.Reader
	out    io.Writer
}

// New creates an App reading menu answers from in and writing reports to out.
func New(log Logger, in io.Reader, out io.Writer) *App {
	return &App{
		logger: log,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Solve loads the instance at path, asks for an algorithm unless cfg names
// one, runs it and prints the report. Only the solve call is timed.
func (a *App) Solve(ctx context.Context, path string, cfg config.Config) error {
	ts, err := loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load tasks")
	}
	a.logger.Debug("instance loaded", "path", path, "tasks", ts.Len(), "capacity", ts.Capacity())

	algo := cfg.Algorithm
	if algo == 0 {
		if algo, err = a.promptAlgorithm(); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := cfg.Options()
	opts.Algo = algo
	a.logger.Debug("solving", "algorithm", algo.String(), "prune", opts.Prune.String(), "time_limit", opts.TimeLimit)

	res, elapsed, err := timedSolve(ts, opts)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "solve failed"), "algorithm", algo.String())
	}
	a.logger.Debug("solved",
		"algorithm", algo.String(),
		"explored", humanize.Comma(int64(res.Explored)),
		"elapsed", elapsed,
	)

	a.report(ts, res, cfg.IndexSpace, elapsed)

	return nil
}

// timedSolve measures knapsack.Solve and nothing else.
func timedSolve(ts knapsack.TaskSet, opts knapsack.Options) (knapsack.Result, time.Duration, error) {
	start := time.Now()
	res, err := knapsack.Solve(ts, opts)

	return res, time.Since(start), err
}

// promptAlgorithm prints the menu and reads one integer answer.
func (a *App) promptAlgorithm() (knapsack.Algorithm, error) {
	_, _ = fmt.Fprintln(a.out, "Select the algorithm to solve the knapsack problem:")
	for _, algo := range knapsack.Algorithms() {
		_, _ = fmt.Fprintf(a.out, "%d. %s\n", int(algo), algo.Title())
	}
	_, _ = fmt.Fprint(a.out, "Enter your choice: ")

	var answer string
	if _, err := fmt.Fscan(a.in, &answer); err != nil {
		return 0, zerr.Wrap(ErrInvalidChoice, "no answer")
	}
	choice, err := strconv.Atoi(answer)
	if err == nil {
		var algo knapsack.Algorithm
		if algo, err = knapsack.AlgorithmFromChoice(choice); err == nil {
			return algo, nil
		}
	}

	return 0, zerr.With(zerr.Wrap(ErrInvalidChoice, "expected a number from 1 to 4"), "answer", answer)
}

// report prints the result block. Feasibility is re-checked on original
// indices independently of the solver.
func (a *App) report(ts knapsack.TaskSet, res knapsack.Result, space config.IndexSpace, elapsed time.Duration) {
	if knapsack.Feasible(ts, res.Selected) {
		indices := res.Selected
		if space == config.IndexSolver {
			indices = res.SolverSelected
		}
		_, _ = fmt.Fprintf(a.out, "Maximum value: %d\n", res.Value)
		_, _ = fmt.Fprintf(a.out, "Selected tasks: %s\n", joinInts(indices))
	} else {
		a.logger.Warn("selection exceeds the time budget", "algorithm", res.Algorithm.String())
		_, _ = fmt.Fprintln(a.out, "The selected tasks do not satisfy the time constraint.")
	}
	_, _ = fmt.Fprintf(a.out, "Execution time: %d microseconds\n", elapsed.Microseconds())
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
