package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/taskpack/internal/config"
	"github.com/katalvlaran/taskpack/internal/loader"
	"github.com/katalvlaran/taskpack/knapsack"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ComparisonRow is the outcome of one solver in a comparison run.
type ComparisonRow struct {
	Algorithm knapsack.Algorithm
	Result    knapsack.Result
	Elapsed   time.Duration
	Err       error
	Feasible  bool
}

// Comparison holds one row per algorithm, in menu order.
type Comparison struct {
	Rows []ComparisonRow
}

// Agree reports whether every exact solver that finished found the same value.
func (c Comparison) Agree() bool {
	seen := false
	var want int
	for _, r := range c.Rows {
		if r.Err != nil || !r.Algorithm.Exact() {
			continue
		}
		if !seen {
			want, seen = r.Result.Value, true
			continue
		}
		if r.Result.Value != want {
			return false
		}
	}

	return true
}

// Compare runs all four solvers side by side on the instance at path and
// prints one line per algorithm. A solver that fails (too many tasks, time
// limit) gets an error line; only cancellation aborts the whole run.
func (a *App) Compare(ctx context.Context, path string, cfg config.Config) (Comparison, error) {
	ts, err := loader.Load(path)
	if err != nil {
		return Comparison{}, zerr.Wrap(err, "failed to load tasks")
	}
	a.logger.Debug("instance loaded", "path", path, "tasks", ts.Len(), "capacity", ts.Capacity())

	cmp, err := compareAll(ctx, ts, cfg.Options())
	if err != nil {
		return Comparison{}, err
	}

	for _, r := range cmp.Rows {
		a.printRow(r, cfg.IndexSpace)
	}
	if !cmp.Agree() {
		a.logger.Warn("exact solvers disagree on the optimal value", "path", path)
	}

	return cmp, nil
}

// compareAll fans the solvers out over an errgroup. The TaskSet is shared
// read-only; each solver owns its working state.
func compareAll(ctx context.Context, ts knapsack.TaskSet, base knapsack.Options) (Comparison, error) {
	algos := knapsack.Algorithms()
	rows := make([]ComparisonRow, len(algos))

	g, gctx := errgroup.WithContext(ctx)
	for i, algo := range algos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opts := base
			opts.Algo = algo
			res, elapsed, err := timedSolve(ts, opts)
			rows[i] = ComparisonRow{
				Algorithm: algo,
				Result:    res,
				Elapsed:   elapsed,
				Err:       err,
				Feasible:  err == nil && knapsack.Feasible(ts, res.Selected),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Comparison{}, zerr.Wrap(err, "comparison interrupted")
	}

	return Comparison{Rows: rows}, nil
}

func (a *App) printRow(r ComparisonRow, space config.IndexSpace) {
	label := r.Algorithm.Title()
	if r.Err != nil {
		_, _ = fmt.Fprintf(a.out, "%-42s error: %v\n", label, r.Err)
		return
	}
	if !r.Feasible {
		a.logger.Warn("selection exceeds the time budget", "algorithm", r.Algorithm.String())
	}
	indices := r.Result.Selected
	if space == config.IndexSolver {
		indices = r.Result.SolverSelected
	}
	_, _ = fmt.Fprintf(a.out, "%-42s value=%d selected=[%s] explored=%s time=%dµs\n",
		label,
		r.Result.Value,
		joinInts(indices),
		humanize.Comma(int64(r.Result.Explored)),
		r.Elapsed.Microseconds(),
	)
}
