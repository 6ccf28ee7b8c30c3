// export_test.go exports private functions for white-box testing.
package app

import (
	"time"

	"github.com/katalvlaran/taskpack/internal/config"
	"github.com/katalvlaran/taskpack/knapsack"
)

// Report exposes the result printer so the infeasible branch can be driven directly.
func (a *App) Report(ts knapsack.TaskSet, res knapsack.Result, space config.IndexSpace, elapsed time.Duration) {
	a.report(ts, res, space, elapsed)
}
