package app

import (
	"github.com/katalvlaran/taskpack/internal/loader"
	"github.com/katalvlaran/taskpack/knapsack"
	"go.trai.ch/zerr"
)

// GenerateOptions selects the random instance and its encoding.
type GenerateOptions struct {
	Gen  knapsack.GenConfig
	YAML bool
}

// Generate writes a deterministic random instance to the app's output.
func (a *App) Generate(opts GenerateOptions) error {
	ts, err := knapsack.Generate(opts.Gen)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to generate instance"), "seed", opts.Gen.Seed)
	}
	a.logger.Debug("instance generated",
		"tasks", ts.Len(),
		"capacity", ts.Capacity(),
		"total_duration", ts.TotalDuration(),
	)

	if opts.YAML {
		return loader.WriteYAML(a.out, ts)
	}

	return loader.Write(a.out, ts)
}
