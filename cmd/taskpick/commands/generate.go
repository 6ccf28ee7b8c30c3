package commands

import (
	"github.com/katalvlaran/taskpack/internal/app"
	"github.com/katalvlaran/taskpack/knapsack"
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	var (
		gen  = knapsack.DefaultGenConfig(0)
		yaml bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random instance in the input format",
		Long: `Write a deterministic random instance to stdout. The same flags and
seed always produce the same instance. Without --capacity the budget is
--ratio times the total duration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.resolveConfig(cmd); err != nil {
				return err
			}
			return c.app.Generate(app.GenerateOptions{Gen: gen, YAML: yaml})
		},
	}

	f := cmd.Flags()
	f.IntVarP(&gen.N, "count", "n", 0, "Number of tasks")
	f.Int64Var(&gen.Seed, "seed", 0, "Random seed (0 = fixed default)")
	f.IntVar(&gen.Capacity, "capacity", gen.Capacity, "Time budget (negative = derive from --ratio)")
	f.Float64Var(&gen.CapacityRatio, "ratio", gen.CapacityRatio, "Budget as a fraction of the total duration")
	f.IntVar(&gen.MinDuration, "min-duration", gen.MinDuration, "Smallest task duration")
	f.IntVar(&gen.MaxDuration, "max-duration", gen.MaxDuration, "Largest task duration")
	f.IntVar(&gen.MinValue, "min-value", gen.MinValue, "Smallest task value")
	f.IntVar(&gen.MaxValue, "max-value", gen.MaxValue, "Largest task value")
	f.BoolVar(&yaml, "yaml", false, "Write YAML instead of the plain-text format")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}
