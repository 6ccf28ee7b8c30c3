package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file>",
		Short: "Run all four solvers on the same instance and compare them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd)
			if err != nil {
				return err
			}
			_, err = c.app.Compare(cmd.Context(), args[0], cfg)
			return err
		},
	}
}
