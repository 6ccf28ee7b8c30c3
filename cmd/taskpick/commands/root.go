// Package commands implements the CLI commands for taskpick.
package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/taskpack/internal/app"
	"github.com/katalvlaran/taskpack/internal/build"
	"github.com/katalvlaran/taskpack/internal/config"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for taskpick.
type CLI struct {
	app     Application
	log     VerboseSetter
	loader  config.Loader
	rootCmd *cobra.Command
	flags   sharedFlags
}

// Application represents the application logic interface.
type Application interface {
	Solve(ctx context.Context, path string, cfg config.Config) error
	Compare(ctx context.Context, path string, cfg config.Config) (app.Comparison, error)
	Generate(opts app.GenerateOptions) error
}

// VerboseSetter switches debug logging on once the configuration is known.
type VerboseSetter interface {
	SetVerbose(verbose bool)
}

// sharedFlags are the persistent flags that feed the configuration.
type sharedFlags struct {
	configPath string
	algo       string
	indexSpace string
	prune      string
	timeLimit  string
	verbose    bool
}

// New creates a new CLI instance with the given app.
func New(a Application, log VerboseSetter) *CLI {
	c := &CLI{
		app: a,
		log: log,
	}

	rootCmd := &cobra.Command{
		Use:   "taskpick <file>",
		Short: "Pick the most valuable tasks that fit a time budget",
		Long: `taskpick reads a task list (count and time budget, then one
"duration value" pair per task) and selects the subset with the highest
total value whose durations fit the budget.

Unless --algo or the configuration names an algorithm, a menu asks which
solver to run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd)
			if err != nil {
				return err
			}
			return c.app.Solve(cmd.Context(), args[0], cfg)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}} (commit: %s)\n", build.Commit))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "YAML configuration file (default ./"+config.DefaultFileName+" if present)")
	pf.StringVar(&c.flags.algo, "algo", "", "Algorithm: brute-force|branch-and-bound|dynamic-programming|greedy or 1-4")
	pf.StringVar(&c.flags.indexSpace, "index-space", "", "Printed indices: original|solver")
	pf.StringVar(&c.flags.prune, "prune", "", "Branch-and-bound tie policy: strict|ties")
	pf.StringVar(&c.flags.timeLimit, "time-limit", "", "Soft time budget for brute force and branch and bound (e.g. 500ms, 0 = none)")
	pf.BoolVar(&c.flags.verbose, "verbose", false, "Enable debug logging on stderr")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newCompareCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithConfigLoader replaces the configuration loader. Used for testing.
func (c *CLI) WithConfigLoader(l config.Loader) *CLI {
	c.loader = l
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// resolveConfig merges the configuration sources with the flags the user
// actually set, then applies the verbosity.
func (c *CLI) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	overrides := make(map[string]string)
	set := func(name, key, value string) {
		if cmd.Flags().Changed(name) {
			overrides[key] = value
		}
	}
	set("algo", config.KeyAlgorithm, c.flags.algo)
	set("index-space", config.KeyIndexSpace, c.flags.indexSpace)
	set("prune", config.KeyPrune, c.flags.prune)
	set("time-limit", config.KeyTimeLimit, c.flags.timeLimit)
	set("verbose", config.KeyVerbose, strconv.FormatBool(c.flags.verbose))

	cfg, err := c.loader.Load(c.flags.configPath, overrides)
	if err != nil {
		return config.Config{}, err
	}
	if c.log != nil {
		c.log.SetVerbose(cfg.Verbose)
	}

	return cfg, nil
}
