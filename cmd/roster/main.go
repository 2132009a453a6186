// Command roster runs staff reports against a JSON or YAML dataset.
//
//	roster --dataset staff.json top-skills -n 5
//	roster skills 86c0cd06-bd83-4d50-82d7-d1c10743ec48 --with-manager
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/roster/config"
	"github.com/hasbyte1/roster/dataset"
	"github.com/hasbyte1/roster/query"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	cfgPath     string
	datasetPath string
	logLevel    string

	cfg    *config.Config
	log    zerolog.Logger
	ds     *dataset.Dataset
	engine *query.Engine
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Query employees, projects and offices",
		Long: `roster answers questions about a staff dataset:
  skills known on a project team, salary averages by skill,
  the most known skills and offices ranked by headcount.

Settings come from --config (YAML), ROSTER_* environment variables and flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&a.datasetPath, "dataset", "", "dataset file (.json, .yaml); overrides dataset.path")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level; overrides logging.level")

	rootCmd.AddCommand(
		a.withinCmd(),
		a.skillsCmd(),
		a.averageCmd(),
		a.topSkillsCmd(),
		a.officesCmd(),
		a.knowsCmd(),
		a.employeesCmd(),
		a.bonusCmd(),
		a.richestCmd(),
		a.extremesCmd(),
		a.flattenCmd(),
		a.fingerprintCmd(),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.datasetPath != "" {
		cfg.Dataset.Path = a.datasetPath
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = cfg.Logging.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = a.log.With().Str("command", cmd.Name()).Logger()

	a.ds, err = dataset.Load(cfg.Dataset.Path, dataset.WithLogger(a.log))
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	tie, err := cfg.TieBreak()
	if err != nil {
		return err
	}
	a.engine = query.New(a.ds, query.WithLogger(a.log), query.WithTieBreak(tie))
	return nil
}
