// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/numlab/labs"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [lab...]",
	Short: "Generate lab reports",
	Long: `Runs the named labs, or the labs listed in the configuration, or all of
them. Missing inputs skip the affected step; the run still succeeds.
A manifest.yaml describing every step is written to the output directory.

Examples:
  numlab run                       # every lab
  numlab run roots quadrature      # two labs
  numlab run --data ./data --out ./figures`,
	RunE: runReports,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runReports(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		printError("configuration", err)
		return err
	}
	defer func() { _ = log.Sync() }()

	names := args
	if len(names) == 0 {
		names = cfg.General.Labs
	}

	env := labs.NewEnv(cfg, log)
	if err := labs.Run(env, names...); err != nil {
		printError("run", err)
		return err
	}

	m := env.Manifest
	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d steps written, %d skipped, output in %s\n",
		m.RunID, m.Count(labs.StatusOK), m.Count(labs.StatusSkipped), env.OutDir)

	return nil
}
