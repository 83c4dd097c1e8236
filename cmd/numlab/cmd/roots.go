// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/numlab/rootfind"
	"github.com/spf13/cobra"
)

var rootsCompare bool

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "Locate the roots of the lab functions",
	Long: `Scans [roots.scan_min, roots.scan_max] for sign changes of every lab
function and prints the refined roots. With --compare, runs bisection,
Newton and secant on the first root of each function and prints the
summary table as CSV.

Examples:
  numlab roots
  numlab roots --compare > results_summary.csv`,
	Args: cobra.NoArgs,
	RunE: runRoots,
}

func init() {
	rootCmd.AddCommand(rootsCmd)
	rootsCmd.Flags().BoolVar(&rootsCompare, "compare", false, "compare the three methods and print CSV")
}

func runRoots(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		printError("configuration", err)
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := cfg.Roots.Options()
	out := cmd.OutOrStdout()
	var cmps []rootfind.Comparison
	for _, fn := range rootfind.LabFunctions() {
		roots, err := rootfind.FindRoots(fn.Eval, cfg.Roots.ScanMin, cfg.Roots.ScanMax, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", fn.Name, err)
		}
		if !rootsCompare {
			fmt.Fprintf(out, "%s: %s\n", fn.Name, fn.Formula)
			if len(roots) == 0 {
				fmt.Fprintln(out, "  no roots")
			}
			for _, r := range roots {
				fmt.Fprintf(out, "  x = %.10f  f(x) = %.2e\n", r, fn.Eval(r))
			}
			continue
		}
		if len(roots) == 0 {
			continue
		}
		c, err := rootfind.Compare(fn, roots[0], opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", fn.Name, err)
		}
		cmps = append(cmps, c)
	}
	if !rootsCompare {
		return nil
	}

	return rootfind.WriteSummaryCSV(out, rootfind.Summarize(cmps))
}
