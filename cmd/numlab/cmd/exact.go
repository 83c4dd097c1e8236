// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/numlab/dataio"
	"github.com/katalvlaran/numlab/numeric"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exactCmd = &cobra.Command{
	Use:   "exact",
	Short: "Print the reference integrals",
	Long: `Prints the adaptively integrated reference values of the lab integrands,
and the closed-form integral of the polynomial in dane.txt when the data
directory holds one.`,
	Args: cobra.NoArgs,
	RunE: runExact,
}

func init() {
	rootCmd.AddCommand(exactCmd)
}

func runExact(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		printError("configuration", err)
		return err
	}
	defer func() { _ = log.Sync() }()

	out := cmd.OutOrStdout()
	for _, in := range []numeric.Integrand{numeric.XCos3(), numeric.X2Sin3(), numeric.ExpX2()} {
		v, err := in.Exact()
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		fmt.Fprintf(out, "%-16s [%g, %g]  %.15g\n", in.Name, in.A, in.B, v)
	}

	pf, err := dataio.LoadPolynomial(filepath.Join(cfg.General.DataDir, "dane.txt"))
	if err != nil {
		log.Debug("no polynomial input", zap.Error(err))
		return nil
	}
	p := numeric.Polynomial(pf.Coeffs)
	fmt.Fprintf(out, "%-16s [%g, %g]  %.15g\n", fmt.Sprintf("poly (deg %d)", p.Degree()), pf.A, pf.B, p.Integral(pf.A, pf.B))

	return nil
}
