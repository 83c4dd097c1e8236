// SPDX-License-Identifier: MIT

// Package cmd implements the numlab command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/katalvlaran/numlab/config"
	"github.com/katalvlaran/numlab/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	dataDir string
	outDir  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "numlab",
	Short: "Numerical methods lab reports",
	Long: `numlab locates roots of the lab functions, computes reference integrals
and renders the figures of the numerical methods labs.

Configuration is read from a TOML file (--config) and NUMLAB_* environment
variables; --data and --out override the directories.

Labs:
  roots          bisection, Newton and secant on three test functions
  series         Dla_N.csv overlays
  interpolation  Newton and Horner interpolation plots
  quadrature     composite rules vs exact integrals
  gauss          Gauss-Legendre convergence and comparison
  approximation  least-squares approximation and RMSE by degree
  thermal        Euler cooling simulation
  ode            Heun, midpoint and RK4 cooling curves
  solvers        iterative linear solver summary`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "input data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "output directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to the console")
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if dataDir != "" {
		cfg.General.DataDir = dataDir
	}
	if outDir != "" {
		cfg.General.OutDir = outDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logCfg := logging.Config{Level: cfg.General.LogLevel, Development: cfg.General.LogDev}
	if verbose {
		logCfg = logging.DevelopmentConfig()
	}
	log, err := logging.New(logCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, log, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
