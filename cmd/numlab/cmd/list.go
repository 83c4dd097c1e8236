// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/numlab/labs"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available labs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range labs.Labs() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", l.Name, l.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
