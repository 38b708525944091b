package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZAXBIE/vacplan"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of planner",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "planner version %s\n", strings.TrimSpace(vacplan.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
