package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Get the current matrixpanel version",
		Long:  "Get the current matrixpanel version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := color.New(color.FgGreen, color.Bold).Sprint(version)
			fmt.Fprintf(cmd.OutOrStdout(), "matrixpanel version: %s (commit %s, built %s)\n", v, commit, date)
		},
	}
}
