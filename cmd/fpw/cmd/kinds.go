package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFPW/internal/report"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the supported package kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), report.Kinds())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
