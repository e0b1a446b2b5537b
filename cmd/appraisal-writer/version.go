package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of appraisal-writer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "appraisal-writer %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
