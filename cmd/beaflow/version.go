package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zonder-ai/beaflow"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beaflow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beaflow version %s\n", strings.TrimSpace(beaflow.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
