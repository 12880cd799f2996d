package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zonder-ai/beaflow"
	"github.com/zonder-ai/beaflow/internal/presentation/graph"
	"github.com/zonder-ai/beaflow/internal/presentation/tui"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the flow graph visualization",
	Long:  `Builds the conversation flow and outputs a Mermaid diagram (graph TD) of its topology.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			tui.Fail("Config error: %v", err)
			os.Exit(1)
		}

		doc, err := beaflow.Build(cfg)
		if err != nil {
			tui.Fail("Build error: %v", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(doc))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
