package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zonder-ai/beaflow/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "beaflow",
	Short: "beaflow assembles and deploys the ESI voice-agent conversation flow",
	Long: `beaflow builds the declarative conversation-flow document for Bea,
the ESI Design School voice agent, and ships it to the Retell platform.
The flow itself is fixed; this tool validates, exports, visualizes and
deploys it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to an optional YAML config file")
}

// loadConfig resolves defaults, the optional --config file and environment
// variables.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
