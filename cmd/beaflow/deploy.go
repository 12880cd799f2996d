package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zonder-ai/beaflow"
	"github.com/zonder-ai/beaflow/internal/adapters/file"
	"github.com/zonder-ai/beaflow/internal/presentation/tui"
	"github.com/zonder-ai/beaflow/internal/retell"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build the flow and create the Retell agent",
	Long: `Builds the ESI conversation flow, validates it, submits it to the Retell
create-agent API and saves the deployed document as a local JSON artifact.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDeploy(cmd); err != nil {
			tui.Fail("Deployment failed: %v", err)
			os.Exit(1)
		}
	},
}

func init() {
	deployCmd.Flags().String("output", file.DefaultArtifactName, "Artifact filename written after a successful deploy")
	deployCmd.Flags().Duration("timeout", 30*time.Second, "Deadline for the create-agent call")
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	doc, err := beaflow.Build(cfg)
	if err != nil {
		return err
	}

	tui.Info("Building agent: %s", cfg.AgentName)
	tui.Info("Nodes: %d, Tools: %d", len(doc.Nodes), len(doc.Tools))

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	client := retell.New(cfg.APIKey)
	agent, err := client.CreateAgent(ctx, doc, retell.AgentSettings{
		AgentName:               cfg.AgentName,
		VoiceID:                 cfg.VoiceID,
		Language:                cfg.Language,
		MaxCallDurationMS:       cfg.MaxCallDurationMS,
		InterruptionSensitivity: cfg.InterruptionSensitivity,
		AllowUserDTMF:           cfg.AllowUserDTMF,
	})
	if err != nil {
		return err
	}

	tui.Success("Agent created: %s (%s)", agent.AgentName, agent.AgentID)

	output, _ := cmd.Flags().GetString("output")
	path, err := file.New("").Save(doc, output)
	if err != nil {
		return err
	}
	tui.Success("Flow saved to %s", path)
	return nil
}
