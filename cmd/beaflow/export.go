package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zonder-ai/beaflow"
	"github.com/zonder-ai/beaflow/internal/adapters/file"
	"github.com/zonder-ai/beaflow/internal/presentation/tui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the flow document to a JSON file",
	Long:  `Builds the conversation flow and writes it as indented UTF-8 JSON for offline inspection. No API call is made.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExport(cmd); err != nil {
			tui.Fail("Export failed: %v", err)
			os.Exit(1)
		}
	},
}

func init() {
	exportCmd.Flags().String("output", file.DefaultArtifactName, "Artifact filename")
	exportCmd.Flags().String("dir", ".", "Directory to write the artifact into")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	doc, err := beaflow.Build(cfg)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	output, _ := cmd.Flags().GetString("output")
	path, err := file.New(dir).Save(doc, output)
	if err != nil {
		return err
	}
	tui.Success("Flow saved to %s", path)
	return nil
}
