package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zonder-ai/beaflow"
	"github.com/zonder-ai/beaflow/internal/presentation/tui"
	"github.com/zonder-ai/beaflow/pkg/esi"
	"github.com/zonder-ai/beaflow/pkg/flow"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the flow for structural consistency",
	Long: `Builds the conversation flow and reports structural defects: dangling edge
destinations, duplicate identifiers, unresolved tool references and
unreachable nodes.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			tui.Fail("Validation failed: %v", err)
			os.Exit(1)
		}
		tui.Success("Flow is valid")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Build already runs the structural validation; a defect surfaces here.
	doc, err := beaflow.Build(cfg)
	if err != nil {
		return err
	}

	tui.Info("Nodes: %d, Tools: %d, Start: %s", len(doc.Nodes), len(doc.Tools), doc.StartNodeID)

	return checkReachability(doc, esi.NodeEnd)
}

// checkReachability reports orphaned nodes and fails when the closing node
// cannot be reached from the start, so `validate` exits non-zero.
func checkReachability(doc *flow.Document, target string) error {
	for _, id := range doc.Unreachable() {
		tui.Info("Unreachable node (review): %s", id)
	}
	if !doc.Reachable(target) {
		return fmt.Errorf("end node %s is not reachable from %s", target, doc.StartNodeID)
	}
	return nil
}
