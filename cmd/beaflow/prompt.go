package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zonder-ai/beaflow/internal/presentation/tui"
	"github.com/zonder-ai/beaflow/pkg/esi"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Render Bea's global prompt in the terminal",
	Long:  `Renders the persona and business-rules markdown the agent runs with, for quick review without opening the exported JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		render := tui.NewRenderer()
		out, err := render(esi.GlobalPrompt)
		if err != nil {
			// Fall back to the raw text; the content matters more than styling.
			fmt.Println(esi.GlobalPrompt)
			os.Exit(0)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
