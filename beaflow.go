// Package beaflow is the high-level entry point for building the ESI
// conversation-flow document. The heavy lifting lives in pkg/flow (document
// model) and pkg/esi (the fixed flow definition); this facade just ties the
// resolved configuration to the builder.
package beaflow

import (
	"github.com/zonder-ai/beaflow/internal/config"
	"github.com/zonder-ai/beaflow/pkg/esi"
	"github.com/zonder-ai/beaflow/pkg/flow"
)

// Version of the beaflow tool.
var Version = "0.3.0"

// Build assembles the deploy-ready ESI flow document from the resolved
// configuration.
func Build(cfg config.Config) (*flow.Document, error) {
	return esi.Build(esi.Params{
		WebhookURL: cfg.WebhookURL,
		Model:      cfg.Model,
	})
}
