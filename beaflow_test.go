package beaflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonder-ai/beaflow"
	"github.com/zonder-ai/beaflow/internal/config"
	"github.com/zonder-ai/beaflow/pkg/esi"
)

func TestBuild_FromDefaults(t *testing.T) {
	doc, err := beaflow.Build(config.Default())
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	assert.Equal(t, esi.DefaultFlowID, doc.ConversationFlowID)
	assert.Len(t, doc.Nodes, 6)
	assert.Len(t, doc.Tools, 5)
}

func TestBuild_ConfigFlowsThrough(t *testing.T) {
	cfg := config.Default()
	cfg.WebhookURL = "https://staging.zonder.ai/webhook/esi"
	cfg.Model = "gpt-4o"

	doc, err := beaflow.Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", doc.ModelChoice.Model)
	for _, tool := range doc.Tools {
		assert.Equal(t, "https://staging.zonder.ai/webhook/esi", tool.URL,
			"tool %s should target the configured webhook", tool.Name)
	}
}
