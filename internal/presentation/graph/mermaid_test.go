package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonder-ai/beaflow/internal/presentation/graph"
	"github.com/zonder-ai/beaflow/pkg/esi"
	"github.com/zonder-ai/beaflow/pkg/flow"
)

func TestGenerateMermaid_Shapes(t *testing.T) {
	doc, err := esi.Build(esi.Params{})
	require.NoError(t, err)

	out := graph.GenerateMermaid(doc)
	require.True(t, strings.HasPrefix(out, "graph TD\n"))

	// Start node as a circle.
	assert.Contains(t, out, `start_node_1752593222665(("Welcome Node"))`)
	// Extraction node as a parallelogram.
	assert.Contains(t, out, `[/"Extract Variables"/]`)
	// End node as a stadium.
	assert.Contains(t, out, `node_end([`)
}

func TestGenerateMermaid_FunctionShape(t *testing.T) {
	doc := &flow.Document{
		StartNodeID: "a",
		Nodes: []flow.Node{
			&flow.ConversationNode{
				ID:    "a",
				Name:  "A",
				Edges: []flow.Edge{{ID: "e1", DestinationNodeID: "fn"}},
			},
			&flow.FunctionNode{ID: "fn", Name: "Check Availability", ToolID: "tool-1"},
		},
	}

	out := graph.GenerateMermaid(doc)
	assert.Contains(t, out, `fn[["Check Availability"]]`)
}

func TestGenerateMermaid_ConditionLabels(t *testing.T) {
	doc, err := esi.Build(esi.Params{})
	require.NoError(t, err)

	out := graph.GenerateMermaid(doc)

	// Every resolvable edge renders an arrow to its sanitized destination.
	assert.Contains(t, out, "node_qualification")
	assert.Contains(t, out, "-- \"")
	assert.Contains(t, out, "--> node_end")
}

func TestGenerateMermaid_HangupMarker(t *testing.T) {
	doc, err := esi.Build(esi.Params{})
	require.NoError(t, err)

	out := graph.GenerateMermaid(doc)

	// The not-interested branch has no destination and must stay visible.
	assert.Contains(t, out, `hangup_1(["hangup"])`)
	assert.Contains(t, out, "--> hangup_1")
}

func TestGenerateMermaid_EscapesQuotesInConditions(t *testing.T) {
	doc := &flow.Document{
		StartNodeID: "a",
		Nodes: []flow.Node{
			&flow.ConversationNode{
				ID:   "a",
				Name: "A",
				Edges: []flow.Edge{
					{
						ID:                  "e1",
						DestinationNodeID:   "b",
						TransitionCondition: flow.WhenPrompt(`says "yes"`),
					},
				},
			},
			&flow.EndNode{ID: "b", Name: "B"},
		},
	}

	out := graph.GenerateMermaid(doc)
	assert.Contains(t, out, "says 'yes'")
	assert.NotContains(t, out, `says "yes"`)
}
