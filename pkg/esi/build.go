package esi

import "github.com/zonder-ai/beaflow/pkg/flow"

// Defaults applied when a Params field is zero.
const (
	DefaultFlowID     = "conversation_flow_esi"
	DefaultWebhookURL = "https://n8n.zonder.ai/webhook/retell-zonder-esi"
	DefaultModel      = "gpt-4.1"
)

// Params are the configuration values substituted into the flow. They are
// opaque inputs, not logic: changing them never changes the graph topology.
type Params struct {
	// FlowID identifies the conversation flow on the platform.
	FlowID string
	// WebhookURL is the n8n endpoint every tool targets.
	WebhookURL string
	// Model drives the cascading model choice.
	Model string
	// Version of the flow document.
	Version int
}

func (p Params) withDefaults() Params {
	if p.FlowID == "" {
		p.FlowID = DefaultFlowID
	}
	if p.WebhookURL == "" {
		p.WebhookURL = DefaultWebhookURL
	}
	if p.Model == "" {
		p.Model = DefaultModel
	}
	return p
}

// Build assembles and validates the complete ESI conversation flow. It is
// deterministic: two calls with equal Params yield structurally identical
// documents. On an invariant violation it returns the aggregate
// StructuralError and no document.
func Build(p Params) (*flow.Document, error) {
	p = p.withDefaults()

	doc := &flow.Document{
		ConversationFlowID: p.FlowID,
		Version:            p.Version,
		GlobalPrompt:       GlobalPrompt,
		Nodes:              buildNodes(),
		StartNodeID:        NodeWelcome,
		StartSpeaker:       flow.StartSpeakerAgent,
		Tools:              buildTools(p.WebhookURL),
		ModelChoice:        flow.ModelChoice{Type: "cascading", Model: p.Model},
		BeginTagPosition:   flow.DisplayPosition{X: 122, Y: 333},
		IsPublished:        false,
		KnowledgeBaseIDs:   []string{},
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}
