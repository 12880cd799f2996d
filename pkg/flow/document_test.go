package flow

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// sampleDocument returns a minimal well-formed document exercising every
// node variant that the codec must round-trip.
func sampleDocument() *Document {
	return &Document{
		ConversationFlowID: "flow-test",
		Version:            2,
		GlobalPrompt:       "Eres un agente de prueba.",
		Nodes: []Node{
			&ConversationNode{
				ID:           "n-start",
				Name:         "Start",
				Position:     DisplayPosition{X: 10, Y: 20},
				StartSpeaker: StartSpeakerAgent,
				Instruction:  Prompt("Saluda al usuario."),
				Edges: []Edge{
					{ID: "e-1", DestinationNodeID: "n-call", TransitionCondition: WhenPrompt("quiere seguir")},
					{ID: "e-2", TransitionCondition: WhenPrompt("no le interesa")},
				},
			},
			&FunctionNode{
				ID:            "n-call",
				Name:          "Check",
				Position:      DisplayPosition{X: 30, Y: 40},
				ToolID:        "tool-1",
				ToolType:      ToolCustom,
				WaitForResult: true,
				Edges: []Edge{
					{ID: "e-3", DestinationNodeID: "n-branch"},
				},
			},
			&BranchNode{
				ID:       "n-branch",
				Name:     "Route",
				Position: DisplayPosition{X: 50, Y: 60},
				Edges: []Edge{
					{
						ID:                "e-4",
						DestinationNodeID: "n-extract",
						TransitionCondition: WhenEquations("", Equation{
							Left: "{{tipo}}", Operator: "==", Right: "online",
						}),
					},
				},
				ElseEdge: &Edge{ID: "e-else", DestinationNodeID: "n-transfer"},
			},
			&ExtractVariablesNode{
				ID:       "n-extract",
				Name:     "Extract",
				Position: DisplayPosition{X: 70, Y: 80},
				Variables: []Variable{
					{Name: "tipo", Description: "modalidad", Type: VariableEnum, Choices: []string{"online", "privado"}},
				},
				Edges: []Edge{
					{ID: "e-5", DestinationNodeID: "n-end"},
				},
			},
			&TransferCallNode{
				ID:          "n-transfer",
				Name:        "Transfer",
				Position:    DisplayPosition{X: 90, Y: 100},
				Destination: &TransferDestination{Type: "predefined", Number: "+34910000000"},
				Option:      &TransferOption{Type: "cold_transfer"},
				Edge:        &Edge{ID: "e-6", DestinationNodeID: "n-end"},
			},
			&EndNode{
				ID:          "n-end",
				Name:        "End",
				Position:    DisplayPosition{X: 110, Y: 120},
				Instruction: Prompt("Despídete."),
			},
		},
		StartNodeID:  "n-start",
		StartSpeaker: StartSpeakerAgent,
		Tools: []Tool{
			{
				ToolID:        "tool-1",
				Name:          "check_something",
				Description:   "comprueba algo",
				Type:          ToolCustom,
				Method:        "POST",
				URL:           "https://example.test/webhook",
				ParameterType: ParameterJSON,
				TimeoutMS:     DefaultToolTimeoutMS,
				Parameters: &ParameterSchema{
					Type: "object",
					Properties: map[string]Property{
						"course_type": {Type: "string", Description: "curso"},
					},
					Required: []string{"course_type"},
				},
			},
		},
		ModelChoice:      ModelChoice{Type: "cascading", Model: "gpt-4.1"},
		BeginTagPosition: DisplayPosition{X: 1, Y: 2},
		KnowledgeBaseIDs: []string{},
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	doc := sampleDocument()

	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	if decoded.ConversationFlowID != doc.ConversationFlowID {
		t.Errorf("ConversationFlowID = %q, want %q", decoded.ConversationFlowID, doc.ConversationFlowID)
	}
	if len(decoded.Nodes) != len(doc.Nodes) {
		t.Fatalf("node count = %d, want %d", len(decoded.Nodes), len(doc.Nodes))
	}
	if len(decoded.Tools) != len(doc.Tools) {
		t.Fatalf("tool count = %d, want %d", len(decoded.Tools), len(doc.Tools))
	}

	// Kinds must survive the discriminator dispatch in order.
	for i, n := range doc.Nodes {
		if decoded.Nodes[i].NodeKind() != n.NodeKind() {
			t.Errorf("node %d kind = %q, want %q", i, decoded.Nodes[i].NodeKind(), n.NodeKind())
		}
		if decoded.Nodes[i].NodeID() != n.NodeID() {
			t.Errorf("node %d id = %q, want %q", i, decoded.Nodes[i].NodeID(), n.NodeID())
		}
	}

	// Full structural identity: re-encoding must reproduce the same bytes.
	first, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal original: %v", err)
	}
	second, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("marshal decoded: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("re-encoded document differs from original encoding")
	}
}

func TestDocument_WireFieldNames(t *testing.T) {
	doc := sampleDocument()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	// The platform expects these names verbatim.
	for _, field := range []string{
		`"conversation_flow_id"`,
		`"global_prompt"`,
		`"start_node_id"`,
		`"start_speaker"`,
		`"model_choice"`,
		`"is_published"`,
		`"knowledge_base_ids"`,
		`"destination_node_id"`,
		`"transition_condition"`,
		`"extract_dynamic_variables"`,
		`"tool_id"`,
		`"timeout_ms"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("encoded document missing %s", field)
		}
	}

	// Spanish text must not get HTML-escaped or mangled.
	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Despídete.") {
		t.Error("encoded document lost accented text")
	}
}

func TestDocument_KnowledgeBaseIDsStaysArray(t *testing.T) {
	doc := sampleDocument()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), `"knowledge_base_ids":[]`) {
		t.Error("knowledge_base_ids must encode as an empty array, not null")
	}
}

func TestUnmarshalNode_UnknownKind(t *testing.T) {
	_, err := unmarshalNode([]byte(`{"id":"x","type":"teleport"}`))
	if err == nil {
		t.Fatal("unmarshalNode() should reject an unknown node type")
	}
}

func TestEdge_NoDestinationSurvivesRoundTrip(t *testing.T) {
	doc := sampleDocument()

	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	start, ok := decoded.Node("n-start").(*ConversationNode)
	if !ok {
		t.Fatal("n-start did not decode as a conversation node")
	}
	if got := start.Edges[1].DestinationNodeID; got != "" {
		t.Errorf("terminal edge destination = %q, want empty", got)
	}
}
