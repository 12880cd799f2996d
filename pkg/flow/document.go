package flow

import (
	"bytes"
	"encoding/json"
	"io"
)

// StartSpeakerAgent is the only start speaker this system emits: the agent
// opens the call.
const StartSpeakerAgent = "agent"

// ModelChoice selects the LLM driving the conversation.
type ModelChoice struct {
	Type  string `json:"type"` // always "cascading"
	Model string `json:"model"`
}

// Document is the complete declarative conversation flow shipped to the
// platform. Instances are constructed once, validated, serialized and
// discarded; nothing mutates a Document after construction.
type Document struct {
	ConversationFlowID string          `json:"conversation_flow_id"`
	Version            int             `json:"version"`
	GlobalPrompt       string          `json:"global_prompt"`
	Nodes              []Node          `json:"nodes"`
	StartNodeID        string          `json:"start_node_id"`
	StartSpeaker       string          `json:"start_speaker"`
	Tools              []Tool          `json:"tools"`
	ModelChoice        ModelChoice     `json:"model_choice"`
	BeginTagPosition   DisplayPosition `json:"begin_tag_display_position"`
	IsPublished        bool            `json:"is_published"`
	KnowledgeBaseIDs   []string        `json:"knowledge_base_ids"`
}

// UnmarshalJSON decodes the polymorphic nodes array through the "type"
// discriminator. Everything else decodes structurally.
func (d *Document) UnmarshalJSON(data []byte) error {
	type alias Document
	aux := struct {
		*alias
		Nodes []json.RawMessage `json:"nodes"`
	}{alias: (*alias)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	d.Nodes = make([]Node, 0, len(aux.Nodes))
	for _, raw := range aux.Nodes {
		n, err := unmarshalNode(raw)
		if err != nil {
			return err
		}
		d.Nodes = append(d.Nodes, n)
	}
	return nil
}

// Node returns the node with the given identifier, or nil.
func (d *Document) Node(id string) Node {
	for _, n := range d.Nodes {
		if n.NodeID() == id {
			return n
		}
	}
	return nil
}

// Tool returns the tool with the given identifier, or nil.
func (d *Document) Tool(id string) *Tool {
	for i := range d.Tools {
		if d.Tools[i].ToolID == id {
			return &d.Tools[i]
		}
	}
	return nil
}

// Encode writes the document as JSON. Spanish prompt text must survive
// unescaped, so HTML escaping is off.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return &SerializationError{Op: "encode", Err: err}
	}
	return nil
}

// EncodeIndent writes the document as human-formatted JSON for offline
// inspection.
func (d *Document) EncodeIndent(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return &SerializationError{Op: "encode", Err: err}
	}
	return nil
}

// Decode reads a document back from JSON. Used for round-trip verification
// of exported artifacts.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, &SerializationError{Op: "decode", Err: err}
	}
	return &d, nil
}

// MarshalIndent returns the human-formatted JSON bytes of the document.
func (d *Document) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.EncodeIndent(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
