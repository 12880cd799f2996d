package flow

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a node variant on the wire.
type Kind string

// Node kinds understood by the platform.
const (
	KindConversation     Kind = "conversation"
	KindFunction         Kind = "function"
	KindBranch           Kind = "branch"
	KindExtractVariables Kind = "extract_dynamic_variables"
	KindEnd              Kind = "end"
	KindTransferCall     Kind = "transfer_call"
)

// DisplayPosition locates a node in the platform's visual editor. It carries
// no behavior here but the editor expects it on every node.
type DisplayPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TransferDestination is where a transfer_call node hands the caller off to.
type TransferDestination struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// TransferOption configures how the handoff is performed.
type TransferOption struct {
	Type                   string `json:"type"`
	ShowTransfereeAsCaller bool   `json:"show_transferee_as_caller"`
}

// Node is one point in the conversation graph. Each kind is a distinct
// concrete type carrying only the fields meaningful to it, so invalid field
// combinations are unrepresentable. All implementations marshal to the flat
// wire shape the platform expects, discriminated by the "type" field.
type Node interface {
	// NodeID returns the identifier, unique within a Document.
	NodeID() string
	// NodeName returns the display name shown in the editor.
	NodeName() string
	// NodeKind returns the wire discriminator.
	NodeKind() Kind
	// Outgoing returns the declared transitions. Terminal kinds return nil.
	Outgoing() []Edge
}

// ConversationNode speaks and listens, then follows one of its edges.
type ConversationNode struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Position     DisplayPosition `json:"display_position"`
	StartSpeaker string          `json:"start_speaker,omitempty"` // only set on the entry node
	Instruction  *Instruction    `json:"instruction,omitempty"`
	Edges        []Edge          `json:"edges"`
}

func (n *ConversationNode) NodeID() string   { return n.ID }
func (n *ConversationNode) NodeName() string { return n.Name }
func (n *ConversationNode) NodeKind() Kind   { return KindConversation }
func (n *ConversationNode) Outgoing() []Edge { return n.Edges }

// FunctionNode invokes a declared Tool by ID.
type FunctionNode struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Position             DisplayPosition `json:"display_position"`
	ToolID               string          `json:"tool_id"`
	ToolType             string          `json:"tool_type"`
	SpeakDuringExecution bool            `json:"speak_during_execution"`
	WaitForResult        bool            `json:"wait_for_result"`
	Instruction          *Instruction    `json:"instruction,omitempty"`
	Edges                []Edge          `json:"edges"`
}

func (n *FunctionNode) NodeID() string   { return n.ID }
func (n *FunctionNode) NodeName() string { return n.Name }
func (n *FunctionNode) NodeKind() Kind   { return KindFunction }
func (n *FunctionNode) Outgoing() []Edge { return n.Edges }

// BranchNode routes on equation conditions without speaking.
type BranchNode struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Position DisplayPosition `json:"display_position"`
	Edges    []Edge          `json:"edges"`
	ElseEdge *Edge           `json:"else_edge,omitempty"`
}

func (n *BranchNode) NodeID() string   { return n.ID }
func (n *BranchNode) NodeName() string { return n.Name }
func (n *BranchNode) NodeKind() Kind   { return KindBranch }

// Outgoing includes the else edge so traversal sees every declared path.
func (n *BranchNode) Outgoing() []Edge {
	if n.ElseEdge == nil {
		return n.Edges
	}
	edges := make([]Edge, 0, len(n.Edges)+1)
	edges = append(edges, n.Edges...)
	edges = append(edges, *n.ElseEdge)
	return edges
}

// ExtractVariablesNode asks the platform to extract the listed variables
// from the conversation so far.
type ExtractVariablesNode struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Position  DisplayPosition `json:"display_position"`
	Variables []Variable      `json:"variables"`
	Edges     []Edge          `json:"edges"`
}

func (n *ExtractVariablesNode) NodeID() string   { return n.ID }
func (n *ExtractVariablesNode) NodeName() string { return n.Name }
func (n *ExtractVariablesNode) NodeKind() Kind   { return KindExtractVariables }
func (n *ExtractVariablesNode) Outgoing() []Edge { return n.Edges }

// EndNode speaks a closing line and hangs up. It has no outgoing edges.
type EndNode struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Position    DisplayPosition `json:"display_position"`
	Instruction *Instruction    `json:"instruction,omitempty"`
}

func (n *EndNode) NodeID() string   { return n.ID }
func (n *EndNode) NodeName() string { return n.Name }
func (n *EndNode) NodeKind() Kind   { return KindEnd }
func (n *EndNode) Outgoing() []Edge { return nil }

// TransferCallNode hands the caller to a human. Edge, if set, is followed
// when the transfer fails.
type TransferCallNode struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Position    DisplayPosition      `json:"display_position"`
	Destination *TransferDestination `json:"transfer_destination"`
	Option      *TransferOption      `json:"transfer_option"`
	Edge        *Edge                `json:"edge,omitempty"`
}

func (n *TransferCallNode) NodeID() string   { return n.ID }
func (n *TransferCallNode) NodeName() string { return n.Name }
func (n *TransferCallNode) NodeKind() Kind   { return KindTransferCall }

func (n *TransferCallNode) Outgoing() []Edge {
	if n.Edge == nil {
		return nil
	}
	return []Edge{*n.Edge}
}

// --- Wire codec ---

// marshalNode emits the flat Retell shape: the variant's own fields plus the
// "type" discriminator.
func marshalNode(n Node) ([]byte, error) {
	switch v := n.(type) {
	case *ConversationNode:
		type alias ConversationNode
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*alias
		}{KindConversation, (*alias)(v)})
	case *FunctionNode:
		type alias FunctionNode
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*alias
		}{KindFunction, (*alias)(v)})
	case *BranchNode:
		type alias BranchNode
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*alias
		}{KindBranch, (*alias)(v)})
	case *ExtractVariablesNode:
		type alias ExtractVariablesNode
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*alias
		}{KindExtractVariables, (*alias)(v)})
	case *EndNode:
		type alias EndNode
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*alias
		}{KindEnd, (*alias)(v)})
	case *TransferCallNode:
		type alias TransferCallNode
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*alias
		}{KindTransferCall, (*alias)(v)})
	default:
		return nil, fmt.Errorf("unknown node type %T", n)
	}
}

// MarshalJSON implements json.Marshaler for every variant so a []Node slice
// serializes without a custom document codec.

func (n *ConversationNode) MarshalJSON() ([]byte, error)     { return marshalNode(n) }
func (n *FunctionNode) MarshalJSON() ([]byte, error)         { return marshalNode(n) }
func (n *BranchNode) MarshalJSON() ([]byte, error)           { return marshalNode(n) }
func (n *ExtractVariablesNode) MarshalJSON() ([]byte, error) { return marshalNode(n) }
func (n *EndNode) MarshalJSON() ([]byte, error)              { return marshalNode(n) }
func (n *TransferCallNode) MarshalJSON() ([]byte, error)     { return marshalNode(n) }

// unmarshalNode dispatches on the "type" discriminator and decodes into the
// matching variant.
func unmarshalNode(data []byte) (Node, error) {
	var probe struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	var n Node
	switch probe.Type {
	case KindConversation:
		n = &ConversationNode{}
	case KindFunction:
		n = &FunctionNode{}
	case KindBranch:
		n = &BranchNode{}
	case KindExtractVariables:
		n = &ExtractVariablesNode{}
	case KindEnd:
		n = &EndNode{}
	case KindTransferCall:
		n = &TransferCallNode{}
	default:
		return nil, fmt.Errorf("unknown node type %q", probe.Type)
	}

	if err := json.Unmarshal(data, n); err != nil {
		return nil, err
	}
	return n, nil
}
