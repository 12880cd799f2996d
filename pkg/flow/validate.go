package flow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate checks every structural invariant of the document and reports all
// violations at once. It never inspects prompt or condition semantics — those
// belong to the platform. A nil return means the document is well-formed.
func (d *Document) Validate() error {
	var errs []error

	if d.ConversationFlowID == "" {
		errs = append(errs, &StructuralError{Field: "conversation_flow_id", Reason: "required"})
	}

	// Node identifiers must be pairwise distinct.
	nodeIDs := make(map[string]bool, len(d.Nodes))
	for i, n := range d.Nodes {
		id := n.NodeID()
		if id == "" {
			errs = append(errs, &StructuralError{Field: fmt.Sprintf("nodes[%d].id", i), Reason: "required"})
			continue
		}
		if nodeIDs[id] {
			errs = append(errs, &StructuralError{Field: fmt.Sprintf("nodes[%d].id", i), Reason: "duplicate node id", Value: id})
		}
		nodeIDs[id] = true
	}

	// Every non-empty edge destination must name an existing node. An empty
	// destination is a deliberate terminal and passes.
	for i, n := range d.Nodes {
		edgeIDs := make(map[string]bool)
		for j, e := range n.Outgoing() {
			if e.ID != "" && edgeIDs[e.ID] {
				errs = append(errs, &StructuralError{
					Field:  fmt.Sprintf("nodes[%d].edges[%d].id", i, j),
					Reason: "duplicate edge id within node",
					Value:  e.ID,
				})
			}
			edgeIDs[e.ID] = true

			if e.DestinationNodeID != "" && !nodeIDs[e.DestinationNodeID] {
				errs = append(errs, &StructuralError{
					Field:  fmt.Sprintf("nodes[%d].edges[%d].destination_node_id", i, j),
					Reason: "dangling destination",
					Value:  e.DestinationNodeID,
				})
			}
		}
	}

	// The start node must resolve.
	if d.StartNodeID == "" {
		errs = append(errs, &StructuralError{Field: "start_node_id", Reason: "required"})
	} else if !nodeIDs[d.StartNodeID] {
		errs = append(errs, &StructuralError{Field: "start_node_id", Reason: "no node with this id", Value: d.StartNodeID})
	}

	// Tool names and identifiers must be pairwise distinct.
	toolIDs := make(map[string]bool, len(d.Tools))
	toolNames := make(map[string]bool, len(d.Tools))
	for i, t := range d.Tools {
		if t.ToolID == "" {
			errs = append(errs, &StructuralError{Field: fmt.Sprintf("tools[%d].tool_id", i), Reason: "required"})
		} else if toolIDs[t.ToolID] {
			errs = append(errs, &StructuralError{Field: fmt.Sprintf("tools[%d].tool_id", i), Reason: "duplicate tool id", Value: t.ToolID})
		}
		toolIDs[t.ToolID] = true

		if t.Name == "" {
			errs = append(errs, &StructuralError{Field: fmt.Sprintf("tools[%d].name", i), Reason: "required"})
		} else if toolNames[t.Name] {
			errs = append(errs, &StructuralError{Field: fmt.Sprintf("tools[%d].name", i), Reason: "duplicate tool name", Value: t.Name})
		}
		toolNames[t.Name] = true

		errs = append(errs, validateParameters(i, t.Parameters)...)
	}

	// Function nodes must reference a declared tool.
	for i, n := range d.Nodes {
		fn, ok := n.(*FunctionNode)
		if !ok {
			continue
		}
		if fn.ToolID == "" {
			errs = append(errs, &StructuralError{Field: fmt.Sprintf("nodes[%d].tool_id", i), Reason: "required"})
		} else if !toolIDs[fn.ToolID] {
			errs = append(errs, &StructuralError{
				Field:  fmt.Sprintf("nodes[%d].tool_id", i),
				Reason: "unresolved tool reference",
				Value:  fn.ToolID,
			})
		}
	}

	// Extraction variables must declare a supported type.
	for i, n := range d.Nodes {
		ev, ok := n.(*ExtractVariablesNode)
		if !ok {
			continue
		}
		for j, v := range ev.Variables {
			if !validVariableType(v.Type) {
				errs = append(errs, &StructuralError{
					Field:  fmt.Sprintf("nodes[%d].variables[%d].type", i, j),
					Reason: "unsupported variable type",
					Value:  v.Type,
				})
			}
			if v.Type == VariableEnum && len(v.Choices) == 0 {
				errs = append(errs, &StructuralError{
					Field:  fmt.Sprintf("nodes[%d].variables[%d].choices", i, j),
					Reason: "enum variable requires choices",
				})
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// validateParameters checks that the required list resolves against the
// declared properties and that the descriptor loads as a valid schema.
func validateParameters(toolIndex int, ps *ParameterSchema) []error {
	if ps == nil {
		return nil
	}
	var errs []error

	for _, name := range ps.Required {
		if _, ok := ps.Properties[name]; !ok {
			errs = append(errs, &StructuralError{
				Field:  fmt.Sprintf("tools[%d].parameters.required", toolIndex),
				Reason: "required parameter missing from properties",
				Value:  name,
			})
		}
	}

	// Cross-check the descriptor against a real schema loader so malformed
	// type names fail here instead of at the platform.
	raw, err := json.Marshal(ps)
	if err != nil {
		errs = append(errs, &StructuralError{
			Field:  fmt.Sprintf("tools[%d].parameters", toolIndex),
			Reason: fmt.Sprintf("not serializable: %v", err),
		})
		return errs
	}
	var schema openapi3.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		errs = append(errs, &StructuralError{
			Field:  fmt.Sprintf("tools[%d].parameters", toolIndex),
			Reason: fmt.Sprintf("not a valid schema: %v", err),
		})
		return errs
	}
	if err := schema.Validate(context.Background()); err != nil {
		errs = append(errs, &StructuralError{
			Field:  fmt.Sprintf("tools[%d].parameters", toolIndex),
			Reason: fmt.Sprintf("not a valid schema: %v", err),
		})
	}
	return errs
}

// Reachable reports whether target can be reached from the start node by
// following declared edge destinations. It is a structural crawl, not an
// execution: conditions are ignored and destination-less edges end a path.
func (d *Document) Reachable(target string) bool {
	visited := make(map[string]bool, len(d.Nodes))
	queue := []string{d.StartNodeID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == target {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true

		n := d.Node(current)
		if n == nil {
			continue
		}
		for _, e := range n.Outgoing() {
			if e.DestinationNodeID != "" && !visited[e.DestinationNodeID] {
				queue = append(queue, e.DestinationNodeID)
			}
		}
	}
	return false
}

// Unreachable returns the IDs of nodes that no edge path from the start node
// touches. Dead-end branches are expected; fully orphaned nodes usually mean
// an authoring mistake worth reviewing.
func (d *Document) Unreachable() []string {
	visited := make(map[string]bool, len(d.Nodes))
	queue := []string{d.StartNodeID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		n := d.Node(current)
		if n == nil {
			continue
		}
		for _, e := range n.Outgoing() {
			if e.DestinationNodeID != "" {
				queue = append(queue, e.DestinationNodeID)
			}
		}
	}

	var orphans []string
	for _, n := range d.Nodes {
		if !visited[n.NodeID()] {
			orphans = append(orphans, n.NodeID())
		}
	}
	return orphans
}
