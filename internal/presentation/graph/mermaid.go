// Package graph renders the conversation flow as a Mermaid diagram for
// visual review of the declared topology.
package graph

import (
	"fmt"
	"strings"

	"github.com/zonder-ai/beaflow/pkg/flow"
)

// GenerateMermaid produces Mermaid flowchart syntax from a flow document.
// It applies semantic styling:
// - Start node: ((Circle))
// - Function (tool) node: [[Subroutine]]
// - Extract-variables node: [/Parallelogram/]
// - End / transfer node: [Stadium]
// - Default: [Rectangle]
// Destination-less edges render as arrows into a hangup marker so dead-end
// branches stay visible.
func GenerateMermaid(doc *flow.Document) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	hangups := 0
	for _, node := range doc.Nodes {
		safeID := sanitizeMermaidID(node.NodeID())

		opener, closer := "[", "]"
		switch {
		case node.NodeID() == doc.StartNodeID:
			opener, closer = "((", "))"
		case node.NodeKind() == flow.KindFunction:
			opener, closer = "[[", "]]"
		case node.NodeKind() == flow.KindExtractVariables:
			opener, closer = "[/", "/]"
		case node.NodeKind() == flow.KindEnd, node.NodeKind() == flow.KindTransferCall:
			opener, closer = "([", "])"
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, node.NodeName(), closer))

		for _, e := range node.Outgoing() {
			arrow := "-->"
			if cond := e.TransitionCondition; cond != nil && cond.Prompt != "" {
				safeCondition := strings.ReplaceAll(cond.Prompt, "\"", "'")
				arrow = fmt.Sprintf("-- \"%s\" -->", safeCondition)
			}

			target := e.DestinationNodeID
			if target == "" {
				// Intentional terminal: materialize a hangup marker.
				hangups++
				marker := fmt.Sprintf("hangup_%d", hangups)
				sb.WriteString(fmt.Sprintf("    %s([\"hangup\"])\n", marker))
				sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, marker))
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, sanitizeMermaidID(target)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
