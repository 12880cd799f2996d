/*
Package flow contains the conversation-flow document model submitted to the
Retell voice platform.

It defines the declarative entities of a flow — Nodes, Edges, Tools,
Transition Conditions and Variables — together with the structural invariants
that make a document well-formed. This package is kept pure: it performs no
I/O, holds no mutable state after construction and never interprets the
natural-language content it carries. Prompts, transition conditions and
`{{variable}}` placeholders are opaque strings evaluated by the platform at
call time, never here.

# Key Entities

  - Document: the serializable root shipped to the create-agent API.
  - Node: a tagged variant over the six node kinds (conversation, function,
    branch, extract_dynamic_variables, end, transfer_call). Each variant
    carries only the fields meaningful to its kind.
  - Edge: a directed transition. An Edge without a destination is a valid,
    intentional terminal marker.
  - Tool: an externally invocable webhook function with a JSON-Schema-shaped
    parameter descriptor.

Field names in the emitted JSON are contractual; the platform expects them
verbatim.
*/
package flow
