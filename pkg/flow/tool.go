package flow

// ToolType constants define who executes a tool invocation.
const (
	// ToolCustom is an external webhook invoked by the platform mid-call.
	ToolCustom = "custom"
	// ToolLocal is handled by the platform itself.
	ToolLocal = "local"
)

// Parameter encoding for tool requests.
const (
	ParameterJSON = "json"
	ParameterForm = "form"
)

// DefaultToolTimeoutMS is the platform default for webhook calls.
const DefaultToolTimeoutMS = 120000

// Tool defines an externally invocable function the platform may call during
// a live conversation. Name must be unique across all tools in a Document.
type Tool struct {
	ToolID        string            `json:"tool_id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Type          string            `json:"type"`
	Method        string            `json:"method"`
	URL           string            `json:"url"`
	ParameterType string            `json:"parameter_type"`
	TimeoutMS     int               `json:"timeout_ms"`
	Parameters    *ParameterSchema  `json:"parameters,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
	QueryParams   map[string]string `json:"query_params,omitempty"`

	// ResponseVariables maps webhook response fields back into dynamic
	// variables for later nodes.
	ResponseVariables map[string]string `json:"response_variables,omitempty"`
}

// ParameterSchema is the JSON-Schema-shaped descriptor of a tool's arguments.
// Every name listed in Required must exist in Properties.
type ParameterSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes one tool argument.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}
