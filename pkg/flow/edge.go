package flow

// ConditionType constants for transition conditions.
const (
	// ConditionPrompt is a natural-language predicate evaluated by the
	// platform's LLM at call time.
	ConditionPrompt = "prompt"
	// ConditionEquation is a structured comparison over dynamic variables.
	ConditionEquation = "equation"
)

// Edge is a directed transition out of a node. An Edge with an empty
// DestinationNodeID is a dead-end branch: the conversation ends there
// implicitly. That shape is intentional and must be preserved as-is.
type Edge struct {
	ID                  string               `json:"id"`
	DestinationNodeID   string               `json:"destination_node_id,omitempty"`
	TransitionCondition *TransitionCondition `json:"transition_condition,omitempty"`
}

// TransitionCondition guards an Edge. It is either a free-text prompt or a
// set of equations combined by Operator. This system validates its shape
// only; evaluation happens on the platform.
type TransitionCondition struct {
	Type      string     `json:"type"`
	Prompt    string     `json:"prompt,omitempty"`
	Equations []Equation `json:"equations,omitempty"`
	Operator  string     `json:"operator,omitempty"` // "&&" or "||", only with multiple equations
}

// Equation is one structured comparison, e.g. {{tipo_curso}} == "online".
type Equation struct {
	Left     string `json:"left"`
	Operator string `json:"operator"`
	Right    string `json:"right"`
}

// WhenPrompt builds a prompt-guarded condition.
func WhenPrompt(text string) *TransitionCondition {
	return &TransitionCondition{Type: ConditionPrompt, Prompt: text}
}

// WhenEquations builds an equation-guarded condition. The operator combines
// the equations and may be empty when there is only one.
func WhenEquations(operator string, equations ...Equation) *TransitionCondition {
	return &TransitionCondition{Type: ConditionEquation, Equations: equations, Operator: operator}
}
