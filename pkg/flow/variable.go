package flow

// Variable type names accepted by the platform's extraction step.
const (
	VariableString  = "string"
	VariableNumber  = "number"
	VariableBoolean = "boolean"
	VariableEnum    = "enum"
)

// Variable is a named extraction slot requested from the platform during an
// extract_dynamic_variables node. Choices is only meaningful for enum
// variables.
type Variable struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Choices     []string `json:"choices,omitempty"`
}

// validVariableType reports whether typ names a supported declared type.
func validVariableType(typ string) bool {
	switch typ {
	case VariableString, VariableNumber, VariableBoolean, VariableEnum:
		return true
	}
	return false
}
