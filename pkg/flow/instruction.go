package flow

// InstructionType constants define how a node produces speech.
const (
	// InstructionPrompt lets the model generate the utterance from a
	// natural-language directive.
	InstructionPrompt = "prompt"
	// InstructionStaticText speaks the text verbatim.
	InstructionStaticText = "static_text"
)

// Instruction is a node's spoken-content directive. Text may contain
// `{{variable}}` placeholders resolved by the platform, never locally.
type Instruction struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Prompt builds a model-generated instruction.
func Prompt(text string) *Instruction {
	return &Instruction{Type: InstructionPrompt, Text: text}
}

// StaticText builds a verbatim instruction.
func StaticText(text string) *Instruction {
	return &Instruction{Type: InstructionStaticText, Text: text}
}
