package esi

import "github.com/zonder-ai/beaflow/pkg/flow"

// Node identifiers, fixed since the flow was first authored. The welcome
// node keeps its original editor-generated id because the platform addresses
// the live flow by it.
const (
	NodeWelcome          = "start-node-1752593222665"
	NodeQualification    = "node-qualification"
	NodeExtractVariables = "node-extract-variables"
	NodeBookingFlow      = "node-booking-flow"
	NodeCallback         = "node-callback"
	NodeEnd              = "node-end"
)

// buildNodes returns the six-node qualification graph:
// welcome → qualification → extract variables → booking → end, with a
// callback side branch for leads who cannot talk now. The "not interested"
// edge on the welcome node deliberately has no destination — the call just
// ends there.
func buildNodes() []flow.Node {
	return []flow.Node{
		&flow.ConversationNode{
			ID:           NodeWelcome,
			Name:         "Welcome Node",
			Position:     flow.DisplayPosition{X: 342, Y: 433},
			StartSpeaker: flow.StartSpeakerAgent,
			Instruction: flow.Prompt(
				"Introdúcete como Bea, asistente IA de ESI. Pregúntale al usuario si es un buen momento para hablar 5 minutos.",
			),
			Edges: []flow.Edge{
				{
					ID:                  "edge-1",
					DestinationNodeID:   NodeCallback,
					TransitionCondition: flow.WhenPrompt("El usuario indica que no tiene tiempo ahora o pide que le llamen más tarde."),
				},
				{
					ID:                  "edge-2",
					TransitionCondition: flow.WhenPrompt("El usuario no muestra interés real en el curso o rechaza explícitamente."),
				},
				{
					ID:                  "edge-3",
					DestinationNodeID:   NodeQualification,
					TransitionCondition: flow.WhenPrompt("El usuario confirma que tiene tiempo para hablar y muestra interés en el curso."),
				},
			},
		},
		&flow.ConversationNode{
			ID:       NodeQualification,
			Name:     "Cualificación Express",
			Position: flow.DisplayPosition{X: 1292, Y: 818},
			Instruction: flow.Prompt(`Genial. Tres preguntas rápidas antes de conectarte con nuestro especialista:
1. ¿Tienes experiencia previa en diseño?
2. ¿Tu objetivo principal? ¿Cambio profesional, mejorar trabajo actual, o emprendimiento?
3. ¿Modalidad preferida: online o presencial?`),
			Edges: []flow.Edge{
				{
					ID:                  "edge-qualified",
					DestinationNodeID:   NodeExtractVariables,
					TransitionCondition: flow.WhenPrompt("El usuario cualifica basado en motivación profesional y plazos razonables."),
				},
			},
		},
		&flow.ExtractVariablesNode{
			ID:       NodeExtractVariables,
			Name:     "Extract Variables",
			Position: flow.DisplayPosition{X: 1682, Y: 1240},
			Variables: []flow.Variable{
				{
					Name:        "tipo_curso",
					Description: "Qué tipo de curso va a cursar o está interesado el lead",
					Type:        flow.VariableEnum,
					Choices:     []string{"online", "privado"},
				},
				{
					Name:        "experience_level",
					Description: "Nivel de experiencia en diseño del usuario",
					Type:        flow.VariableString,
				},
				{
					Name:        "motivation",
					Description: "Objetivo principal del usuario",
					Type:        flow.VariableString,
				},
			},
			Edges: []flow.Edge{
				{
					ID:                  "edge-to-booking",
					DestinationNodeID:   NodeBookingFlow,
					TransitionCondition: flow.WhenPrompt("Variables are determined and user is qualified"),
				},
			},
		},
		&flow.ConversationNode{
			ID:       NodeBookingFlow,
			Name:     "Booking Flow",
			Position: flow.DisplayPosition{X: 2500, Y: 1200},
			Instruction: flow.Prompt(
				"Perfecto, vamos a agendar una cita con nuestro especialista. Te contactaremos pronto con los detalles.",
			),
			Edges: []flow.Edge{
				{
					ID:                  "edge-to-end",
					DestinationNodeID:   NodeEnd,
					TransitionCondition: flow.WhenPrompt("Booking process completed"),
				},
			},
		},
		&flow.ConversationNode{
			ID:       NodeCallback,
			Name:     "Callback Request",
			Position: flow.DisplayPosition{X: 732, Y: 305},
			Instruction: flow.Prompt(
				"Entiendo que no es un buen momento. ¿Cuándo sería mejor para llamarte?",
			),
			Edges: []flow.Edge{
				{
					ID:                  "edge-callback-to-end",
					DestinationNodeID:   NodeEnd,
					TransitionCondition: flow.WhenPrompt("Callback scheduled"),
				},
			},
		},
		&flow.EndNode{
			ID:          NodeEnd,
			Name:        "End Call",
			Position:    flow.DisplayPosition{X: 3000, Y: 1500},
			Instruction: flow.Prompt("¡Perfecto! Gracias y que tengas un excelente día."),
		},
	}
}
