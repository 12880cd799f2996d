package esi

import "github.com/zonder-ai/beaflow/pkg/flow"

// Tool names. The n8n workflow routes on these, so they are contractual.
const (
	ToolCheckAvailabilityPrivada = "check_availability_privada"
	ToolCheckAvailabilityOnline  = "check_availability_online"
	ToolBookCalendarPrivada      = "book_calendar_privada"
	ToolBookCalendarOnline       = "book_calendar_online"
	ToolCreateHubspotTask        = "create_hubspot_task"
)

// Tool identifiers, fixed since the flow was first authored.
const (
	toolIDCheckAvailabilityPrivada = "tool-1752595233964"
	toolIDCheckAvailabilityOnline  = "tool-1752595396875"
	toolIDBookCalendarPrivada      = "tool-1752596037711"
	toolIDBookCalendarOnline       = "tool-1752601612267"
	toolIDCreateHubspotTask        = "tool-1752666157093"
)

// buildTools returns the five webhook tools, all targeting the same n8n
// endpoint. The endpoint dispatches on the tool name.
func buildTools(webhookURL string) []flow.Tool {
	return []flow.Tool{
		{
			ToolID:        toolIDCheckAvailabilityPrivada,
			Name:          ToolCheckAvailabilityPrivada,
			Description:   "Verificar disponibilidad de especialistas privada ESI",
			Type:          flow.ToolCustom,
			Method:        "POST",
			URL:           webhookURL,
			ParameterType: flow.ParameterJSON,
			TimeoutMS:     flow.DefaultToolTimeoutMS,
			Parameters: &flow.ParameterSchema{
				Type: "object",
				Properties: map[string]flow.Property{
					"meeting_type": {Type: "string", Description: "Tipo de reunión: presencial o videollamada"},
					"course_type":  {Type: "string", Description: "Curso de interés del lead"},
				},
				Required: []string{"course_type", "meeting_type"},
			},
		},
		{
			ToolID:        toolIDCheckAvailabilityOnline,
			Name:          ToolCheckAvailabilityOnline,
			Description:   "Verificar disponibilidad de especialistas online ESI",
			Type:          flow.ToolCustom,
			Method:        "POST",
			URL:           webhookURL,
			ParameterType: flow.ParameterJSON,
			TimeoutMS:     flow.DefaultToolTimeoutMS,
			Parameters: &flow.ParameterSchema{
				Type: "object",
				Properties: map[string]flow.Property{
					"preferred_time": {Type: "string", Description: "Momento preferido para la reunión"},
					"course_type":    {Type: "string", Description: "Curso de interés del lead"},
				},
				Required: []string{"course_type"},
			},
		},
		{
			ToolID:        toolIDBookCalendarPrivada,
			Name:          ToolBookCalendarPrivada,
			Description:   "Agendar reunión con especialista privada",
			Type:          flow.ToolCustom,
			Method:        "POST",
			URL:           webhookURL,
			ParameterType: flow.ParameterForm,
			TimeoutMS:     flow.DefaultToolTimeoutMS,
			Parameters: &flow.ParameterSchema{
				Type: "object",
				Properties: map[string]flow.Property{
					"customer_name":    {Type: "string", Description: "Nombre del lead cualificado"},
					"customer_phone":   {Type: "string", Description: "Teléfono del lead"},
					"customer_email":   {Type: "string", Description: "Email del lead"},
					"course_interest":  {Type: "string", Description: "Curso de interés"},
					"meeting_datetime": {Type: "string", Description: "Fecha y hora de la reunión en formato ISO"},
					"specialist_email": {Type: "string", Description: "Email del especialista asignado"},
					"motivation":       {Type: "string", Description: "Motivación principal del lead"},
					"experience_level": {Type: "string", Description: "Nivel de experiencia del lead"},
					"primera_reunion":  {Type: "string", Description: "Tipo de reunión para modalidad privada: presencial o videollamada"},
					"copy_bea":         {Type: "boolean", Description: "Si incluir a Bea en copia del email"},
				},
				Required: []string{
					"customer_name", "customer_phone", "customer_email",
					"course_interest", "meeting_datetime", "primera_reunion", "specialist_email",
				},
			},
		},
		{
			ToolID:        toolIDBookCalendarOnline,
			Name:          ToolBookCalendarOnline,
			Description:   "Agendar reunión con especialista online",
			Type:          flow.ToolCustom,
			Method:        "POST",
			URL:           webhookURL,
			ParameterType: flow.ParameterForm,
			TimeoutMS:     flow.DefaultToolTimeoutMS,
			Parameters: &flow.ParameterSchema{
				Type: "object",
				Properties: map[string]flow.Property{
					"customer_name":    {Type: "string", Description: "Nombre del lead cualificado"},
					"customer_phone":   {Type: "string", Description: "Teléfono del lead"},
					"customer_email":   {Type: "string", Description: "Email del lead"},
					"course_interest":  {Type: "string", Description: "Curso de interés"},
					"meeting_datetime": {Type: "string", Description: "Fecha y hora de la reunión en formato ISO"},
					"specialist_email": {Type: "string", Description: "Email del especialista asignado"},
					"motivation":       {Type: "string", Description: "Motivación principal del lead"},
					"experience_level": {Type: "string", Description: "Nivel de experiencia del lead"},
					"primera_reunion":  {Type: "string", Description: "Tipo de reunión: videollamada o llamada"},
				},
				Required: []string{
					"customer_name", "customer_phone", "customer_email",
					"course_interest", "meeting_datetime", "specialist_email",
				},
			},
		},
		{
			ToolID:        toolIDCreateHubspotTask,
			Name:          ToolCreateHubspotTask,
			Description:   "Crear tarea en HubSpot para que alguien llame al lead",
			Type:          flow.ToolCustom,
			Method:        "POST",
			URL:           webhookURL,
			ParameterType: flow.ParameterJSON,
			TimeoutMS:     flow.DefaultToolTimeoutMS,
			Parameters: &flow.ParameterSchema{
				Type: "object",
				Properties: map[string]flow.Property{
					"customer_name":    {Type: "string", Description: "Nombre del lead"},
					"customer_phone":   {Type: "string", Description: "Teléfono del lead"},
					"customer_email":   {Type: "string", Description: "Email del lead"},
					"course_interest":  {Type: "string", Description: "Curso de interés"},
					"task_type":        {Type: "string", Description: "Tipo de tarea: call_lead"},
					"assigned_to":      {Type: "string", Description: "Email del especialista asignado"},
					"motivation":       {Type: "string", Description: "Motivación principal del lead"},
					"experience_level": {Type: "string", Description: "Nivel de experiencia del lead"},
					"priority":         {Type: "string", Description: "Prioridad de la tarea: high, medium, low"},
					"preferred_time":   {Type: "string", Description: "Horario preferido para ser contactado"},
					"notes":            {Type: "string", Description: "Notas adicionales para la llamada"},
				},
				Required: []string{
					"customer_name", "customer_phone", "customer_email",
					"course_interest", "task_type", "assigned_to",
				},
			},
		},
	}
}
