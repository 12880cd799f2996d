// Package retell is a minimal client for the Retell create-agent API.
//
// It does exactly one thing: submit a built conversation-flow document plus
// agent settings and return the resulting agent handle. There is no retry,
// no backoff and no reinterpretation of failures — transport and auth errors
// surface to the caller as a *TransportError and the caller decides what to
// do with them.
package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zonder-ai/beaflow/pkg/flow"
)

// DefaultBaseURL is the production Retell API origin.
const DefaultBaseURL = "https://api.retellai.com"

// defaultTimeout bounds the create-agent call when no custom http.Client is
// injected.
const defaultTimeout = 30 * time.Second

// Client talks to the Retell API. Construct with New.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API origin. Used by tests and staging.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient injects a custom http.Client, owning timeout policy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client authenticating with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AgentSettings are the agent-level knobs submitted alongside the flow.
type AgentSettings struct {
	AgentName                  string
	VoiceID                    string
	Language                   string
	MaxCallDurationMS          int
	InterruptionSensitivity    float64
	AllowUserDTMF              bool
	OptOutSensitiveDataStorage bool
	OptInSignedURL             bool
}

// Agent is the opaque remote handle returned by the platform.
type Agent struct {
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
}

// TransportError is any failure of the deployment call: network error, auth
// rejection or a malformed response.
type TransportError struct {
	Op         string
	StatusCode int // zero when the request never completed
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("retell: %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("retell: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// responseEngine embeds the flow document the way the create-agent endpoint
// expects it.
type responseEngine struct {
	Type               string         `json:"type"`
	Version            int            `json:"version"`
	ConversationFlowID string         `json:"conversation_flow_id"`
	ConversationFlow   *flow.Document `json:"conversation_flow"`
}

type createAgentRequest struct {
	AgentName                  string         `json:"agent_name"`
	ResponseEngine             responseEngine `json:"response_engine"`
	VoiceID                    string         `json:"voice_id"`
	Language                   string         `json:"language"`
	MaxCallDurationMS          int            `json:"max_call_duration_ms"`
	InterruptionSensitivity    float64        `json:"interruption_sensitivity"`
	AllowUserDTMF              bool           `json:"allow_user_dtmf"`
	OptOutSensitiveDataStorage bool           `json:"opt_out_sensitive_data_storage"`
	OptInSignedURL             bool           `json:"opt_in_signed_url"`
}

// CreateAgent submits the document and settings and returns the new agent
// handle. The document is sent as-is; validate before calling.
func (c *Client) CreateAgent(ctx context.Context, doc *flow.Document, settings AgentSettings) (*Agent, error) {
	payload := createAgentRequest{
		AgentName: settings.AgentName,
		ResponseEngine: responseEngine{
			Type:               "conversation-flow",
			Version:            doc.Version,
			ConversationFlowID: doc.ConversationFlowID,
			ConversationFlow:   doc,
		},
		VoiceID:                    settings.VoiceID,
		Language:                   settings.Language,
		MaxCallDurationMS:          settings.MaxCallDurationMS,
		InterruptionSensitivity:    settings.InterruptionSensitivity,
		AllowUserDTMF:              settings.AllowUserDTMF,
		OptOutSensitiveDataStorage: settings.OptOutSensitiveDataStorage,
		OptInSignedURL:             settings.OptInSignedURL,
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, &flow.SerializationError{Op: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create-agent", &body)
	if err != nil {
		return nil, &TransportError{Op: "create-agent", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "create-agent", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{Op: "create-agent", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var agent Agent
	if err := json.NewDecoder(resp.Body).Decode(&agent); err != nil {
		return nil, &TransportError{Op: "create-agent", Err: fmt.Errorf("malformed response: %w", err)}
	}
	return &agent, nil
}
