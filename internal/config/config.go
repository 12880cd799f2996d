// Package config resolves the deployment configuration for the ESI agent.
//
// Resolution order: built-in defaults, then an optional YAML file, then
// environment variables. The values here are opaque inputs substituted into
// the flow and the agent settings; nothing validates their business meaning.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Environment variable names. RETELL_API_KEY is the only required one.
const (
	EnvAPIKey     = "RETELL_API_KEY"
	EnvAgentName  = "AGENT_NAME"
	EnvWebhookURL = "N8N_WEBHOOK_URL"
	EnvModel      = "FLOW_MODEL"
)

// Config carries every external value the builder, the deploy call and the
// prompt content depend on.
type Config struct {
	APIKey     string `yaml:"api_key" mapstructure:"api_key"`
	AgentName  string `yaml:"agent_name" mapstructure:"agent_name"`
	WebhookURL string `yaml:"webhook_url" mapstructure:"webhook_url"`
	Model      string `yaml:"model" mapstructure:"model"`

	VoiceID                 string  `yaml:"voice_id" mapstructure:"voice_id"`
	Language                string  `yaml:"language" mapstructure:"language"`
	MaxCallDurationMS       int     `yaml:"max_call_duration_ms" mapstructure:"max_call_duration_ms"`
	InterruptionSensitivity float64 `yaml:"interruption_sensitivity" mapstructure:"interruption_sensitivity"`
	AllowUserDTMF           bool    `yaml:"allow_user_dtmf" mapstructure:"allow_user_dtmf"`

	// Specialist directories referenced by the booking tools.
	OnlineSpecialists  []string `yaml:"online_specialists" mapstructure:"online_specialists"`
	PrivateSpecialists []string `yaml:"private_specialists" mapstructure:"private_specialists"`
	EscalationEmail    string   `yaml:"escalation_email" mapstructure:"escalation_email"`
}

// Default returns the configuration the live ESI agent runs with, minus the
// API key.
func Default() Config {
	return Config{
		AgentName:               "ESI Design School Agent",
		WebhookURL:              "https://n8n.zonder.ai/webhook/retell-zonder-esi",
		Model:                   "gpt-4.1",
		VoiceID:                 "custom_voice_6105206ed083e6faf35d86f533",
		Language:                "es-ES",
		MaxCallDurationMS:       3600000,
		InterruptionSensitivity: 0.9,
		AllowUserDTMF:           true,
		OnlineSpecialists: []string{
			"caridadfrutos@laescueladediseno.com",
			"vanessacalvo@laescueladediseno.com",
			"martagutierrez@laescueladediseno.com",
		},
		PrivateSpecialists: []string{
			"caridadfrutos@laescueladediseno.com",
			"vanessacalvo@laescueladediseno.com",
		},
		EscalationEmail: "bea@laescueladediseno.com",
	}
}

// Load resolves the configuration. path may be empty; a missing explicit
// file is an error, but no file at all is fine.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		var overlay map[string]any
		if err := yaml.Unmarshal(raw, &overlay); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		// ZeroFields so a key present in the file replaces the default
		// outright; without it slices merge element-wise.
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ZeroFields: true,
			Result:     &cfg,
		})
		if err != nil {
			return Config{}, fmt.Errorf("config: decoder: %w", err)
		}
		if err := dec.Decode(overlay); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv lets environment variables win over file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvAgentName); v != "" {
		cfg.AgentName = v
	}
	if v := os.Getenv(EnvWebhookURL); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		cfg.Model = v
	}
}

// RequireAPIKey fails fast when no credential is configured, before any
// document gets built.
func (c Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("config: %s is not set (get one at https://dashboard.retellai.com/api-keys)", EnvAPIKey)
	}
	return nil
}
