package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonder-ai/beaflow/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "ESI Design School Agent", cfg.AgentName)
	assert.Equal(t, "https://n8n.zonder.ai/webhook/retell-zonder-esi", cfg.WebhookURL)
	assert.Equal(t, "gpt-4.1", cfg.Model)
	assert.Equal(t, "es-ES", cfg.Language)
	assert.Equal(t, 3600000, cfg.MaxCallDurationMS)
	assert.InDelta(t, 0.9, cfg.InterruptionSensitivity, 0.0001)
	assert.True(t, cfg.AllowUserDTMF)
	assert.Len(t, cfg.OnlineSpecialists, 3)
	assert.Len(t, cfg.PrivateSpecialists, 2)
	assert.Equal(t, "bea@laescueladediseno.com", cfg.EscalationEmail)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beaflow.yaml")
	body := `
agent_name: Staging Agent
webhook_url: https://staging.zonder.ai/webhook/esi
model: gpt-4o
max_call_duration_ms: 1800000
online_specialists:
  - one@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Staging Agent", cfg.AgentName)
	assert.Equal(t, "https://staging.zonder.ai/webhook/esi", cfg.WebhookURL)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 1800000, cfg.MaxCallDurationMS)
	assert.Equal(t, []string{"one@example.com"}, cfg.OnlineSpecialists)

	// Untouched keys keep their defaults, including slice-valued ones.
	assert.Equal(t, "es-ES", cfg.Language)
	assert.Equal(t, "custom_voice_6105206ed083e6faf35d86f533", cfg.VoiceID)
	assert.Equal(t, config.Default().PrivateSpecialists, cfg.PrivateSpecialists)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agent_name: [unterminated"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beaflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: gpt-4o\n"), 0o644))

	t.Setenv(config.EnvAPIKey, "key_env")
	t.Setenv(config.EnvModel, "gpt-4.1-mini")
	t.Setenv(config.EnvWebhookURL, "https://env.zonder.ai/webhook")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "key_env", cfg.APIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.Model)
	assert.Equal(t, "https://env.zonder.ai/webhook", cfg.WebhookURL)
}

func TestRequireAPIKey(t *testing.T) {
	cfg := config.Default()
	require.Error(t, cfg.RequireAPIKey())

	cfg.APIKey = "key_123"
	require.NoError(t, cfg.RequireAPIKey())
}
