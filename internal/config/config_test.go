package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
general_params:
  env: "prod"

http_server_params:
  http_server_address: "127.0.0.1"
  http_server_port: "9000"

sprint_params:
  duration_minutes: 15
  prompt: "Describe a storm."
`)

	cm, err := NewConfigManager(path)
	require.NoError(t, err)

	c := cm.GetConfig()
	require.NoError(t, c.Validate())

	assert.Equal(t, "prod", c.GeneralParams.Env)
	assert.Equal(t, "127.0.0.1:9000", c.HttpServerParams.GetAddress())
	assert.Equal(t, 15, c.SprintParams.DurationMinutes)
	assert.Equal(t, "Describe a storm.", c.SprintParams.Prompt)
}

func TestSprintDefaults(t *testing.T) {
	path := writeConfig(t, `
http_server_params:
  http_server_address: "0.0.0.0"
  http_server_port: "8080"
`)

	cm, err := NewConfigManager(path)
	require.NoError(t, err)

	c := cm.GetConfig()
	require.NoError(t, c.Validate())

	assert.Equal(t, "dev", c.GeneralParams.Env)
	assert.Equal(t, DefaultSprintMinutes, c.SprintParams.DurationMinutes)
	assert.Equal(t, DefaultSprintPrompt, c.SprintParams.Prompt)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid env",
			mutate:  func(c *Config) { c.GeneralParams.Env = "staging" },
			wantErr: "env parameter is invalid",
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.HttpServerParams.Port = "" },
			wantErr: "port is required",
		},
		{
			name:    "negative duration",
			mutate:  func(c *Config) { c.SprintParams.DurationMinutes = -1 },
			wantErr: "sprint duration",
		},
		{
			name:    "empty prompt",
			mutate:  func(c *Config) { c.SprintParams.Prompt = "" },
			wantErr: "prompt is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Config{
				GeneralParams:    GeneralParams{Env: "dev"},
				HttpServerParams: HttpServerParams{Address: "0.0.0.0", Port: "8080"},
				SprintParams:     SprintParams{DurationMinutes: 25, Prompt: "go"},
			}
			tc.mutate(c)

			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
