package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "api_key: {{.API_KEY}}",
			env:   map[string]string{"API_KEY": "secret123"},
			want:  "api_key: secret123",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "pattern: ${USER_ID}",
			env:   map[string]string{"USER_ID": "123"},
			want:  "pattern: ${USER_ID}",
		},
		{
			name:  "literal $VAR is NOT expanded (no collision)",
			input: "regex: ^secret.*$",
			env:   map[string]string{},
			want:  "regex: ^secret.*$",
		},
		{
			name:  "multiple substitutions in one line",
			input: "url: {{.PROTOCOL}}://{{.HOST}}:{{.PORT}}",
			env: map[string]string{
				"PROTOCOL": "https",
				"HOST":     "example.com",
				"PORT":     "443",
			},
			want: "url: https://example.com:443",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "endpoint: ",
		},
		{
			name:  "no substitution when no variables",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
		{
			name:  "variables in nested YAML structure",
			input: "executor:\n  base_url: http://{{.HOST}}:{{.PORT}}",
			env: map[string]string{
				"HOST": "localhost",
				"PORT": "8090",
			},
			want: "executor:\n  base_url: http://localhost:8090",
		},
		{
			name:  "special characters in expanded value",
			input: "password: {{.PASSWORD}}",
			env:   map[string]string{"PASSWORD": "p@ssw0rd!#$%"},
			want:  "password: p@ssw0rd!#$%",
		},
		{
			name:  "literal dollar in value is preserved",
			input: "password: p@ss$word",
			env:   map[string]string{},
			want:  "password: p@ss$word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

func TestExpandEnvPreservesOriginalWhenNoVariables(t *testing.T) {
	input := `
# This is a comment
key: value
nested:
  field: "string value"
  number: 123
`

	result := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(result), "Content without variables should be unchanged")
}

// Malformed template syntax is passed through unchanged rather than causing
// errors, so the YAML parser can fail with a clearer error message.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	inputs := []string{
		"api_key: {{.API_KEY",
		"api_key: {{",
		"api_key: }}.API_KEY{{",
		"key1: {{.VAR1\nkey2: {{.VAR2}",
	}

	for _, input := range inputs {
		result := ExpandEnv([]byte(input))
		assert.Equal(t, input, string(result), "Malformed input should pass through unchanged")
	}
}

func TestExpandEnvIntoYAMLConfig(t *testing.T) {
	t.Setenv("EXECUTOR_URL", "http://executor.internal:8090")

	raw := []byte("executor:\n  base_url: \"{{.EXECUTOR_URL}}\"\nllm:\n  model: claude-sonnet-4-6\n")

	var cfg YAMLConfig
	require.NoError(t, yaml.Unmarshal(ExpandEnv(raw), &cfg))
	require.NotNil(t, cfg.Executor)
	assert.Equal(t, "http://executor.internal:8090", cfg.Executor.BaseURL)
	require.NotNil(t, cfg.LLM)
	assert.Equal(t, "claude-sonnet-4-6", cfg.LLM.Model)
}
