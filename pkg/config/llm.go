package config

// LLM transport selection.
const (
	// LLMTransportHTTP calls the Anthropic Messages API directly.
	LLMTransportHTTP = "http"
	// LLMTransportGRPC calls the platform's LLM gateway service.
	LLMTransportGRPC = "grpc"
)

// LLMConfig holds language-model client settings.
type LLMConfig struct {
	// Transport selects the client implementation: "http" or "grpc".
	Transport string `yaml:"transport"`

	// Model is the model identifier sent with every completion request.
	Model string `yaml:"model"`

	// APIKeyEnv names the environment variable holding the API key
	// (http transport only).
	APIKeyEnv string `yaml:"api_key_env"`

	// GRPCAddr is the LLM gateway address (grpc transport only).
	GRPCAddr string `yaml:"grpc_addr"`

	// MaxTokens caps the completion length per request.
	MaxTokens int `yaml:"max_tokens"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Transport: LLMTransportHTTP,
		Model:     "claude-sonnet-4-6",
		APIKeyEnv: "ANTHROPIC_API_KEY",
		GRPCAddr:  "localhost:50051",
		MaxTokens: 4096,
	}
}
