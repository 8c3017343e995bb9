package config

// ExecutorConfig holds execution-service connection settings.
// Request timeouts are fixed by the workspace protocol, not configurable.
type ExecutorConfig struct {
	// BaseURL is the execution service endpoint, e.g. "http://executor:8090".
	BaseURL string `yaml:"base_url"`
}
