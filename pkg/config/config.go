// Package config loads and validates the orchestrator configuration.
package config

// Config is the umbrella configuration object returned by Initialize()
// and passed to the components that need it.
type Config struct {
	configDir string

	// Executor holds execution-service connection settings.
	Executor *ExecutorConfig

	// LLM holds language-model client settings.
	LLM *LLMConfig

	// Scheduler holds step scheduler and worker pool settings.
	Scheduler *SchedulerConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
