package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the complete codepilot.yaml file structure.
type YAMLConfig struct {
	Executor  *ExecutorConfig      `yaml:"executor"`
	LLM       *LLMConfig           `yaml:"llm"`
	Scheduler *SchedulerYAMLConfig `yaml:"scheduler"`
}

// SchedulerYAMLConfig holds scheduler settings from YAML.
// Durations are strings ("2s", "5m") parsed with time.ParseDuration.
type SchedulerYAMLConfig struct {
	TickInterval            string `yaml:"tick_interval,omitempty"`
	WorkerCount             int    `yaml:"worker_count,omitempty"`
	ReclaimInterval         string `yaml:"reclaim_interval,omitempty"`
	StallThreshold          string `yaml:"stall_threshold,omitempty"`
	GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load codepilot.yaml from configDir
//  2. Expand environment variables
//  3. Merge user-defined values over built-in defaults
//  4. Validate the result
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"executor_base_url", cfg.Executor.BaseURL,
		"llm_transport", cfg.LLM.Transport,
		"llm_model", cfg.LLM.Model,
		"workers", cfg.Scheduler.WorkerCount)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlCfg, err := loader.loadCodepilotYAML()
	if err != nil {
		return nil, NewLoadError("codepilot.yaml", err)
	}

	executor := yamlCfg.Executor
	if executor == nil {
		executor = &ExecutorConfig{}
	}

	// Merge user LLM config over defaults (non-zero values override).
	llmCfg := DefaultLLMConfig()
	if yamlCfg.LLM != nil {
		if err := mergo.Merge(llmCfg, yamlCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	schedulerCfg := resolveSchedulerConfig(yamlCfg.Scheduler)

	return &Config{
		configDir: configDir,
		Executor:  executor,
		LLM:       llmCfg,
		Scheduler: schedulerCfg,
	}, nil
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadCodepilotYAML() (*YAMLConfig, error) {
	var config YAMLConfig
	if err := l.loadYAML("codepilot.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// resolveSchedulerConfig resolves scheduler configuration from YAML,
// applying built-in defaults for unset or unparseable values.
func resolveSchedulerConfig(sched *SchedulerYAMLConfig) *SchedulerConfig {
	cfg := DefaultSchedulerConfig()

	if sched == nil {
		return cfg
	}

	if sched.WorkerCount > 0 {
		cfg.WorkerCount = sched.WorkerCount
	}
	cfg.TickInterval = parseDurationOrDefault("tick_interval", sched.TickInterval, cfg.TickInterval)
	cfg.ReclaimInterval = parseDurationOrDefault("reclaim_interval", sched.ReclaimInterval, cfg.ReclaimInterval)
	cfg.StallThreshold = parseDurationOrDefault("stall_threshold", sched.StallThreshold, cfg.StallThreshold)
	cfg.GracefulShutdownTimeout = parseDurationOrDefault("graceful_shutdown_timeout", sched.GracefulShutdownTimeout, cfg.GracefulShutdownTimeout)

	return cfg
}

func parseDurationOrDefault(field, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in scheduler config, using default",
			"field", field,
			"value", value,
			"default", fallback,
			"error", err)
		return fallback
	}
	return d
}
