package config

import "fmt"

// validate performs validation on loaded configuration.
func validate(cfg *Config) error {
	if cfg.Executor.BaseURL == "" {
		return NewValidationError("executor", "base_url", ErrMissingRequiredField)
	}

	switch cfg.LLM.Transport {
	case LLMTransportHTTP:
		if cfg.LLM.APIKeyEnv == "" {
			return NewValidationError("llm", "api_key_env", ErrMissingRequiredField)
		}
	case LLMTransportGRPC:
		if cfg.LLM.GRPCAddr == "" {
			return NewValidationError("llm", "grpc_addr", ErrMissingRequiredField)
		}
	default:
		return NewValidationError("llm", "transport",
			fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidValue, cfg.LLM.Transport, LLMTransportHTTP, LLMTransportGRPC))
	}
	if cfg.LLM.Model == "" {
		return NewValidationError("llm", "model", ErrMissingRequiredField)
	}
	if cfg.LLM.MaxTokens <= 0 {
		return NewValidationError("llm", "max_tokens",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	if cfg.Scheduler.WorkerCount <= 0 {
		return NewValidationError("scheduler", "worker_count",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Scheduler.TickInterval <= 0 {
		return NewValidationError("scheduler", "tick_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Scheduler.StallThreshold <= 0 {
		return NewValidationError("scheduler", "stall_threshold",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	return nil
}
