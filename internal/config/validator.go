package config

import (
	"fmt"
	"os"
	"strings"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate validates a config file beyond what the schema expresses:
// provider sources must be single non-empty expressions and env names
// must be usable as environment variables.
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	loader := New()
	cfg, err := loader.Load(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Message: fmt.Sprintf("Failed to parse config: %v", err),
		})
		return result, nil
	}

	if cfg.LogLevel != "" && !validLogLevels[cfg.LogLevel] {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("Unknown log level %q", cfg.LogLevel),
		})
	}

	for name := range cfg.Env {
		if strings.TrimSpace(name) == "" {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   "env",
				Message: "Environment variable name is empty",
			})
		}
	}

	for name, cc := range cfg.Commands {
		if strings.TrimSpace(cc.Completer) == "" {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   "commands/" + name,
				Message: "Completion provider is empty",
			})
			continue
		}
		if strings.Contains(cc.Completer, "\n") {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   "commands/" + name,
				Message: "Completion provider contains newlines (multiline providers not supported)",
			})
		}
	}

	return result, nil
}
