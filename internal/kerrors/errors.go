// Package kerrors provides custom error types for Koi.
// These error types carry a stable code so callers can tell a provider
// contract defect apart from an ordinary degraded-to-empty failure.
package kerrors

import (
	"fmt"
)

// KoiError is the base interface for all Koi errors
type KoiError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all Koi errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ProviderError represents a contract defect in a dynamic completion
// provider, such as an output value that cannot be coerced to a string.
// It is distinct from "provider produced no matches".
type ProviderError struct {
	baseError
	Source string
}

// NewProviderError creates a new provider error
func NewProviderError(source string, message string, cause error) *ProviderError {
	return &ProviderError{
		baseError: baseError{
			code:    "PROVIDER_ERROR",
			message: message,
			cause:   cause,
		},
		Source: source,
	}
}

// ConfigError represents errors in configuration files
type ConfigError struct {
	baseError
	Path string
}

// NewConfigError creates a new configuration error
func NewConfigError(path string, message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ExecError represents errors during external command execution
type ExecError struct {
	baseError
	Command string
}

// NewExecError creates a new execution error
func NewExecError(command string, message string, cause error) *ExecError {
	return &ExecError{
		baseError: baseError{
			code:    "EXEC_ERROR",
			message: message,
			cause:   cause,
		},
		Command: command,
	}
}

// ParseError represents errors while parsing shell source. The parser
// still returns a partial tree alongside it.
type ParseError struct {
	baseError
	Fragment string
}

// NewParseError creates a new parse error
func NewParseError(fragment string, message string) *ParseError {
	return &ParseError{
		baseError: baseError{
			code:    "PARSE_ERROR",
			message: message,
			cause:   nil,
		},
		Fragment: fragment,
	}
}
