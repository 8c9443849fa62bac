package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/koi-shell/koi/internal/config"
)

// Validate validates a Koi configuration file
func Validate(configPath string, output io.Writer) error {
	if output == nil {
		output = os.Stdout
	}

	if configPath == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = config.Find(currentDir)
		if configPath == "" {
			return fmt.Errorf("no config file found in current directory")
		}
	}

	fmt.Fprintf(output, "Validating: %s\n\n", configPath)

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := config.ValidateWithSchema(configPath, content)
	if err != nil {
		return err
	}

	// If schema validation passes, run additional custom validations
	if result.Valid {
		customResult, err := config.Validate(configPath)
		if err != nil {
			return err
		}
		if !customResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, customResult.Errors...)
		}
	}

	if result.Valid {
		fmt.Fprintln(output, "Config is valid")
		return nil
	}

	for _, e := range result.Errors {
		fmt.Fprintf(output, "  %s: %s\n", e.Field, e.Message)
	}
	return fmt.Errorf("config is invalid")
}
