package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWithSchema(t *testing.T) {
	t.Run("valid yaml passes", func(t *testing.T) {
		content := []byte(`
log_level: info
commands:
  open:
    completer: "echo a b"
`)
		result, err := ValidateWithSchema(".koi.yml", content)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("unknown top-level key fails", func(t *testing.T) {
		result, err := ValidateWithSchema(".koi.yml", []byte(`nonsense: 1`))
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("bad log level fails", func(t *testing.T) {
		result, err := ValidateWithSchema(".koi.yml", []byte(`log_level: loud`))
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("invalid yaml syntax reported as error entry", func(t *testing.T) {
		result, err := ValidateWithSchema(".koi.yml", []byte("a: [unclosed"))
		require.NoError(t, err)
		require.False(t, result.Valid)
		assert.Equal(t, "syntax", result.Errors[0].Field)
	})

	t.Run("invalid json syntax reported as error entry", func(t *testing.T) {
		result, err := ValidateWithSchema(".koi.json", []byte("{"))
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("unsupported format errors", func(t *testing.T) {
		_, err := ValidateWithSchema("config.ini", []byte("a=b"))
		assert.Error(t, err)
	})

	t.Run("schema is embedded", func(t *testing.T) {
		assert.Contains(t, GetSchemaJSON(), "Koi configuration")
	})
}
