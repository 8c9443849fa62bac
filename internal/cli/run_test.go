package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("echo prints its arguments", func(t *testing.T) {
		setupWorkdir(t, "log_level: error\n")

		var buf bytes.Buffer
		err := Run(RunParams{
			Line:     "echo hello world",
			LogLevel: "error",
			Output:   &buf,
		})

		require.NoError(t, err)
		assert.Equal(t, "hello\nworld\n", buf.String())
	})

	t.Run("let binding is visible later in the line", func(t *testing.T) {
		setupWorkdir(t, "log_level: error\n")

		var buf bytes.Buffer
		err := Run(RunParams{
			Line:     "let $greeting = hi; echo $greeting",
			LogLevel: "error",
			Output:   &buf,
		})

		require.NoError(t, err)
		assert.Equal(t, "hi\n", buf.String())
	})

	t.Run("pipeline feeds output into length", func(t *testing.T) {
		dir := setupWorkdir(t, "log_level: error\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644))

		var buf bytes.Buffer
		err := Run(RunParams{
			Line:     "ls | length",
			LogLevel: "error",
			Output:   &buf,
		})

		require.NoError(t, err)
		// a.txt, b.txt, plus the config file written by setupWorkdir
		assert.Equal(t, "3\n", buf.String())
	})

	t.Run("unknown command fails", func(t *testing.T) {
		setupWorkdir(t, "log_level: error\n")

		var buf bytes.Buffer
		err := Run(RunParams{
			Line:     "definitely-not-a-command-xyz",
			LogLevel: "error",
			Output:   &buf,
		})

		assert.Error(t, err)
	})
}
