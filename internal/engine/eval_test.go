package engine

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koi-shell/koi/internal/syntax"
)

func evalLine(t *testing.T, state *State, line string) ([]Value, error) {
	t.Helper()
	ws := syntax.NewWorkingSet(state)
	block, _ := syntax.Parse(ws, "test", []byte(line))
	return Eval(state, NewStack(), ws, block, Nothing(syntax.Span{}))
}

func asStrings(t *testing.T, vals []Value) []string {
	t.Helper()
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		s, err := v.AsString()
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func TestEval(t *testing.T) {
	t.Run("echo yields its arguments", func(t *testing.T) {
		vals, err := evalLine(t, NewState(), "echo alpha beta gamma")
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, asStrings(t, vals))
	})

	t.Run("echo unquotes string literals", func(t *testing.T) {
		vals, err := evalLine(t, NewState(), `echo "hello world"`)
		require.NoError(t, err)
		assert.Equal(t, []string{"hello world"}, asStrings(t, vals))
	})

	t.Run("pipeline feeds length", func(t *testing.T) {
		vals, err := evalLine(t, NewState(), "echo a b c | length")
		require.NoError(t, err)
		assert.Equal(t, []string{"3"}, asStrings(t, vals))
	})

	t.Run("let binds into the local frame", func(t *testing.T) {
		state := NewState()
		ws := syntax.NewWorkingSet(state)
		block, _ := syntax.Parse(ws, "test", []byte("let $x = hello; echo $x"))
		stack := NewStack()
		vals, err := Eval(state, stack, ws, block, Nothing(syntax.Span{}))
		require.NoError(t, err)
		assert.Equal(t, []string{"hello"}, asStrings(t, vals))
		assert.Equal(t, "hello", stack.Vars["$x"].Str)
	})

	t.Run("undefined variable errors", func(t *testing.T) {
		_, err := evalLine(t, NewState(), "echo $nope")
		assert.Error(t, err)
	})

	t.Run("last statement wins", func(t *testing.T) {
		vals, err := evalLine(t, NewState(), "echo a; echo b")
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, asStrings(t, vals))
	})

	t.Run("ls lists directory entries", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

		state := NewState()
		state.EnvVars["PWD"] = Str(dir, syntax.Span{})

		vals, err := evalLine(t, state, "ls")
		require.NoError(t, err)
		assert.Equal(t, []string{"file.txt", "sub" + string(filepath.Separator)}, asStrings(t, vals))
	})

	t.Run("ls with explicit path", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "only"), []byte("x"), 0o644))

		vals, err := evalLine(t, NewState(), "ls "+dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"only"}, asStrings(t, vals))
	})

	t.Run("ls on unreadable directory errors", func(t *testing.T) {
		_, err := evalLine(t, NewState(), "ls /definitely/not/a/dir")
		assert.Error(t, err)
	})

	t.Run("length counts pipeline input", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"a", "b"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
		}
		vals, err := evalLine(t, NewState(), "ls "+dir+" | length")
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, asStrings(t, vals))
	})
}

func TestRunExternal(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	t.Run("captures stdout lines", func(t *testing.T) {
		vals, err := runExternal(nil, "echo", []Value{Str("hi", syntax.Span{})})
		require.NoError(t, err)
		assert.Equal(t, []string{"hi"}, asStrings(t, vals))
	})

	t.Run("missing binary errors", func(t *testing.T) {
		_, err := runExternal(nil, "koi-no-such-binary", nil)
		assert.Error(t, err)
	})

	t.Run("unknown head evaluates as external", func(t *testing.T) {
		vals, err := evalLine(t, NewState(), "echo2 hi")
		// echo2 does not exist; the external runner reports it
		assert.Error(t, err)
		assert.Nil(t, vals)
	})
}

func TestBlockEvaluator(t *testing.T) {
	state := NewState()
	ws := syntax.NewWorkingSet(state)
	block, _ := syntax.Parse(ws, "", []byte("echo alpha beta"))

	vals, err := BlockEvaluator{State: state}.EvalBlock(ws, block, Nothing(syntax.Span{Start: 0, End: 1}))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, asStrings(t, vals))
}
