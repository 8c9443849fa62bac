package engine

import (
	"os"
	"path/filepath"

	"github.com/koi-shell/koi/internal/kerrors"
	"github.com/koi-shell/koi/internal/syntax"
)

func registerBuiltins(s *State) {
	s.RegisterCommand(&Command{
		Sig: &syntax.CommandSig{Name: "echo"},
		Run: runEcho,
	})
	s.RegisterCommand(&Command{
		Sig: &syntax.CommandSig{Name: "ls"},
		Run: runLs,
	})
	s.RegisterCommand(&Command{
		Sig: &syntax.CommandSig{Name: "length"},
		Run: runLength,
	})
}

// runEcho yields its arguments unchanged, one output value per argument.
func runEcho(rc *RunContext) ([]Value, error) {
	return rc.Args, nil
}

// runLs lists the immediate entries of a directory as string values,
// directories suffixed with the path separator. With no argument it
// lists the working directory from $env.PWD. Listing is non-recursive.
func runLs(rc *RunContext) ([]Value, error) {
	dir := ""
	if len(rc.Args) > 0 {
		s, err := rc.Args[0].AsString()
		if err != nil {
			return nil, kerrors.NewExecError("ls", "path is not string-coercible", err)
		}
		dir = s
	}
	if dir == "" {
		if v, ok := rc.State.EnvVars["PWD"]; ok {
			if s, err := v.AsString(); err == nil {
				dir = s
			}
		}
	}
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, kerrors.NewExecError("ls", "cannot read directory", err)
	}

	span := syntax.Span{}
	if rc.Call != nil {
		span = rc.Call.Span
	}
	out := make([]Value, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += string(filepath.Separator)
		}
		out = append(out, Str(name, span))
	}
	return out, nil
}

// runLength yields the number of values in the pipeline input.
func runLength(rc *RunContext) ([]Value, error) {
	span := syntax.Span{}
	if rc.Call != nil {
		span = rc.Call.Span
	}
	return []Value{IntVal(int64(len(rc.Input)), span)}, nil
}
