// Package cli implements the koi command-line entry points.
package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/koi-shell/koi/internal/config"
	"github.com/koi-shell/koi/internal/engine"
	"github.com/koi-shell/koi/internal/logger"
	"github.com/koi-shell/koi/internal/syntax"
)

// loadConfig loads the config at path, or searches the working directory
// and home directory when path is empty. No file means defaults.
func loadConfig(path string, log *logger.Logger) *config.Config {
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			path = config.Find(cwd)
		}
		if path == "" {
			if home, err := os.UserHomeDir(); err == nil {
				path = config.Find(home)
			}
		}
	}
	if path == "" {
		return config.Default()
	}

	cfg, err := config.New().Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("ignoring unreadable config")
		return config.Default()
	}
	return cfg
}

// buildState constructs shell state from the process environment and the
// loaded config: PATH as an ordered list, PWD as the working directory,
// config env entries layered on top, and completion providers attached
// to their commands.
func buildState(cfg *config.Config) *engine.State {
	state := engine.NewState()

	setPath(state, os.Getenv("PATH"))
	if cwd, err := os.Getwd(); err == nil {
		state.EnvVars["PWD"] = engine.Str(cwd, syntax.Span{})
	}

	for name, value := range cfg.Env {
		if name == "PATH" {
			setPath(state, value)
			continue
		}
		state.EnvVars[name] = engine.Str(value, syntax.Span{})
	}

	for name, cc := range cfg.Commands {
		if cc.Completer != "" {
			state.SetCompleter(name, cc.Completer)
		}
	}

	return state
}

func setPath(state *engine.State, path string) {
	var dirs []engine.Value
	for _, dir := range strings.Split(path, string(filepath.ListSeparator)) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, engine.Str(dir, syntax.Span{}))
	}
	state.EnvVars["PATH"] = engine.ListVal(dirs, syntax.Span{})
}
