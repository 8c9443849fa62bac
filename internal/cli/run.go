package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/koi-shell/koi/internal/engine"
	"github.com/koi-shell/koi/internal/logger"
	"github.com/koi-shell/koi/internal/syntax"
)

// RunParams contains parameters for the Run command
type RunParams struct {
	Line       string
	ConfigPath string
	LogLevel   string
	Output     io.Writer
}

// Run parses and evaluates one line of koi source and prints the output
// values.
func Run(params RunParams) error {
	log := logger.New(params.LogLevel, nil)
	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	cfg := loadConfig(params.ConfigPath, log)
	state := buildState(cfg)

	ws := syntax.NewWorkingSet(state)
	block, perr := syntax.Parse(ws, "main", []byte(params.Line))
	if perr != nil {
		log.Warn().Err(perr).Msg("parse recovered partial structure")
	}

	values, err := engine.Eval(state, engine.NewStack(), ws, block, engine.Nothing(syntax.Span{}))
	if err != nil {
		return err
	}
	state.Commit(ws)

	for _, v := range values {
		if s, err := v.AsString(); err == nil {
			fmt.Fprintln(out, s)
			continue
		}
		if items, err := v.AsList(); err == nil {
			for _, item := range items {
				if s, err := item.AsString(); err == nil {
					fmt.Fprintln(out, s)
				}
			}
		}
	}
	return nil
}
