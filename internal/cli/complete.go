package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/koi-shell/koi/internal/completion"
	"github.com/koi-shell/koi/internal/engine"
	"github.com/koi-shell/koi/internal/logger"
	"github.com/koi-shell/koi/internal/view"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	Line       string
	Cursor     int
	ConfigPath string
	LogLevel   string
	Plain      bool
	Output     io.Writer
}

// Complete computes completion suggestions for a line and cursor and
// prints them. A provider contract defect is reported and fails the
// invocation; everything else degrades to an empty list.
func Complete(params CompleteParams) error {
	log := logger.New(params.LogLevel, nil)
	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	cursor := params.Cursor
	if cursor < 0 || cursor > len(params.Line) {
		cursor = len(params.Line)
	}

	cfg := loadConfig(params.ConfigPath, log)
	state := buildState(cfg)

	eng := completion.NewEngine(state, engine.BlockEvaluator{State: state}, log)
	suggestions, err := eng.Complete(params.Line, cursor)
	if err != nil {
		return fmt.Errorf("completion provider defect: %w", err)
	}

	if params.Plain {
		for _, s := range suggestions {
			fmt.Fprintf(out, "%s\t%d\t%d\n", s.Value, s.Span.Start, s.Span.End)
		}
		return nil
	}

	fmt.Fprint(out, view.Render(params.Line, cursor, suggestions))
	return nil
}
