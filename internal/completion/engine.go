package completion

import (
	"bytes"
	"sort"

	"github.com/koi-shell/koi/internal/engine"
	"github.com/koi-shell/koi/internal/logger"
	"github.com/koi-shell/koi/internal/syntax"
)

// Engine resolves the token under the cursor and dispatches exactly one
// completion strategy per request. It reads persistent state but never
// mutates it; every request gets its own working set.
type Engine struct {
	state *engine.State
	eval  Evaluator
	log   *logger.Logger
}

// NewEngine creates a completion engine over a read-only state snapshot.
// A nil evaluator disables dynamic providers; a nil logger gets a quiet
// default.
func NewEngine(state *engine.State, eval Evaluator, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.New("error", nil)
	}
	return &Engine{state: state, eval: eval, log: log}
}

// Complete is the single entry point for the line-editing front end.
// Suggestions are sorted by replacement text ascending; the sort is
// stable so insertion order breaks ties. Span coordinates are relative
// to line. The error is non-nil only when a dynamic provider violated
// its contract; every other failure degrades to zero suggestions.
func (e *Engine) Complete(line string, pos int) ([]Suggestion, error) {
	output, err := e.completionHelper(line, pos)

	sort.SliceStable(output, func(i, j int) bool {
		return output[i].Value < output[j].Value
	})

	return output, err
}

func (e *Engine) completionHelper(line string, pos int) ([]Suggestion, error) {
	ws := syntax.NewWorkingSet(e.state)
	offset := ws.NextSpanStart()
	pos += offset

	block, perr := syntax.Parse(ws, "completer", []byte(line))
	if perr != nil {
		// Partial buffers are the normal case here; whatever structure
		// came back is still usable.
		e.log.Debug().Err(perr).Msg("tolerated parse failure during completion")
	}

	for _, stmt := range block.Stmts {
		for _, expr := range stmt.Elements {
			flattened := syntax.FlattenExpression(ws, expr)
			for _, flat := range flattened {
				if pos < flat.Span.Start || pos > flat.Span.End {
					continue
				}

				prefix := ws.Contents(flat.Span)

				// The classifier may not have committed to "variable"
				// for a still-incomplete token; the sigil decides.
				if bytes.HasPrefix(prefix, []byte("$")) {
					return e.completeVariables(ws, prefix, flat.Span, offset), nil
				}

				switch flat.Shape {
				case syntax.ShapeCustom:
					return e.completeProvider(ws, flat, offset)
				case syntax.ShapeExternal, syntax.ShapeInternalCall, syntax.ShapeString:
					return e.completeCommandsAndPaths(ws, flat.Span, offset), nil
				case syntax.ShapeFilepath, syntax.ShapeGlobPattern, syntax.ShapeExternalArg:
					return e.completePaths(ws, flat.Span, offset), nil
				case syntax.ShapeVariable:
					return e.completeVariables(ws, prefix, flat.Span, offset), nil
				case syntax.ShapeKeyword:
					return nil, nil
				case syntax.ShapeGarbage:
					return nil, nil
				}
			}
		}
	}

	return nil, nil
}

// completeCommandsAndPaths serves command-position tokens: declared
// command names by prefix, then filesystem paths, then executables from
// the search path, concatenated in that order.
func (e *Engine) completeCommandsAndPaths(ws *syntax.WorkingSet, sp syntax.Span, offset int) []Suggestion {
	prefix := ws.Contents(sp)

	var output []Suggestion
	for _, name := range ws.CommandsByPrefix(prefix) {
		output = append(output, Suggestion{Span: translate(sp, offset), Value: name})
	}

	cwd := e.cwd()
	for _, c := range filePathCompletion(sp, string(prefix), cwd) {
		output = append(output, Suggestion{Span: translate(c.span, offset), Value: c.text})
	}

	for _, name := range e.externalCommandCompletion(string(prefix)) {
		output = append(output, Suggestion{Span: translate(sp, offset), Value: name})
	}

	return output
}

// completePaths serves argument-position tokens with filesystem paths
// only.
func (e *Engine) completePaths(ws *syntax.WorkingSet, sp syntax.Span, offset int) []Suggestion {
	prefix := ws.Contents(sp)

	var output []Suggestion
	for _, c := range filePathCompletion(sp, string(prefix), e.cwd()) {
		output = append(output, Suggestion{Span: translate(c.span, offset), Value: c.text})
	}
	return output
}

// cwd reads the working directory from persistent state. A missing or
// malformed value degrades to the empty string.
func (e *Engine) cwd() string {
	v, ok := e.state.EnvVars["PWD"]
	if !ok {
		return ""
	}
	s, err := v.AsString()
	if err != nil {
		return ""
	}
	return s
}
