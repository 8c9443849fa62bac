// Package completion implements the interactive completion engine of the
// koi shell: given a partially typed line and a cursor position it
// produces replacement suggestions and the exact byte range each one
// would replace. Strategies are selected by the lexical shape of the
// token under the cursor.
package completion

import (
	"github.com/koi-shell/koi/internal/engine"
	"github.com/koi-shell/koi/internal/syntax"
)

// Span is a caller-relative half-open byte range within the input line.
// Unlike syntax.Span it is never offset into the working-set buffer.
type Span struct {
	Start int
	End   int
}

// Suggestion is one completion candidate: the line-relative span it
// replaces and the replacement text.
type Suggestion struct {
	Span  Span
	Value string
}

// Evaluator is the re-entrant evaluation capability the engine needs to
// run dynamic completion providers. It is injected so the engine can be
// tested against canned outputs.
type Evaluator interface {
	// EvalBlock evaluates a parsed provider block. The input value
	// carries the span of the token being completed.
	EvalBlock(ws *syntax.WorkingSet, block *syntax.Block, input engine.Value) ([]engine.Value, error)
}

// translate converts a working-set span into line coordinates by
// removing the per-request offset. Results are clamped non-negative.
func translate(sp syntax.Span, offset int) Span {
	start := sp.Start - offset
	end := sp.End - offset
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return Span{Start: start, End: end}
}
