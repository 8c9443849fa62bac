package completion

import (
	"bytes"

	"github.com/koi-shell/koi/internal/engine"
	"github.com/koi-shell/koi/internal/kerrors"
	"github.com/koi-shell/koi/internal/syntax"
)

// completeProvider parses and runs a dynamic completion provider. The
// provider receives a value carrying the cursor span as its sole input
// and must yield string-coercible values; a value that is not is a
// contract defect surfaced as *kerrors.ProviderError, failing only this
// request. Ordinary evaluation errors degrade to zero suggestions.
func (e *Engine) completeProvider(ws *syntax.WorkingSet, flat syntax.FlatEntry, offset int) ([]Suggestion, error) {
	if e.eval == nil {
		return nil, nil
	}

	prefix := append([]byte(nil), ws.Contents(flat.Span)...)

	block, perr := syntax.Parse(ws, "", []byte(flat.Completer))
	if perr != nil {
		e.log.Debug().Err(perr).Str("provider", flat.Completer).Msg("provider parse failure tolerated")
	}

	input := engine.Nothing(flat.Span)
	values, err := e.eval.EvalBlock(ws, block, input)
	if err != nil {
		e.log.Debug().Err(err).Str("provider", flat.Completer).Msg("completion provider failed")
		return nil, nil
	}

	var output []Suggestion
	for _, v := range values {
		s, err := v.AsString()
		if err != nil {
			perr := kerrors.NewProviderError(flat.Completer, "completion provider yielded a non-string-coercible value", err)
			e.log.Error().Err(perr).Str("provider", flat.Completer).Msg("completion provider contract defect")
			return nil, perr
		}
		if bytes.HasPrefix([]byte(s), prefix) {
			output = append(output, Suggestion{Span: translate(flat.Span, offset), Value: s})
		}
	}

	return output, nil
}
