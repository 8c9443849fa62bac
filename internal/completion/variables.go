package completion

import (
	"bytes"

	"github.com/koi-shell/koi/internal/syntax"
)

// builtinVars are the pseudo-variables every scope sees: the shell
// handle, scope introspection, pipeline input, configuration, and
// environment variables.
var builtinVars = []string{"$koi", "$scope", "$in", "$config", "$env"}

// completeVariables enumerates builtins, then the ephemeral working-set
// chain, then the persistent chain, keeping names that start with
// prefix. Every match replaces the whole located span. Exact duplicates
// are removed; shadowing is the parser's concern, not ours.
func (e *Engine) completeVariables(ws *syntax.WorkingSet, prefix []byte, sp syntax.Span, offset int) []Suggestion {
	var output []Suggestion

	for _, builtin := range builtinVars {
		if bytes.HasPrefix([]byte(builtin), prefix) {
			output = append(output, Suggestion{Span: translate(sp, offset), Value: builtin})
		}
	}

	for _, scope := range ws.Scopes {
		for _, v := range scope.Vars {
			if bytes.HasPrefix(v.Name, prefix) {
				output = append(output, Suggestion{Span: translate(sp, offset), Value: string(v.Name)})
			}
		}
	}
	for _, scope := range e.state.Scopes {
		for _, v := range scope.Vars {
			if bytes.HasPrefix(v.Name, prefix) {
				output = append(output, Suggestion{Span: translate(sp, offset), Value: string(v.Name)})
			}
		}
	}

	return dedupe(output)
}

// dedupe removes suggestions with identical (span, value), keeping the
// first occurrence.
func dedupe(in []Suggestion) []Suggestion {
	seen := make(map[Suggestion]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
