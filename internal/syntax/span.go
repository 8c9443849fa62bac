// Package syntax provides the parser side of the koi shell: byte spans
// over an aggregated source buffer, an ephemeral parse working set layered
// on persistent declarations, a tolerant lexer/parser for possibly
// incomplete input, and the lexical-shape flattener the completion engine
// dispatches on.
package syntax

// Span is a half-open byte range [Start, End) over the aggregated source
// buffer shared by the persistent state and the current working set.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}
