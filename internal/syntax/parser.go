package syntax

import (
	"bytes"
	"fmt"

	"github.com/koi-shell/koi/internal/kerrors"
)

// ExprKind classifies a parsed expression.
type ExprKind int

const (
	// ExprCall is a call to a declared internal command.
	ExprCall ExprKind = iota
	// ExprExternal is an external command invocation.
	ExprExternal
	// ExprString is a bare or quoted string literal.
	ExprString
	// ExprVar is a variable reference ($-prefixed).
	ExprVar
	// ExprFilepath is a token that looks like a filesystem path.
	ExprFilepath
	// ExprGlob is a token containing glob metacharacters.
	ExprGlob
	// ExprLet is a let binding statement.
	ExprLet
	// ExprGarbage is an unparseable remnant, kept so its span survives.
	ExprGarbage
)

// Expr is one parsed expression. Span covers the whole expression, Head
// the leading token (command name, variable, or keyword).
type Expr struct {
	Kind ExprKind
	Span Span
	Head Span
	Name string
	Sig  *CommandSig
	Args []*Expr
}

// Pipeline is a sequence of expressions connected by pipes.
type Pipeline struct {
	Elements []*Expr
}

// Block is a parsed fragment: a sequence of statements, each a pipeline.
type Block struct {
	Stmts []*Pipeline
}

// Parse adds src to the working set and parses it into a block. It is
// tolerant by contract: whatever structure can be recovered from an
// incomplete or invalid buffer is returned, and the block is never nil.
// A non-nil error reports the first defect without invalidating the
// partial result.
func Parse(ws *WorkingSet, name string, src []byte) (*Block, error) {
	span := ws.AddSource(src)
	toks := lex(src, span.Start)

	block := &Block{}
	var firstErr error

	for len(toks) > 0 {
		stmt, rest := splitTokens(toks, tokSemi)
		toks = rest
		if len(stmt) == 0 {
			continue
		}

		pipeline := &Pipeline{}
		for len(stmt) > 0 {
			elem, restElem := splitTokens(stmt, tokPipe)
			stmt = restElem
			if len(elem) == 0 {
				continue
			}
			expr, err := parseCommand(ws, elem)
			if err != nil && firstErr == nil {
				firstErr = err
			}
			if expr != nil {
				pipeline.Elements = append(pipeline.Elements, expr)
			}
		}
		if len(pipeline.Elements) > 0 {
			block.Stmts = append(block.Stmts, pipeline)
		}
	}

	if firstErr != nil && name != "" {
		firstErr = kerrors.NewParseError(name, firstErr.Error())
	}
	return block, firstErr
}

// splitTokens splits toks at the first token of the given kind, consuming
// the separator.
func splitTokens(toks []token, kind tokenKind) (head, rest []token) {
	for i, t := range toks {
		if t.kind == kind {
			return toks[:i], toks[i+1:]
		}
	}
	return toks, nil
}

func parseCommand(ws *WorkingSet, toks []token) (*Expr, error) {
	head := toks[0]
	outer := Span{Start: head.span.Start, End: toks[len(toks)-1].span.End}

	switch {
	case string(head.text) == "let":
		return parseLet(ws, toks, outer)
	case len(head.text) > 0 && head.text[0] == '$':
		expr := &Expr{
			Kind: ExprVar,
			Span: outer,
			Head: head.span,
			Name: string(head.text),
		}
		expr.Args = classifyArgs(toks[1:])
		return expr, nil
	case head.kind == tokString:
		expr := &Expr{
			Kind: ExprString,
			Span: outer,
			Head: head.span,
			Name: string(head.text),
		}
		expr.Args = classifyArgs(toks[1:])
		return expr, nil
	default:
		name := string(head.text)
		expr := &Expr{
			Span: outer,
			Head: head.span,
			Name: name,
			Args: classifyArgs(toks[1:]),
		}
		if sig, ok := ws.Command(name); ok {
			expr.Kind = ExprCall
			expr.Sig = sig
		} else {
			expr.Kind = ExprExternal
		}
		return expr, nil
	}
}

// parseLet parses `let $name = value...`. The variable is registered in
// the working-set scope at parse time, so bindings introduced earlier in
// a still-unexecuted line are already visible to completion.
func parseLet(ws *WorkingSet, toks []token, outer Span) (*Expr, error) {
	expr := &Expr{
		Kind: ExprLet,
		Span: outer,
		Head: toks[0].span,
		Name: "let",
	}

	if len(toks) < 2 {
		return expr, fmt.Errorf("let: missing variable name")
	}
	varTok := toks[1]
	if len(varTok.text) == 0 || varTok.text[0] != '$' {
		expr.Args = append(expr.Args, &Expr{Kind: ExprGarbage, Span: varTok.span, Head: varTok.span})
		return expr, fmt.Errorf("let: variable name must start with $")
	}

	ws.AddVar(varTok.text)
	expr.Args = append(expr.Args, &Expr{
		Kind: ExprVar,
		Span: varTok.span,
		Head: varTok.span,
		Name: string(varTok.text),
	})

	rest := toks[2:]
	if len(rest) > 0 && bytes.Equal(rest[0].text, []byte("=")) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return expr, fmt.Errorf("let: missing value")
	}
	expr.Args = append(expr.Args, classifyArgs(rest)...)
	return expr, nil
}

func classifyArgs(toks []token) []*Expr {
	var args []*Expr
	for _, t := range toks {
		args = append(args, classifyArg(t))
	}
	return args
}

func classifyArg(t token) *Expr {
	expr := &Expr{Span: t.span, Head: t.span, Name: string(t.text)}
	switch {
	case t.kind == tokString:
		expr.Kind = ExprString
	case len(t.text) > 0 && t.text[0] == '$':
		expr.Kind = ExprVar
	case bytes.ContainsAny(t.text, "*?["):
		expr.Kind = ExprGlob
	case looksLikePath(t.text):
		expr.Kind = ExprFilepath
	default:
		expr.Kind = ExprString
	}
	return expr
}

func looksLikePath(text []byte) bool {
	if len(text) == 0 {
		return false
	}
	if text[0] == '.' || text[0] == '~' || text[0] == '/' {
		return true
	}
	return bytes.ContainsAny(text, "/\\")
}
