package engine

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/koi-shell/koi/internal/kerrors"
	"github.com/koi-shell/koi/internal/syntax"
)

const (
	// DefaultCommandTimeout bounds how long an external command may run.
	DefaultCommandTimeout = 3 * time.Second
	// MaxOutputSize is the maximum size of external command output (1MB)
	MaxOutputSize = 1024 * 1024
)

// Eval evaluates a parsed block. Pipelines feed values left to right;
// the initial input seeds the first element of each pipeline. The output
// of the last pipeline is returned.
func Eval(state *State, stack *Stack, ws *syntax.WorkingSet, block *syntax.Block, input Value) ([]Value, error) {
	var out []Value
	for _, stmt := range block.Stmts {
		in := []Value{}
		if input.Kind != KindNothing || input.Span.Len() > 0 {
			in = []Value{input}
		}
		for _, elem := range stmt.Elements {
			vals, err := evalExpr(state, stack, ws, elem, in)
			if err != nil {
				return nil, err
			}
			in = vals
		}
		out = in
	}
	return out, nil
}

func evalExpr(state *State, stack *Stack, ws *syntax.WorkingSet, e *syntax.Expr, input []Value) ([]Value, error) {
	switch e.Kind {
	case syntax.ExprCall:
		cmd, ok := state.Lookup(e.Name)
		if !ok {
			return nil, fmt.Errorf("unknown command %q", e.Name)
		}
		args, err := evalArgs(state, stack, ws, e.Args)
		if err != nil {
			return nil, err
		}
		return cmd.Run(&RunContext{
			State: state,
			Stack: stack,
			Ws:    ws,
			Call:  e,
			Args:  args,
			Input: input,
		})
	case syntax.ExprExternal:
		args, err := evalArgs(state, stack, ws, e.Args)
		if err != nil {
			return nil, err
		}
		return runExternal(e, e.Name, args)
	case syntax.ExprLet:
		return evalLet(state, stack, ws, e)
	case syntax.ExprVar:
		v, ok := stack.Vars[e.Name]
		if !ok {
			return nil, fmt.Errorf("variable %s not found", e.Name)
		}
		return []Value{v}, nil
	case syntax.ExprString:
		return []Value{Str(unquote(e.Name), e.Span)}, nil
	case syntax.ExprFilepath, syntax.ExprGlob:
		return []Value{Str(e.Name, e.Span)}, nil
	case syntax.ExprGarbage:
		return nil, nil
	default:
		return nil, nil
	}
}

func evalArgs(state *State, stack *Stack, ws *syntax.WorkingSet, args []*syntax.Expr) ([]Value, error) {
	var out []Value
	for _, arg := range args {
		vals, err := evalExpr(state, stack, ws, arg, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, vals...)
	}
	return out, nil
}

// evalLet binds the first value of the right-hand side into the local
// frame. The parse pass already registered the name in the working-set
// scope, so completion sees the binding before the line ever runs.
func evalLet(state *State, stack *Stack, ws *syntax.WorkingSet, e *syntax.Expr) ([]Value, error) {
	if len(e.Args) == 0 || e.Args[0].Kind != syntax.ExprVar {
		return nil, fmt.Errorf("let: missing variable name")
	}
	name := e.Args[0].Name
	vals, err := evalArgs(state, stack, ws, e.Args[1:])
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("let: missing value")
	}
	stack.Vars[name] = vals[0]
	return nil, nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// runExternal executes an external command under a hard timeout and
// turns its stdout lines into string values.
func runExternal(call *syntax.Expr, name string, args []Value) ([]Value, error) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultCommandTimeout)
	defer cancel()

	argv := make([]string, 0, len(args))
	for _, a := range args {
		s, err := a.AsString()
		if err != nil {
			return nil, kerrors.NewExecError(name, "argument is not string-coercible", err)
		}
		argv = append(argv, s)
	}

	cmd := exec.CommandContext(ctx, name, argv...)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, kerrors.NewExecError(name, fmt.Sprintf("command timeout after %v", DefaultCommandTimeout), err)
		}
		return nil, kerrors.NewExecError(name, "command failed", err)
	}
	if len(output) > MaxOutputSize {
		output = output[:MaxOutputSize]
	}

	span := syntax.Span{}
	if call != nil {
		span = call.Span
	}
	var out []Value
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		out = append(out, Str(line, span))
	}
	return out, nil
}

// BlockEvaluator adapts Eval to the completion engine's Evaluator
// interface, giving each provider invocation a fresh local frame.
type BlockEvaluator struct {
	State *State
}

// EvalBlock evaluates a block with a fresh stack.
func (b BlockEvaluator) EvalBlock(ws *syntax.WorkingSet, block *syntax.Block, input Value) ([]Value, error) {
	stack := NewStack()
	return Eval(b.State, stack, ws, block, input)
}
