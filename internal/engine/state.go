package engine

import (
	"bytes"

	"github.com/koi-shell/koi/internal/syntax"
)

// RunContext carries everything an internal command needs for one
// invocation.
type RunContext struct {
	State *State
	Stack *Stack
	Ws    *syntax.WorkingSet
	Call  *syntax.Expr
	Args  []Value
	Input []Value
}

// Command is a declared internal command: its signature plus the function
// that runs it.
type Command struct {
	Sig *syntax.CommandSig
	Run func(rc *RunContext) ([]Value, error)
}

// Stack is one local binding frame, created fresh per evaluation.
type Stack struct {
	Vars map[string]Value
}

// NewStack creates an empty local frame.
func NewStack() *Stack {
	return &Stack{Vars: make(map[string]Value)}
}

// State is the persistent process-wide shell state: environment
// variables, the long-lived scope chain, the command table, and all
// source committed by executed lines. The completion engine only reads
// it; mutation happens when a line actually runs.
type State struct {
	EnvVars map[string]Value
	Scopes  []*syntax.Scope

	commands map[string]*Command
	order    []string
	source   []byte
	nextVar  syntax.VarID
}

// NewState creates a state with the builtin commands registered and one
// root scope.
func NewState() *State {
	s := &State{
		EnvVars:  make(map[string]Value),
		Scopes:   []*syntax.Scope{syntax.NewScope()},
		commands: make(map[string]*Command),
	}
	registerBuiltins(s)
	return s
}

// RegisterCommand declares an internal command. Re-registering a name
// replaces the command but keeps its original declaration order.
func (s *State) RegisterCommand(cmd *Command) {
	if _, ok := s.commands[cmd.Sig.Name]; !ok {
		s.order = append(s.order, cmd.Sig.Name)
	}
	s.commands[cmd.Sig.Name] = cmd
}

// SetCompleter attaches a dynamic completion provider to a command. An
// unknown name is declared as a pass-through to the external command of
// the same name, so providers can be attached to arbitrary tools.
func (s *State) SetCompleter(name, source string) {
	cmd, ok := s.commands[name]
	if !ok {
		cmd = &Command{
			Sig: &syntax.CommandSig{Name: name},
			Run: func(rc *RunContext) ([]Value, error) {
				return runExternal(rc.Call, name, rc.Args)
			},
		}
		s.RegisterCommand(cmd)
	}
	cmd.Sig.Completer = source
}

// Lookup finds a command by name.
func (s *State) Lookup(name string) (*Command, bool) {
	cmd, ok := s.commands[name]
	return cmd, ok
}

// AddVar declares a variable in the innermost persistent scope.
func (s *State) AddVar(name []byte) syntax.VarID {
	s.nextVar++
	s.Scopes[len(s.Scopes)-1].Add(name, s.nextVar)
	return s.nextVar
}

// Commit folds an executed working set into persistent state: its source
// joins the committed buffer and its scope frames, where populated, join
// the persistent chain.
func (s *State) Commit(ws *syntax.WorkingSet) {
	s.source = append(s.source, ws.Source()...)
	for _, scope := range ws.Scopes {
		if len(scope.Vars) == 0 {
			continue
		}
		frame := syntax.NewScope()
		for _, v := range scope.Vars {
			s.nextVar++
			frame.Add(v.Name, s.nextVar)
		}
		s.Scopes = append(s.Scopes, frame)
	}
}

// SourceLen implements syntax.Decls.
func (s *State) SourceLen() int {
	return len(s.source)
}

// SourceSlice implements syntax.Decls.
func (s *State) SourceSlice(sp syntax.Span) []byte {
	if sp.Start < 0 || sp.Start > len(s.source) {
		return nil
	}
	end := sp.End
	if end > len(s.source) {
		end = len(s.source)
	}
	if end < sp.Start {
		return nil
	}
	return s.source[sp.Start:end]
}

// Command implements syntax.Decls.
func (s *State) Command(name string) (*syntax.CommandSig, bool) {
	cmd, ok := s.commands[name]
	if !ok {
		return nil, false
	}
	return cmd.Sig, true
}

// CommandsByPrefix implements syntax.Decls.
func (s *State) CommandsByPrefix(prefix []byte) []string {
	var out []string
	for _, name := range s.order {
		if bytes.HasPrefix([]byte(name), prefix) {
			out = append(out, name)
		}
	}
	return out
}
