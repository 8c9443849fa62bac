package syntax

// CommandSig describes a declared command: its name and, optionally, the
// source of a dynamic completion provider attached to its arguments.
type CommandSig struct {
	Name      string
	Completer string
}

// Decls is the read-only view of persistent shell state the parser needs:
// previously parsed source and the command table. The working set layers
// its own buffer and scopes on top of it.
type Decls interface {
	// SourceLen returns the byte length of all previously committed source.
	SourceLen() int
	// SourceSlice returns the bytes a span denotes within committed source.
	SourceSlice(sp Span) []byte
	// Command looks up a declared command signature by name.
	Command(name string) (*CommandSig, bool)
	// CommandsByPrefix returns declared command names starting with prefix,
	// in declaration order.
	CommandsByPrefix(prefix []byte) []string
}

// WorkingSet is an ephemeral parse arena: new source and scope frames
// layered over a persistent Decls base. It is constructed fresh per
// completion request and discarded afterwards.
type WorkingSet struct {
	Decls Decls

	// Scopes is the ephemeral scope chain populated during parsing,
	// outermost first.
	Scopes []*Scope

	buf     []byte
	base    int
	nextVar VarID
}

// NewWorkingSet creates a working set over the given declaration view.
func NewWorkingSet(d Decls) *WorkingSet {
	return &WorkingSet{
		Decls:  d,
		Scopes: []*Scope{NewScope()},
		base:   d.SourceLen(),
	}
}

// NextSpanStart returns the absolute offset the next added source will
// start at. Callers record it before parsing to translate result spans
// back into input-relative coordinates.
func (ws *WorkingSet) NextSpanStart() int {
	return ws.base + len(ws.buf)
}

// AddSource appends source bytes to the working-set buffer and returns
// the span they occupy.
func (ws *WorkingSet) AddSource(src []byte) Span {
	start := ws.NextSpanStart()
	ws.buf = append(ws.buf, src...)
	return Span{Start: start, End: start + len(src)}
}

// Contents returns the bytes a span denotes, whether it lies in the
// working-set buffer or in committed persistent source. Out-of-range
// spans are clamped rather than panicking; keystroke-time input earns no
// trust.
func (ws *WorkingSet) Contents(sp Span) []byte {
	if sp.Start >= ws.base {
		start := sp.Start - ws.base
		end := sp.End - ws.base
		if start > len(ws.buf) {
			return nil
		}
		if end > len(ws.buf) {
			end = len(ws.buf)
		}
		if end < start {
			return nil
		}
		return ws.buf[start:end]
	}
	return ws.Decls.SourceSlice(sp)
}

// Source returns everything added to this working set, for committing
// into persistent state after a line executes.
func (ws *WorkingSet) Source() []byte {
	return ws.buf
}

// Command resolves a command signature through the persistent base.
func (ws *WorkingSet) Command(name string) (*CommandSig, bool) {
	return ws.Decls.Command(name)
}

// CommandsByPrefix resolves declared command names through the
// persistent base.
func (ws *WorkingSet) CommandsByPrefix(prefix []byte) []string {
	return ws.Decls.CommandsByPrefix(prefix)
}

// AddVar declares a variable in the innermost ephemeral scope and
// returns its id.
func (ws *WorkingSet) AddVar(name []byte) VarID {
	ws.nextVar++
	id := ws.nextVar
	ws.Scopes[len(ws.Scopes)-1].Add(name, id)
	return id
}
