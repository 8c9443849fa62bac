package syntax

// VarID is an opaque identifier for a declared variable. IDs are only
// meaningful within the chain that issued them.
type VarID int

// VarEntry is one declared variable: its name (sigil included) and id.
type VarEntry struct {
	Name []byte
	ID   VarID
}

// Scope is an ordered name-to-id mapping for one lexical frame. Both the
// ephemeral working-set chain and the persistent state chain are built
// from these.
type Scope struct {
	Vars []VarEntry
}

// NewScope creates an empty scope frame.
func NewScope() *Scope {
	return &Scope{}
}

// Add declares a variable in this scope.
func (s *Scope) Add(name []byte, id VarID) {
	s.Vars = append(s.Vars, VarEntry{Name: append([]byte(nil), name...), ID: id})
}

// Lookup finds a variable by exact name, innermost declaration first.
func (s *Scope) Lookup(name []byte) (VarID, bool) {
	for i := len(s.Vars) - 1; i >= 0; i-- {
		if string(s.Vars[i].Name) == string(name) {
			return s.Vars[i].ID, true
		}
	}
	return 0, false
}
