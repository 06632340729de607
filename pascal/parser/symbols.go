package parser

// VarKind discriminates a local variable from a procedure parameter.
// The numeric values appear in the variable ledger.
type VarKind int

const (
	VarLocal VarKind = iota
	VarParameter
)

func (k VarKind) String() string {
	if k == VarParameter {
		return "parameter"
	}
	return "variable"
}

// TypeInteger is the only type in the language.
const TypeInteger = "integer"

// Variable is one declared variable or parameter. Address is unique
// across the whole program, modelling a flat activation-record layout.
type Variable struct {
	Name    string
	Proc    string
	Kind    VarKind
	Type    string
	Level   int
	Address int
}

// Procedure is one declared function. Level is the level its body
// executes at; FirstAddress and LastAddress bound the contiguous
// address range of its parameter and locals, closed off once the body
// finishes parsing.
type Procedure struct {
	Name         string
	Type         string
	Level        int
	FirstAddress int
	LastAddress  int
}

// SymbolTable holds both declaration tables. Records are append-only:
// duplicates are rejected, nothing is ever removed, and the tables are
// read-only once the parse completes.
type SymbolTable struct {
	vars        []Variable
	procs       []*Procedure
	nextAddress int
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// NextAddress returns the address the next declaration will receive.
func (t *SymbolTable) NextAddress() int {
	return t.nextAddress
}

// DeclareVariable appends a new record and reports whether it was
// added. A name already declared with the same owner, kind and level
// is a duplicate; the existing record stays untouched.
func (t *SymbolTable) DeclareVariable(name, proc string, kind VarKind, level int) bool {
	for i := range t.vars {
		v := &t.vars[i]
		if v.Name == name && v.Proc == proc && v.Kind == kind && v.Level == level {
			return false
		}
	}
	t.vars = append(t.vars, Variable{
		Name:    name,
		Proc:    proc,
		Kind:    kind,
		Type:    TypeInteger,
		Level:   level,
		Address: t.nextAddress,
	})
	t.nextAddress++
	return true
}

// DeclareProcedure appends a new record unless the name is already
// taken at the same level. The returned record starts with an empty
// address range; the parser closes it when the body finishes.
func (t *SymbolTable) DeclareProcedure(name string, level int) (*Procedure, bool) {
	for _, p := range t.procs {
		if p.Name == name && p.Level == level {
			return nil, false
		}
	}
	p := &Procedure{
		Name:         name,
		Type:         TypeInteger,
		Level:        level,
		FirstAddress: t.nextAddress,
		LastAddress:  t.nextAddress - 1,
	}
	t.procs = append(t.procs, p)
	return p, true
}

// LookupVariable resolves a reference at the given level to the
// nearest declaration visible from it, or nil.
func (t *SymbolTable) LookupVariable(name string, level int) *Variable {
	for i := len(t.vars) - 1; i >= 0; i-- {
		v := &t.vars[i]
		if v.Name == name && v.Level <= level {
			return v
		}
	}
	return nil
}

// LookupProcedure resolves a reference at the given level. A procedure
// is visible in its own body and in any enclosing scope, so the rule
// is Level-1 <= level.
func (t *SymbolTable) LookupProcedure(name string, level int) *Procedure {
	for i := len(t.procs) - 1; i >= 0; i-- {
		p := t.procs[i]
		if p.Name == name && p.Level-1 <= level {
			return p
		}
	}
	return nil
}

func (t *SymbolTable) Variables() []Variable {
	return t.vars
}

func (t *SymbolTable) Procedures() []Procedure {
	out := make([]Procedure, len(t.procs))
	for i, p := range t.procs {
		out[i] = *p
	}
	return out
}
