package parser

import "testing"

func TestSymbolTableAddresses(t *testing.T) {
	st := NewSymbolTable()
	st.DeclareVariable("a", "", VarLocal, 1)
	st.DeclareVariable("x", "f", VarParameter, 2)
	st.DeclareVariable("b", "f", VarLocal, 2)

	vars := st.Variables()
	for i, v := range vars {
		if v.Address != i {
			t.Errorf("%s: address = %d, want %d", v.Name, v.Address, i)
		}
	}
	if st.NextAddress() != 3 {
		t.Errorf("NextAddress = %d, want 3", st.NextAddress())
	}
}

func TestSymbolTableDuplicateVariable(t *testing.T) {
	st := NewSymbolTable()
	if !st.DeclareVariable("a", "", VarLocal, 1) {
		t.Fatal("first declaration rejected")
	}
	if st.DeclareVariable("a", "", VarLocal, 1) {
		t.Error("duplicate declaration accepted")
	}
	if len(st.Variables()) != 1 {
		t.Errorf("table has %d entries, want 1", len(st.Variables()))
	}
	// The duplicate must not burn an address.
	if st.NextAddress() != 1 {
		t.Errorf("NextAddress = %d, want 1", st.NextAddress())
	}
}

func TestSymbolTableSameNameDifferentScope(t *testing.T) {
	st := NewSymbolTable()
	if !st.DeclareVariable("a", "", VarLocal, 1) {
		t.Fatal("level-1 declaration rejected")
	}
	if !st.DeclareVariable("a", "f", VarLocal, 2) {
		t.Error("level-2 declaration of same name rejected")
	}
	// A parameter may share a name with a local at the same level.
	if !st.DeclareVariable("a", "f", VarParameter, 2) {
		t.Error("parameter with same name as local rejected")
	}
}

func TestLookupVariableNearestFirst(t *testing.T) {
	st := NewSymbolTable()
	st.DeclareVariable("a", "", VarLocal, 1)
	st.DeclareVariable("a", "f", VarLocal, 2)

	got := st.LookupVariable("a", 2)
	if got == nil {
		t.Fatal("lookup failed")
	}
	if got.Level != 2 {
		t.Errorf("resolved level = %d, want 2 (nearest declaration)", got.Level)
	}

	got = st.LookupVariable("a", 1)
	if got == nil {
		t.Fatal("lookup at level 1 failed")
	}
	if got.Level != 1 {
		t.Errorf("resolved level = %d, want 1 (inner declaration invisible)", got.Level)
	}
}

func TestLookupVariableUndefined(t *testing.T) {
	st := NewSymbolTable()
	st.DeclareVariable("inner", "f", VarLocal, 2)

	if st.LookupVariable("missing", 2) != nil {
		t.Error("lookup of undeclared name succeeded")
	}
	// Inner declarations are not visible from the outer level.
	if st.LookupVariable("inner", 1) != nil {
		t.Error("level-2 variable visible from level 1")
	}
}

func TestLookupProcedureVisibility(t *testing.T) {
	st := NewSymbolTable()
	st.DeclareProcedure("f", 2)

	// Visible from its declaring level and from its own body level.
	if st.LookupProcedure("f", 1) == nil {
		t.Error("procedure invisible at declaring level")
	}
	if st.LookupProcedure("f", 2) == nil {
		t.Error("procedure invisible inside its own body")
	}
}

func TestSymbolTableDuplicateProcedure(t *testing.T) {
	st := NewSymbolTable()
	if _, ok := st.DeclareProcedure("f", 2); !ok {
		t.Fatal("first declaration rejected")
	}
	if _, ok := st.DeclareProcedure("f", 2); ok {
		t.Error("duplicate declaration accepted")
	}
	if len(st.Procedures()) != 1 {
		t.Errorf("table has %d entries, want 1", len(st.Procedures()))
	}
}
