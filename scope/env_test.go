package scope

import "testing"

func TestBuiltinTypedefNamesSeeded(t *testing.T) {
	e := New([]string{"__builtin_va_list"})
	if !e.IsTypedef("__builtin_va_list") {
		t.Fatal("expected builtin typedef name to be visible at global scope")
	}
	if e.IsTypedef("T") {
		t.Fatal("unbound name must not resolve as typedef")
	}
}

func TestTypedefVisibleAfterBinding(t *testing.T) {
	e := New(nil)
	e.AddTypedef("T")
	if !e.IsTypedef("T") {
		t.Fatal("expected T to resolve as typedef after AddTypedef")
	}
}

func TestShadowHidesOuterTypedefWithinScope(t *testing.T) {
	e := New(nil)
	e.AddTypedef("T")
	e.EnterScope()
	e.ShadowTypedef("T")
	if e.IsTypedef("T") {
		t.Fatal("expected T shadowed as ordinary identifier inside inner scope")
	}
	e.LeaveScope()
	if !e.IsTypedef("T") {
		t.Fatal("expected T to resolve as typedef again after leaving shadowing scope")
	}
}

func TestLeaveScopeWithoutEnterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling LeaveScope without a matching EnterScope")
		}
	}()
	e := New(nil)
	e.LeaveScope()
}

func TestScopeDepthTracksEnterLeaveBalance(t *testing.T) {
	e := New(nil)
	if e.Depth() != 1 {
		t.Fatalf("expected depth 1 for the global frame, got %d", e.Depth())
	}
	e.EnterScope()
	e.EnterScope()
	if e.Depth() != 3 {
		t.Fatalf("expected depth 3, got %d", e.Depth())
	}
	e.LeaveScope()
	if e.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", e.Depth())
	}
}
