package token

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		lit      string
		expected Kind
		ok       bool
	}{
		{"LOAD", Load, true},
		{"OTHERWISE", Otherwise, true},
		{"THROW_AWAY_KEY", ThrowAwayKey, true},
		{"AT_EXIT", AtExit, true},
		{"2", Two, true},
		{":=", Assign, true},
		{"load", Illegal, false},
		{"4", Illegal, false},
	}

	for i, tt := range tests {
		k, ok := Lookup(tt.lit)
		if ok != tt.ok || k != tt.expected {
			t.Fatalf("tests[%d] - Lookup(%q) = (%s, %v), want (%s, %v)", i, tt.lit, k, ok, tt.expected, tt.ok)
		}
	}
}

func TestKindClassification(t *testing.T) {
	for _, k := range []Kind{FrontIsClear, OnKey, AtDoor, AtExit} {
		if !k.IsSensor() || k.IsAction() {
			t.Fatalf("%s should be a sensor only", k)
		}
	}
	for _, k := range []Kind{MoveForward, TurnLeft, TurnRight, PickKey, OpenDoor, ThrowAwayKey} {
		if !k.IsAction() || k.IsSensor() {
			t.Fatalf("%s should be an action only", k)
		}
	}
	if !If.IsBlockOpener() || !While.IsBlockOpener() || End.IsBlockOpener() {
		t.Fatalf("block opener classification wrong")
	}
}

func TestKeywordsSortedAndComplete(t *testing.T) {
	kws := Keywords()
	if len(kws) != 23 {
		t.Fatalf("expected 23 keywords, got %d", len(kws))
	}
	for i := 1; i < len(kws); i++ {
		if kws[i-1] >= kws[i] {
			t.Fatalf("keywords not sorted at %d: %q >= %q", i, kws[i-1], kws[i])
		}
	}
	if Ident.String() != "IDENT" || MoveForward.String() != "MOVE_FORWARD" {
		t.Fatalf("unexpected kind names %q %q", Ident, MoveForward)
	}
}
