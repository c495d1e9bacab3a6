package diag

import (
	"testing"

	"github.com/papyc-lang/papyc/internal/token"
)

func TestErrorAccumulates(t *testing.T) {
	c := NewContext()
	_ = c.Error(token.Location{Start: 0, End: 1}, "unexpected %q", "x")
	_ = c.Error(token.Location{Start: 2, End: 3}, "unclosed string")
	if len(c.Diagnostics()) != 2 {
		t.Fatalf("got %d diagnostics", len(c.Diagnostics()))
	}
	if !c.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestFatalPanicsWithFatalError(t *testing.T) {
	c := NewContext()
	defer func() {
		r := recover()
		fe, ok := r.(*FatalError)
		if !ok {
			t.Fatalf("expected *FatalError, got %T", r)
		}
		if fe.Message != "unresolved label!" {
			t.Fatalf("got %q", fe.Message)
		}
	}()
	c.Fatal(token.Location{Start: 5, End: 6}, "unresolved label!")
}

func TestLogicalFatalHasNoLocation(t *testing.T) {
	c := NewContext()
	defer func() {
		r := recover()
		fe, ok := r.(*FatalError)
		if !ok {
			t.Fatalf("expected *FatalError, got %T", r)
		}
		if fe.HasLoc {
			t.Fatal("expected no location on a logical fatal")
		}
	}()
	c.LogicalFatal("exceeded max temp vars")
}

func TestGetLocationLineMonotonic(t *testing.T) {
	c := NewContext()
	// Three lines: "aaa\nbbb\nccc" -> offsets 0, 4, 8
	c.PushNextLineOffset(token.Location{Start: 3, End: 4})
	c.PushNextLineOffset(token.Location{Start: 7, End: 8})

	line := c.GetLocationLine(token.Location{Start: 0, End: 1}, 1)
	if line != 1 {
		t.Fatalf("got line %d", line)
	}
	line = c.GetLocationLine(token.Location{Start: 5, End: 6}, line)
	if line != 2 {
		t.Fatalf("got line %d", line)
	}
	line = c.GetLocationLine(token.Location{Start: 9, End: 10}, line)
	if line != 3 {
		t.Fatalf("got line %d", line)
	}
}
