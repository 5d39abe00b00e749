package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := NewUUIDGenerator()

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}

	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("parse generated id: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected uuid v7, got v%d", parsed.Version())
	}
}

func TestSequenceGenerator_Exhausts(t *testing.T) {
	gen := NewSequenceGenerator("a", "b")
	for _, want := range []string{"a", "b"} {
		got, err := gen.NewID()
		if err != nil || got != want {
			t.Fatalf("unexpected id: got=%q err=%v want=%q", got, err, want)
		}
	}
	if _, err := gen.NewID(); err == nil {
		t.Fatalf("expected error once exhausted")
	}
}
