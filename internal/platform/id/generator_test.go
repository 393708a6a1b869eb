package id

import (
	"strings"
	"testing"
)

func TestRandomGenerator_Prefixed(t *testing.T) {
	gen := NewRandomGenerator(" pick ")

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if !strings.HasPrefix(first, "pick_") || len(first) != len("pick_")+32 {
		t.Fatalf("unexpected id format: %q", first)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}

func TestRandomGenerator_NoPrefix(t *testing.T) {
	got, err := NewRandomGenerator("").NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(got) != 32 || strings.Contains(got, "_") {
		t.Fatalf("unexpected id format: %q", got)
	}
}
