package id

import (
	"encoding/hex"
	"testing"
)

func TestNewID32_Shape(t *testing.T) {
	got := NewID32()
	if !IsID32(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsID32(t *testing.T) {
	cases := map[string]bool{
		"0123456789abcdef0123456789abcdef":     true,
		"0123456789ABCDEF0123456789ABCDEF":     false,
		"0123456789abcdef0123456789abcde":      false,
		"0123456789abcdef0123456789abcdefa":    false,
		"0123456789abcdeg0123456789abcdef":     false,
		"01234567-89ab-cdef-0123-456789abcdef": false,
		"":                                     false,
	}
	for in, want := range cases {
		if got := IsID32(in); got != want {
			t.Errorf("IsID32(%q) = %v want %v", in, got, want)
		}
	}
}
