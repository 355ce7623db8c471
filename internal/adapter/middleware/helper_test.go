package middleware

import (
	"strconv"
	"testing"
	"time"
)

func TestBuildKey(t *testing.T) {
	got := buildKey("PUT", "/contracts/3", testKey)
	want := "idemp:contracts:put:/contracts/3:" + testKey
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestValidKey(t *testing.T) {
	ok := []string{testKey, "6f1c2a4e-1b7d-4c3e-9a2b-0d1e2f3a4b5c"}
	bad := []string{"", "abc", "6F1C2A4E-1B7D-4C3E-9A2B-0D1E2F3A4B5C", testKey + "0", "zz23456789abcdef0123456789abcdef"}
	for _, s := range ok {
		if !validKey(s) {
			t.Errorf("validKey(%q) = false", s)
		}
	}
	for _, s := range bad {
		if validKey(s) {
			t.Errorf("validKey(%q) = true", s)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	ref := time.Date(2025, 9, 5, 3, 0, 0, 0, time.UTC)
	cases := map[string]time.Time{
		strconv.FormatInt(ref.Unix(), 10):      ref,
		strconv.FormatInt(ref.UnixMilli(), 10): ref,
		"2025-09-05T10:00:00+07:00":            ref,
		"2025-09-05T03:00:00Z":                 ref,
	}
	for in, want := range cases {
		got, err := parseRequestAt(in)
		if err != nil {
			t.Fatalf("parseRequestAt(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("parseRequestAt(%q) = %v want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "  ", "2025-09-05 10:00:00", "yesterday"} {
		if _, err := parseRequestAt(in); err == nil {
			t.Fatalf("parseRequestAt(%q) expected error", in)
		}
	}
}
