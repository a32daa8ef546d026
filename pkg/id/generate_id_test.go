package id

import (
	"strings"
	"testing"
)

func TestNewCode_Format(t *testing.T) {
	got := NewCode("LN-", 10)

	if len(got) != 13 {
		t.Fatalf("length = %d, want 13 (got=%q)", len(got), got)
	}
	if !strings.HasPrefix(got, "LN-") {
		t.Fatalf("missing prefix: %q", got)
	}
	for _, r := range got[3:] {
		if !strings.ContainsRune(codeAlphabet, r) {
			t.Fatalf("character %q outside code alphabet in %q", r, got)
		}
	}
}

func TestNewCode_AvoidsAmbiguousCharacters(t *testing.T) {
	// 0/O and 1/I are deliberately absent so codes survive being read aloud.
	for _, r := range "0O1I" {
		if strings.ContainsRune(codeAlphabet, r) {
			t.Fatalf("ambiguous character %q in code alphabet", r)
		}
	}
}

func TestNewCode_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		code := NewCode("LN-", 10)
		if _, ok := seen[code]; ok {
			t.Fatalf("duplicate code after %d iterations: %q", i, code)
		}
		seen[code] = struct{}{}
	}
}
