package service

import (
	"regexp"
	"testing"
)

func TestNewReferenceCode_Shape(t *testing.T) {
	shape := regexp.MustCompile(`^[A-Z0-9]{12}$`)

	for i := 0; i < 100; i++ {
		ref, err := newReferenceCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !shape.MatchString(ref) {
			t.Fatalf("reference %q does not match expected shape", ref)
		}
	}
}

func TestNewReferenceCode_NoImmediateRepeats(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		ref, err := newReferenceCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, dup := seen[ref]; dup {
			t.Fatalf("reference %q repeated within 1000 draws", ref)
		}
		seen[ref] = struct{}{}
	}
}
