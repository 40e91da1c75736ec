package service

import (
	"testing"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

func TestGenerateCode_Shape(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode returned error: %v", err)
		}
		if len(code) != domain.CodeLength {
			t.Fatalf("expected %d digits, got %q", domain.CodeLength, code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit in code %q", code)
			}
		}
	}
}

func TestGenerateCode_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode returned error: %v", err)
		}
		seen[code] = struct{}{}
	}
	// 50 draws from a million values colliding down to one would mean a
	// broken generator.
	if len(seen) < 2 {
		t.Fatalf("generator produced a single value across 50 draws")
	}
}
