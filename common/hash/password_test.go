package hash

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Pass123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("HashPassword() = %q, want bcrypt format", hash)
	}

	// Two hashes of the same password must differ (random salt).
	hash2, err := HashPassword("Pass123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == hash2 {
		t.Error("HashPassword() produced identical hashes for the same input")
	}
}

func TestVerifyPassword(t *testing.T) {
	plainPassword := "Pass123"
	hash, err := HashPassword(plainPassword)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		plain    string
		hash     string
		expected bool
	}{
		{"Correct password", plainPassword, hash, true},
		{"Wrong password", "WrongPass", hash, false},
		{"Empty plain", "", hash, false},
		{"Empty hash", plainPassword, "", false},
		{"Garbage hash", plainPassword, "not-a-hash", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifyPassword(tt.plain, tt.hash)
			if got != tt.expected {
				t.Errorf("VerifyPassword() = %v, want %v", got, tt.expected)
			}
		})
	}
}
