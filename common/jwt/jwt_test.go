package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("66f1a2b3c4d5e6f7a8b9c0d1", "user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "66f1a2b3c4d5e6f7a8b9c0d1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "66f1a2b3c4d5e6f7a8b9c0d1")
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "user@example.com")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"Empty token", ""},
		{"Not a JWT", "not-a-token"},
		{"Truncated", "eyJhbGciOiJIUzI1NiJ9.broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token); err == nil {
				t.Errorf("ValidateToken(%q) expected error, got nil", tt.token)
			}
		})
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	now := time.Now()
	claims := Claims{
		UserID: "66f1a2b3c4d5e6f7a8b9c0d1",
		Email:  "user@example.com",
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now.Add(-48 * time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(-24 * time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted an expired token")
	}
}

func TestTokenExpirationIsSevenDays(t *testing.T) {
	token, err := GenerateToken("66f1a2b3c4d5e6f7a8b9c0d1", "user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 7*24*time.Hour {
		t.Errorf("token lifetime = %v, want %v", lifetime, 7*24*time.Hour)
	}
}
