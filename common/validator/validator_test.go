package validator

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{"Valid email", "user@example.com", true},
		{"Valid with +", "user+tag@example.com", true},
		{"Valid subdomain", "user@mail.club.edu", true},
		{"Invalid - no @", "userexample.com", false},
		{"Invalid - no domain", "user@", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidEmail(tt.email)
			if got != tt.expected {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.expected)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected bool
	}{
		{"Plain 10 digits", "9876543210", true},
		{"With country code", "+919876543210", true},
		{"With spaces", "98765 43210", true},
		{"With hyphens", "98765-43210", true},
		{"Too short", "987654321", false},
		{"Letters", "98765abcde", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidPhone(tt.phone)
			if got != tt.expected {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.expected)
			}
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{"Letters and digits", "Pass123", true},
		{"With symbols", "Abc@123!", true},
		{"Too short", "Ab1", false},
		{"No digit", "Password", false},
		{"No letter", "123456", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidPassword(tt.password)
			if got != tt.expected {
				t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.expected)
			}
		})
	}
}
