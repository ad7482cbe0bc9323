package usecase

import (
	"strings"
	"testing"
)

func TestNewOrderID(t *testing.T) {
	a, err := NewOrderID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(a, "order_") {
		t.Errorf("order id %q missing prefix", a)
	}
	if len(a) != len("order_")+24 {
		t.Errorf("order id %q has unexpected length %d", a, len(a))
	}

	b, err := NewOrderID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Error("consecutive order ids collided")
	}
}

func TestVerifySignature(t *testing.T) {
	const secret = "test-secret"
	orderID := "order_abc123"
	paymentID := "pay_xyz789"
	valid := ExpectedSignature(orderID, paymentID, secret)

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		secret    string
		want      bool
	}{
		{"valid signature", orderID, paymentID, valid, secret, true},
		{"wrong signature", orderID, paymentID, "deadbeef", secret, false},
		{"wrong secret", orderID, paymentID, valid, "other-secret", false},
		{"swapped ids", paymentID, orderID, valid, secret, false},
		{"empty signature", orderID, paymentID, "", secret, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifySignature(tt.orderID, tt.paymentID, tt.signature, tt.secret); got != tt.want {
				t.Errorf("VerifySignature = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpectedSignatureIsDeterministicHex(t *testing.T) {
	s1 := ExpectedSignature("order_1", "pay_1", "s")
	s2 := ExpectedSignature("order_1", "pay_1", "s")
	if s1 != s2 {
		t.Error("signature not deterministic")
	}
	if len(s1) != 64 {
		t.Errorf("signature length = %d, want 64 hex chars", len(s1))
	}
}
