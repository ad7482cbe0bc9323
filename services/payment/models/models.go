package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	regmodels "github.com/techclub-services/services/registration/models"
)

// Payment order statuses.
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// DefaultCurrency for payment orders.
const DefaultCurrency = "INR"

// Payment is a payment order for a paid event. The registration payload is
// held on the order until the signature verifies; only then does the
// registration record exist.
type Payment struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	OrderID      string              `bson:"orderId" json:"orderId"`
	PaymentID    string              `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Signature    string              `bson:"signature,omitempty" json:"-"`
	Event        primitive.ObjectID  `bson:"event" json:"event"`
	User         primitive.ObjectID  `bson:"user" json:"user"`
	Registration *primitive.ObjectID `bson:"registration,omitempty" json:"registration,omitempty"`

	// Denormalized caller details for the admin history view.
	UserName       string `bson:"userName" json:"userName"`
	UserEmail      string `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	RegistrationNo string `bson:"registrationNo,omitempty" json:"registrationNo,omitempty"`
	PhoneNumber    string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`

	RegistrationData *regmodels.Payload `bson:"registrationData,omitempty" json:"-"`

	Amount    float64    `bson:"amount" json:"amount"`
	Currency  string     `bson:"currency" json:"currency"`
	Status    string     `bson:"status" json:"status"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	PaidAt    *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// CreateOrderRequest is the POST /payments/create-order body.
type CreateOrderRequest struct {
	EventID          string             `json:"eventId"`
	RegistrationData *regmodels.Payload `json:"registrationData"`
}

// CreateOrderResponse mirrors the order shape payment gateways hand to their
// browser SDKs: amount in the currency's smallest unit.
type CreateOrderResponse struct {
	Success bool      `json:"success"`
	Order   OrderView `json:"order"`
	KeyID   string    `json:"keyId,omitempty"`
}

// OrderView is the client-facing order projection.
type OrderView struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyRequest is the POST /payments/verify body.
type VerifyRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// VerifyResponse is returned when the signature checks out.
type VerifyResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RegistrationID string `json:"registrationId,omitempty"`
}
