package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	eventmodels "github.com/techclub-services/services/event/models"
)

// Payment statuses of a registration.
const (
	PaymentStatusFree      = "free"
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// TeamMember is one additional member of a team registration (the leader is
// the registration record itself).
type TeamMember struct {
	Name           string `bson:"name" json:"name"`
	RegistrationNo string `bson:"registrationNo" json:"registrationNo"`
	PhoneNumber    string `bson:"phoneNumber" json:"phoneNumber"`
	Course         string `bson:"course" json:"course"`
}

// Registration links one registrant to exactly one event. At most one
// registration exists per (event, registrationNo), registrationNo normalized
// to trimmed uppercase.
type Registration struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Event              primitive.ObjectID  `bson:"event" json:"event"`
	User               *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Name               string              `bson:"name" json:"name"`
	RegistrationNo     string              `bson:"registrationNo" json:"registrationNo"`
	PhoneNumber        string              `bson:"phoneNumber" json:"phoneNumber"`
	WhatsappNumber     string              `bson:"whatsappNumber,omitempty" json:"whatsappNumber,omitempty"`
	Section            string              `bson:"section" json:"section"`
	Department         string              `bson:"department" json:"department"`
	Year               string              `bson:"year" json:"year"`
	Course             string              `bson:"course" json:"course"`
	IsTeamRegistration bool                `bson:"isTeamRegistration" json:"isTeamRegistration"`
	TeamName           string              `bson:"teamName,omitempty" json:"teamName,omitempty"`
	TeamMembers        []TeamMember        `bson:"teamMembers,omitempty" json:"teamMembers,omitempty"`
	Payment            *primitive.ObjectID `bson:"payment,omitempty" json:"payment,omitempty"`
	PaymentStatus      string              `bson:"paymentStatus" json:"paymentStatus"`
	RegisteredAt       time.Time           `bson:"registeredAt" json:"registeredAt"`
}

// Payload is the POST /events/:idOrSlug/register body.
type Payload struct {
	Name               string       `json:"name"`
	RegistrationNo     string       `json:"registrationNo"`
	PhoneNumber        string       `json:"phoneNumber"`
	WhatsappNumber     string       `json:"whatsappNumber"`
	Section            string       `json:"section"`
	Department         string       `json:"department"`
	Year               string       `json:"year"`
	Course             string       `json:"course"`
	IsTeamRegistration bool         `json:"isTeamRegistration"`
	TeamName           string       `json:"teamName"`
	TeamMembers        []TeamMember `json:"teamMembers"`
}

// ConfirmationRegistration is the slice of the created record returned to the
// caller, never the full internal record.
type ConfirmationRegistration struct {
	ID             primitive.ObjectID  `json:"id"`
	Name           string              `json:"name"`
	RegistrationNo string              `json:"registrationNo"`
	Event          eventmodels.Summary `json:"event"`
	QRCode         string              `json:"qrCode,omitempty"`
}

// Confirmation is the 201 response body of a successful registration.
type Confirmation struct {
	Success      bool                     `json:"success"`
	Message      string                   `json:"message"`
	Registration ConfirmationRegistration `json:"registration"`
}

// CheckResult is the check-registration response.
type CheckResult struct {
	IsRegistered bool          `json:"isRegistered"`
	Registration *Registration `json:"registration,omitempty"`
}
