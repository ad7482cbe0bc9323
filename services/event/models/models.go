package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event statuses.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// EventTypeHackathon marks events that support team registrations.
const EventTypeHackathon = "hackathon"

// TeamSettings configures team registrations for hackathon events.
type TeamSettings struct {
	Enabled     bool `bson:"enabled" json:"enabled"`
	MinTeamSize int  `bson:"minTeamSize" json:"minTeamSize"`
	MaxTeamSize int  `bson:"maxTeamSize" json:"maxTeamSize"`
}

// GalleryImage is an image attached to an event.
type GalleryImage struct {
	URL        string    `bson:"url" json:"url"`
	Caption    string    `bson:"caption,omitempty" json:"caption,omitempty"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// Event is a scheduled club activity. Slug is derived from the title and
// unique across events.
type Event struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title             string             `bson:"title" json:"title"`
	Slug              string             `bson:"slug" json:"slug"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	ShortDescription  string             `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Date              time.Time          `bson:"date,omitempty" json:"date,omitempty"`
	Time              string             `bson:"time,omitempty" json:"time,omitempty"`
	Location          string             `bson:"location,omitempty" json:"location,omitempty"`
	Image             string             `bson:"image,omitempty" json:"image,omitempty"`
	Tags              []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Status            string             `bson:"status" json:"status"`
	EventType         string             `bson:"eventType" json:"eventType"`
	TeamSettings      TeamSettings       `bson:"teamSettings" json:"teamSettings"`
	IsPaid            bool               `bson:"isPaid" json:"isPaid"`
	Price             float64            `bson:"price" json:"price"`
	MaxAttendees      int                `bson:"maxAttendees,omitempty" json:"maxAttendees,omitempty"`
	RegistrationCount int                `bson:"registrationCount" json:"registrationCount"`
	Gallery           []GalleryImage     `bson:"gallery,omitempty" json:"gallery,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RequiresPayment reports whether direct free registration is blocked.
func (e *Event) RequiresPayment() bool {
	return e.IsPaid && e.Price > 0
}

// IsTeamEvent reports whether team validation applies to registrations.
func (e *Event) IsTeamEvent() bool {
	return e.EventType == EventTypeHackathon && e.TeamSettings.Enabled
}

// Summary is the minimal event projection embedded in confirmations.
type Summary struct {
	ID    primitive.ObjectID `json:"id"`
	Title string             `json:"title"`
	Date  time.Time          `json:"date,omitempty"`
}

// SummaryOf builds the minimal projection of an event.
func SummaryOf(e *Event) Summary {
	return Summary{ID: e.ID, Title: e.Title, Date: e.Date}
}

// EventInput is the create/update body. Pointer fields distinguish "absent"
// from zero values on partial updates.
type EventInput struct {
	Title            *string        `json:"title"`
	Description      *string        `json:"description"`
	ShortDescription *string        `json:"shortDescription"`
	Date             *time.Time     `json:"date"`
	Time             *string        `json:"time"`
	Location         *string        `json:"location"`
	Image            *string        `json:"image"`
	Tags             *[]string      `json:"tags"`
	Status           *string        `json:"status"`
	EventType        *string        `json:"eventType"`
	TeamSettings     *TeamSettings  `json:"teamSettings"`
	IsPaid           *bool          `json:"isPaid"`
	Price            *float64       `json:"price"`
	MaxAttendees     *int           `json:"maxAttendees"`
	Gallery          *[]GalleryImage `json:"gallery"`
}
