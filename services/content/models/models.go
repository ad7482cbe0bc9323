package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial and submission statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Member is a club member shown on the public team page, sorted by Order.
type Member struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Order     int                `bson:"order" json:"order"`
	Socials   map[string]string  `bson:"socials,omitempty" json:"socials,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// MemberInput is the create/update body for members.
type MemberInput struct {
	Name    *string            `json:"name"`
	Role    *string            `json:"role"`
	Image   *string            `json:"image"`
	Order   *int               `json:"order"`
	Socials *map[string]string `json:"socials"`
}

// GalleryItem is one public gallery entry, listed newest first.
type GalleryItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL       string             `bson:"url" json:"url"`
	Caption   string             `bson:"caption,omitempty" json:"caption,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// GalleryInput is the create body for gallery items.
type GalleryInput struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// Testimonial is user-submitted praise. Public reads only see approved ones.
type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Text      string             `bson:"text" json:"text"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// TestimonialInput is the public submit / admin update body.
type TestimonialInput struct {
	Name   *string `json:"name"`
	Text   *string `json:"text"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// Submission is a club join request, landing as pending.
type Submission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	RegNo     string             `bson:"regNo,omitempty" json:"regNo,omitempty"`
	Stream    string             `bson:"stream,omitempty" json:"stream,omitempty"`
	Year      string             `bson:"year,omitempty" json:"year,omitempty"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// SubmissionInput is the public join-request body.
type SubmissionInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	RegNo   string `json:"regNo"`
	Stream  string `json:"stream"`
	Year    string `json:"year"`
	Message string `json:"message"`
}

// SubmissionStatusInput is the admin status update body.
type SubmissionStatusInput struct {
	Status string `json:"status"`
}
