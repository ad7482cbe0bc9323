package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an identity record. Password is a bcrypt hash and never serialized.
type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Password           string             `bson:"password" json:"-"`
	Role               string             `bson:"role" json:"role"`
	IsAdmin            bool               `bson:"isAdmin" json:"isAdmin"`
	RegistrationNumber string             `bson:"registrationNumber,omitempty" json:"registrationNumber,omitempty"`
	Phone              string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Stream             string             `bson:"stream,omitempty" json:"stream,omitempty"`
	Section            string             `bson:"section,omitempty" json:"section,omitempty"`
	Session            string             `bson:"session,omitempty" json:"session,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}

// HasAdminAccess reports whether the user may call admin-only routes.
func (u *User) HasAdminAccess() bool {
	return u.IsAdmin || u.Role == "admin"
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the POST /auth/signup body.
type SignupRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	RegistrationNumber string `json:"registrationNumber"`
	Phone              string `json:"phone"`
	Stream             string `json:"stream"`
	Section            string `json:"section"`
	Session            string `json:"session"`
}

// UserView is the public projection returned by auth endpoints.
type UserView struct {
	ID      primitive.ObjectID `json:"id"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Role    string             `json:"role"`
	IsAdmin bool               `json:"isAdmin"`
}

// AuthResponse pairs a bearer token with the public user view.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// ViewOf builds the public projection of a user.
func ViewOf(u *User) UserView {
	return UserView{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		IsAdmin: u.HasAdminAccess(),
	}
}
