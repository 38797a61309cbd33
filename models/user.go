package models

import "time"

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Password      string    `json:"-" bson:"password"`
	FullName      string    `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	Gender        string    `json:"gender,omitempty" bson:"gender,omitempty"`
	DOB           string    `json:"dob,omitempty" bson:"dob,omitempty"`
	Role          []string  `json:"role" bson:"role"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}

// ProfileResponse is the trimmed-down view returned by the profile
// endpoints so fields like the password hash are never exposed.
type ProfileResponse struct {
	UserID   string `json:"userid" bson:"userid"`
	Username string `json:"username" bson:"username"`
	FullName string `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Gender   string `json:"gender,omitempty" bson:"gender,omitempty"`
	DOB      string `json:"dob,omitempty" bson:"dob,omitempty"`
}
