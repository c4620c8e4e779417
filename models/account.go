package models

import "time"

// Account holds the fields shared by clients and lawyers.
type Account struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	GoogleID     string    `bson:"googleId,omitempty" json:"googleId,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Client asks questions.
type Client struct {
	Account `bson:",inline"`
}

// Lawyer answers questions. The profile fields are empty for accounts
// created through Google until onboarding completes.
type Lawyer struct {
	Account        `bson:",inline"`
	DateOfBirth    *time.Time `bson:"dob,omitempty" json:"dob,omitempty"`
	City           string     `bson:"city,omitempty" json:"city,omitempty"`
	RegistrationID string     `bson:"registrationId,omitempty" json:"registrationId,omitempty"`
	Experience     int        `bson:"experience,omitempty" json:"experience,omitempty"`
}

// Onboarded reports whether the lawyer has completed the profile step.
func (l *Lawyer) Onboarded() bool {
	return l.City != ""
}

// LawyerProfile is the onboarding payload.
type LawyerProfile struct {
	DateOfBirth    *time.Time
	City           string
	RegistrationID string
	Experience     int
}
