package session

import (
	"time"

	"lexify/models"
)

// Record is what a login session stores. It is a snapshot taken at login:
// later changes to the account are not seen until the next login.
type Record struct {
	AccountID string      `json:"id"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Photo     string      `json:"photo,omitempty"`
	Role      models.Role `json:"role"`
	IssuedAt  time.Time   `json:"issuedAt"`
}

// Serialize captures the principal's identity. The role comes from the
// principal itself, set when the account was authenticated.
func Serialize(p *models.Principal) Record {
	return Record{
		AccountID: p.AccountID,
		Username:  p.Username,
		Name:      p.Name,
		Photo:     p.Photo,
		Role:      p.Role,
		IssuedAt:  time.Now().UTC(),
	}
}

// Deserialize echoes the record back as the request identity.
func Deserialize(r Record) models.Identity {
	return models.Identity{
		Role:      r.Role,
		AccountID: r.AccountID,
		Username:  r.Username,
		Name:      r.Name,
		Photo:     r.Photo,
	}
}
