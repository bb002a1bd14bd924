// Package models defines the user profile used as the identity side of
// ownership checks.
package models

import (
	"time"

	id "platerra/pkg/domain"
)

// Profile is the app user's identity data. The document fields are compared
// against registry records during vehicle registration, so they are stored
// exactly as the user entered them.
type Profile struct {
	UserID         id.UserID       `json:"-"`
	FullName       string          `json:"full_name"`
	DocumentType   id.DocumentType `json:"document_type"`
	DocumentNumber string          `json:"document_number"`
	City           string          `json:"city"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Complete reports whether the profile carries everything an ownership check
// needs.
func (p *Profile) Complete() bool {
	return p.FullName != "" && p.DocumentType != "" && p.DocumentNumber != ""
}
