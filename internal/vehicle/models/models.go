// Package models defines the vehicle entity owned by a user of the app.
package models

import (
	"time"

	id "platerra/pkg/domain"
)

// Vehicle is a registered vehicle belonging to a user. It is created only
// after ownership reconciliation against the national registry succeeds, so
// Brand/Model/Year/Color/TypeID always come from the registry record, never
// from user input.
type Vehicle struct {
	ID        id.VehicleID `json:"id"`
	UserID    id.UserID    `json:"-"`
	Plate     string       `json:"plate"`
	Brand     string       `json:"brand"`
	Model     string       `json:"model"`
	Year      int          `json:"year"`
	Color     string       `json:"color"`
	TypeID    string       `json:"type_id"`
	CreatedAt time.Time    `json:"created_at"`
}
