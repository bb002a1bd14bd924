package audit

import "time"

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Plate     string    `json:"plate,omitempty"`
	Verdict   string    `json:"verdict,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Device    string    `json:"device,omitempty"`
}

const (
	ActionOwnershipChecked  = "ownership_checked"
	ActionVehicleRegistered = "vehicle_registered"
	ActionVehicleRemoved    = "vehicle_removed"
	ActionProfileUpdated    = "profile_updated"
)
