package models

import (
	id "platerra/pkg/domain"
)

// Verdict is the outcome of an ownership reconciliation attempt.
type Verdict string

const (
	VerdictValid   Verdict = "valid"
	VerdictInvalid Verdict = "invalid"
)

// ReasonCode is the closed failure taxonomy for Invalid verdicts. These are
// durable conditions except ReasonSystemError, which callers may retry.
type ReasonCode string

const (
	ReasonInvalidPlateFormat    ReasonCode = "invalid_plate_format"
	ReasonInvalidDocumentFormat ReasonCode = "invalid_document_format"
	ReasonVehicleNotFound       ReasonCode = "vehicle_not_found"
	ReasonOwnerMismatch         ReasonCode = "owner_mismatch"
	ReasonSystemError           ReasonCode = "system_error"
)

// ReconciliationRequest carries the claim to verify: a plate and the
// requesting user's identity as stored in their profile. Ephemeral; never
// persisted.
type ReconciliationRequest struct {
	Plate                   string
	RequesterDocumentType   id.DocumentType
	RequesterDocumentNumber string
	RequesterFullName       string
}

// VehicleData is the sanitized projection of a matched registry record,
// populated only on a Valid verdict. The owner identity fields of the record
// are deliberately absent.
type VehicleData struct {
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Year   int    `json:"year"`
	Color  string `json:"color"`
	TypeID string `json:"type_id"`
}

// ReconciliationResult is the verdict returned to the caller. ReasonCode is
// set only when the verdict is Invalid; VehicleData only when Valid.
type ReconciliationResult struct {
	Verdict     Verdict      `json:"verdict"`
	ReasonCode  ReasonCode   `json:"reason_code,omitempty"`
	VehicleData *VehicleData `json:"vehicle_data,omitempty"`
}

// Valid reports whether the verdict passed.
func (r ReconciliationResult) Valid() bool {
	return r.Verdict == VerdictValid
}

// Invalid builds a failed result with the given reason.
func Invalid(reason ReasonCode) ReconciliationResult {
	return ReconciliationResult{Verdict: VerdictInvalid, ReasonCode: reason}
}

// Matched builds a passing result carrying the vehicle projection.
func Matched(data *VehicleData) ReconciliationResult {
	return ReconciliationResult{Verdict: VerdictValid, VehicleData: data}
}
