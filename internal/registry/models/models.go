package models

import (
	id "platerra/pkg/domain"
)

// Record is a vehicle registry entry as recorded by the national registry.
// It is read-only from this system's point of view: records are looked up by
// plate and never written back.
type Record struct {
	Plate string `json:"plate"`

	OwnerDocumentType   id.DocumentType `json:"owner_document_type"`
	OwnerDocumentNumber string          `json:"owner_document_number"`
	OwnerFullName       string          `json:"owner_full_name"`

	VehicleBrand     string `json:"vehicle_brand"`
	VehicleModel     string `json:"vehicle_model"`
	VehicleYear      int    `json:"vehicle_year"`
	VehicleColor     string `json:"vehicle_color"`
	VehicleTypeLabel string `json:"vehicle_type_label"`

	// Informational only; not validated by the ownership flow.
	SOATExpiry                string `json:"soat_expiry,omitempty"`
	TechnicalInspectionExpiry string `json:"technical_inspection_expiry,omitempty"`
}
