package models

import "strings"

// Internal vehicle type identifiers understood by the rest of the app.
const (
	VehicleTypeCar        = "car"
	VehicleTypeMotorcycle = "motorcycle"
	VehicleTypeTruck      = "truck"
	VehicleTypeVan        = "van"
	VehicleTypeBus        = "bus"
)

// vehicleTypeLabels translates free-text type labels as recorded by the
// registry into internal identifiers. Keys are lowercased.
var vehicleTypeLabels = map[string]string{
	"automovil":   VehicleTypeCar,
	"automóvil":   VehicleTypeCar,
	"carro":       VehicleTypeCar,
	"campero":     VehicleTypeCar,
	"camioneta":   VehicleTypeVan,
	"moto":        VehicleTypeMotorcycle,
	"motocicleta": VehicleTypeMotorcycle,
	"motocarro":   VehicleTypeMotorcycle,
	"camion":      VehicleTypeTruck,
	"camión":      VehicleTypeTruck,
	"bus":         VehicleTypeBus,
	"buseta":      VehicleTypeBus,
	"microbus":    VehicleTypeBus,
}

// MapVehicleTypeLabel resolves a registry type label to an internal type
// identifier. Unrecognized labels map to the generic car type rather than
// failing: the label is descriptive, not load-bearing.
func MapVehicleTypeLabel(label string) string {
	if typeID, ok := vehicleTypeLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return typeID
	}
	return VehicleTypeCar
}
