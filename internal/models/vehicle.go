package models

import (
	"fmt"
	"time"
)

// Supported vehicle types.
const (
	VehicleTypeCar        = "car"
	VehicleTypeMotorcycle = "motorcycle"
	VehicleTypeTruck      = "truck"
)

// Vehicle is a read-only snapshot of a registered vehicle. It is re-fetched
// wholesale with the owning profile, never patched in place.
type Vehicle struct {
	ID           FlexInt    `json:"id"`
	LicensePlate string     `json:"licensePlate"`
	VehicleType  string     `json:"vehicleType"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

// ValidateVehicleType rejects types the backend does not know about.
func ValidateVehicleType(t string) error {
	switch t {
	case VehicleTypeCar, VehicleTypeMotorcycle, VehicleTypeTruck:
		return nil
	default:
		return fmt.Errorf("models: unsupported vehicle type %q", t)
	}
}
