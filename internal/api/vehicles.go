package api

import (
	"context"
	"net/http"

	"parkmobile/internal/models"
)

// Vehicles lists the caller's registered vehicles.
func (c *Client) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	resp, err := c.Request(ctx, http.MethodGet, "/vehicles", nil)
	if err != nil {
		return nil, err
	}

	var vehicles []models.Vehicle
	if err := c.decode(ctx, resp, &vehicles, "Failed to fetch vehicles"); err != nil {
		return nil, err
	}
	return vehicles, nil
}

type registerVehicleParams struct {
	LicensePlate string `json:"licensePlate"`
	VehicleType  string `json:"vehicleType"`
}

// RegisterVehicle adds a vehicle to the caller's account.
func (c *Client) RegisterVehicle(ctx context.Context, licensePlate, vehicleType string) (*models.Vehicle, error) {
	if err := models.ValidateVehicleType(vehicleType); err != nil {
		return nil, err
	}

	resp, err := c.Request(ctx, http.MethodPost, "/vehicles", registerVehicleParams{
		LicensePlate: licensePlate,
		VehicleType:  vehicleType,
	})
	if err != nil {
		return nil, err
	}

	var vehicle models.Vehicle
	if err := c.decode(ctx, resp, &vehicle, "Failed to register vehicle"); err != nil {
		return nil, err
	}
	return &vehicle, nil
}
