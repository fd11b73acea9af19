package models

import "encoding/json"

// Slot is a parking slot inside a lot. Older backend responses name the slot
// code "slot_code" while newer ones use "slotNumber"; both are normalized into
// Code at the JSON boundary and emitted under both names for compatibility.
type Slot struct {
	ID          FlexInt         `json:"-"`
	Code        string          `json:"-"`
	Status      string          `json:"-"`
	Coordinates json.RawMessage `json:"-"` // polygon for map rendering, opaque to this client
	ParkingLot  *Lot            `json:"-"`
}

type slotWire struct {
	ID          FlexInt         `json:"id"`
	SlotNumber  string          `json:"slotNumber,omitempty"`
	SlotCode    string          `json:"slot_code,omitempty"`
	Status      string          `json:"status"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	ParkingLot  *Lot            `json:"parkingLot,omitempty"`
}

// UnmarshalJSON prefers slotNumber and falls back to slot_code.
func (s *Slot) UnmarshalJSON(data []byte) error {
	var wire slotWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.ID = wire.ID
	s.Status = wire.Status
	s.Coordinates = wire.Coordinates
	s.ParkingLot = wire.ParkingLot
	s.Code = wire.SlotNumber
	if s.Code == "" {
		s.Code = wire.SlotCode
	}
	return nil
}

// MarshalJSON writes the code under both legacy and current field names.
func (s Slot) MarshalJSON() ([]byte, error) {
	return json.Marshal(slotWire{
		ID:          s.ID,
		SlotNumber:  s.Code,
		SlotCode:    s.Code,
		Status:      s.Status,
		Coordinates: s.Coordinates,
		ParkingLot:  s.ParkingLot,
	})
}
