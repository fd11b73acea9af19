package models

import "encoding/json"

// Lot describes a parking lot. The address travels as either "address" or
// "location" depending on the backend version.
type Lot struct {
	ID           FlexInt   `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"-"`
	PricePerHour FlexFloat `json:"pricePerHour"`
	Map          string    `json:"map,omitempty"` // image URL, may be empty
	Slots        []Slot    `json:"slots,omitempty"`
}

type lotWire struct {
	ID           FlexInt   `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	Location     string    `json:"location,omitempty"`
	PricePerHour FlexFloat `json:"pricePerHour"`
	Map          string    `json:"map,omitempty"`
	Slots        []Slot    `json:"slots,omitempty"`
}

// UnmarshalJSON prefers address and falls back to location.
func (l *Lot) UnmarshalJSON(data []byte) error {
	var wire lotWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	l.ID = wire.ID
	l.Name = wire.Name
	l.PricePerHour = wire.PricePerHour
	l.Map = wire.Map
	l.Slots = wire.Slots
	l.Address = wire.Address
	if l.Address == "" {
		l.Address = wire.Location
	}
	return nil
}

// MarshalJSON writes the address under both field names.
func (l Lot) MarshalJSON() ([]byte, error) {
	return json.Marshal(lotWire{
		ID:           l.ID,
		Name:         l.Name,
		Address:      l.Address,
		Location:     l.Address,
		PricePerHour: l.PricePerHour,
		Map:          l.Map,
		Slots:        l.Slots,
	})
}
