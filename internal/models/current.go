package models

import "time"

// LegacySession is the narrower "current parking" shape returned by the
// /parking-sessions/my/current endpoint, retained for backward compatibility
// with older backend deployments.
type LegacySession struct {
	Session struct {
		ID        FlexInt   `json:"id"`
		EntryTime time.Time `json:"entryTime"`
	} `json:"session"`
	Vehicle     Vehicle `json:"vehicle"`
	ParkingSlot Slot    `json:"parkingSlot"`
}

// CurrentParking wraps the legacy endpoint's envelope. A 404 from the backend
// maps to HasActiveParking=false with a nil session.
type CurrentParking struct {
	HasActiveParking bool           `json:"hasActiveParking"`
	CurrentParking   *LegacySession `json:"currentParking"`
}
