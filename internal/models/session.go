package models

import "time"

// Parking session states as reported by the backend.
const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// Payment is a settled or pending payment attached to a session.
type Payment struct {
	ID            FlexInt    `json:"id"`
	Amount        FlexFloat  `json:"amount"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status"`
	PaymentTime   *time.Time `json:"paymentTime,omitempty"`
}

// ParkingSession is a request-scoped, read-only copy of a session record. The
// remote service owns every state transition; the client only re-fetches.
type ParkingSession struct {
	ID            FlexInt    `json:"id"`
	VehicleID     FlexInt    `json:"vehicleId"`
	LicensePlate  string     `json:"licensePlate"`
	ParkingSlotID FlexInt    `json:"parkingSlotId"`
	EntryTime     time.Time  `json:"entryTime"`
	ExitTime      *time.Time `json:"exitTime"`
	Fee           *FlexFloat `json:"fee"`
	Status        string     `json:"status"`
	Vehicle       Vehicle    `json:"vehicle"`
	ParkingSlot   Slot       `json:"parkingSlot"`
	Payments      []Payment  `json:"payments,omitempty"`
}

// Active reports whether the session has no recorded exit.
func (s *ParkingSession) Active() bool {
	return s.Status == SessionStatusActive
}
