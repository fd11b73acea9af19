package models

import "time"

// FeePreview estimates the charge for the caller's current session without
// ending it.
type FeePreview struct {
	SessionID    FlexInt    `json:"sessionId"`
	EntryTime    *time.Time `json:"entryTime,omitempty"`
	DurationMin  FlexInt    `json:"durationMinutes"`
	PricePerHour FlexFloat  `json:"pricePerHour"`
	Fee          FlexFloat  `json:"fee"`
}

// ExitResult is the backend's response to ending a session.
type ExitResult struct {
	Session *ParkingSession `json:"session,omitempty"`
	Fee     *FlexFloat      `json:"fee,omitempty"`
	Message string          `json:"message,omitempty"`
}
