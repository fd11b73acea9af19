// Package session picks the single "displayed" parking session when a user
// has several vehicles active at once.
package session

import (
	"sync"

	"parkmobile/internal/models"
)

// Resolve deterministically picks the displayed session. It is a pure
// function of its inputs, recomputed on every data refresh:
//
//  1. the selected id, when it is found among the active sessions;
//  2. otherwise the first active session, in backend order;
//  3. otherwise a record synthesized from the legacy single-session shape;
//  4. otherwise nil, meaning no vehicle currently parked.
//
// selectedID <= 0 means no selection.
func Resolve(active []models.ParkingSession, legacy *models.LegacySession, selectedID int64) *models.ParkingSession {
	if selectedID > 0 {
		for i := range active {
			if active[i].ID.Int() == selectedID {
				picked := active[i]
				return &picked
			}
		}
	}
	if len(active) > 0 {
		picked := active[0]
		return &picked
	}
	if legacy != nil {
		return synthesize(legacy)
	}
	return nil
}

// synthesize lifts the legacy "current parking" shape into a full session
// record: no exit time, no fee, status active. The slot code lands in the
// normalized Code field, which marshals under both historical names.
func synthesize(legacy *models.LegacySession) *models.ParkingSession {
	return &models.ParkingSession{
		ID:            legacy.Session.ID,
		VehicleID:     legacy.Vehicle.ID,
		LicensePlate:  legacy.Vehicle.LicensePlate,
		ParkingSlotID: legacy.ParkingSlot.ID,
		EntryTime:     legacy.Session.EntryTime,
		ExitTime:      nil,
		Fee:           nil,
		Status:        models.SessionStatusActive,
		Vehicle:       legacy.Vehicle,
		ParkingSlot:   legacy.ParkingSlot,
	}
}

// Tracker holds the one piece of client-side state the resolution needs: the
// user's selected session id. Everything else is re-derived from fresh data.
type Tracker struct {
	mu         sync.Mutex
	selectedID int64
}

// NewTracker returns a tracker with no selection.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Select records an explicit user choice.
func (t *Tracker) Select(id int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selectedID = id
}

// Selected returns the current selection, 0 when none.
func (t *Tracker) Selected() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selectedID
}

// Observe applies the selection bootstrap rule on every data refresh: when
// active sessions appear and nothing is selected yet, auto-select the first;
// when they vanish while a legacy session is still present, clear the
// selection so resolution can fall through to the legacy shape.
func (t *Tracker) Observe(active []models.ParkingSession, legacyPresent bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(active) > 0 {
		if t.selectedID == 0 {
			t.selectedID = active[0].ID.Int()
		}
		return
	}
	if legacyPresent {
		t.selectedID = 0
	}
}
