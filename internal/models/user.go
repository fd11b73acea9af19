package models

import (
	"encoding/json"
	"time"
)

// Role describes a user role as returned by the profile endpoint.
type Role struct {
	ID   FlexInt `json:"id"`
	Name string  `json:"name"`
}

// User holds the authenticated identity. The id and roleId fields may arrive
// as strings from older backend versions, hence FlexInt.
type User struct {
	ID            FlexInt           `json:"id"`
	FullName      string            `json:"fullName"`
	Email         string            `json:"email"`
	RoleID        FlexInt           `json:"roleId"`
	Role          *Role             `json:"role,omitempty"`
	CreatedAt     *time.Time        `json:"createdAt,omitempty"`
	Vehicles      []Vehicle         `json:"vehicles"`
	Notifications []json.RawMessage `json:"notifications,omitempty"`
}
