package models

import "time"

// Location represents a geographic point reported by a driver's device.
type Location struct {
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	Timestamp time.Time `json:"timestamp"`
}

// TripLocation is the last-known location record kept per trip. There is
// exactly one record per trip; the coordinator only ever supersedes it,
// never deletes it.
type TripLocation struct {
	TripID     string    `json:"trip_id"`
	DriverID   string    `json:"driver_id"`
	Location   Location  `json:"location"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	Geohash    string    `json:"geohash,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

// Age returns how old the record is relative to now.
func (tl *TripLocation) Age(now time.Time) time.Duration {
	return now.Sub(tl.ObservedAt)
}

// LocationUpdate is the event published on NATS whenever the coordinator
// accepts a driver report, so downstream consumers (analytics, billing)
// observe truck movement.
type LocationUpdate struct {
	TripID    string    `json:"trip_id"`
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
