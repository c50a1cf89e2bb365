package models

import "time"

// StartTrackingRequest asks the coordinator to observe a trip's live location.
type StartTrackingRequest struct {
	TripID string `json:"trip_id"`
}

// StopTrackingRequest removes the caller from a trip's watcher set.
type StopTrackingRequest struct {
	TripID string `json:"trip_id"`
}

// DriverLocationReport is a position reported by a driver's device. TripID
// is set when the driver is answering an explicit location request for one
// trip, and empty for unprompted periodic reports that apply to every trip
// the driver is currently serving.
type DriverLocationReport struct {
	TripID   string   `json:"trip_id,omitempty"`
	Location Location `json:"location"`
	Accuracy *float64 `json:"accuracy,omitempty"`
}

// DriverLocationFailure is sent by a driver's device when it could not
// obtain a position for an outstanding request.
type DriverLocationFailure struct {
	TripID string `json:"trip_id"`
	Reason string `json:"reason"`
}

// DriverLocationAck is an optional receipt a driver sends after receiving a
// location request, before the actual reading arrives.
type DriverLocationAck struct {
	TripID string `json:"trip_id"`
}

// TrackingStarted tells a watcher that observation of a trip has begun.
type TrackingStarted struct {
	TripID  string `json:"trip_id"`
	Message string `json:"message"`
	Stale   bool   `json:"stale"`
}

// TrackingLocationUpdate delivers a trip position to watchers. Stale marks
// readings served from cache past the staleness window.
type TrackingLocationUpdate struct {
	TripID    string    `json:"trip_id"`
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Stale     bool      `json:"stale"`
}

// TrackingFailed tells watchers that observation of a trip ended in failure.
type TrackingFailed struct {
	TripID    string `json:"trip_id"`
	Reason    string `json:"reason"`
	ErrorType string `json:"error_type"`
}

// LocationRequest asks a live driver for an immediate position reading.
type LocationRequest struct {
	TripID string `json:"trip_id"`
}

// StopLocationUpdates tells a live driver that nobody is watching a trip
// anymore.
type StopLocationUpdates struct {
	TripID string `json:"trip_id"`
}

// PushLocationRequest is the payload enqueued for the device-push worker
// when a driver has no live connection.
type PushLocationRequest struct {
	Action      string `json:"action"`
	TripID      string `json:"trip_id"`
	DriverID    string `json:"driver_id"`
	DeviceToken string `json:"device_token"`
}
