package models

import "time"

// Trip statuses as stored by the marketplace backend. Only active trips
// are trackable.
const (
	TripStatusActive        = "active"
	TripStatusCompleted     = "completed"
	TripStatusCanceled      = "canceled"
	TripStatusIssueReported = "issue_reported"
)

// Trip is the read-only projection of a delivery/pickup job the tracking
// service consumes. The negotiation and milestone fields live in the
// marketplace services and are not mirrored here.
type Trip struct {
	ID          string     `db:"id" json:"id"`
	RequestID   string     `db:"request_id" json:"request_id"`
	TruckID     string     `db:"truck_id" json:"truck_id"`
	DriverID    *string    `db:"driver_id" json:"driver_id,omitempty"`
	MineID      string     `db:"mine_id" json:"mine_id"`
	Status      string     `db:"status" json:"status"`
	StartedAt   time.Time  `db:"started_at" json:"started_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// IsActive reports whether the trip is still being served.
func (t *Trip) IsActive() bool {
	return t.Status == TripStatusActive
}
