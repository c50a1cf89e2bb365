package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prakashv/minehaul/internal/pkg/models"
)

// GetTrip retrieves a trip by id. Returns (nil, nil) when no such trip
// exists.
func (r *TripRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	query := `SELECT id, request_id, truck_id, driver_id, mine_id, status, started_at, completed_at
		FROM trips WHERE id = $1`

	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, query, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// ListActiveTrips returns the ids of all active trips served by the
// driver. A periodic position report fans out to each of them.
func (r *TripRepo) ListActiveTrips(ctx context.Context, driverID string) ([]string, error) {
	query := `SELECT id FROM trips WHERE driver_id = $1 AND status = $2`

	var tripIDs []string
	err := r.db.SelectContext(ctx, &tripIDs, query, driverID, models.TripStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active trips: %w", err)
	}
	return tripIDs, nil
}

// GetDriverDeviceToken returns the driver's registered push token, or
// empty when the driver has never registered a device.
func (r *TripRepo) GetDriverDeviceToken(ctx context.Context, driverID string) (string, error) {
	query := `SELECT COALESCE(device_token, '') FROM users WHERE id = $1`

	var token string
	err := r.db.GetContext(ctx, &token, query, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get driver device token: %w", err)
	}
	return token, nil
}
