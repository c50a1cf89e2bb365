package tracking

import (
	"context"

	"github.com/prakashv/minehaul/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prakashv/minehaul/services/tracking TripRepo,LocationRepo

// TripRepo reads trip assignments from the marketplace store. The tracking
// service never writes business entities.
type TripRepo interface {
	// GetTrip returns the trip or (nil, nil) when no such trip exists.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListActiveTrips returns the ids of all active trips currently served
	// by the driver.
	ListActiveTrips(ctx context.Context, driverID string) ([]string, error)

	// GetDriverDeviceToken returns the driver's push token, or empty when
	// the driver has no registered device.
	GetDriverDeviceToken(ctx context.Context, driverID string) (string, error)
}

// LocationRepo owns the last-known location record per trip. Records are
// only ever superseded, never deleted.
type LocationRepo interface {
	// GetLastLocation returns the cached record or (nil, nil) when no
	// location has ever been reported for the trip.
	GetLastLocation(ctx context.Context, tripID string) (*models.TripLocation, error)

	// SetLastLocation upserts the record; last writer wins.
	SetLastLocation(ctx context.Context, location *models.TripLocation) error
}
