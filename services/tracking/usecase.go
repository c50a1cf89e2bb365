package tracking

import (
	"context"

	"github.com/prakashv/minehaul/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prakashv/minehaul/services/tracking TrackingUC

// TrackingUC is the live trip location coordinator. It reacts to watcher
// join/leave events, driver location reports and timer expirations, and
// decides when to serve cached data, when to solicit a fresh reading and
// when to give up.
type TrackingUC interface {
	// Watcher side
	StartTracking(ctx context.Context, watcherID, tripID string) error
	StopTracking(ctx context.Context, watcherID, tripID string) error
	WatcherDisconnected(watcherID string)

	// Driver side
	DriverLocationReport(ctx context.Context, driverID string, report *models.DriverLocationReport) error
	DriverLocationFailure(ctx context.Context, driverID string, failure *models.DriverLocationFailure) error
	DriverLocationAck(driverID, tripID string)
	DriverDisconnected(driverID string)
}
