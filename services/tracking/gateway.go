package tracking

import (
	"context"

	"github.com/prakashv/minehaul/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/prakashv/minehaul/services/tracking TrackingGW,ClientNotifier

// TrackingGW publishes coordinator decisions to the outside world: the
// push queue that wakes disconnected drivers and the location event stream
// consumed by downstream services.
type TrackingGW interface {
	// SendPushLocationRequest enqueues a one-shot wake-up for the driver's
	// device. A returned error means the message could not even be
	// enqueued; success only means "enqueued", never "received".
	SendPushLocationRequest(ctx context.Context, deviceToken, tripID, driverID string) error

	// PublishLocationUpdate emits an accepted driver report on the event
	// stream. Best effort; failures must not affect the tracking session.
	PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error
}

// ClientNotifier delivers messages to connected users and answers presence
// queries. Implemented by the WebSocket manager.
type ClientNotifier interface {
	// IsConnected reports whether the user holds a live connection.
	IsConnected(userID string) bool

	// NotifyClient sends an event to the user. An error means the user has
	// no live connection or the write failed; callers treat either as
	// "not reachable over the live channel".
	NotifyClient(userID string, event string, data interface{}) error
}
