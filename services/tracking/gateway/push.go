package gateway

import (
	"context"
	"fmt"

	"github.com/prakashv/minehaul/internal/pkg/constants"
	"github.com/prakashv/minehaul/internal/pkg/logger"
	"github.com/prakashv/minehaul/internal/pkg/models"
)

// SendPushLocationRequest enqueues a one-shot wake-up for a disconnected
// driver's device. The push worker that owns the device credentials
// consumes the topic; from here delivery is fire-and-forget and success
// only means "enqueued".
func (g *TrackingGW) SendPushLocationRequest(ctx context.Context, deviceToken, tripID, driverID string) error {
	payload := &models.PushLocationRequest{
		Action:      constants.PushActionLocationRequest,
		TripID:      tripID,
		DriverID:    driverID,
		DeviceToken: deviceToken,
	}

	err := g.retrier.Execute(ctx, func(context.Context) error {
		return g.nsqProducer.Publish(constants.TopicPushNotifications, payload)
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue push location request: %w", err)
	}

	logger.Info("Enqueued push location request",
		logger.String("trip_id", tripID),
		logger.String("driver_id", driverID))
	return nil
}
