package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prakashv/minehaul/internal/pkg/constants"
	"github.com/prakashv/minehaul/internal/pkg/models"
)

// PublishLocationUpdate emits an accepted driver report on the location
// event stream for downstream consumers (billing distance aggregation,
// analytics).
func (g *TrackingGW) PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal location update: %w", err)
	}

	err = g.retrier.Execute(ctx, func(context.Context) error {
		return g.natsClient.Publish(constants.SubjectLocationUpdate, data)
	})
	if err != nil {
		return fmt.Errorf("failed to publish location update: %w", err)
	}
	return nil
}
