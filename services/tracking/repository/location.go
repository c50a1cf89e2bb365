package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prakashv/minehaul/internal/pkg/constants"
	"github.com/prakashv/minehaul/internal/pkg/models"
	"github.com/prakashv/minehaul/internal/utils"
)

// GetLastLocation returns the cached location record for a trip, or
// (nil, nil) when no position has ever been reported.
func (r *LocationRepo) GetLastLocation(ctx context.Context, tripID string) (*models.TripLocation, error) {
	key := fmt.Sprintf(constants.KeyTripLocation, tripID)

	fields, err := r.redis.GetClient().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read trip location: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt latitude in trip location %s: %w", tripID, err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt longitude in trip location %s: %w", tripID, err)
	}
	observedAt, err := time.Parse(time.RFC3339Nano, fields[constants.FieldObservedAt])
	if err != nil {
		return nil, fmt.Errorf("corrupt timestamp in trip location %s: %w", tripID, err)
	}

	record := &models.TripLocation{
		TripID:   tripID,
		DriverID: fields[constants.FieldDriverID],
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
			Timestamp: observedAt,
		},
		Geohash:    fields[constants.FieldGeohash],
		ObservedAt: observedAt,
	}
	if raw, ok := fields[constants.FieldAccuracy]; ok && raw != "" {
		accuracy, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt accuracy in trip location %s: %w", tripID, err)
		}
		record.Accuracy = &accuracy
	}
	return record, nil
}

// SetLastLocation upserts the trip's location record and refreshes the
// truck geo index. Last writer wins; only the coordinator writes here and
// per-trip processing is serialized.
func (r *LocationRepo) SetLastLocation(ctx context.Context, location *models.TripLocation) error {
	key := fmt.Sprintf(constants.KeyTripLocation, location.TripID)
	hash := utils.EncodeLocation(location.Location, utils.GeohashPrecision)

	fields := map[string]interface{}{
		constants.FieldLatitude:   strconv.FormatFloat(location.Location.Latitude, 'f', -1, 64),
		constants.FieldLongitude:  strconv.FormatFloat(location.Location.Longitude, 'f', -1, 64),
		constants.FieldGeohash:    hash,
		constants.FieldDriverID:   location.DriverID,
		constants.FieldObservedAt: location.ObservedAt.Format(time.RFC3339Nano),
	}
	if location.Accuracy != nil {
		fields[constants.FieldAccuracy] = strconv.FormatFloat(*location.Accuracy, 'f', -1, 64)
	}

	pipe := r.redis.GetClient().TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.GeoAdd(ctx, constants.KeyTruckGeo, &redis.GeoLocation{
		Longitude: location.Location.Longitude,
		Latitude:  location.Location.Latitude,
		Name:      location.TripID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store trip location: %w", err)
	}
	return nil
}
