package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashv/minehaul/internal/pkg/constants"
	"github.com/prakashv/minehaul/internal/pkg/database"
	"github.com/prakashv/minehaul/internal/pkg/models"
)

func newTestLocationRepo(t *testing.T) (*LocationRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewLocationRepo(&models.Config{}, &database.RedisClient{Client: client}), mr
}

func TestSetAndGetLastLocation(t *testing.T) {
	repo, mr := newTestLocationRepo(t)
	ctx := context.Background()

	observedAt := time.Date(2025, 6, 1, 12, 0, 0, 500000000, time.UTC)
	accuracy := 5.0
	record := &models.TripLocation{
		TripID:   "trip-1",
		DriverID: "driver-1",
		Location: models.Location{
			Latitude:  -6.175392,
			Longitude: 106.827153,
			Timestamp: observedAt,
		},
		Accuracy:   &accuracy,
		ObservedAt: observedAt,
	}

	require.NoError(t, repo.SetLastLocation(ctx, record))

	// The trip hash and the geo index are both written.
	assert.True(t, mr.Exists(fmt.Sprintf(constants.KeyTripLocation, "trip-1")))
	assert.True(t, mr.Exists(constants.KeyTruckGeo))

	got, err := repo.GetLastLocation(ctx, "trip-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "trip-1", got.TripID)
	assert.Equal(t, "driver-1", got.DriverID)
	assert.Equal(t, -6.175392, got.Location.Latitude)
	assert.Equal(t, 106.827153, got.Location.Longitude)
	assert.True(t, got.ObservedAt.Equal(observedAt))
	require.NotNil(t, got.Accuracy)
	assert.Equal(t, 5.0, *got.Accuracy)
	assert.NotEmpty(t, got.Geohash)
}

func TestSetLastLocation_OverwritesPrevious(t *testing.T) {
	repo, _ := newTestLocationRepo(t)
	ctx := context.Background()

	first := &models.TripLocation{
		TripID:     "trip-1",
		DriverID:   "driver-1",
		Location:   models.Location{Latitude: 1.0, Longitude: 2.0},
		ObservedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	second := &models.TripLocation{
		TripID:     "trip-1",
		DriverID:   "driver-1",
		Location:   models.Location{Latitude: 1.5, Longitude: 2.5},
		ObservedAt: time.Date(2025, 6, 1, 12, 1, 0, 0, time.UTC),
	}

	require.NoError(t, repo.SetLastLocation(ctx, first))
	require.NoError(t, repo.SetLastLocation(ctx, second))

	got, err := repo.GetLastLocation(ctx, "trip-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1.5, got.Location.Latitude)
	assert.Equal(t, 2.5, got.Location.Longitude)
	assert.True(t, got.ObservedAt.Equal(second.ObservedAt))
}

func TestGetLastLocation_NeverReported(t *testing.T) {
	repo, _ := newTestLocationRepo(t)

	got, err := repo.GetLastLocation(context.Background(), "trip-without-history")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetLastLocation_NoAccuracyField(t *testing.T) {
	repo, _ := newTestLocationRepo(t)
	ctx := context.Background()

	record := &models.TripLocation{
		TripID:     "trip-1",
		DriverID:   "driver-1",
		Location:   models.Location{Latitude: 1.0, Longitude: 2.0},
		ObservedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SetLastLocation(ctx, record))

	got, err := repo.GetLastLocation(ctx, "trip-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Accuracy)
}

func TestGetLastLocation_CorruptRecord(t *testing.T) {
	repo, mr := newTestLocationRepo(t)

	key := fmt.Sprintf(constants.KeyTripLocation, "trip-1")
	mr.HSet(key, constants.FieldLatitude, "not-a-float")
	mr.HSet(key, constants.FieldLongitude, "2.0")
	mr.HSet(key, constants.FieldObservedAt, time.Now().UTC().Format(time.RFC3339Nano))

	got, err := repo.GetLastLocation(context.Background(), "trip-1")
	assert.Error(t, err)
	assert.Nil(t, got)
}
