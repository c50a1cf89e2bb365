package usecase

import (
	"sync"
	"time"

	"github.com/prakashv/minehaul/internal/pkg/models"
	"github.com/prakashv/minehaul/services/tracking"
)

// TrackingUC coordinates live trip location tracking. The session table is
// the only shared mutable structure: the table mutex guards the map itself
// and each session carries its own mutex for internal mutation, so trips
// never contend with each other.
type TrackingUC struct {
	cfg          *models.Config
	tripRepo     tracking.TripRepo
	locationRepo tracking.LocationRepo
	trackingGW   tracking.TrackingGW
	notifier     tracking.ClientNotifier

	mu       sync.RWMutex
	sessions map[string]*trackingSession

	// now is injectable for freshness tests
	now func() time.Time
}

// NewTrackingUC creates a new tracking usecase instance
func NewTrackingUC(
	tripRepo tracking.TripRepo,
	locationRepo tracking.LocationRepo,
	trackingGW tracking.TrackingGW,
	notifier tracking.ClientNotifier,
	cfg *models.Config,
) *TrackingUC {
	return &TrackingUC{
		cfg:          cfg,
		tripRepo:     tripRepo,
		locationRepo: locationRepo,
		trackingGW:   trackingGW,
		notifier:     notifier,
		sessions:     make(map[string]*trackingSession),
		now:          time.Now,
	}
}
