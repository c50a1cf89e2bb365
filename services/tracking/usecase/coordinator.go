package usecase

import (
	"context"
	"time"

	"github.com/prakashv/minehaul/internal/pkg/constants"
	"github.com/prakashv/minehaul/internal/pkg/logger"
	"github.com/prakashv/minehaul/internal/pkg/models"
	"github.com/prakashv/minehaul/services/tracking"
)

// StartTracking adds the watcher to the trip's session, creating the
// session on first watch. A new session is answered from cache when the
// cached reading is fresh; otherwise the stale reading (if any) is shown
// immediately and a fresh one is solicited from the driver, over the live
// channel when connected, via the push queue otherwise.
func (uc *TrackingUC) StartTracking(ctx context.Context, watcherID, tripID string) error {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		logger.Error("Failed to load trip",
			logger.String("trip_id", tripID),
			logger.Err(err))
		uc.notifyWatcherFailed(watcherID, tripID, "could not load trip", tracking.ErrServerError)
		return tracking.ErrServerError
	}
	if trip == nil || !trip.IsActive() {
		uc.notifyWatcherFailed(watcherID, tripID, "no active trip with this id", tracking.ErrTripNotFound)
		return tracking.ErrTripNotFound
	}
	if trip.DriverID == nil || *trip.DriverID == "" {
		uc.notifyWatcherFailed(watcherID, tripID, "trip has no assigned driver", tracking.ErrDriverNotAssigned)
		return tracking.ErrDriverNotAssigned
	}
	driverID := *trip.DriverID

	for {
		uc.mu.Lock()
		s, exists := uc.sessions[tripID]
		if !exists {
			s = newTrackingSession(tripID, driverID)
			s.watchers[watcherID] = struct{}{}
			s.mu.Lock()
			uc.sessions[tripID] = s
			uc.mu.Unlock()
			return uc.startSessionLocked(ctx, s)
		}
		uc.mu.Unlock()

		s.mu.Lock()
		if s.closed {
			// Session was torn down between the table lookup and taking
			// its lock; start over.
			s.mu.Unlock()
			continue
		}
		// A session in flight continues unaffected by new watchers; they
		// simply receive every subsequent broadcast.
		s.watchers[watcherID] = struct{}{}
		s.mu.Unlock()
		return nil
	}
}

// startSessionLocked runs the first-watcher protocol for a freshly created
// session. The session lock is held for the whole decision so per-trip
// events serialize; other trips proceed independently.
func (uc *TrackingUC) startSessionLocked(ctx context.Context, s *trackingSession) error {
	defer s.mu.Unlock()

	cached, err := uc.locationRepo.GetLastLocation(ctx, s.tripID)
	if err != nil {
		logger.Error("Failed to read cached trip location",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
		uc.failSessionLocked(s, "could not read trip location", tracking.ErrServerError)
		return tracking.ErrServerError
	}
	s.hadCache = cached != nil

	if cached != nil {
		stale := cached.Age(uc.now()) >= uc.cfg.Tracking.StalenessWindow
		uc.broadcastLocked(s, constants.EventTrackingStarted, &models.TrackingStarted{
			TripID:  s.tripID,
			Message: "tracking started",
			Stale:   stale,
		})
		uc.broadcastLocked(s, constants.EventLocationUpdate, locationUpdateMessage(cached, stale))
		if !stale {
			// Fresh cache is authoritative; the driver is not bothered.
			s.state = stateActive
			return nil
		}
		// Stale reading already shown so the watcher is never left with
		// nothing; still seek a fresher one below.
	} else {
		uc.broadcastLocked(s, constants.EventTrackingStarted, &models.TrackingStarted{
			TripID:  s.tripID,
			Message: "locating driver",
			Stale:   false,
		})
	}

	if err := uc.dispatchLocationRequestLocked(ctx, s); err != nil {
		// Driver unreachable with something cached degrades silently to
		// the stale reading; with nothing cached it is a hard failure.
		if s.hadCache {
			logger.Debug("Driver unreachable, serving cached location",
				logger.String("trip_id", s.tripID),
				logger.String("driver_id", s.driverID))
			s.state = stateActive
			return nil
		}
		uc.failSessionLocked(s, "driver cannot be reached for a live position", err)
		return err
	}

	s.state = statePending
	s.armTimerLocked(uc.cfg.Tracking.ResponseTimeout, func(seq uint64) {
		uc.onResponseTimeout(s.tripID, seq)
	})
	return nil
}

// dispatchLocationRequestLocked asks the driver for an immediate reading:
// over the live channel when present, else through the push queue. The
// returned error is always ErrDriverUnreachable or ErrServerError.
func (uc *TrackingUC) dispatchLocationRequestLocked(ctx context.Context, s *trackingSession) error {
	err := uc.notifier.NotifyClient(s.driverID, constants.EventRequestLocation, &models.LocationRequest{
		TripID: s.tripID,
	})
	if err == nil {
		s.driverLive = true
		logger.Info("Requested live location from driver",
			logger.String("trip_id", s.tripID),
			logger.String("driver_id", s.driverID))
		return nil
	}
	s.driverLive = false

	token, err := uc.tripRepo.GetDriverDeviceToken(ctx, s.driverID)
	if err != nil {
		logger.Error("Failed to load driver device token",
			logger.String("driver_id", s.driverID),
			logger.Err(err))
		return tracking.ErrServerError
	}
	if token == "" {
		return tracking.ErrDriverUnreachable
	}

	if err := uc.trackingGW.SendPushLocationRequest(ctx, token, s.tripID, s.driverID); err != nil {
		logger.Warn("Push location request could not be enqueued",
			logger.String("trip_id", s.tripID),
			logger.String("driver_id", s.driverID),
			logger.Err(err))
		return tracking.ErrDriverUnreachable
	}

	logger.Info("Requested location via push wake-up",
		logger.String("trip_id", s.tripID),
		logger.String("driver_id", s.driverID))
	return nil
}

// onResponseTimeout runs when the response timer fires with no driver
// report. A session that has anything cached stays active silently; the
// already-shown reading remains the best available answer. Only a session
// with no cache at all fails.
func (uc *TrackingUC) onResponseTimeout(tripID string, seq uint64) {
	s := uc.getSession(tripID)
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.timer == nil || s.timerSeq != seq {
		// The timer was cancelled or superseded after this callback was
		// scheduled; whichever event won has already resolved the session.
		return
	}
	s.timer = nil

	cached, err := uc.locationRepo.GetLastLocation(context.Background(), tripID)
	if err != nil {
		logger.Error("Failed to re-read cached trip location on timeout",
			logger.String("trip_id", tripID),
			logger.Err(err))
		uc.failSessionLocked(s, "could not read trip location", tracking.ErrServerError)
		return
	}

	if cached != nil {
		logger.Debug("Location request timed out, cached reading stands",
			logger.String("trip_id", tripID))
		s.state = stateActive
		return
	}

	uc.failSessionLocked(s, "driver did not report a position in time", tracking.ErrNoLocationAvailable)
}

// DriverLocationReport handles a position reported by a driver's device.
// A report carrying a trip id answers that trip's outstanding request; a
// periodic report without one is fanned out to every active trip the
// driver is serving.
func (uc *TrackingUC) DriverLocationReport(ctx context.Context, driverID string, report *models.DriverLocationReport) error {
	observedAt := report.Location.Timestamp
	if observedAt.IsZero() {
		observedAt = uc.now()
	}

	if report.TripID != "" {
		trip, err := uc.tripRepo.GetTrip(ctx, report.TripID)
		if err != nil {
			logger.Error("Failed to load trip for driver report",
				logger.String("trip_id", report.TripID),
				logger.Err(err))
			return tracking.ErrServerError
		}
		if trip == nil {
			return tracking.ErrTripNotFound
		}
		if trip.DriverID == nil || *trip.DriverID != driverID {
			return tracking.ErrDriverNotAssigned
		}
		return uc.applyDriverReport(ctx, driverID, report.TripID, report, observedAt)
	}

	tripIDs, err := uc.tripRepo.ListActiveTrips(ctx, driverID)
	if err != nil {
		logger.Error("Failed to list active trips for driver",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return tracking.ErrServerError
	}
	for _, tripID := range tripIDs {
		if err := uc.applyDriverReport(ctx, driverID, tripID, report, observedAt); err != nil {
			logger.Warn("Failed to apply periodic driver report",
				logger.String("trip_id", tripID),
				logger.String("driver_id", driverID),
				logger.Err(err))
		}
	}
	return nil
}

// applyDriverReport persists one trip's location record, publishes it on
// the event stream and resolves the trip's session if one is watching.
func (uc *TrackingUC) applyDriverReport(ctx context.Context, driverID, tripID string, report *models.DriverLocationReport, observedAt time.Time) error {
	record := &models.TripLocation{
		TripID:     tripID,
		DriverID:   driverID,
		Location:   report.Location,
		Accuracy:   report.Accuracy,
		ObservedAt: observedAt,
	}
	record.Location.Timestamp = observedAt

	if err := uc.locationRepo.SetLastLocation(ctx, record); err != nil {
		logger.Error("Failed to store trip location",
			logger.String("trip_id", tripID),
			logger.String("driver_id", driverID),
			logger.Err(err))
		return tracking.ErrServerError
	}

	if err := uc.trackingGW.PublishLocationUpdate(ctx, &models.LocationUpdate{
		TripID:    tripID,
		DriverID:  driverID,
		Location:  record.Location,
		Accuracy:  record.Accuracy,
		CreatedAt: uc.now(),
	}); err != nil {
		// Best effort; the watchers still get their update.
		logger.Warn("Failed to publish location update event",
			logger.String("trip_id", tripID),
			logger.Err(err))
	}

	s := uc.getSession(tripID)
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.cancelTimerLocked()
	s.driverLive = uc.notifier.IsConnected(driverID)
	s.state = stateActive
	uc.broadcastLocked(s, constants.EventLocationUpdate, locationUpdateMessage(record, false))
	return nil
}

// DriverLocationFailure handles a driver's device reporting that it could
// not obtain a position. With anything cached the session degrades
// silently to the cached reading; only a session with no cache fails.
func (uc *TrackingUC) DriverLocationFailure(ctx context.Context, driverID string, failure *models.DriverLocationFailure) error {
	s := uc.getSession(failure.TripID)
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.driverID != driverID {
		return nil
	}
	s.cancelTimerLocked()

	cached, err := uc.locationRepo.GetLastLocation(ctx, failure.TripID)
	if err != nil {
		logger.Error("Failed to read cached trip location",
			logger.String("trip_id", failure.TripID),
			logger.Err(err))
		uc.failSessionLocked(s, "could not read trip location", tracking.ErrServerError)
		return tracking.ErrServerError
	}

	if cached != nil {
		// Never overwrite "we have something" with "we have nothing"
		// because the live request failed.
		logger.Debug("Driver reported location failure, cached reading stands",
			logger.String("trip_id", failure.TripID),
			logger.String("reason", failure.Reason))
		s.state = stateActive
		return nil
	}

	reason := failure.Reason
	if reason == "" {
		reason = "driver could not obtain a position"
	}
	uc.failSessionLocked(s, reason, tracking.ErrNoLocationAvailable)
	return nil
}

// DriverLocationAck records that the driver received a location request.
// Informational only.
func (uc *TrackingUC) DriverLocationAck(driverID, tripID string) {
	logger.Info("Driver acknowledged location request",
		logger.String("trip_id", tripID),
		logger.String("driver_id", driverID))
}

// StopTracking removes the watcher from the trip's session. When the last
// watcher leaves, the session is destroyed and a live driver is told to
// stop reporting.
func (uc *TrackingUC) StopTracking(ctx context.Context, watcherID, tripID string) error {
	s := uc.getSession(tripID)
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	delete(s.watchers, watcherID)
	if len(s.watchers) > 0 {
		return nil
	}

	s.cancelTimerLocked()
	uc.removeSessionLocked(s)
	if s.driverLive {
		if err := uc.notifier.NotifyClient(s.driverID, constants.EventStopLocationUpdates, &models.StopLocationUpdates{
			TripID: tripID,
		}); err != nil {
			logger.Debug("Could not tell driver to stop location updates",
				logger.String("trip_id", tripID),
				logger.String("driver_id", s.driverID))
		}
	}
	logger.Info("Tracking session closed",
		logger.String("trip_id", tripID))
	return nil
}

// WatcherDisconnected tears the watcher out of every session it observes,
// as if it had called StopTracking for each.
func (uc *TrackingUC) WatcherDisconnected(watcherID string) {
	for _, s := range uc.snapshotSessions() {
		s.mu.Lock()
		tripID := s.tripID
		_, watching := s.watchers[watcherID]
		s.mu.Unlock()
		if watching {
			_ = uc.StopTracking(context.Background(), watcherID, tripID)
		}
	}
}

// DriverDisconnected clears the live-channel hint on the driver's sessions
// but leaves them running: a still-outstanding push notification may yet
// produce a report, and cached locations stay valid.
func (uc *TrackingUC) DriverDisconnected(driverID string) {
	for _, s := range uc.snapshotSessions() {
		s.mu.Lock()
		if !s.closed && s.driverID == driverID {
			s.driverLive = false
		}
		s.mu.Unlock()
	}
}

// getSession returns the session for a trip, or nil.
func (uc *TrackingUC) getSession(tripID string) *trackingSession {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.sessions[tripID]
}

// snapshotSessions returns the current sessions without holding the table
// lock during per-session work.
func (uc *TrackingUC) snapshotSessions() []*trackingSession {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	sessions := make([]*trackingSession, 0, len(uc.sessions))
	for _, s := range uc.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

// removeSessionLocked deletes the session from the table and marks it
// closed. Caller must hold the session lock.
func (uc *TrackingUC) removeSessionLocked(s *trackingSession) {
	uc.mu.Lock()
	if uc.sessions[s.tripID] == s {
		delete(uc.sessions, s.tripID)
	}
	uc.mu.Unlock()
	s.closed = true
}

// failSessionLocked broadcasts a terminal failure to all watchers and
// destroys the session. Caller must hold the session lock.
func (uc *TrackingUC) failSessionLocked(s *trackingSession, reason string, err error) {
	s.cancelTimerLocked()
	uc.broadcastLocked(s, constants.EventTrackingFailed, &models.TrackingFailed{
		TripID:    s.tripID,
		Reason:    reason,
		ErrorType: tracking.ErrorType(err),
	})
	uc.removeSessionLocked(s)
	logger.Warn("Tracking session failed",
		logger.String("trip_id", s.tripID),
		logger.String("error_type", tracking.ErrorType(err)),
		logger.String("reason", reason))
}

// broadcastLocked delivers an event to every watcher of the session.
// Per-watcher delivery failures are logged and skipped; a watcher with a
// broken connection is cleaned up by its own disconnect handling. Caller
// must hold the session lock.
func (uc *TrackingUC) broadcastLocked(s *trackingSession, event string, data interface{}) {
	for _, watcherID := range s.watcherIDsLocked() {
		if err := uc.notifier.NotifyClient(watcherID, event, data); err != nil {
			logger.Debug("Could not deliver tracking event to watcher",
				logger.String("trip_id", s.tripID),
				logger.String("watcher_id", watcherID),
				logger.String("event", event))
		}
	}
}

// notifyWatcherFailed reports a failure to a single watcher before any
// session exists for the trip.
func (uc *TrackingUC) notifyWatcherFailed(watcherID, tripID, reason string, err error) {
	_ = uc.notifier.NotifyClient(watcherID, constants.EventTrackingFailed, &models.TrackingFailed{
		TripID:    tripID,
		Reason:    reason,
		ErrorType: tracking.ErrorType(err),
	})
}

// locationUpdateMessage converts a stored record to the wire payload.
func locationUpdateMessage(record *models.TripLocation, stale bool) *models.TrackingLocationUpdate {
	return &models.TrackingLocationUpdate{
		TripID:    record.TripID,
		DriverID:  record.DriverID,
		Location:  record.Location,
		Accuracy:  record.Accuracy,
		Timestamp: record.ObservedAt,
		Stale:     stale,
	}
}
