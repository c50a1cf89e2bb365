package usecase

import (
	"sync"
	"time"
)

// sessionState is the lifecycle state of a tracking session.
type sessionState int

const (
	// statePending means a fresh reading was requested from the driver and
	// nothing has resolved the request yet.
	statePending sessionState = iota
	// stateActive means a reading (fresh or stale) has been shown to the
	// watchers and no further action is outstanding.
	stateActive
)

// trackingSession is the in-memory record of one trip under observation.
// It exists exactly as long as its watcher set is non-empty. All fields
// are guarded by mu; the table that owns the session is guarded
// separately, so a goroutine holding mu must check closed before trusting
// anything it captured earlier.
type trackingSession struct {
	mu sync.Mutex

	tripID   string
	driverID string

	// driverLive records whether the last dispatch to the driver went over
	// a live connection. It is a hint, never trusted without a fresh
	// dispatch attempt, and cleared when the driver disconnects.
	driverLive bool

	// watchers holds the user ids of every party observing this trip.
	watchers map[string]struct{}

	state sessionState

	// hadCache records whether a cached location existed when the session
	// started. A timer firing on a session that had cache never surfaces
	// a failure.
	hadCache bool

	// closed is set when the session has been removed from the table.
	// Handlers that resume after blocking must treat a closed session as
	// resolved and do nothing.
	closed bool

	// timer is the single outstanding response timer, if any. timerSeq
	// invalidates in-flight callbacks: a callback only acts when its
	// captured seq still matches.
	timer    *time.Timer
	timerSeq uint64
}

func newTrackingSession(tripID, driverID string) *trackingSession {
	return &trackingSession{
		tripID:   tripID,
		driverID: driverID,
		watchers: make(map[string]struct{}),
		state:    statePending,
	}
}

// armTimerLocked schedules the response timer, replacing any outstanding
// one. The callback receives the sequence number it must present to act.
// Caller must hold mu.
func (s *trackingSession) armTimerLocked(d time.Duration, fire func(seq uint64)) {
	s.cancelTimerLocked()
	s.timerSeq++
	seq := s.timerSeq
	s.timer = time.AfterFunc(d, func() { fire(seq) })
}

// cancelTimerLocked stops the outstanding timer if there is one. Safe to
// call when no timer is armed. Bumping the sequence invalidates a callback
// that already fired but has not run yet. Caller must hold mu.
func (s *trackingSession) cancelTimerLocked() bool {
	if s.timer == nil {
		return false
	}
	s.timer.Stop()
	s.timer = nil
	s.timerSeq++
	return true
}

// watcherIDsLocked returns a snapshot of the watcher set. Caller must
// hold mu.
func (s *trackingSession) watcherIDsLocked() []string {
	ids := make([]string, 0, len(s.watchers))
	for id := range s.watchers {
		ids = append(ids, id)
	}
	return ids
}
