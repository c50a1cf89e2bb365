package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_ArmTimerReplacesOutstandingTimer(t *testing.T) {
	s := newTrackingSession("trip-1", "driver-1")

	fired := make(chan uint64, 2)
	s.mu.Lock()
	s.armTimerLocked(time.Hour, func(seq uint64) { fired <- seq })
	first := s.timerSeq
	s.armTimerLocked(5*time.Millisecond, func(seq uint64) { fired <- seq })
	second := s.timerSeq
	s.mu.Unlock()

	assert.Greater(t, second, first)

	select {
	case seq := <-fired:
		assert.Equal(t, second, seq, "only the replacement timer may fire")
	case <-time.After(time.Second):
		t.Fatal("replacement timer did not fire")
	}

	select {
	case <-fired:
		t.Fatal("replaced timer fired")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSession_CancelTimer(t *testing.T) {
	s := newTrackingSession("trip-1", "driver-1")

	s.mu.Lock()
	assert.False(t, s.cancelTimerLocked(), "nothing armed yet")

	s.armTimerLocked(time.Hour, func(uint64) {})
	seqBefore := s.timerSeq
	assert.True(t, s.cancelTimerLocked())
	assert.Nil(t, s.timer)
	// Cancellation invalidates any callback that already fired but has not
	// run yet.
	assert.Greater(t, s.timerSeq, seqBefore)
	s.mu.Unlock()
}

func TestSession_WatcherIDsSnapshot(t *testing.T) {
	s := newTrackingSession("trip-1", "driver-1")

	s.mu.Lock()
	s.watchers["a"] = struct{}{}
	s.watchers["b"] = struct{}{}
	ids := s.watcherIDsLocked()
	s.mu.Unlock()

	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}
