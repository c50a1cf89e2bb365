package gateway

import (
	natspkg "github.com/prakashv/minehaul/internal/pkg/nats"
	nsqpkg "github.com/prakashv/minehaul/internal/pkg/nsq"
	"github.com/prakashv/minehaul/internal/pkg/retry"
)

// TrackingGW publishes coordinator decisions: push wake-ups on NSQ and
// location events on NATS. Broker publishes are retried with short
// backoff; callers hold per-trip state while publishing.
type TrackingGW struct {
	natsClient  *natspkg.Client
	nsqProducer *nsqpkg.Producer
	retrier     *retry.Retrier
}

// NewTrackingGW creates a new tracking gateway instance
func NewTrackingGW(natsClient *natspkg.Client, nsqProducer *nsqpkg.Producer) *TrackingGW {
	return &TrackingGW{
		natsClient:  natsClient,
		nsqProducer: nsqProducer,
		retrier:     retry.New(retry.PublishConfig()),
	}
}
