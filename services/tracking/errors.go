package tracking

import (
	"errors"

	"github.com/prakashv/minehaul/internal/pkg/constants"
)

// Failure taxonomy for the tracking protocol. DriverUnreachable and
// NoLocationAvailable are the only hard failures watchers ever see for a
// healthy backend; everything else degrades to the best cached answer.
var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrDriverNotAssigned   = errors.New("trip has no assigned driver")
	ErrDriverUnreachable   = errors.New("driver unreachable")
	ErrNoLocationAvailable = errors.New("no location available")
	ErrServerError         = errors.New("internal server error")
)

// ErrorType maps a tracking error to the wire-level error type surfaced in
// tracking_failed events.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, ErrTripNotFound):
		return constants.TrackingErrTripNotFound
	case errors.Is(err, ErrDriverNotAssigned):
		return constants.TrackingErrDriverNotAssigned
	case errors.Is(err, ErrDriverUnreachable):
		return constants.TrackingErrDriverUnreachable
	case errors.Is(err, ErrNoLocationAvailable):
		return constants.TrackingErrNoLocationAvailable
	default:
		return constants.TrackingErrServerError
	}
}
