package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Watcher events
	EventStartTracking   = "start_tracking"
	EventStopTracking    = "stop_tracking"
	EventTrackingStarted = "tracking_started"
	EventTrackingFailed  = "tracking_failed"
	EventLocationUpdate  = "location_update"

	// Driver events
	EventLocationFailure     = "location_failure"
	EventLocationAck         = "location_ack"
	EventRequestLocation     = "request_location"
	EventStopLocationUpdates = "stop_location_updates"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorInvalidLocation  = "invalid_location"
	ErrorTrackingFailed   = "tracking_failed"
)

// Tracking failure types surfaced to watchers
const (
	TrackingErrTripNotFound        = "TRIP_NOT_FOUND"
	TrackingErrDriverNotAssigned   = "DRIVER_NOT_ASSIGNED"
	TrackingErrDriverUnreachable   = "DRIVER_UNREACHABLE"
	TrackingErrNoLocationAvailable = "NO_LOCATION_AVAILABLE"
	TrackingErrServerError         = "SERVER_ERROR"
)

// Push payload actions
const (
	PushActionLocationRequest = "LOCATION_REQUEST"
)
