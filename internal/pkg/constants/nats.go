package constants

// NATS subjects
const (
	// Published for every accepted driver report so downstream services
	// (billing, analytics) observe truck movement.
	SubjectLocationUpdate = "location.update"
)

// NSQ topics
const (
	// Consumed by the device-push worker that owns the FCM credentials.
	TopicPushNotifications = "push_notifications"
)
