package models

// Activity event actions published to Kafka.
const (
	ActionUserRegistered  = "user_registered"
	ActionSettingsUpdated = "settings_updated"
	ActionExerciseBlocked = "exercise_blocked"
)

// Event represents a user activity event published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`  // Unique event id
	Timestamp int64  `json:"timestamp"` // Unix time of the event
	UserID    string `json:"user_id"`   // Acting user
	Action    string `json:"action"`    // One of the Action* constants
	Subject   string `json:"subject,omitempty"` // Affected entity id, when applicable
}
