package events

var RunCompletedTopic = "RunCompletedEvent"

// RunCompleted is published after a pipeline run has persisted its outputs.
// Notification channels consume it best-effort.
type RunCompleted struct {
	RunAt         string
	Summary       string
	Digest        string
	NewCount      int
	ExpiringToday int
	ExpiringSoon  int
}
