package launcher

// Event represents a launcher lifecycle event.
// Minimal and stable: name + app name and optional fields via key/values.
type Event struct {
	Name   string
	App    string
	Fields map[string]any
}

// Event names emitted by the launcher.
const (
	EventSpawnStart = "spawn_start"
	EventSpawnError = "spawn_error"
	EventChildExit  = "child_exit"
)

// EventPublisher receives events from the launcher. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
