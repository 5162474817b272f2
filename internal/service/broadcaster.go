package service

// Broadcaster pushes live events to connected clients. Implemented by the
// websocket hub; services treat delivery as best-effort.
type Broadcaster interface {
	// BroadcastAll sends an event to every connected client
	BroadcastAll(event string, payload interface{})

	// BroadcastUser sends an event to one user's connections
	BroadcastUser(userID, event string, payload interface{})
}

// NopBroadcaster discards all events. Used when the hub is not wired, e.g.
// in the seed command and in tests.
type NopBroadcaster struct{}

func (NopBroadcaster) BroadcastAll(event string, payload interface{})          {}
func (NopBroadcaster) BroadcastUser(userID, event string, payload interface{}) {}
