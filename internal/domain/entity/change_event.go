package entity

import "time"

// ChangeEvent is one entry of the database change feed relayed to WebSocket clients.
type ChangeEvent struct {
	Collection string    // Table or collection the change happened in.
	Operation  string    // insert, update, replace or delete.
	Payload    []byte    // Raw JSON as produced by the database.
	ReceivedAt time.Time // When the watcher received the event.
}
