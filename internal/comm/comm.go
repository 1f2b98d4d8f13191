package comm

import (
	"encoding/json"
	"time"
)

// NATS subject the catalog service publishes sync lifecycle events on
// and the feed service subscribes to.
const SyncEventsSubject = "catalog.sync.events"

// sync event types
const (
	SyncStarted   = "sync-started"
	SyncCompleted = "sync-completed"
	SyncFailed    = "sync-failed"
)

type WSMessage struct {
	Type     string          `json:"type"` // e.g. "sync-completed"
	Data     json.RawMessage `json:"data"`
	SocketId string          `json:"socketid"`
}

// SyncEvent is what catalogsvc publishes while a sync run progresses.
type SyncEvent struct {
	Type       string    `json:"type"`
	InstanceId string    `json:"instance_id"` // publishing service instance
	Games      int       `json:"games"`       // games in the batch
	Entities   int       `json:"entities"`    // deduplicated lookup entities
	Upserted   int       `json:"upserted"`    // final game upserts
	Modified   int       `json:"modified"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
