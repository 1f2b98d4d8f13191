package broker

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/lakshmanb-0/icantace-game/internal/comm"
)

// Broker publishes sync lifecycle events for the feed service. Losing
// an event is never worth failing a sync run, publish errors are only
// logged.
type Broker struct {
	Conn *nats.Conn
}

func NewBroker(nc *nats.Conn) *Broker {
	return &Broker{Conn: nc}
}

func (b *Broker) PublishSyncEvent(event comm.SyncEvent) {
	bytes, err := json.Marshal(event)
	if err != nil {
		log.Errorf("Failed to marshal sync event: %v", err)
		return
	}

	if err := b.Conn.Publish(comm.SyncEventsSubject, bytes); err != nil {
		log.Errorf("Error publishing to topic %s: %s", comm.SyncEventsSubject, err)
	}
}
