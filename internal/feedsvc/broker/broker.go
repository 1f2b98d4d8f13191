package broker

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/lakshmanb-0/icantace-game/internal/comm"
)

// Broker consumes sync events from the catalog service and forwards
// them to every connected web client.
type Broker struct {
	Conn      *nats.Conn
	Broadcast func(*comm.WSMessage)
}

func NewBroker(conn *nats.Conn, broadcast func(*comm.WSMessage)) *Broker {
	return &Broker{
		Conn:      conn,
		Broadcast: broadcast,
	}
}

func (b *Broker) Subscribe(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleMessages)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// handleMessages receives sync events from the catalog service
func (b *Broker) handleMessages(msgNats *nats.Msg) {
	event := &comm.SyncEvent{}
	if err := json.Unmarshal(msgNats.Data, event); err != nil {
		log.Errorf("Error %s", err)
		return
	}

	switch event.Type {
	case comm.SyncStarted, comm.SyncCompleted, comm.SyncFailed:
		b.Broadcast(&comm.WSMessage{
			Type: event.Type,
			Data: msgNats.Data,
		})
	default:
		log.Warnf("unknown sync event received: %s", event.Type)
	}
}
