package ws

import (
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/lakshmanb-0/icantace-game/internal/comm"
)

// Ws keeps the registry of connected web clients. The feed is
// broadcast-only, every connected socket sees every sync event.
type Ws struct {
	connMap sync.Map // socketId -> *websocket.Conn
	wmtx    sync.Mutex
}

func NewWs() *Ws {
	return &Ws{}
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, conn)
}

func (s *Ws) GetConnection(socketId string) (*websocket.Conn, bool) {
	conn, ok := s.connMap.Load(socketId)
	if !ok {
		return nil, false
	}
	return conn.(*websocket.Conn), true
}

func (s *Ws) HandleDisconnect(socketId string) {
	s.connMap.Delete(socketId)
}

// Broadcast pushes a message to every connected socket, dropping
// sockets whose writes fail.
func (s *Ws) Broadcast(m *comm.WSMessage) {
	s.wmtx.Lock()
	defer s.wmtx.Unlock()

	s.connMap.Range(func(key, value interface{}) bool {
		socketId := key.(string)
		conn := value.(*websocket.Conn)

		if err := conn.WriteJSON(m); err != nil {
			log.Warnf("dropping socket %s after failed write: %v", socketId, err)
			conn.Close()
			s.connMap.Delete(socketId)
		}
		return true
	})
}
