package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents one connected log subscriber.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan Message  // Channel to push new log entries to this client
	Done chan struct{} // Signal to stop reading/writing
}

// ConnectionManager tracks all live WebSocket subscribers of the message log.
type ConnectionManager struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		clients: make(map[string]*Client),
	}
}

// AddClient registers a new subscriber connection.
func (cm *ConnectionManager) AddClient(id string, conn *websocket.Conn) *Client {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	client := &Client{
		ID:   id,
		Conn: conn,
		Send: make(chan Message, 32), // Buffered to absorb bursts
		Done: make(chan struct{}),
	}

	cm.clients[id] = client
	return client
}

// RemoveClient unregisters a subscriber connection.
func (cm *ConnectionManager) RemoveClient(id string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if client, ok := cm.clients[id]; ok {
		close(client.Done)
		delete(cm.clients, id)
	}
}

// Count reports the number of live subscribers.
func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	return len(cm.clients)
}

// Broadcast fans a newly appended message out to every subscriber. Slow
// consumers whose buffers are full miss the message rather than block the
// sender.
func (cm *ConnectionManager) Broadcast(msg Message) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for _, client := range cm.clients {
		select {
		case client.Send <- msg:
		case <-client.Done:
		default:
		}
	}
}
