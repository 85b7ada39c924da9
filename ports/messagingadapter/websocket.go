package messagingadapter

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// WSEvent is one event on the API's live feed.
type WSEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Live-feed event types.
const (
	EventAgentRegistered = "AGENT_REGISTERED"
	EventDecisionMade    = "DECISION_MADE"
	EventAgentDied       = "AGENT_DIED"
	EventBreeding        = "BREEDING"
	EventEpigeneticShift = "EPIGENETIC_SHIFT"
	EventModeChange      = "MODE_CHANGE"
	EventInscription     = "INSCRIPTION"
)

// WebSocketManager fans events out to every connected API client. Unlike
// the rest of the adapter it is an outbound-only surface: the core never
// reads from it.
type WebSocketManager struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan WSEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.RWMutex
}

var (
	wsManager *WebSocketManager
	once      sync.Once
)

// GetWSManager returns the process-wide manager, starting its pump on
// first use.
func GetWSManager() *WebSocketManager {
	once.Do(func() {
		wsManager = &WebSocketManager{
			clients:    make(map[*websocket.Conn]bool),
			broadcast:  make(chan WSEvent),
			register:   make(chan *websocket.Conn),
			unregister: make(chan *websocket.Conn),
		}
		go wsManager.run()
	})
	return wsManager
}

func (manager *WebSocketManager) run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client] = true
			manager.mu.Unlock()

		case client := <-manager.unregister:
			manager.mu.Lock()
			if _, ok := manager.clients[client]; ok {
				delete(manager.clients, client)
				client.Close()
			}
			manager.mu.Unlock()

		case event := <-manager.broadcast:
			manager.mu.RLock()
			for client := range manager.clients {
				if err := client.WriteJSON(event); err != nil {
					log.Printf("WebSocket error: %v", err)
					client.Close()
					delete(manager.clients, client)
				}
			}
			manager.mu.RUnlock()
		}
	}
}

// BroadcastEvent pushes an event to every connected client.
func BroadcastEvent(eventType string, payload interface{}) {
	GetWSManager().broadcast <- WSEvent{Type: eventType, Payload: payload}
}

// Register returns the channel new connections are handed to.
func (w *WebSocketManager) Register() chan<- *websocket.Conn {
	return w.register
}

// Unregister returns the channel dropped connections are handed to.
func (w *WebSocketManager) Unregister() chan<- *websocket.Conn {
	return w.unregister
}
