package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// Pushed to everyone when the collector stores a new regulatory item
	MsgNewsPublished MessageType = "news_published"

	// Pushed to one user's connections
	MsgAssessmentScored MessageType = "assessment_scored"
	MsgReportReady      MessageType = "report_ready"
	MsgError            MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages the live feed connections. A user may hold several
// connections (multiple tabs); broadcasts fan out to all of them.
type Hub struct {
	// userID -> open connections
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents one WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
	Hub    *Hub
}

// BroadcastMessage is a message to broadcast. Empty ToUser means everyone.
type BroadcastMessage struct {
	ToUser  string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.UserID] == nil {
				h.conns[conn.UserID] = make(map[*Connection]bool)
			}
			h.conns[conn.UserID][conn] = true
			h.mu.Unlock()
			log.Printf("User %s connected to live feed", conn.UserID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.conns[conn.UserID]; ok && conns[conn] {
				delete(conns, conn)
				if len(conns) == 0 {
					delete(h.conns, conn.UserID)
				}
				close(conn.Send)
				log.Printf("User %s disconnected from live feed", conn.UserID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToUser != "" {
				for conn := range h.conns[msg.ToUser] {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else {
				for _, conns := range h.conns {
					for conn := range conns {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastAll sends an event to every connected client (implements service.Broadcaster)
func (h *Hub) BroadcastAll(event string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		Message: &Message{
			Type:    MessageType(event),
			Payload: data,
		},
	}
}

// BroadcastUser sends an event to one user's connections (implements service.Broadcaster)
func (h *Hub) BroadcastUser(userID, event string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ToUser: userID,
		Message: &Message{
			Type:    MessageType(event),
			Payload: data,
		},
	}
}
