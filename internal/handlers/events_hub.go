package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // same-origin deployment behind the academy's proxy
	},
}

// Event is one roster change pushed to connected dashboards.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

type eventClient struct {
	hub  *EventHub
	conn *websocket.Conn
	send chan []byte
	id   string
}

// EventHub fans roster events out to every connected admin dashboard, so an
// open dashboard reflects payments toggled from another device.
type EventHub struct {
	clients    map[string]*eventClient
	broadcast  chan []byte
	register   chan *eventClient
	unregister chan *eventClient
	mu         sync.Mutex
}

func NewEventHub() *EventHub {
	return &EventHub{
		broadcast:  make(chan []byte, 16),
		register:   make(chan *eventClient),
		unregister: make(chan *eventClient),
		clients:    make(map[string]*eventClient),
	}
}

func (h *EventHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			h.mu.Unlock()
			slog.Info("Painel conectado", "client", client.id)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
			}
			h.mu.Unlock()
			slog.Info("Painel desconectado", "client", client.id)

		case message := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast publishes one event to all connected dashboards. A nil hub is
// allowed so handlers can run without the realtime feed in tests.
func (h *EventHub) Broadcast(eventType string, payload interface{}) {
	if h == nil {
		return
	}
	data, err := json.Marshal(Event{Type: eventType, Payload: payload, At: time.Now()})
	if err != nil {
		slog.Error("Falha ao serializar evento", "type", eventType, "error", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		slog.Warn("Fila de eventos cheia, evento descartado", "type", eventType)
	}
}

// ServeWS upgrades the connection and keeps it subscribed until it drops.
func (h *EventHub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("Falha ao abrir websocket", "error", err)
		return
	}

	client := &eventClient{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 16),
		id:   uuid.NewString(),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump discards anything the dashboard sends; the feed is one-way. Its
// real job is noticing the disconnect.
func (c *eventClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *eventClient) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
