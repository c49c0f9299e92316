package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"bus_tracker/internal/models"
)

// upgrader configures the WebSocket connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all for development (restrict in production!)
	},
}

// LocationHub fans successfully ingested records out to dashboard
// subscribers. Subscriptions are keyed by bus_id; the empty key receives the
// whole fleet.
type LocationHub struct {
	subscribers map[string]map[*websocket.Conn]bool
	broadcast   chan models.LocationRecord
	mu          sync.Mutex
}

// NewLocationHub creates the hub and starts its broadcast loop.
func NewLocationHub() *LocationHub {
	hub := &LocationHub{
		subscribers: make(map[string]map[*websocket.Conn]bool),
		broadcast:   make(chan models.LocationRecord, 100),
	}
	go hub.run()
	return hub
}

// Broadcast queues a record for delivery. Never blocks the ingestion path:
// when the channel is full the update is dropped and the next one carries
// the fresher position anyway.
func (h *LocationHub) Broadcast(rec models.LocationRecord) {
	select {
	case h.broadcast <- rec:
	default:
		logrus.Warn("location hub backlog full, dropping update")
	}
}

func (h *LocationHub) run() {
	for rec := range h.broadcast {
		h.mu.Lock()
		conns := make([]*websocket.Conn, 0)
		for conn := range h.subscribers[rec.BusID] {
			conns = append(conns, conn)
		}
		for conn := range h.subscribers[""] {
			conns = append(conns, conn)
		}
		h.mu.Unlock()

		for _, conn := range conns {
			if err := conn.WriteJSON(rec); err != nil {
				logrus.WithError(err).Warn("websocket write failed, dropping subscriber")
				h.remove(conn)
				conn.Close()
			}
		}
	}
}

func (h *LocationHub) add(busID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[busID] == nil {
		h.subscribers[busID] = make(map[*websocket.Conn]bool)
	}
	h.subscribers[busID][conn] = true
}

func (h *LocationHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conns := range h.subscribers {
		delete(conns, conn)
	}
}

// Subscribe upgrades the request and streams location updates for one bus
// (or the whole fleet when bus_id is "all") until the client goes away.
func (h *LocationHub) Subscribe(c *gin.Context) {
	busID := c.Param("bus_id")
	if busID == "all" {
		busID = ""
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("websocket upgrade failed")
		return
	}

	h.add(busID, conn)
	logrus.WithField("bus_id", busID).Info("dashboard subscribed to live locations")

	// Reads are only serviced to detect disconnects.
	go func() {
		defer func() {
			h.remove(conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
