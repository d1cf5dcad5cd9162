package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Renison-Gohel/food-orderly/entity"
)

// OrderHub fans order lifecycle events out to connected dashboards (kitchen
// displays, the admin overview) over WebSocket.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// OrderEvent is the wire payload pushed to every connected client.
type OrderEvent struct {
	Event string        `json:"event"`
	Order *entity.Order `json:"order"`
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run loops over register/unregister/broadcast forever. Start it in its own
// goroutine.
func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyOrder implements services.OrderNotifier.
func (h *OrderHub) NotifyOrder(event string, order *entity.Order) {
	h.broadcast <- OrderEvent{Event: event, Order: order}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn
	go h.drain(conn)
}

// drain discards client frames; the feed is one-way. Read errors mean the
// client went away.
func (h *OrderHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
