package orderControllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/junaidrashid-git/storefront/models"
)

const (
	writeWait = 5 * time.Second
	// sendBuffer is how many events a dashboard may fall behind before it is
	// dropped.
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderEvent is the message pushed to admin dashboards.
type OrderEvent struct {
	UserID string               `json:"userId"`
	Orders []models.OrderRecord `json:"orders"`
}

// client is one dashboard. Only its own writer goroutine touches conn for
// writing.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans newly placed orders out to every connected admin socket. Placing
// an order never waits on a socket write.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// GET /admin/ws/orders
func (h *Hub) OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade failed: %v", err)
		return
	}
	cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.add(cl)
	defer h.remove(cl)

	go cl.writeLoop()

	// the feed is one-way; reading only detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// OrdersPlaced queues a batch for every dashboard. A dashboard whose buffer
// is full is disconnected.
func (h *Hub) OrdersPlaced(userID string, orders []models.OrderRecord) {
	data, err := json.Marshal(OrderEvent{UserID: userID, Orders: orders})
	if err != nil {
		log.Printf("❌ Failed to encode order event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		select {
		case cl.send <- data:
		default:
			log.Println("❌ Order feed client too slow, disconnecting")
			h.drop(cl)
		}
	}
}

func (cl *client) writeLoop() {
	for data := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			// closing makes the read loop return and unregister us
			cl.conn.Close()
			for range cl.send {
			}
			return
		}
	}
	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = cl.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	cl.conn.Close()
}

func (h *Hub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(cl *client) {
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	h.drop(cl)
	h.mu.Unlock()
}

// drop unregisters cl and stops its writer. Callers hold h.mu.
func (h *Hub) drop(cl *client) {
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
}
