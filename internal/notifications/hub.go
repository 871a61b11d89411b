package notifications

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans out dashboard update messages to connected WebSocket clients
type Hub struct {
	connections map[string]*connection
	mu          sync.RWMutex
	broadcast   chan WebSocketMessage
	register    chan *connection
	unregister  chan *connection
	stop        chan struct{}
	upgrader    websocket.Upgrader
	logger      *zap.Logger
}

type connection struct {
	id       string
	conn     *websocket.Conn
	send     chan WebSocketMessage
	lastSeen time.Time
}

// NewHub creates a hub and starts its dispatch loop
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		connections: make(map[string]*connection),
		broadcast:   make(chan WebSocketMessage, 256),
		register:    make(chan *connection),
		unregister:  make(chan *connection),
		stop:        make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// In production, implement proper origin checking
				return true
			},
		},
		logger: logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.connections[conn.id] = conn
			h.mu.Unlock()
		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.connections[conn.id]; ok {
				delete(h.connections, conn.id)
				close(conn.send)
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, conn := range h.connections {
				select {
				case conn.send <- msg:
				default:
					// Slow consumer, drop the message rather than block the hub
				}
			}
			h.mu.RUnlock()
		case <-h.stop:
			return
		}
	}
}

// Broadcast queues a message for delivery to all connected clients
func (h *Hub) Broadcast(msg WebSocketMessage) {
	select {
	case h.broadcast <- msg:
	case <-h.stop:
	}
}

// ConnectionCount returns the number of active connections
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Stop shuts down the dispatch loop and closes all connections
func (h *Hub) Stop() {
	close(h.stop)
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.connections {
		delete(h.connections, id)
		close(conn.send)
		conn.conn.Close()
	}
}

// HandleConnection upgrades an HTTP request to a WebSocket connection and
// starts its pumps
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) error {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	conn := &connection{
		id:       uuid.New().String(),
		conn:     ws,
		send:     make(chan WebSocketMessage, 256),
		lastSeen: time.Now(),
	}
	h.register <- conn

	go h.readPump(conn)
	go h.writePump(conn)
	return nil
}

func (h *Hub) readPump(conn *connection) {
	defer func() {
		h.unregister <- conn
		conn.conn.Close()
	}()

	conn.conn.SetReadLimit(512)
	conn.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.conn.SetPongHandler(func(string) error {
		conn.lastSeen = time.Now()
		return conn.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	for {
		if _, _, err := conn.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writePump(conn *connection) {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		conn.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-conn.send:
			conn.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				conn.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
