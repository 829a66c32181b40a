package notifiers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"netops-dashboard/internal/models"
	"netops-dashboard/internal/shared/loggers"

	"github.com/gorilla/websocket"
)

const (
	MessageTypeSnapshotInstalled = "snapshot_installed"

	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMessageSize  = 512
	clientBuffer    = 8
	broadcastBuffer = 16
)

// Message is the envelope pushed to dashboard clients.
type Message struct {
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// SnapshotNotifier is told about every installed snapshot.
//
//go:generate mockgen -source=hub.go -destination=./mocks/hub_mock.go -package=mocks
type SnapshotNotifier interface {
	NotifySnapshot(info models.SnapshotInfo)
}

// Hub pushes snapshot notifications to connected dashboard clients so they
// re-query the views instead of polling.
type Hub interface {
	SnapshotNotifier
	// Run owns the client set until ctx is done, then closes every client.
	Run(ctx context.Context)
	// ServeWS upgrades the request and serves the client until it leaves.
	ServeWS(w http.ResponseWriter, r *http.Request)
	ClientCount() int
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type hub struct {
	upgrader websocket.Upgrader

	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}

	mu     sync.RWMutex
	logger loggers.Logger
}

func NewHub(logger loggers.Logger) Hub {
	return &hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameOriginOrNone,
		},
		clients:    make(map[*client]bool),
		register:   make(chan *client, clientBuffer),
		unregister: make(chan *client, clientBuffer),
		broadcast:  make(chan []byte, broadcastBuffer),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// sameOriginOrNone accepts browsers on our own host and non-browser clients.
func sameOriginOrNone(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
}

func (h *hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			metricPushClients.WithLabelValues().Set(0)
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			count := len(h.clients)
			h.mu.Unlock()
			metricPushClients.WithLabelValues().Set(float64(count))
			h.logger.Debug().Int("clients", count).Msg("push client connected")
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			metricPushClients.WithLabelValues().Set(float64(count))
			h.logger.Debug().Int("clients", count).Msg("push client disconnected")
		case message := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// Slow client; it reconnects and re-queries.
					delete(h.clients, c)
					close(c.send)
					metricPushMessagesTotal.WithLabelValues(MessageTypeSnapshotInstalled, "dropped").Inc()
				}
			}
			metricPushClients.WithLabelValues().Set(float64(len(h.clients)))
			h.mu.Unlock()
		}
	}
}

func (h *hub) NotifySnapshot(info models.SnapshotInfo) {
	message, err := json.Marshal(Message{Type: MessageTypeSnapshotInstalled, Data: info, Timestamp: time.Now().UTC()})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to marshal push message")
		return
	}

	select {
	case h.broadcast <- message:
		metricPushMessagesTotal.WithLabelValues(MessageTypeSnapshotInstalled, "queued").Inc()
	default:
		metricPushMessagesTotal.WithLabelValues(MessageTypeSnapshotInstalled, "dropped").Inc()
		h.logger.Warn().Msg("push broadcast channel full, dropping message")
	}
}

func (h *hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		loggers.Ctx(r.Context()).Debug().Err(err).Msg("push upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	c.readPump()

	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// readPump only drains control frames and detects the close.
func (c *client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
			metricPushMessagesTotal.WithLabelValues(MessageTypeSnapshotInstalled, "sent").Inc()
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
