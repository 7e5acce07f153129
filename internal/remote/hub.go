package remote

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/quellen/preso/internal/log"
	"github.com/quellen/preso/internal/nav"
)

// frameMessage is the wire form of a rendered frame.
type frameMessage struct {
	Index        int    `json:"index"`
	Count        int    `json:"count"`
	Counter      string `json:"counter"`
	PrevDisabled bool   `json:"prevDisabled"`
	NextDisabled bool   `json:"nextDisabled"`
}

func frameJSON(f nav.Frame) frameMessage {
	return frameMessage{
		Index:        f.Index,
		Count:        f.Count,
		Counter:      f.Counter,
		PrevDisabled: f.PrevDisabled,
		NextDisabled: f.NextDisabled,
	}
}

// sendBuffer is the per-client frame backlog. A client that falls
// further behind than this is dropped.
const sendBuffer = 16

// client is one websocket consumer. All writes go through a buffered
// channel drained by the client's own goroutine, so a stalled
// connection can never block the presentation's render pass.
type client struct {
	conn *websocket.Conn
	send chan frameMessage
}

// writeLoop pushes queued frames to the connection. It owns all
// writes; when send is closed it closes the connection and exits.
func (c *client) writeLoop() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			break
		}
	}
	c.conn.Close()
}

// hub fans rendered frames out to websocket clients. It is the only
// concurrent piece of the remote surface: broadcast is called from the
// presentation loop while clients connect from HTTP goroutines.
type hub struct {
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[*client]struct{}
	lastSet  bool
	last     nav.Frame
	shutdown bool
}

func newHub(logger *log.Logger) *hub {
	return &hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			// The remote surface is meant for the presenter's own
			// devices; it binds to localhost by default.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// latest returns the most recently broadcast frame.
func (h *hub) latest() (nav.Frame, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last, h.lastSet
}

// broadcast stores the frame and queues it for every connected client.
// Queueing never blocks: a client whose buffer is full is dropped
// instead of stalling navigation.
func (h *hub) broadcast(f nav.Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = f
	h.lastSet = true

	msg := frameJSON(f)
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Debug("dropping remote client", "reason", "send buffer full")
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// handleWS upgrades a connection and registers it for frame updates.
// The current frame is queued immediately so new clients are in sync.
func (h *hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan frameMessage, sendBuffer)}

	h.mu.Lock()
	if h.shutdown {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	if h.lastSet {
		c.send <- frameJSON(h.last)
	}
	h.mu.Unlock()

	go c.writeLoop()

	// Drain reads so pings and client closes are processed; the
	// remote protocol itself is write-only.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(c)
				return
			}
		}
	}()
}

// drop unregisters a client. Safe to call after the client has
// already been removed by broadcast or close.
func (h *hub) drop(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// close disconnects all clients and rejects new ones.
func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shutdown = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
