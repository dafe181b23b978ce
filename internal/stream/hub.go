// Package stream broadcasts automaton generations to websocket clients.
package stream

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dddictionary/cars/pkg/engine"
	"github.com/dddictionary/cars/pkg/stats"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Frames queued per client before it is dropped as too slow.
	sendBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Frame is one fully computed generation.
type Frame struct {
	Generation int      `json:"generation"`
	LiveCells  int      `json:"live_cells"`
	Entropy    float64  `json:"entropy"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Grid       []string `json:"grid"`
}

// NewFrame captures the current state of a. It must be called between ticks.
func NewFrame(a *engine.Automaton, r stats.Record) Frame {
	text := strings.TrimSuffix(a.String(), "\n")
	var rows []string
	if a.Height() > 0 {
		rows = strings.Split(text, "\n")
	}
	return Frame{
		Generation: r.Generation,
		LiveCells:  r.LiveCells,
		Entropy:    r.Entropy,
		Width:      a.Width(),
		Height:     a.Height(),
		Grid:       rows,
	}
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active clients and broadcasts frames to them.
type Hub struct {
	clients map[*client]bool

	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	done       chan struct{}

	count atomic.Int64
}

// NewHub creates a new Hub. Run must be started before clients connect.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Clients returns the number of registered clients.
func (h *Hub) Clients() int { return int(h.count.Load()) }

// Run starts the hub's event loop and closes all clients when ctx ends.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return nil
		case c := <-h.register:
			h.clients[c] = true
			h.count.Store(int64(len(h.clients)))
		case c := <-h.unregister:
			h.drop(c)
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.count.Store(int64(len(h.clients)))
}

// Broadcast sends f to every connected client. It returns false if ctx ends
// before the hub accepts the frame.
func (h *Hub) Broadcast(ctx context.Context, f Frame) bool {
	msg, err := json.Marshal(f)
	if err != nil {
		log.Printf("marshal frame: %v", err)
		return false
	}
	select {
	case h.broadcast <- msg:
		return true
	case <-h.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// ServeWS upgrades the request and registers the connection with the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	case <-r.Context().Done():
		conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}

// readPump discards inbound messages and unregisters the client on close.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read: %v", err)
			}
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
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
