// internal/netplay/hub.go
package netplay

import (
	"context"
	"errors"
	"fmt"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/entity"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	sendBuffer   = 16
	commandQueue = 32
)

var ErrBadFrame = errors.New("malformed frame")

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

// Hub раздаёт снимки мира наблюдателям и собирает ввод удалённых игроков.
// Ввод: побеждает последний записавший.
type Hub struct {
	log *slog.Logger

	mu       sync.Mutex
	clients  map[uuid.UUID]*client
	input    component.Input
	commands chan string
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		log:      log,
		clients:  make(map[uuid.UUID]*client),
		commands: make(chan string, commandQueue),
	}
}

// ServeHTTP upgrades the request and runs the client until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // зрители открываются из браузера с любого origin
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to accept", "err", err)
		return
	}
	c := &client{id: uuid.New(), conn: conn, send: make(chan []byte, sendBuffer)}
	hello, err := msgpack.Marshal(ServerFrame{Kind: KindHello, ClientID: c.id.String()})
	if err != nil {
		conn.Close(websocket.StatusInternalError, "encode failed")
		return
	}
	// hello уходит в пустой буфер до регистрации, Broadcast не может его вытеснить.
	c.send <- hello
	h.add(c)
	defer h.remove(c)
	h.log.DebugContext(r.Context(), "spectator connected", "client_id", c.id)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go h.writeLoop(ctx, c, cancel)
	h.readLoop(ctx, c)
	conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Hub) readLoop(ctx context.Context, c *client) {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure && ctx.Err() == nil {
				h.log.Debug("read failed", "client_id", c.id, "err", err)
			}
			return
		}
		if err := h.handle(data); err != nil {
			h.log.Warn("dropping frame", "client_id", c.id, "err", err)
		}
	}
}

func (h *Hub) writeLoop(ctx context.Context, c *client, cancel context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case data := <-c.send:
			if err := c.conn.Write(ctx, websocket.MessageBinary, data); err != nil {
				cancel()
				return
			}
		}
	}
}

func (h *Hub) handle(data []byte) error {
	var f InputFrame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %v", ErrBadFrame, err)
	}
	if f.Kind != KindInput {
		return fmt.Errorf("%w: kind %q", ErrBadFrame, f.Kind)
	}
	h.mu.Lock()
	h.input = h.input.Latch(f.Input())
	h.mu.Unlock()
	if f.Command != "" {
		select {
		case h.commands <- f.Command:
		default:
			return errors.New("command queue full")
		}
	}
	return nil
}

// Input returns the latest remote input. Горячие клавиши срабатывают один раз.
func (h *Hub) Input() component.Input {
	h.mu.Lock()
	defer h.mu.Unlock()
	in := h.input
	h.input.Domain = 0
	h.input.Bomb = ""
	return in
}

// Commands returns the console lines received since the last call.
func (h *Hub) Commands() []string {
	var out []string
	for {
		select {
		case line := <-h.commands:
			out = append(out, line)
		default:
			return out
		}
	}
}

// Broadcast encodes the snapshot once and queues it to every client.
// Медленный клиент теряет кадр, а не тормозит симуляцию.
func (h *Hub) Broadcast(s entity.Snapshot) error {
	data, err := msgpack.Marshal(ServerFrame{Kind: KindSnapshot, Snapshot: &s})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.log.Debug("send buffer full, frame dropped", "client_id", c.id)
		}
	}
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
}
