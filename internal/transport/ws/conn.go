package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Conn is one realtime client. It implements realtime.Handle: frames are
// queued on a buffered channel and written by a single goroutine, so each
// connection sees events in emission order.
type Conn struct {
	id   uuid.UUID
	ws   *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
	log  *slog.Logger
}

func newConn(ws *websocket.Conn, buffer int, logger *slog.Logger) *Conn {
	id := uuid.New()
	return &Conn{
		id:   id,
		ws:   ws,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
		log:  logger.With(slog.String("conn_id", id.String())),
	}
}

// ID identifies the connection in logs.
func (c *Conn) ID() uuid.UUID { return c.id }

// Send queues a frame without blocking. It reports false when the buffer
// is full or the connection is closing.
func (c *Conn) Send(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	case <-c.done:
		return false
	default:
		return false
	}
}

// Close stops the writer and closes the socket. Safe to call repeatedly.
func (c *Conn) Close() {
	c.once.Do(func() {
		close(c.done)
	})
}

func (c *Conn) writePump(writeTimeout, pingPeriod time.Duration) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close() //nolint:errcheck
	}()

	for {
		select {
		case frame := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
			if err := c.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.log.Debug("write failed", slog.String("error", err.Error()))
				c.Close()
				return
			}
		case <-ticker.C:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				c.log.Debug("ping failed", slog.String("error", err.Error()))
				c.Close()
				return
			}
		case <-c.done:
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout)) //nolint:errcheck
			return
		}
	}
}
