package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

// Handler receives realtime events in order. Returning an error ends the
// subscription with that error.
type Handler func(ctx context.Context, ev api.Event) error

// Subscribe opens the realtime channel with the current token and calls h
// for every event until ctx is cancelled, the server closes the connection
// or h returns an error. Cancellation returns nil.
func (c *Client) Subscribe(ctx context.Context, h Handler) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		return conn.Close()
	})

	g.Go(func() error {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return errStopped
				}
				return fmt.Errorf("realtime read: %w", err)
			}

			var ev api.Event
			if err := json.Unmarshal(data, &ev); err != nil {
				continue
			}
			if err := h(gctx, ev); err != nil {
				return err
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errStopped) && !isClosedConn(err) {
		return err
	}
	return nil
}

var errStopped = errors.New("subscription stopped")

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	wsURL := "ws" + strings.TrimPrefix(c.baseURL, "http") + "/ws"

	header := http.Header{}
	if token := c.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := c.dialer.DialContext(ctx, wsURL, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("realtime dial: %w", err)
	}
	return conn, nil
}

func isClosedConn(err error) bool {
	return err != nil && strings.Contains(err.Error(), "use of closed network connection")
}
