package network

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"ebiten-gridsim/config"
)

// DialWebSocket opens a websocket and sends one text message per payload
func DialWebSocket(ctx context.Context, rawURL string, cfg config.NetworkConfig) (Transport, error) {
	dialer := websocket.Dialer{HandshakeTimeout: cfg.DialTimeout}
	conn, _, err := dialer.DialContext(ctx, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open websocket %s: %w", rawURL, err)
	}

	write := func(payload string) error {
		if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return err
		}
		return conn.WriteMessage(websocket.TextMessage, []byte(payload))
	}
	closeFn := func() error {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		return conn.Close()
	}
	return newQueue("websocket", cfg.QueueSize, write, closeFn), nil
}
