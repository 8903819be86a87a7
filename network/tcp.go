package network

import (
	"context"
	"fmt"
	"net"
	"time"

	"ebiten-gridsim/config"
)

// writeTimeout bounds a single line write on stream transports
const writeTimeout = 2 * time.Second

// DialTCP connects to addr and sends one line per payload
func DialTCP(ctx context.Context, addr string, cfg config.NetworkConfig) (Transport, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return newLineTransport("tcp", conn, cfg.QueueSize), nil
}

// newLineTransport writes newline-terminated payloads to conn
func newLineTransport(name string, conn net.Conn, size int) *queue {
	write := func(payload string) error {
		if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return err
		}
		_, err := conn.Write([]byte(payload + "\n"))
		return err
	}
	return newQueue(name, size, write, conn.Close)
}
