package network

import (
	"fmt"

	"github.com/xtaci/kcp-go/v5"

	"ebiten-gridsim/config"
)

// DialKCP opens a KCP session to addr and sends one line per payload.
// KCP needs no handshake, so this does not block on the peer.
func DialKCP(addr string, cfg config.NetworkConfig) (Transport, error) {
	conn, err := kcp.DialWithOptions(addr, nil, 10, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to open KCP session to %s: %w", addr, err)
	}

	conn.SetStreamMode(true)
	conn.SetWriteDelay(false)
	conn.SetNoDelay(1, 20, 2, 1)
	conn.SetWindowSize(128, 128)
	conn.SetMtu(1400)

	return newLineTransport("kcp", conn, cfg.QueueSize), nil
}
