package network

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"ebiten-gridsim/config"
	"ebiten-gridsim/logger"
)

// Default broadcast topics for the pub/sub transports
const (
	DefaultSubject = "gridsim.positions"
	DefaultChannel = "gridsim:positions"
)

// Dial connects the transport named by cfg.URL's scheme:
//
//	tcp://host:port          newline-terminated lines over TCP
//	ws://host/path, wss://   one text message per payload
//	nats://host:port/subject NATS publish (subject defaults to DefaultSubject)
//	redis://[:pass@]host:port/db?channel=name  Redis PUBLISH
//	kcp://host:port          newline-terminated lines over KCP
func Dial(ctx context.Context, cfg config.NetworkConfig) (Transport, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse network url: %w", err)
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = config.DialTimeout
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = config.SendQueueSize
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	var t Transport
	switch strings.ToLower(u.Scheme) {
	case "tcp":
		t, err = DialTCP(ctx, u.Host, cfg)
	case "ws", "wss":
		t, err = DialWebSocket(ctx, u.String(), cfg)
	case "nats":
		t, err = DialNATS(u, cfg)
	case "redis":
		t, err = DialRedis(ctx, u, cfg)
	case "kcp":
		t, err = DialKCP(u.Host, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	if err != nil {
		return nil, err
	}

	logger.WithComponent("transport").
		WithField("scheme", u.Scheme).
		WithField("host", u.Host).
		Info("Transport connected")
	return t, nil
}
