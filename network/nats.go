package network

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nats-io/nats.go"

	"ebiten-gridsim/config"
	"ebiten-gridsim/logger"
)

// DialNATS connects to the server in u and publishes every payload on the
// subject named by u's path
func DialNATS(u *url.URL, cfg config.NetworkConfig) (Transport, error) {
	subject := strings.Trim(u.Path, "/")
	if subject == "" {
		subject = DefaultSubject
	}
	server := (&url.URL{Scheme: u.Scheme, User: u.User, Host: u.Host}).String()

	log := logger.WithComponent("transport").WithField("transport", "nats")
	opts := []nats.Option{
		nats.Name("gridsim"),
		nats.Timeout(cfg.DialTimeout),
		nats.MaxReconnects(5),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.WithError(err).Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
	}
	nc, err := nats.Connect(server, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS %s: %w", u.Host, err)
	}

	write := func(payload string) error {
		return nc.Publish(subject, []byte(payload))
	}
	closeFn := func() error {
		err := nc.Flush()
		nc.Close()
		return err
	}
	return newQueue("nats", cfg.QueueSize, write, closeFn), nil
}
