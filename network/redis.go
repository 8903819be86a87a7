package network

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"

	"ebiten-gridsim/config"
)

// DialRedis connects to the server in u and PUBLISHes every payload on the
// channel named by the "channel" query parameter
func DialRedis(ctx context.Context, u *url.URL, cfg config.NetworkConfig) (Transport, error) {
	opts, channel, err := redisOptions(u)
	if err != nil {
		return nil, err
	}
	opts.DialTimeout = cfg.DialTimeout
	opts.WriteTimeout = writeTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis %s: %w", opts.Addr, err)
	}

	write := func(payload string) error {
		return client.Publish(context.Background(), channel, payload).Err()
	}
	return newQueue("redis", cfg.QueueSize, write, client.Close), nil
}

func redisOptions(u *url.URL) (*redis.Options, string, error) {
	opts := &redis.Options{Addr: u.Host}
	if u.Port() == "" {
		opts.Addr = u.Host + ":6379"
	}
	if u.User != nil {
		opts.Username = u.User.Username()
		if pass, ok := u.User.Password(); ok {
			opts.Password = pass
		} else {
			// redis://secret@host carries only a password
			opts.Username, opts.Password = "", u.User.Username()
		}
	}
	if db := strings.Trim(u.Path, "/"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, "", fmt.Errorf("redis db %q: %w", db, err)
		}
		opts.DB = n
	}

	channel := u.Query().Get("channel")
	if channel == "" {
		channel = DefaultChannel
	}
	return opts, channel, nil
}
