// Package network carries the position broadcast to an external peer.
// Every transport is fire-and-forget: Send enqueues and returns at once, a
// writer goroutine per transport does the I/O.
package network

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"ebiten-gridsim/logger"
)

var (
	// ErrQueueFull is returned by Send when the writer is behind
	ErrQueueFull = errors.New("send queue full")
	// ErrClosed is returned by Send after Close
	ErrClosed = errors.New("transport closed")
	// ErrUnsupportedScheme is returned by Dial for an unknown URL scheme
	ErrUnsupportedScheme = errors.New("unsupported transport scheme")
)

// Transport is a best-effort, line-oriented sink for UTF-8 payloads
type Transport interface {
	Send(payload string) error
	Close() error
}

// queue is the async writer shared by every transport
type queue struct {
	name  string
	send  chan string
	write func(payload string) error
	close func() error
	log   *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	writeErr error
	closed   bool
	once     sync.Once
	closeErr error
}

// newQueue starts the writer goroutine. write is only ever called from that
// goroutine; closeFn runs once, after the writer has stopped.
func newQueue(name string, size int, write func(string) error, closeFn func() error) *queue {
	if size <= 0 {
		size = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	q := &queue{
		name:   name,
		send:   make(chan string, size),
		write:  write,
		close:  closeFn,
		log:    logger.WithComponent("transport").WithField("transport", name),
		ctx:    ctx,
		cancel: cancel,
	}
	q.wg.Add(1)
	go q.loop()
	return q
}

// Send enqueues payload. A write failure of an earlier payload is reported
// by the next Send, which then drops its own payload.
func (q *queue) Send(payload string) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	if err := q.writeErr; err != nil {
		q.writeErr = nil
		q.mu.Unlock()
		return fmt.Errorf("%s write: %w", q.name, err)
	}
	q.mu.Unlock()

	select {
	case q.send <- payload:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops the writer, dropping queued payloads, and closes the
// underlying connection
func (q *queue) Close() error {
	q.once.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()

		q.cancel()
		q.wg.Wait()
		if q.close != nil {
			q.closeErr = q.close()
		}
		q.log.Info("Transport closed")
	})
	return q.closeErr
}

func (q *queue) loop() {
	defer q.wg.Done()
	for {
		select {
		case <-q.ctx.Done():
			return
		case payload := <-q.send:
			if err := q.write(payload); err != nil {
				q.log.WithError(err).Debug("Write failed")
				q.mu.Lock()
				q.writeErr = err
				q.mu.Unlock()
			}
		}
	}
}
