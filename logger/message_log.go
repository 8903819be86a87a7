package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// MessageLog stores the most recent log lines for on-screen display
type MessageLog struct {
	mu          sync.Mutex
	messages    []string
	maxMessages int
}

// NewMessageLog creates a new message log keeping at most max lines
func NewMessageLog(max int) *MessageLog {
	if max <= 0 {
		max = 100
	}
	return &MessageLog{
		messages:    make([]string, 0, max),
		maxMessages: max,
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.messages = append(ml.messages, message)

	// Truncate if we have too many messages
	if len(ml.messages) > ml.maxMessages {
		ml.messages = ml.messages[len(ml.messages)-ml.maxMessages:]
	}
}

// Recent gets the n most recent messages, newest first
func (ml *MessageLog) Recent(n int) []string {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if n > len(ml.messages) {
		n = len(ml.messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.messages[len(ml.messages)-1-i]
	}
	return result
}

// Len returns the number of stored messages
func (ml *MessageLog) Len() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return len(ml.messages)
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.messages = ml.messages[:0]
}

// Hook mirrors log entries at or above Level into a MessageLog
type Hook struct {
	Log   *MessageLog
	Level logrus.Level
}

// Levels implements logrus.Hook
func (h *Hook) Levels() []logrus.Level {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		if l <= h.Level {
			levels = append(levels, l)
		}
	}
	return levels
}

// Fire implements logrus.Hook
func (h *Hook) Fire(entry *logrus.Entry) error {
	h.Log.Add(entry.Message)
	return nil
}
