package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_JSONFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	Init("warn", "json", &buf)
	t.Cleanup(func() { Init("info", "text", io.Discard) })

	Log.Info("dropped")
	Log.WithField("system", "sys_network").Warn("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "sys_network", entry["system"])
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	Init("chatty", "text", io.Discard)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestMessageLog_BoundedNewestFirst(t *testing.T) {
	ml := NewMessageLog(3)
	for _, m := range []string{"a", "b", "c", "d"} {
		ml.Add(m)
	}
	assert.Equal(t, 3, ml.Len())
	assert.Equal(t, []string{"d", "c", "b"}, ml.Recent(10))
	assert.Equal(t, []string{"d"}, ml.Recent(1))

	ml.Clear()
	assert.Empty(t, ml.Recent(5))
}

func TestHook_MirrorsInfoAndAbove(t *testing.T) {
	ml := NewMessageLog(10)
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	l.AddHook(&Hook{Log: ml, Level: logrus.InfoLevel})

	l.Debug("hidden")
	l.Info("agent spawned")
	l.Error("send failed")

	assert.Equal(t, []string{"send failed", "agent spawned"}, ml.Recent(10))
}
