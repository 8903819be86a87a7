package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordsIntoRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	c, err := New(registry)
	require.NoError(t, err)

	c.ObserveSystem("sys_movement", time.Millisecond)
	c.FrameDispatched()
	c.FrameDispatched()
	c.SendResult(nil)
	c.SendResult(errors.New("broken pipe"))
	c.SendResult(errors.New("broken pipe"))
	c.SetEntities(3)
	c.SetSceneDepth(2)
	c.Transition("push")

	families, err := registry.Gather()
	require.NoError(t, err)

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
		switch mf.GetName() {
		case "gridsim_frames_total":
			assert.Equal(t, 2.0, mf.Metric[0].GetCounter().GetValue())
		case "gridsim_network_sends_total":
			assert.Len(t, mf.Metric, 2)
		case "gridsim_entities":
			assert.Equal(t, 3.0, mf.Metric[0].GetGauge().GetValue())
		}
	}
	assert.True(t, found["gridsim_system_duration_seconds"])
	assert.True(t, found["gridsim_scene_transitions_total"])
}

func TestCollector_DoubleRegistrationFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := New(registry)
	require.NoError(t, err)
	_, err = New(registry)
	assert.Error(t, err)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveSystem("x", time.Second)
		c.FrameDispatched()
		c.SendResult(nil)
		c.SetEntities(1)
		c.SetSceneDepth(1)
		c.Transition("pop")
	})
}

func TestHandler_ServesText(t *testing.T) {
	registry := prometheus.NewRegistry()
	c, err := New(registry)
	require.NoError(t, err)
	c.FrameDispatched()

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "gridsim_frames_total 1"))
}
