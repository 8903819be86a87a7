package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"ebiten-gridsim/components"
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/logger"
	"ebiten-gridsim/metrics"
	"ebiten-gridsim/scheduler"
)

// NetworkSystem broadcasts the cell of every linked entity once per frame.
// Send failures are logged and counted, never retried.
type NetworkSystem struct {
	metrics *metrics.Collector
	log     *logrus.Entry
	// links whose last send failed; only the first failure of a run is
	// logged as a warning
	failing map[ecs.EntityID]bool
}

// NewNetworkSystem creates a new network system. m may be nil.
func NewNetworkSystem(m *metrics.Collector) *NetworkSystem {
	return &NetworkSystem{
		metrics: m,
		log:     logger.WithComponent("network"),
		failing: make(map[ecs.EntityID]bool),
	}
}

// Access implements scheduler.System
func (s *NetworkSystem) Access() scheduler.Access {
	return scheduler.Access{
		ReadComponents:  []ecs.Kind{components.KindTransform},
		WriteComponents: []ecs.Kind{components.KindNetworkLink},
	}
}

// Run implements scheduler.System
func (s *NetworkSystem) Run(ctx *scheduler.Context) {
	for row := range ecs.Join2(ctx.World.NetworkLinks, ctx.World.Transforms) {
		link := row.A
		if link.Transport == nil {
			continue
		}

		err := link.Transport.Send(PositionPayload(row.B))
		s.metrics.SendResult(err)
		if err == nil {
			if s.failing[row.Entity] {
				s.log.WithField("session", link.Session).Info("Position broadcast recovered")
				delete(s.failing, row.Entity)
			}
			continue
		}

		entry := s.log.WithError(err).
			WithField("session", link.Session).
			WithField("entity", row.Entity)
		if s.failing[row.Entity] {
			entry.Debug("Position send failed")
		} else {
			entry.Warn("Position send failed")
			s.failing[row.Entity] = true
		}
	}
}

// PositionPayload is the wire form of a transform: "<x>:<y>" in cells
func PositionPayload(t *components.Transform) string {
	return fmt.Sprintf("%d:%d", t.Cell.X, t.Cell.Y)
}
