// Package clock turns wall time into a whole number of fixed simulation
// steps.
package clock

import (
	"sync"
	"time"
)

// TimeProvider is a source of the current time
type TimeProvider interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// Wall is the real time source
var Wall TimeProvider = wallClock{}

// Stepper accumulates elapsed time and releases it in fixed steps. Steps are
// never merged or dropped: after a stall, Advance reports every step that
// was missed.
type Stepper struct {
	step  time.Duration
	time  TimeProvider
	last  time.Time
	acc   time.Duration
	total uint64
}

// NewStepper creates a stepper starting now. A nil tp means Wall.
func NewStepper(step time.Duration, tp TimeProvider) *Stepper {
	if tp == nil {
		tp = Wall
	}
	return &Stepper{step: step, time: tp, last: tp.Now()}
}

// Step returns the fixed step duration
func (s *Stepper) Step() time.Duration { return s.step }

// Advance returns how many steps are due since the last call
func (s *Stepper) Advance() int {
	now := s.time.Now()
	if elapsed := now.Sub(s.last); elapsed > 0 {
		s.acc += elapsed
	}
	s.last = now

	n := int(s.acc / s.step)
	s.acc -= time.Duration(n) * s.step
	s.total += uint64(n)
	return n
}

// Total returns the number of steps released so far
func (s *Stepper) Total() uint64 { return s.total }

// Manual is a TimeProvider moved by hand, for tests and replays
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManual creates a manual clock reading start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
