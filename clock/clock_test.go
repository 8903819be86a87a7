package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepper_ReleasesWholeSteps(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	s := NewStepper(10*time.Millisecond, m)

	assert.Zero(t, s.Advance())

	m.Advance(25 * time.Millisecond)
	assert.Equal(t, 2, s.Advance())

	m.Advance(5 * time.Millisecond)
	assert.Equal(t, 1, s.Advance(), "the remainder carries over")

	assert.Equal(t, uint64(3), s.Total())
}

func TestStepper_CatchesUpAfterStall(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	s := NewStepper(time.Second/60, m)

	m.Advance(time.Second)
	assert.Equal(t, 60, s.Advance())
	assert.Zero(t, s.Advance())
}

func TestStepper_IgnoresTimeGoingBackwards(t *testing.T) {
	m := NewManual(time.Unix(100, 0))
	s := NewStepper(time.Millisecond, m)

	m.Advance(-time.Second)
	assert.Zero(t, s.Advance())

	m.Advance(3 * time.Millisecond)
	assert.Equal(t, 3, s.Advance())
}
