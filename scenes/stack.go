package scenes

import (
	"github.com/sirupsen/logrus"

	"ebiten-gridsim/input"
	"ebiten-gridsim/logger"
	"ebiten-gridsim/metrics"
)

// Stack manages a stack of scenes. Only the top scene is updated and gets
// input.
type Stack struct {
	scenes  []Scene
	metrics *metrics.Collector
	log     *logrus.Entry
}

// NewStack creates a new scene stack. m may be nil.
func NewStack(m *metrics.Collector) *Stack {
	return &Stack{
		scenes:  make([]Scene, 0),
		metrics: m,
		log:     logger.WithComponent("stack"),
	}
}

// Push adds a scene to the top of the stack
func (s *Stack) Push(scene Scene) {
	s.scenes = append(s.scenes, scene)
	s.log.WithField("scene", scene.Name()).Debug("Scene pushed")
	s.metrics.SetSceneDepth(len(s.scenes))
}

// Top returns the top scene, nil when empty
func (s *Stack) Top() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

// Len returns the number of scenes
func (s *Stack) Len() int {
	return len(s.scenes)
}

// Empty reports whether the run is over
func (s *Stack) Empty() bool {
	return len(s.scenes) == 0
}

// Update updates the top scene, applies the transition it returned and
// closes the input frame
func (s *Stack) Update(w *World) {
	defer w.Input.EndFrame()

	top := s.Top()
	if top == nil {
		return
	}
	s.apply(top.Update(w))
}

// Input routes ev to the top scene
func (s *Stack) Input(w *World, ev input.Event) {
	if top := s.Top(); top != nil {
		top.Input(w, ev)
	}
}

// Frame returns the render data of the top scene
func (s *Stack) Frame() Frame {
	if top := s.Top(); top != nil {
		return top.Frame()
	}
	return Frame{}
}

// Clear pops every scene, releasing their resources
func (s *Stack) Clear() {
	for !s.Empty() {
		s.pop()
	}
	s.metrics.SetSceneDepth(0)
}

func (s *Stack) apply(t Transition) {
	switch t.Kind {
	case None:
		return
	case Push, Replace:
		if t.Scene == nil {
			s.log.WithField("transition", t.Kind).Warn("Transition without a scene ignored")
			return
		}
		if t.Kind == Replace {
			s.pop()
		}
		s.scenes = append(s.scenes, t.Scene)
	case Pop:
		s.pop()
	case PopAll:
		for !s.Empty() {
			s.pop()
		}
	default:
		s.log.WithField("transition", t.Kind).Warn("Unknown transition ignored")
		return
	}

	s.metrics.Transition(t.Kind.String())
	s.metrics.SetSceneDepth(len(s.scenes))
	entry := s.log.WithField("transition", t.Kind).WithField("depth", len(s.scenes))
	if top := s.Top(); top != nil {
		entry = entry.WithField("scene", top.Name())
	}
	entry.Debug("Scene transition applied")
}

func (s *Stack) pop() {
	if len(s.scenes) == 0 {
		return
	}
	top := s.scenes[len(s.scenes)-1]
	s.scenes[len(s.scenes)-1] = nil
	s.scenes = s.scenes[:len(s.scenes)-1]

	if c, ok := top.(Closer); ok {
		if err := c.Close(); err != nil {
			s.log.WithError(err).WithField("scene", top.Name()).Warn("Scene close failed")
		}
	}
}
