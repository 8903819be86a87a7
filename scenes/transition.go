package scenes

import "fmt"

// TransitionKind is what the stack does after an update
type TransitionKind int

const (
	None TransitionKind = iota
	Push
	Pop
	Replace
	// PopAll empties the stack, which ends the run
	PopAll
)

func (k TransitionKind) String() string {
	switch k {
	case None:
		return "none"
	case Push:
		return "push"
	case Pop:
		return "pop"
	case Replace:
		return "replace"
	case PopAll:
		return "pop_all"
	default:
		return fmt.Sprintf("transition(%d)", int(k))
	}
}

// Transition is returned by Scene.Update. Scene is only used by Push and
// Replace.
type Transition struct {
	Kind  TransitionKind
	Scene Scene
}

// Stay keeps the stack as it is
func Stay() Transition { return Transition{Kind: None} }

// PushScene puts s on top of the current scene
func PushScene(s Scene) Transition { return Transition{Kind: Push, Scene: s} }

// PopScene removes the current scene
func PopScene() Transition { return Transition{Kind: Pop} }

// ReplaceScene swaps the current scene for s
func ReplaceScene(s Scene) Transition { return Transition{Kind: Replace, Scene: s} }

// PopAllScenes empties the stack
func PopAllScenes() Transition { return Transition{Kind: PopAll} }
