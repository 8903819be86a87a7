package components

import "ebiten-gridsim/ecs"

// Component kinds, as declared in system access sets
const (
	KindTransform       ecs.Kind = "Transform"
	KindMotion          ecs.Kind = "Motion"
	KindPlayer          ecs.Kind = "PlayerTag"
	KindInputController ecs.Kind = "InputControllerTag"
	KindViewShape       ecs.Kind = "ViewShape"
	KindNetworkLink     ecs.Kind = "NetworkLink"
	KindShot            ecs.Kind = "ShotTag"
)
