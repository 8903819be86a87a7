package components

// Vital bounds for PlayerTag
const (
	VitalMin = 0.0
	VitalMax = 100.0
)

// PlayerTag marks an observed or controllable agent
type PlayerTag struct {
	Name   string
	Health float64
	Food   float64
	Water  float64
}

// NewPlayerTag creates a tag with full vitals
func NewPlayerTag(name string) PlayerTag {
	return PlayerTag{Name: name, Health: VitalMax, Food: VitalMax, Water: VitalMax}
}

// Clamp forces every vital into [VitalMin, VitalMax]
func (p *PlayerTag) Clamp() {
	p.Health = clampVital(p.Health)
	p.Food = clampVital(p.Food)
	p.Water = clampVital(p.Water)
}

func clampVital(v float64) float64 {
	return max(VitalMin, min(VitalMax, v))
}

// InputController marks entities whose velocity follows the input axes
type InputController struct{}

// Shot is reserved for combat; nothing consumes it yet
type Shot struct {
	Damage uint32
}
