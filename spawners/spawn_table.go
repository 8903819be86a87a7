package spawners

import (
	"math/rand"

	"ebiten-gridsim/data"
)

// SpawnTable defines a table of agent templates and their spawn chances
type SpawnTable struct {
	Entries []SpawnTableEntry
}

// SpawnTableEntry represents a single entry in a spawn table
type SpawnTableEntry struct {
	TemplateID string
	Weight     int
}

// NewSpawnTable creates a new spawn table
func NewSpawnTable(entries []SpawnTableEntry) *SpawnTable {
	return &SpawnTable{
		Entries: entries,
	}
}

// SpawnTableFromTemplates builds a table from every template with a
// positive spawn weight, in id order
func SpawnTableFromTemplates(m *data.TemplateManager) *SpawnTable {
	var entries []SpawnTableEntry
	for _, id := range m.IDs() {
		t, _ := m.GetTemplate(id)
		if t.SpawnWeight > 0 {
			entries = append(entries, SpawnTableEntry{TemplateID: id, Weight: t.SpawnWeight})
		}
	}
	return NewSpawnTable(entries)
}

// Pick rolls one template id, weighted
func (st *SpawnTable) Pick(rng *rand.Rand) (string, bool) {
	// Calculate total weight
	totalWeight := 0
	for _, entry := range st.Entries {
		totalWeight += max(entry.Weight, 0)
	}
	if totalWeight == 0 {
		return "", false
	}

	roll := rng.Intn(totalWeight)
	for _, entry := range st.Entries {
		if entry.Weight <= 0 {
			continue
		}
		if roll < entry.Weight {
			return entry.TemplateID, true
		}
		roll -= entry.Weight
	}
	return "", false
}
