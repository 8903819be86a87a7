package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"ebiten-gridsim/components"
)

// AgentTemplate describes a kind of agent the spawner can create
type AgentTemplate struct {
	// Basic info
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name; empty gets a generated one
	Description string `json:"description"` // Description text

	// Components
	Shape      string `json:"shape"`      // View shape: square, diamond or triangle
	Controlled bool   `json:"controlled"` // Whether it follows the input axes
	Networked  bool   `json:"networked"`  // Whether it broadcasts its cell

	// Vitals, 0-100
	Health float64 `json:"health"`
	Food   float64 `json:"food"`
	Water  float64 `json:"water"`

	SpawnWeight int `json:"spawnWeight"` // Relative chance of being picked by the debug spawner
}

// TemplateManager manages all agent templates
type TemplateManager struct {
	Templates map[string]*AgentTemplate
}

// NewTemplateManager creates a manager holding the built-in templates
func NewTemplateManager() *TemplateManager {
	m := &TemplateManager{Templates: make(map[string]*AgentTemplate)}
	for _, t := range builtinTemplates() {
		m.Templates[t.ID] = t
	}
	return m
}

// DefaultAgent is the template of the first agent of every level
const DefaultAgent = "agent"

func builtinTemplates() []*AgentTemplate {
	return []*AgentTemplate{
		{
			ID:          DefaultAgent,
			Description: "Player-controlled agent broadcasting its position",
			Shape:       "square",
			Controlled:  true,
			Networked:   true,
			Health:      100,
			Food:        100,
			Water:       100,
			SpawnWeight: 1,
		},
		{
			ID:          "scout",
			Description: "Controlled agent with a forward view",
			Shape:       "triangle",
			Controlled:  true,
			Health:      80,
			Food:        60,
			Water:       60,
			SpawnWeight: 2,
		},
		{
			ID:          "sentry",
			Description: "Stationary observer",
			Shape:       "diamond",
			Health:      100,
			Food:        100,
			Water:       100,
			SpawnWeight: 1,
		},
	}
}

// LoadTemplatesFromDirectory loads all JSON template files from a directory
func (m *TemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadTemplateFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load template from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadTemplateFromFile loads a single agent template from a JSON file
func (m *TemplateManager) LoadTemplateFromFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template AgentTemplate
	if err := json.Unmarshal(data, &template); err != nil {
		return err
	}

	if err := ValidateTemplate(&template); err != nil {
		return fmt.Errorf("invalid template in %s: %w", filePath, err)
	}

	m.Templates[template.ID] = &template
	return nil
}

// GetTemplate returns a template by ID
func (m *TemplateManager) GetTemplate(id string) (*AgentTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// IDs returns the template ids in sorted order
func (m *TemplateManager) IDs() []string {
	ids := make([]string, 0, len(m.Templates))
	for id := range m.Templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ValidateTemplate ensures that the template has all required fields
func ValidateTemplate(template *AgentTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("template missing id")
	}
	if template.Shape == "" {
		template.Shape = components.ShapeSquare.String()
	}
	if _, err := components.ParseShape(template.Shape); err != nil {
		return fmt.Errorf("template '%s': %w", template.ID, err)
	}
	if template.SpawnWeight < 0 {
		return fmt.Errorf("template '%s' has a negative spawnWeight", template.ID)
	}
	vitals := []float64{template.Health, template.Food, template.Water}
	if slices.ContainsFunc(vitals, func(v float64) bool { return v < components.VitalMin || v > components.VitalMax }) {
		return fmt.Errorf("template '%s' has vitals outside %v-%v", template.ID, components.VitalMin, components.VitalMax)
	}
	return nil
}
