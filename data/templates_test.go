package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_Builtins(t *testing.T) {
	m := NewTemplateManager()
	assert.Equal(t, []string{"agent", "scout", "sentry"}, m.IDs())

	agent, ok := m.GetTemplate(DefaultAgent)
	require.True(t, ok)
	assert.True(t, agent.Controlled)
	assert.True(t, agent.Networked)

	for _, id := range m.IDs() {
		tpl, _ := m.GetTemplate(id)
		assert.NoError(t, ValidateTemplate(tpl), id)
	}
}

func TestTemplateManager_LoadDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("runner.json", `{"id":"runner","shape":"diamond","controlled":true,"health":50,"spawnWeight":3}`)
	write("scout.json", `{"id":"scout","name":"Overridden","health":10}`)
	write("notes.txt", `not a template`)

	m := NewTemplateManager()
	require.NoError(t, m.LoadTemplatesFromDirectory(dir))

	runner, ok := m.GetTemplate("runner")
	require.True(t, ok)
	assert.Equal(t, "diamond", runner.Shape)
	assert.Equal(t, 3, runner.SpawnWeight)

	scout, _ := m.GetTemplate("scout")
	assert.Equal(t, "Overridden", scout.Name)
	assert.Equal(t, "square", scout.Shape, "missing shape defaults to square")
}

func TestTemplateManager_RejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"no id":       `{"shape":"square"}`,
		"bad shape":   `{"id":"x","shape":"hexagon"}`,
		"bad vitals":  `{"id":"x","health":140}`,
		"bad weight":  `{"id":"x","spawnWeight":-1}`,
		"broken json": `{"id":`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "t.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			assert.Error(t, NewTemplateManager().LoadTemplateFromFile(path))
		})
	}
}
