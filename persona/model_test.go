package persona

import (
	"testing"

	"github.com/poiesic/toolscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel_Empty(t *testing.T) {
	_, err := NewModel(nil)
	assert.ErrorIs(t, err, ErrEmptyModel)
}

func TestDefaultModel(t *testing.T) {
	m := DefaultModel()

	personas := m.Personas()
	require.Len(t, personas, 8)
	assert.Equal(t, core.Persona("Designer"), personas[0])
	assert.Equal(t, core.Persona("Lifestyle & Personal"), personas[7])

	assert.NotEmpty(t, m.Description("Designer"))
	assert.Empty(t, m.Description("Nonexistent"))
}

func TestCategoryPersonas_DeclarationOrder(t *testing.T) {
	m := DefaultModel()

	// Storyteller is shared; Content Marketer is declared first
	storyteller := m.CategoryPersonas("Storyteller")
	require.Len(t, storyteller, 2)
	assert.Equal(t, core.Persona("Content Marketer"), storyteller[0])
	assert.Equal(t, core.Persona("Creative Writer"), storyteller[1])

	// Students is shared between Creative Writer and Students & Educators
	students := m.CategoryPersonas("Students")
	require.Len(t, students, 2)
	assert.Equal(t, core.Persona("Creative Writer"), students[0])

	assert.Nil(t, m.CategoryPersonas("No Such Category"))
}

func TestHasCategory(t *testing.T) {
	m := DefaultModel()

	assert.True(t, m.HasCategory("Designer", "Image Generators"))
	assert.True(t, m.HasCategory("Creative Writer", "Storyteller"))
	assert.False(t, m.HasCategory("Designer", "Fitness"))
	assert.False(t, m.HasCategory("Designer", "No Such Category"))
}

func TestCategories_FirstAppearanceOrder(t *testing.T) {
	m, err := NewModel([]Definition{
		{Name: "A", Categories: []string{"x", "y"}, Description: "a"},
		{Name: "B", Categories: []string{"y", "z"}, Description: "b"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y", "z"}, m.Categories())
	assert.Equal(t, []core.Persona{"A", "B"}, m.CategoryPersonas("y"))
}
