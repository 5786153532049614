package persona

import (
	"github.com/poiesic/toolscout/core"
)

// Definition declares a single persona: its identifier, the category
// labels associated with it, and a description used for semantic matching.
type Definition struct {
	Name        core.Persona
	Categories  []string
	Description string
}

// Model holds the static persona configuration.
//
// The category to persona relation is many-to-many. When a category maps
// to several personas, CategoryPersonas returns them in persona declaration
// order; the first entry is the canonical match for fuzzy classification.
type Model struct {
	defs             []Definition
	personas         []core.Persona
	categories       []string
	categoryPersonas map[string][]core.Persona
	descriptions     map[core.Persona]string
}

// NewModel builds a persona model from definitions.
// Declaration order is significant: it fixes tie-break order everywhere.
func NewModel(defs []Definition) (*Model, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyModel
	}

	m := &Model{
		defs:             defs,
		categoryPersonas: make(map[string][]core.Persona),
		descriptions:     make(map[core.Persona]string, len(defs)),
	}

	for _, def := range defs {
		m.personas = append(m.personas, def.Name)
		m.descriptions[def.Name] = def.Description
		for _, category := range def.Categories {
			if _, seen := m.categoryPersonas[category]; !seen {
				m.categories = append(m.categories, category)
			}
			m.categoryPersonas[category] = append(m.categoryPersonas[category], def.Name)
		}
	}

	return m, nil
}

// Personas returns all persona identifiers in declaration order.
func (m *Model) Personas() []core.Persona {
	return m.personas
}

// Description returns the persona's description, or "" if unknown.
func (m *Model) Description(p core.Persona) string {
	return m.descriptions[p]
}

// Categories returns all known category labels in first-appearance order.
func (m *Model) Categories() []string {
	return m.categories
}

// CategoryPersonas returns the personas associated with a category,
// in declaration order. Returns nil for an unknown category.
func (m *Model) CategoryPersonas(category string) []core.Persona {
	return m.categoryPersonas[category]
}

// HasCategory reports whether the category is associated with the persona.
func (m *Model) HasCategory(p core.Persona, category string) bool {
	for _, candidate := range m.categoryPersonas[category] {
		if candidate == p {
			return true
		}
	}
	return false
}

// DefaultModel returns the standard eight-persona configuration.
func DefaultModel() *Model {
	m, err := NewModel(defaultDefinitions)
	if err != nil {
		// defaultDefinitions is non-empty, NewModel cannot fail
		panic(err)
	}
	return m
}

var defaultDefinitions = []Definition{
	{
		Name: "Designer",
		Categories: []string{
			"3D Generator", "Art", "Avatar Generator", "Cartoon Generators",
			"Design Generators", "Fashion Assistant", "Image", "Image Editing",
			"Image Generators", "Logo Generator", "UX/UI Tools",
		},
		Description: "AI tools for digital art, 3D modeling, UX/UI design, and branding.",
	},
	{
		Name: "Developer & Data Expert",
		Categories: []string{
			"Code", "Code Assistant", "Automations", "No Code", "SQL Assistant",
			"SQL Query", "Database", "Programming", "Software Development",
			"Python", "Machine Learning", "AI Development", "Data Science",
		},
		Description: "AI tools for coding, automation, AI development, and data science.",
	},
	{
		Name: "Content Marketer",
		Categories: []string{
			"Marketing", "Copywriting Assistant", "Prompt Generators", "Paraphrasing",
			"SEO Tools", "Social Media", "Branding", "Storyteller",
		},
		Description: "AI tools for digital marketing, SEO, branding, and copywriting.",
	},
	{
		Name: "Creative Writer",
		Categories: []string{
			"Storyteller", "Copywriting Assistant", "Research Assistant", "Students",
			"Paraphrasing", "Fiction Writing", "Screenwriting",
		},
		Description: "AI tools for storytelling, fiction writing, and research assistance.",
	},
	{
		Name: "Business & Productivity",
		Categories: []string{
			"Business", "Finance", "Project Management", "Productivity",
			"Spreadsheet Assistant", "Operations", "Data Analytics",
		},
		Description: "AI tools for finance, project management, and efficiency.",
	},
	{
		Name: "Media Creator (Video & Audio)",
		Categories: []string{
			"Audio Editing", "Audio Generators", "Music Generator",
			"Text To Speech", "Text To Video", "Video", "Video Editing",
			"Video Enhancer", "Video Generators", "Podcasting Tools",
		},
		Description: "AI tools for video editing, music production, and audio processing.",
	},
	{
		Name: "Students & Educators",
		Categories: []string{
			"Students", "Transcriber", "Translators", "Research Assistant",
			"E-Learning", "Academic Writing", "Note-Taking",
		},
		Description: "AI tools for research, e-learning, academic writing, and note-taking.",
	},
	{
		Name: "Lifestyle & Personal",
		Categories: []string{
			"Gift Ideas", "Fitness", "Religion", "Personal Assistant",
			"Hobbies & Interests", "Self-Improvement",
		},
		Description: "AI tools for fitness, personal assistance, hobbies, and self-improvement.",
	},
}
