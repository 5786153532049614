package persona

import (
	"sync"
	"testing"

	"github.com/poiesic/toolscout/core"
	"github.com/stretchr/testify/assert"
)

func TestStore_UnknownUser(t *testing.T) {
	s := NewStore()

	assert.Equal(t, core.PersonaGeneral, s.DominantPersona("nobody"))
	assert.Empty(t, s.Scores("nobody"))
	assert.Empty(t, s.SearchHistory("nobody"))
	assert.Empty(t, s.CategoryClicks("nobody"))
}

func TestStore_AddScore(t *testing.T) {
	s := NewStore()

	s.AddScore("u1", "Designer", 0.7)
	s.AddScore("u1", "Designer", 0.7)
	s.AddScore("u1", "Content Marketer", 0.3)

	scores := s.Scores("u1")
	assert.InDelta(t, 1.4, scores["Designer"], 1e-9)
	assert.InDelta(t, 0.3, scores["Content Marketer"], 1e-9)

	assert.Equal(t, core.Persona("Designer"), s.DominantPersona("u1"))
}

func TestStore_DominantTieBreak(t *testing.T) {
	s := NewStore()

	// Equal scores: the persona scored first wins
	s.AddScore("u1", "Beta", 0.3)
	s.AddScore("u1", "Alpha", 0.3)

	assert.Equal(t, core.Persona("Beta"), s.DominantPersona("u1"))
}

func TestStore_SearchHistoryAndClicks(t *testing.T) {
	s := NewStore()

	s.AppendSearch("u1", "first")
	s.AppendSearch("u1", "second")
	s.IncrementCategoryClick("u1", "Art")
	s.IncrementCategoryClick("u1", "Art")

	assert.Equal(t, []string{"first", "second"}, s.SearchHistory("u1"))
	assert.Equal(t, 2, s.CategoryClicks("u1")["Art"])
}

func TestStore_UsersIsolated(t *testing.T) {
	s := NewStore()

	s.AddScore("u1", "Designer", 0.7)
	s.AddScore("u2", "Creative Writer", 0.7)

	assert.Equal(t, core.Persona("Designer"), s.DominantPersona("u1"))
	assert.Equal(t, core.Persona("Creative Writer"), s.DominantPersona("u2"))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.AddScore("u1", "Designer", 0.7)
				s.DominantPersona("u1")
			}
		}()
	}
	wg.Wait()

	assert.InDelta(t, 700.0, s.Scores("u1")["Designer"], 1e-6)
}
