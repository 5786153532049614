// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package persona

import (
	"sync"

	"github.com/poiesic/toolscout/core"
)

// profile holds accumulated state for one user.
// scoreOrder records the order in which personas first received a score,
// which fixes tie-breaking for the dominant-persona query.
type profile struct {
	scores            map[core.Persona]float64
	scoreOrder        []core.Persona
	searchHistory     []string
	clicksPerCategory map[string]int
}

func newProfile() *profile {
	return &profile{
		scores:            make(map[core.Persona]float64),
		clicksPerCategory: make(map[string]int),
	}
}

func (p *profile) addScore(persona core.Persona, weight float64) {
	if _, seen := p.scores[persona]; !seen {
		p.scoreOrder = append(p.scoreOrder, persona)
	}
	p.scores[persona] += weight
}

// dominant returns the persona with the highest accumulated score,
// first-scored wins ties. Returns the sentinel when nothing is scored.
func (p *profile) dominant() core.Persona {
	best := core.PersonaGeneral
	bestScore := 0.0
	found := false
	for _, persona := range p.scoreOrder {
		score := p.scores[persona]
		if !found || score > bestScore {
			best = persona
			bestScore = score
			found = true
		}
	}
	return best
}

// Store is a process-wide map from user identifier to accumulated persona
// state. Profiles are created lazily on first access and live for the
// process lifetime; nothing is persisted.
//
// Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]*profile
}

// NewStore creates an empty user state store.
func NewStore() *Store {
	return &Store{
		profiles: make(map[string]*profile),
	}
}

// getOrCreate returns the profile for userID, creating it if absent.
// Caller must hold the write lock.
func (s *Store) getOrCreate(userID string) *profile {
	p, ok := s.profiles[userID]
	if !ok {
		p = newProfile()
		s.profiles[userID] = p
	}
	return p
}

// AddScore adds weight to the persona's score for the user.
func (s *Store) AddScore(userID string, persona core.Persona, weight float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreate(userID).addScore(persona, weight)
}

// AppendSearch appends a query to the user's search history.
func (s *Store) AppendSearch(userID, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(userID)
	p.searchHistory = append(p.searchHistory, query)
}

// IncrementCategoryClick records a click on a category for the user.
func (s *Store) IncrementCategoryClick(userID, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreate(userID).clicksPerCategory[category]++
}

// DominantPersona returns the user's highest-scored persona.
// Unknown users and users with no scores yield core.PersonaGeneral.
func (s *Store) DominantPersona(userID string) core.Persona {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return core.PersonaGeneral
	}
	return p.dominant()
}

// Scores returns a copy of the user's persona scores.
// Returns an empty map for unknown users.
func (s *Store) Scores(userID string) map[core.Persona]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[core.Persona]float64)
	p, ok := s.profiles[userID]
	if !ok {
		return out
	}
	for persona, score := range p.scores {
		out[persona] = score
	}
	return out
}

// SearchHistory returns a copy of the user's past queries in order.
func (s *Store) SearchHistory(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil
	}
	out := make([]string, len(p.searchHistory))
	copy(out, p.searchHistory)
	return out
}

// CategoryClicks returns a copy of the user's per-category click counts.
func (s *Store) CategoryClicks(userID string) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int)
	p, ok := s.profiles[userID]
	if !ok {
		return out
	}
	for category, count := range p.clicksPerCategory {
		out[category] = count
	}
	return out
}
