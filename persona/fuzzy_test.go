package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		want     int
	}{
		{"exact match", "Image Editing", "Image Editing", 100},
		{"case insensitive", "image editing", "Image Editing", 100},
		{"category inside query", "best art generator", "Art", 100},
		{"empty query", "", "Art", 0},
		{"empty category", "something", "", 0},
		{"both empty", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchScore(tt.query, tt.category))
		})
	}
}

func TestMatchScore_NearMiss(t *testing.T) {
	// One edit away from a 10-char label
	score := MatchScore("alphatoolz", "alphatools")
	assert.Equal(t, 90, score)

	// Unrelated strings score low
	assert.Less(t, MatchScore("zzzzzzzzzz", "alphatools"), 30)
}

func TestMatchScore_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "alphatools"},
		{"video editing software", "Video Editing"},
		{"完全に別の言葉", "Art"},
	}
	for _, p := range pairs {
		score := MatchScore(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
