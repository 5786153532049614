package search

import (
	"slices"
)

// Neighbor is one result of a nearest-neighbor query.
// Position refers to the insertion order of the vector in the index.
type Neighbor struct {
	Position int
	Distance float32
}

// FlatIndex is an exact nearest-neighbor index over a flat list of vectors.
// Queries compute squared L2 distance against every stored vector, so cost
// is linear in index size. Built per request over a filtered candidate set.
type FlatIndex struct {
	vectors [][]float32
}

// NewFlatIndex creates an empty index.
func NewFlatIndex() *FlatIndex {
	return &FlatIndex{}
}

// Add appends a vector to the index and returns its position.
func (idx *FlatIndex) Add(vector []float32) int {
	idx.vectors = append(idx.vectors, vector)
	return len(idx.vectors) - 1
}

// Len returns the number of indexed vectors.
func (idx *FlatIndex) Len() int {
	return len(idx.vectors)
}

// Search returns the k nearest vectors to the query by squared L2 distance,
// ordered by increasing distance. Ties keep insertion order. Returns fewer
// than k results when the index is smaller than k.
func (idx *FlatIndex) Search(query []float32, k int) []Neighbor {
	if k <= 0 || len(idx.vectors) == 0 {
		return nil
	}

	neighbors := make([]Neighbor, len(idx.vectors))
	for i, vec := range idx.vectors {
		neighbors[i] = Neighbor{
			Position: i,
			Distance: squaredL2(query, vec),
		}
	}

	slices.SortStableFunc(neighbors, func(a, b Neighbor) int {
		if a.Distance < b.Distance {
			return -1
		}
		if a.Distance > b.Distance {
			return 1
		}
		return 0
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// squaredL2 computes the squared Euclidean distance between two vectors.
// Dimensions beyond the shorter vector's length are ignored.
func squaredL2(a, b []float32) float32 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	var sum float32
	for i := 0; i < minLen; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
