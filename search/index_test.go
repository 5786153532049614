package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatIndex_Search(t *testing.T) {
	idx := NewFlatIndex()
	idx.Add([]float32{0, 0})
	idx.Add([]float32{1, 0})
	idx.Add([]float32{3, 4})

	neighbors := idx.Search([]float32{0, 0}, 3)
	require.Len(t, neighbors, 3)

	assert.Equal(t, 0, neighbors[0].Position)
	assert.Equal(t, float32(0), neighbors[0].Distance)
	assert.Equal(t, 1, neighbors[1].Position)
	assert.Equal(t, float32(1), neighbors[1].Distance)
	assert.Equal(t, 2, neighbors[2].Position)
	assert.Equal(t, float32(25), neighbors[2].Distance)
}

func TestFlatIndex_TopKLimits(t *testing.T) {
	idx := NewFlatIndex()
	idx.Add([]float32{1})
	idx.Add([]float32{2})
	idx.Add([]float32{3})

	assert.Len(t, idx.Search([]float32{0}, 2), 2)
	assert.Len(t, idx.Search([]float32{0}, 10), 3)
	assert.Nil(t, idx.Search([]float32{0}, 0))
	assert.Nil(t, idx.Search([]float32{0}, -1))
}

func TestFlatIndex_TiesKeepInsertionOrder(t *testing.T) {
	idx := NewFlatIndex()
	idx.Add([]float32{1, 0})
	idx.Add([]float32{0, 1})
	idx.Add([]float32{-1, 0})

	neighbors := idx.Search([]float32{0, 0}, 3)
	require.Len(t, neighbors, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{neighbors[0].Position, neighbors[1].Position, neighbors[2].Position})
}

func TestFlatIndex_Empty(t *testing.T) {
	idx := NewFlatIndex()
	assert.Equal(t, 0, idx.Len())
	assert.Nil(t, idx.Search([]float32{1, 2}, 3))
}
