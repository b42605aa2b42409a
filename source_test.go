package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countNonZero(field []float32) int {
	count := 0
	for _, v := range field {
		if v != 0 {
			count++
		}
	}
	return count
}

func TestNewPointSource(t *testing.T) {
	t.Parallel()
	n := 7
	source := newPointSource(n)
	assert.Len(t, source, n*n*n)
	assert.Equal(t, 1, countNonZero(source))
	assert.Equal(t, float32(1), source[tensorIdx(3, 3, 3, n)])
}

func TestNewSphereSource(t *testing.T) {
	t.Parallel()
	n := 7
	source := newSphereSource(n, 1)
	assert.Equal(t, 7, countNonZero(source))
	assert.Equal(t, float32(1), source[tensorIdx(2, 3, 3, n)])
	assert.Equal(t, float32(1), source[tensorIdx(3, 3, 4, n)])
	assert.Zero(t, source[tensorIdx(2, 2, 3, n)])
}

func TestNewSphereSourceClipsToVolume(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 27, countNonZero(newSphereSource(3, 5)))
	assert.Equal(t, 1, countNonZero(newSphereSource(1, 2)))
}

func TestSourceFootprintIsPermutationSymmetric(t *testing.T) {
	t.Parallel()
	footprint := precomputeSourceFootprint(3)
	set := make(map[voxelOffset]bool, len(footprint))
	for _, off := range footprint {
		set[off] = true
	}
	for _, off := range footprint {
		assert.True(t, set[voxelOffset{di: off.dj, dj: off.di, dk: off.dk}])
		assert.True(t, set[voxelOffset{di: off.dk, dj: off.dj, dk: off.di}])
		assert.True(t, set[voxelOffset{di: off.di, dj: off.dk, dk: off.dj}])
	}
}
