package main

// voxelOffset is an integer displacement from the centre of the volume.
type voxelOffset struct {
	di, dj, dk int
}

// precomputeSourceFootprint lists every offset within Euclidean distance
// radius of the origin, in lexicographic order.
func precomputeSourceFootprint(radius int) []voxelOffset {
	side := 2*radius + 1
	footprint := make([]voxelOffset, 0, side*side*side)
	r2 := radius * radius
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			for k := -radius; k <= radius; k++ {
				if i*i+j*j+k*k <= r2 {
					footprint = append(footprint, voxelOffset{di: i, dj: j, dk: k})
				}
			}
		}
	}
	return footprint
}

// newPointSource returns an n³ source that is zero except for a unit value at
// the centre cell.
func newPointSource(n int) []float32 {
	return newSphereSource(n, 0)
}

// newSphereSource returns an n³ source with unit values on every cell within
// radius of the centre. Cells of the footprint outside the volume are
// dropped.
func newSphereSource(n, radius int) []float32 {
	source := make([]float32, n*n*n)
	c := n / 2
	for _, off := range precomputeSourceFootprint(radius) {
		i, j, k := c+off.di, c+off.dj, c+off.dk
		if i < 0 || i >= n || j < 0 || j >= n || k < 0 || k >= n {
			continue
		}
		source[tensorIdx(i, j, k, n)] = 1
	}
	return source
}
