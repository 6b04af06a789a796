package medium

import (
	"fmt"

	"github.com/idovelemon/ProjectVPT/types"
)

// DensityGrid is a sampled extinction field: a cubic lattice of size³
// extinction values covering the medium box, looked up with trilinear
// interpolation. The grid owns its backing storage for its lifetime.
type DensityGrid struct {
	size       int
	cells      []float32
	extent     types.Vec3
	halfExtent types.Vec3
}

// NewDensityGrid allocates a zeroed size³ grid covering a box of the given
// full extent centered at the origin.
func NewDensityGrid(size int, extent types.Vec3) (*DensityGrid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("medium: invalid grid size %d", size)
	}

	return &DensityGrid{
		size:       size,
		cells:      make([]float32, size*size*size),
		extent:     extent,
		halfExtent: extent.Mul(0.5),
	}, nil
}

// Size returns the lattice resolution along each axis.
func (g *DensityGrid) Size() int {
	return g.size
}

// At returns the raw extinction sample at lattice coords (x, y, z).
func (g *DensityGrid) At(x, y, z int) float32 {
	return g.cells[(z*g.size+y)*g.size+x]
}

// Set stores the raw extinction sample at lattice coords (x, y, z).
func (g *DensityGrid) Set(x, y, z int, value float32) {
	g.cells[(z*g.size+y)*g.size+x] = value
}

// Max returns the largest sample in the grid, i.e. the tightest majorant
// the lattice supports.
func (g *DensityGrid) Max() float32 {
	var out float32
	for _, v := range g.cells {
		if v > out {
			out = v
		}
	}
	return out
}

// Extinction maps pos into fractional lattice coordinates and performs
// trilinear interpolation over the 8 surrounding samples. Upper lattice
// neighbors are clamped at the boundary. The result is a convex
// combination of samples so it can never exceed the grid majorant.
func (g *DensityGrid) Extinction(pos types.Vec3) float32 {
	// Map world position into [0, size) along each axis.
	s := pos.Add(g.halfExtent)
	fx := s[0] / g.extent[0] * float32(g.size)
	fy := s[1] / g.extent[1] * float32(g.size)
	fz := s[2] / g.extent[2] * float32(g.size)

	x0, tx := g.splitCoord(fx)
	y0, ty := g.splitCoord(fy)
	z0, tz := g.splitCoord(fz)

	x1 := g.clampIndex(x0 + 1)
	y1 := g.clampIndex(y0 + 1)
	z1 := g.clampIndex(z0 + 1)

	c00 := lerp(g.At(x0, y0, z0), g.At(x1, y0, z0), tx)
	c10 := lerp(g.At(x0, y1, z0), g.At(x1, y1, z0), tx)
	c01 := lerp(g.At(x0, y0, z1), g.At(x1, y0, z1), tx)
	c11 := lerp(g.At(x0, y1, z1), g.At(x1, y1, z1), tx)

	c0 := lerp(c00, c10, ty)
	c1 := lerp(c01, c11, ty)

	return lerp(c0, c1, tz)
}

// Split a fractional lattice coordinate into a clamped integer cell index
// and the interpolation weight towards the next cell.
func (g *DensityGrid) splitCoord(f float32) (int, float32) {
	i := int(f)
	t := f - float32(i)
	if i < 0 {
		return 0, 0.0
	}
	if i >= g.size {
		return g.size - 1, 0.0
	}
	return i, t
}

func (g *DensityGrid) clampIndex(i int) int {
	if i >= g.size {
		return g.size - 1
	}
	return i
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
