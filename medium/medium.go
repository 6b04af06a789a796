package medium

import (
	"github.com/idovelemon/ProjectVPT/types"
)

// Medium describes a participating volume: an axis-aligned box of size
// Extent centered at the origin filled with a heterogeneous extinction
// field. It is built once before rendering and treated as immutable and
// shared by every worker for the duration of the render.
//
// MaxExtinction must be a true majorant of Field over the whole box. A
// field value above it silently loses energy instead of crashing, so this
// is a construction-time precondition rather than a runtime check.
type Medium struct {
	Extent        types.Vec3
	Albedo        float32
	MaxExtinction float32
	Field         ExtinctionField
}

// Extinction coefficient at pos. Callers must only query positions inside
// the medium extent.
func (m *Medium) Extinction(pos types.Vec3) float32 {
	return m.Field.Extinction(pos)
}

// Contains reports whether pos lies strictly within the medium box.
func (m *Medium) Contains(pos types.Vec3) bool {
	halfExtent := m.Extent.Mul(0.5)
	if -halfExtent[0] > pos[0] || halfExtent[0] < pos[0] {
		return false
	}
	if -halfExtent[1] > pos[1] || halfExtent[1] < pos[1] {
		return false
	}
	if -halfExtent[2] > pos[2] || halfExtent[2] < pos[2] {
		return false
	}
	return true
}

// Intersect performs a slab test of the ray (p, d) against the medium box
// and returns the parametric entry distance clamped to zero for rays that
// start inside. Zero direction components produce IEEE infinities which
// compare correctly in the min/max reduction, so no special casing is
// needed; NaN outcomes from degenerate rays fail the tMin < tMax test.
func (m *Medium) Intersect(p, d types.Vec3) (tMin float32, ok bool) {
	halfExtent := m.Extent.Mul(0.5)

	x0 := (-halfExtent[0] - p[0]) / d[0]
	y0 := (-halfExtent[1] - p[1]) / d[1]
	z0 := (-halfExtent[2] - p[2]) / d[2]
	x1 := (halfExtent[0] - p[0]) / d[0]
	y1 := (halfExtent[1] - p[1]) / d[1]
	z1 := (halfExtent[2] - p[2]) / d[2]

	tMin = max(max(max(min(z0, z1), min(y0, y1)), min(x0, x1)), 0.0)
	tMax := min(min(max(z0, z1), max(y0, y1)), max(x0, x1))
	return tMin, tMin < tMax
}
