package medium

import (
	"github.com/idovelemon/ProjectVPT/types"
)

// ExtinctionField exposes the extinction coefficient of a participating
// medium at a world position. Implementations must never report a value
// above the majorant of the owning Medium; the delta tracking loop relies
// on that bound for termination and unbiasedness.
type ExtinctionField interface {
	Extinction(pos types.Vec3) float32
}

// SpongeField is a procedural field carving a recursive sponge pattern out
// of the volume box: at each of three refinement levels a cell is emptied
// when two or more of its integer lattice coordinates are odd.
type SpongeField struct {
	HalfExtent    types.Vec3
	MaxExtinction float32
}

func (f *SpongeField) Extinction(pos types.Vec3) float32 {
	// Shift into [0, extent) so the lattice coordinates are non-negative.
	s := pos.Add(f.HalfExtent)

	for step := 0; step < 3; step++ {
		s = s.Mul(3.0)
		t := (uint32(s[0]) & 1) + (uint32(s[1]) & 1) + (uint32(s[2]) & 1)
		if t >= 2 {
			return 0.0
		}
	}

	return f.MaxExtinction
}

// SphereField is a procedural field derived from an implicit sphere: full
// extinction at the center falling off linearly to zero at Radius.
type SphereField struct {
	Center        types.Vec3
	Radius        float32
	MaxExtinction float32
}

func (f *SphereField) Extinction(pos types.Vec3) float32 {
	d := pos.Sub(f.Center).Len()
	if d >= f.Radius {
		return 0.0
	}
	return f.MaxExtinction * (1.0 - d/f.Radius)
}
