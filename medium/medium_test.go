package medium

import (
	"math/rand"
	"testing"

	"github.com/idovelemon/ProjectVPT/types"
)

func makeTestMedium() *Medium {
	return &Medium{
		Extent:        types.XYZ(1, 1, 1),
		Albedo:        0.8,
		MaxExtinction: 200.0,
		Field:         &SpongeField{HalfExtent: types.XYZ(0.5, 0.5, 0.5), MaxExtinction: 200.0},
	}
}

func TestIntersect(t *testing.T) {
	type spec struct {
		origin  types.Vec3
		dir     types.Vec3
		expOk   bool
		expTMin float32
	}
	specs := []spec{
		// Origin inside the box: entry clamps to 0.
		{types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), true, 0},
		{types.XYZ(0.25, -0.25, 0.1), types.XYZ(1, 0, 0), true, 0},
		// Origin outside, pointing at the box.
		{types.XYZ(0, 0, -2), types.XYZ(0, 0, 1), true, 1.5},
		// Axis-aligned ray with two zero direction components.
		{types.XYZ(0, 2, 0), types.XYZ(0, -1, 0), true, 1.5},
		// Pointing away from the box.
		{types.XYZ(0, 0, -2), types.XYZ(0, 0, -1), false, 0},
		// Parallel to the box, offset outside the slab.
		{types.XYZ(2, 0, 0), types.XYZ(0, 0, 1), false, 0},
	}

	m := makeTestMedium()
	for index, s := range specs {
		tMin, ok := m.Intersect(s.origin, s.dir)
		if ok != s.expOk {
			t.Fatalf("[spec %d] expected intersection to be %t; got %t", index, s.expOk, ok)
		}
		if ok && tMin != s.expTMin {
			t.Fatalf("[spec %d] expected tMin to be %f; got %f", index, s.expTMin, tMin)
		}
	}
}

func TestContains(t *testing.T) {
	type spec struct {
		pos types.Vec3
		exp bool
	}
	specs := []spec{
		{types.XYZ(0, 0, 0), true},
		{types.XYZ(0.5, 0.5, 0.5), true},
		{types.XYZ(0.51, 0, 0), false},
		{types.XYZ(0, -0.51, 0), false},
		{types.XYZ(0, 0, 100), false},
	}

	m := makeTestMedium()
	for index, s := range specs {
		if out := m.Contains(s.pos); out != s.exp {
			t.Fatalf("[spec %d] expected containment of %v to be %t; got %t", index, s.pos, s.exp, out)
		}
	}
}

func TestSpongeField(t *testing.T) {
	field := &SpongeField{HalfExtent: types.XYZ(0.5, 0.5, 0.5), MaxExtinction: 200.0}

	// The box center falls into a carved-out cell.
	if out := field.Extinction(types.XYZ(0, 0, 0)); out != 0 {
		t.Fatalf("expected center extinction to be 0; got %f", out)
	}

	// A point near the box corner survives all three refinement levels.
	if out := field.Extinction(types.XYZ(-0.48, -0.48, -0.45)); out != 200.0 {
		t.Fatalf("expected corner extinction to be 200; got %f", out)
	}
}

func TestSphereField(t *testing.T) {
	field := &SphereField{Center: types.XYZ(0, 0, 0), Radius: 0.5, MaxExtinction: 100.0}

	type spec struct {
		pos types.Vec3
		exp float32
	}
	specs := []spec{
		{types.XYZ(0, 0, 0), 100.0},
		{types.XYZ(0.25, 0, 0), 50.0},
		{types.XYZ(0.5, 0, 0), 0.0},
		{types.XYZ(0, 0.7, 0), 0.0},
	}

	for index, s := range specs {
		if out := field.Extinction(s.pos); out != s.exp {
			t.Fatalf("[spec %d] expected extinction to be %f; got %f", index, s.exp, out)
		}
	}
}

// The majorant contract: no field may ever report extinction above the
// medium's MaxExtinction anywhere inside the box.
func TestMajorantBound(t *testing.T) {
	m := makeTestMedium()
	fields := []ExtinctionField{
		m.Field,
		&SphereField{Center: types.XYZ(0.1, 0, 0), Radius: 0.4, MaxExtinction: m.MaxExtinction},
	}

	rnd := rand.New(rand.NewSource(42))
	for _, field := range fields {
		for i := 0; i < 10000; i++ {
			pos := types.XYZ(rnd.Float32()-0.5, rnd.Float32()-0.5, rnd.Float32()-0.5)
			if out := field.Extinction(pos); out > m.MaxExtinction {
				t.Fatalf("field %T exceeded majorant at %v: %f > %f", field, pos, out, m.MaxExtinction)
			}
		}
	}
}
