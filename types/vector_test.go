package types

import (
	"math"
	"testing"
)

func TestCross(t *testing.T) {
	type spec struct {
		a, b, exp Vec3
	}
	specs := []spec{
		{XYZ(1, 0, 0), XYZ(0, 1, 0), XYZ(0, 0, 1)},
		{XYZ(0, 1, 0), XYZ(1, 0, 0), XYZ(0, 0, -1)},
		{XYZ(0, 1, 0), XYZ(0, 0, -1), XYZ(-1, 0, 0)},
	}

	for index, s := range specs {
		out := s.a.Cross(s.b)
		if out != s.exp {
			t.Fatalf("[spec %d] expected cross product to be %v; got %v", index, s.exp, out)
		}
	}
}

func TestDot(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, -5, 6)
	if exp, out := float32(12), a.Dot(b); out != exp {
		t.Fatalf("expected dot product to be %f; got %f", exp, out)
	}
}

func TestLen(t *testing.T) {
	v := XYZ(3, 4, 0)
	if exp, out := float32(5), v.Len(); out != exp {
		t.Fatalf("expected length to be %f; got %f", exp, out)
	}

	// Near-zero vectors report zero length.
	if out := XYZ(1e-4, 0, 0).Len(); out != 0 {
		t.Fatalf("expected near-zero vector length to be 0; got %f", out)
	}
}

func TestNormalize(t *testing.T) {
	out := XYZ(0, 3, 4).Normalize()
	if math.Abs(float64(out.Len()-1.0)) > 1e-6 {
		t.Fatalf("expected normalized vector length to be 1; got %f", out.Len())
	}
	if out[1] <= 0 || out[2] <= 0 {
		t.Fatalf("normalization flipped the vector: %v", out)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	// Normalizing a near-zero vector returns the input unchanged.
	v := XYZ(1e-4, -1e-4, 0)
	if out := v.Normalize(); out != v {
		t.Fatalf("expected degenerate vector to pass through unchanged; got %v", out)
	}
}

func TestComponentAccessors(t *testing.T) {
	v := XYZ(1, 2, 3)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 {
		t.Fatalf("accessor mismatch: %f %f %f", v.X(), v.Y(), v.Z())
	}
	if v[0] != v.X() || v[1] != v.Y() || v[2] != v.Z() {
		t.Fatal("index access disagrees with named accessors")
	}
}
