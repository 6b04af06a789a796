package tracer

import (
	"math"

	"github.com/idovelemon/ProjectVPT/medium"
	"github.com/idovelemon/ProjectVPT/types"
)

// TraceInteraction walks the ray (pos, dir) through the medium with
// Woodcock (delta) tracking and returns the next real interaction point,
// or ok=false when the ray escapes the volume before interacting.
//
// Candidate collision distances are drawn against the majorant; a
// candidate is accepted as a real collision with probability
// extinction/majorant, otherwise it is a null collision and the walk
// continues from the same accumulated distance. The loop terminates
// because the majorant bounds the true extinction everywhere.
func TraceInteraction(m *medium.Medium, pos, dir types.Vec3, rnd Source) (types.Vec3, bool) {
	var t float32

	for {
		t -= float32(math.Log(1.0-float64(rnd.Next()))) / m.MaxExtinction

		s := pos.Add(dir.Mul(t))
		if !m.Contains(s) {
			return types.Vec3{}, false
		}

		if m.Extinction(s) >= rnd.Next()*m.MaxExtinction {
			return s, true
		}
	}
}
