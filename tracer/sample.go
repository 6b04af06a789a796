package tracer

import (
	"math"

	"github.com/idovelemon/ProjectVPT/types"
)

const (
	kPI = float32(math.Pi)

	// Russian roulette floor: paths below this weight either die or are
	// rescaled back up to it so surviving paths stay unbiased.
	rouletteFloor = float32(0.2)
)

// TraceSample estimates the ambient light reaching the camera along a
// single ray. The ray is walked through the medium alternating free-path
// sampling and isotropic scattering until it escapes, its interaction
// budget runs out, or Russian roulette kills it. Escaped rays contribute
// the ambient radiance scaled by the accumulated path weight; terminated
// paths contribute nothing.
//
// Absorption is modeled as a multiplicative albedo weight decay combined
// with roulette termination rather than as a stochastic absorb/scatter
// branch at each collision; both estimators are unbiased but this one
// matches the rest of the weight bookkeeping.
func TraceSample(ctx *Context, pos, dir types.Vec3, rnd Source) types.Vec3 {
	weight := float32(1.0)

	if tMin, ok := ctx.Medium.Intersect(pos, dir); ok {
		// Advance to the entry point, nudged forward so the first
		// tracking step starts inside the volume.
		rayPos := pos.Add(dir.Mul(tMin + types.Epsilon))
		rayDir := dir

		var interactions uint32
		for {
			newPos, ok := TraceInteraction(ctx.Medium, rayPos, rayDir, rnd)
			if !ok {
				break
			}
			rayPos = newPos

			// Is the path length exceeded?
			if interactions >= ctx.MaxInteractions {
				return types.Vec3{}
			}
			interactions++

			// Russian roulette absorption
			weight = weight * ctx.Medium.Albedo
			if weight < rouletteFloor {
				// Survive with probability weight/floor; a zero
				// weight path can never survive.
				if rnd.Next() >= weight*(1.0/rouletteFloor) {
					return types.Vec3{}
				}
				weight = rouletteFloor
			}

			// Sample the isotropic phase function. The frame is a
			// fixed world frame; an isotropic distribution is
			// invariant under the choice.
			phi := 2.0 * kPI * rnd.Next()
			cosTheta := 1.0 - 2.0*rnd.Next()
			sinTheta := float32(math.Sqrt(float64(1.0 - cosTheta*cosTheta)))
			rayDir = types.XYZ(
				float32(math.Cos(float64(phi)))*sinTheta,
				float32(math.Sin(float64(phi)))*sinTheta,
				cosTheta,
			)
		}
	}

	return ctx.Ambient.Mul(weight)
}
