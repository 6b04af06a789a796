package tracer

import (
	"math"

	"github.com/idovelemon/ProjectVPT/types"
)

// Frame holds the camera basis and near-plane mapping shared by every
// pixel estimate of a render. It is derived from the context once and
// never mutated afterwards, so workers can share a single instance.
type Frame struct {
	ctx *Context

	// Orthonormal camera basis: right and true-up.
	h, u types.Vec3

	// World position of the lower-left corner of the near plane.
	lowerLeft types.Vec3

	// World-space size of one pixel on the near plane.
	widthPerPixel  float32
	heightPerPixel float32

	// Sub-sample cell size in pixel units.
	invSpp float32
}

// NewFrame builds the camera frame for the given context: a right/up
// basis around the view direction and a near-plane rectangle of world
// size 2·znear·tan(fov), mapped to the image dimensions.
func NewFrame(ctx *Context) *Frame {
	cameraSize := ctx.ZNear * float32(math.Tan(float64(ctx.FOV))) * 2.0

	widthPerPixel := cameraSize / float32(ctx.ImageWidth)
	heightPerPixel := cameraSize / float32(ctx.ImageHeight)
	halfWidthDist := float32(ctx.ImageWidth) / 2.0 * widthPerPixel
	halfHeightDist := float32(ctx.ImageHeight) / 2.0 * heightPerPixel

	h := types.XYZ(0, 1, 0).Cross(ctx.CameraDir).Normalize()
	u := ctx.CameraDir.Cross(h).Normalize()

	lowerLeft := ctx.CameraPos.Add(ctx.CameraDir.Mul(ctx.ZNear)).
		Sub(h.Mul(halfWidthDist)).
		Sub(u.Mul(halfHeightDist))

	return &Frame{
		ctx:            ctx,
		h:              h,
		u:              u,
		lowerLeft:      lowerLeft,
		widthPerPixel:  widthPerPixel,
		heightPerPixel: heightPerPixel,
		invSpp:         1.0 / float32(ctx.SamplePerPixel),
	}
}

// TracePixel estimates the radiance for pixel (px, py) with spp² jittered
// stratified sub-samples, tone-maps and gamma-encodes the average, and
// writes the result into the packed BGRA buffer. Each invocation touches
// only its own 4 bytes, so disjoint pixels need no synchronization.
func (f *Frame) TracePixel(px, py uint32, rnd Source, pix []byte) {
	ctx := f.ctx

	var accumColor types.Vec3
	for x := uint32(0); x < ctx.SamplePerPixel; x++ {
		for y := uint32(0); y < ctx.SamplePerPixel; y++ {
			// Jitter the sub-sample inside its stratification cell.
			rx := (float32(px) + (float32(x)+rnd.Next())*f.invSpp) * f.widthPerPixel
			ry := (float32(py) + (float32(y)+rnd.Next())*f.invSpp) * f.heightPerPixel

			start := f.lowerLeft.Add(f.h.Mul(rx)).Add(f.u.Mul(ry))
			dir := start.Sub(ctx.CameraPos).Normalize()

			accumColor = accumColor.Add(TraceSample(ctx, start, dir, rnd))
		}
	}

	accumColor = accumColor.Mul(f.invSpp * f.invSpp)

	offset := (py*ctx.ImageWidth + px) * 4
	pix[offset+0] = encodeChannel(accumColor[2])
	pix[offset+1] = encodeChannel(accumColor[1])
	pix[offset+2] = encodeChannel(accumColor[0])
	pix[offset+3] = 255
}

// encodeChannel compresses a linear radiance value with a soft-knee tone
// curve, gamma-encodes it and quantizes to 8 bits.
func encodeChannel(c float32) uint8 {
	c = c * (1.0 + c*0.1) / (1.0 + c)
	if c < 0 {
		c = 0
	}
	c = float32(math.Pow(float64(c), 1.0/2.2))
	if c > 1 {
		c = 1
	}
	return uint8(255 * c)
}
