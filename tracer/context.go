package tracer

import (
	"github.com/idovelemon/ProjectVPT/medium"
	"github.com/idovelemon/ProjectVPT/types"
)

// Context carries everything a pixel estimate needs: the camera, the
// ambient light, the medium and the sampling limits. It is constructed
// once per render and shared read-only by all workers; CameraDir must be
// normalized by the caller.
type Context struct {
	CameraPos types.Vec3
	CameraDir types.Vec3
	ZNear     float32
	FOV       float32

	Ambient types.Vec3

	Medium *medium.Medium

	// Hard cap on interactions per path; paths that exceed it
	// contribute no radiance.
	MaxInteractions uint32

	ImageWidth  uint32
	ImageHeight uint32

	// Sub-sample count per pixel axis; the total sample count per
	// pixel is the square of this value.
	SamplePerPixel uint32
}
