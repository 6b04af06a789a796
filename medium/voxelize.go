package medium

import (
	"fmt"
	"time"

	"github.com/idovelemon/ProjectVPT/asset/mesh"
	"github.com/idovelemon/ProjectVPT/log"
	"github.com/idovelemon/ProjectVPT/types"
)

var logger = log.New("medium")

// BuildGrid rasterizes a closed triangle mesh into a density grid: each
// voxel center is classified inside or outside the mesh by counting ray
// crossings, and interior voxels receive the given extinction value. The
// mesh is expected to be watertight; open meshes misclassify the voxels
// behind their holes.
func BuildGrid(triangles []mesh.Triangle, resolution int, extent types.Vec3, extinction float32) (*DensityGrid, error) {
	if len(triangles) == 0 {
		return nil, fmt.Errorf("medium: cannot voxelize an empty triangle list")
	}

	grid, err := NewDensityGrid(resolution, extent)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	halfExtent := extent.Mul(0.5)
	cellSize := types.Vec3{
		extent[0] / float32(resolution),
		extent[1] / float32(resolution),
		extent[2] / float32(resolution),
	}

	var interior int
	for z := 0; z < resolution; z++ {
		for y := 0; y < resolution; y++ {
			for x := 0; x < resolution; x++ {
				center := types.Vec3{
					(float32(x)+0.5)*cellSize[0] - halfExtent[0],
					(float32(y)+0.5)*cellSize[1] - halfExtent[1],
					(float32(z)+0.5)*cellSize[2] - halfExtent[2],
				}
				if insideMesh(triangles, center) {
					grid.Set(x, y, z, extinction)
					interior++
				}
			}
		}
	}

	logger.Noticef("voxelized %d triangles into %d³ grid (%d interior voxels) in %d ms",
		len(triangles), resolution, interior, time.Since(start).Nanoseconds()/1e6)

	return grid, nil
}

// insideMesh classifies a point against a closed mesh by shooting a ray
// towards +X and counting triangle crossings; an odd count means the point
// is interior.
func insideMesh(triangles []mesh.Triangle, point types.Vec3) bool {
	rayDir := types.XYZ(1, 0, 0)

	var crossings int
	for _, tri := range triangles {
		if _, hit := intersectTriangle(point, rayDir, tri); hit {
			crossings++
		}
	}

	return crossings%2 == 1
}

// intersectTriangle runs the Möller-Trumbore ray/triangle test and returns
// the parametric hit distance for hits in front of the ray origin.
func intersectTriangle(orig, dir types.Vec3, tri mesh.Triangle) (float32, bool) {
	const eps = 1e-7

	edge1 := tri.V1.Sub(tri.V0)
	edge2 := tri.V2.Sub(tri.V0)

	pvec := dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -eps && det < eps {
		// Ray is parallel to the triangle plane.
		return 0, false
	}
	invDet := 1.0 / det

	tvec := orig.Sub(tri.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(qvec) * invDet
	if t <= eps {
		return 0, false
	}

	return t, true
}
