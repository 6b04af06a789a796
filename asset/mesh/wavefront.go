package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/idovelemon/ProjectVPT/log"
	"github.com/idovelemon/ProjectVPT/types"
)

var logger = log.New("mesh")

// A Triangle consists of three vertex positions wound counter-clockwise.
// Only positions are retained; normals and uv coords in the source file are
// ignored as the voxelizer has no use for them.
type Triangle struct {
	V0, V1, V2 types.Vec3
}

// Load reads a triangle list from a wavefront obj file. The path may point
// to a local file or to a http/https URL.
func Load(pathToMesh string) ([]Triangle, error) {
	res, err := newResource(pathToMesh)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	start := time.Now()
	triangles, err := Decode(res, res.Path())
	if err != nil {
		return nil, err
	}
	logger.Noticef("parsed %d triangles from %s in %d ms", len(triangles), res.Path(), time.Since(start).Nanoseconds()/1e6)

	return triangles, nil
}

// Decode parses the wavefront obj subset required for voxelization: vertex
// ('v') and face ('f') statements. Faces with more than three vertices are
// fan-triangulated; negative vertex references resolve relative to the end
// of the current vertex list. All other statements are skipped.
func Decode(r io.Reader, name string) ([]Triangle, error) {
	var (
		vertexList []types.Vec3
		triangles  []Triangle
		lineNum    int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return nil, emitError(name, lineNum, "%s", err.Error())
			}
			vertexList = append(vertexList, v)
		case "f":
			face, err := parseFace(lineTokens, len(vertexList))
			if err != nil {
				return nil, emitError(name, lineNum, "%s", err.Error())
			}

			// Fan-triangulate polygons with more than 3 vertices.
			for i := 1; i < len(face)-1; i++ {
				triangles = append(triangles, Triangle{
					V0: vertexList[face[0]],
					V1: vertexList[face[i]],
					V2: vertexList[face[i+1]],
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(triangles) == 0 {
		return nil, emitError(name, lineNum, "no faces defined")
	}

	return triangles, nil
}

// Parse a vertex statement into a Vec3.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf("unsupported syntax for 'v'; expected 3 arguments; got %d", len(lineTokens)-1)
	}

	var v types.Vec3
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		val, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return types.Vec3{}, fmt.Errorf("could not parse float: %s", lineTokens[tokIdx])
		}
		v[tokIdx-1] = float32(val)
	}

	return v, nil
}

// Parse a face statement into a list of resolved vertex list indices.
func parseFace(lineTokens []string, numVertices int) ([]int, error) {
	if len(lineTokens) < 4 {
		return nil, fmt.Errorf("unsupported syntax for 'f'; expected at least 3 arguments; got %d", len(lineTokens)-1)
	}

	indices := make([]int, 0, len(lineTokens)-1)
	for _, token := range lineTokens[1:] {
		// Faces may reference uv/normal indices as v/vt/vn; only the
		// vertex index is of interest here.
		vToken := strings.Split(token, "/")[0]
		index, err := strconv.Atoi(vToken)
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex index: %s", vToken)
		}

		// The obj format uses 1-based indices; negative values are
		// relative to the end of the vertex list.
		if index < 0 {
			index += numVertices
		} else {
			index--
		}

		if index < 0 || index >= numVertices {
			return nil, fmt.Errorf("vertex index out of bounds: %s", vToken)
		}
		indices = append(indices, index)
	}

	return indices, nil
}

// Generate an error message including the source file and line.
func emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)
	return fmt.Errorf("[%s: %d] error: %s", file, line, msg)
}
