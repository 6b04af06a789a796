package cmd

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/idovelemon/ProjectVPT/asset/bitmap"
	"github.com/idovelemon/ProjectVPT/asset/mesh"
	"github.com/idovelemon/ProjectVPT/medium"
	"github.com/idovelemon/ProjectVPT/renderer"
	"github.com/idovelemon/ProjectVPT/tracer"
	"github.com/idovelemon/ProjectVPT/types"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	med, err := buildMedium(ctx)
	if err != nil {
		return err
	}

	// The camera orbits nothing: it sits in front of the volume box
	// looking at its center.
	cameraPos := types.XYZ(0, 0.1, -1.2)
	cameraDir := types.Vec3{}.Sub(cameraPos).Normalize()

	ambient := float32(ctx.Float64("ambient"))
	renderContext := &tracer.Context{
		CameraPos:       cameraPos,
		CameraDir:       cameraDir,
		ZNear:           0.01,
		FOV:             0.25 * math.Pi,
		Ambient:         types.XYZ(ambient, ambient, ambient),
		Medium:          med,
		MaxInteractions: uint32(ctx.Int("max-interactions")),
		ImageWidth:      uint32(ctx.Int("width")),
		ImageHeight:     uint32(ctx.Int("height")),
		SamplePerPixel:  uint32(ctx.Int("spp")),
	}

	seed := ctx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r, err := renderer.NewDefault(renderContext, renderer.Options{
		NumWorkers: ctx.Int("workers"),
		Seed:       seed,
	})
	if err != nil {
		return err
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	out := ctx.String("out")
	if err = bitmap.WriteFile(out, renderContext.ImageWidth, renderContext.ImageHeight, r.FrameBuffer()); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", out)

	return nil
}

// Build the medium selected by the cli flags: one of the procedural
// fields, or a density grid voxelized from a wavefront obj mesh.
func buildMedium(ctx *cli.Context) (*medium.Medium, error) {
	extent := types.XYZ(1, 1, 1)
	albedo := float32(ctx.Float64("albedo"))
	maxExtinction := float32(ctx.Float64("max-extinction"))
	if albedo < 0 || albedo > 1 {
		return nil, fmt.Errorf("albedo must be in [0, 1]; got %f", albedo)
	}
	if maxExtinction <= 0 {
		return nil, fmt.Errorf("max extinction must be positive; got %f", maxExtinction)
	}

	selector := ctx.String("medium")
	switch {
	case selector == "sponge":
		return &medium.Medium{
			Extent:        extent,
			Albedo:        albedo,
			MaxExtinction: maxExtinction,
			Field:         &medium.SpongeField{HalfExtent: extent.Mul(0.5), MaxExtinction: maxExtinction},
		}, nil
	case selector == "sphere":
		return &medium.Medium{
			Extent:        extent,
			Albedo:        albedo,
			MaxExtinction: maxExtinction,
			Field: &medium.SphereField{
				Center:        types.XYZ(0, 0, 0),
				Radius:        0.45 * extent[0],
				MaxExtinction: maxExtinction,
			},
		}, nil
	case strings.HasSuffix(selector, ".obj"):
		triangles, err := mesh.Load(selector)
		if err != nil {
			return nil, err
		}

		grid, err := medium.BuildGrid(triangles, ctx.Int("grid-res"), extent, maxExtinction)
		if err != nil {
			return nil, err
		}

		return &medium.Medium{
			Extent:        extent,
			Albedo:        albedo,
			MaxExtinction: grid.Max(),
			Field:         grid,
		}, nil
	}

	return nil, fmt.Errorf("unsupported medium %q; expected sponge, sphere or a path to an obj file", selector)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d - %d", stat.BlockY, stat.BlockY+stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
