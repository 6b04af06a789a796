package renderer

import (
	"math"
	"testing"

	"github.com/idovelemon/ProjectVPT/medium"
	"github.com/idovelemon/ProjectVPT/tracer"
	"github.com/idovelemon/ProjectVPT/types"
)

// emptyField reports zero extinction everywhere.
type emptyField struct{}

func (emptyField) Extinction(types.Vec3) float32 { return 0 }

func makeTestContext() *tracer.Context {
	return &tracer.Context{
		CameraPos:       types.XYZ(0, 0.1, -1.2),
		CameraDir:       types.XYZ(0, -0.1, 1.2).Normalize(),
		ZNear:           0.01,
		FOV:             0.25 * math.Pi,
		Ambient:         types.XYZ(4, 4, 4),
		MaxInteractions: 1024,
		ImageWidth:      16,
		ImageHeight:     16,
		SamplePerPixel:  2,
		Medium: &medium.Medium{
			Extent:        types.XYZ(1, 1, 1),
			Albedo:        0.8,
			MaxExtinction: 100.0,
			Field:         emptyField{},
		},
	}
}

func TestNewDefaultValidation(t *testing.T) {
	type spec struct {
		mutate   func(*tracer.Context) *tracer.Context
		expError error
	}
	specs := []spec{
		{func(ctx *tracer.Context) *tracer.Context { return nil }, ErrContextNotDefined},
		{func(ctx *tracer.Context) *tracer.Context { ctx.Medium = nil; return ctx }, ErrMediumNotDefined},
		{func(ctx *tracer.Context) *tracer.Context { ctx.ImageWidth = 0; return ctx }, ErrInvalidDimensions},
		{func(ctx *tracer.Context) *tracer.Context { ctx.SamplePerPixel = 0; return ctx }, ErrInvalidSampleRate},
	}

	for index, s := range specs {
		_, err := NewDefault(s.mutate(makeTestContext()), Options{})
		if err != s.expError {
			t.Fatalf("[spec %d] expected to get %v; got %v", index, s.expError, err)
		}
	}
}

// An empty medium renders to the tone-mapped ambient color uniformly; an
// ambient radiance of 4 saturates every channel.
func TestRenderEmptyMedium(t *testing.T) {
	r, err := NewDefault(makeTestContext(), Options{NumWorkers: 4, Seed: 99})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		t.Fatal(err)
	}

	fb := r.FrameBuffer()
	if len(fb) != 16*16*4 {
		t.Fatalf("expected frame buffer of %d bytes; got %d", 16*16*4, len(fb))
	}
	for offset, v := range fb {
		if v != 255 {
			t.Fatalf("expected saturated ambient at offset %d; got %d", offset, v)
		}
	}
}

func TestRenderStats(t *testing.T) {
	r, err := NewDefault(makeTestContext(), Options{NumWorkers: 4})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		t.Fatal(err)
	}

	stats := r.Stats()
	if len(stats.Workers) != 4 {
		t.Fatalf("expected stats for 4 workers; got %d", len(stats.Workers))
	}
	if stats.RenderTime <= 0 {
		t.Fatalf("expected a positive total render time; got %s", stats.RenderTime)
	}

	var rows uint32
	var framePercent float32
	for _, stat := range stats.Workers {
		rows += stat.BlockH
		framePercent += stat.FramePercent
	}
	if rows != 16 {
		t.Fatalf("expected worker blocks to cover 16 rows; got %d", rows)
	}
	if framePercent < 99.9 || framePercent > 100.1 {
		t.Fatalf("expected frame percentages to sum to 100; got %f", framePercent)
	}
}

// Workers with more workers than rows still cover the whole frame.
func TestRenderMoreWorkersThanRows(t *testing.T) {
	ctx := makeTestContext()
	ctx.ImageHeight = 2
	r, err := NewDefault(ctx, Options{NumWorkers: 16})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		t.Fatal(err)
	}

	stats := r.Stats()
	if len(stats.Workers) > 2 {
		t.Fatalf("expected the worker count to clamp to the row count; got %d", len(stats.Workers))
	}
}
