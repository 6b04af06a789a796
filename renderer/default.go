package renderer

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/idovelemon/ProjectVPT/log"
	"github.com/idovelemon/ProjectVPT/tracer"
)

var logger = log.New("renderer")

// The default renderer splits the frame into one contiguous row block per
// worker and traces the blocks in parallel. Workers share the context and
// camera frame read-only; each one owns an independent random stream and
// writes to a disjoint slice of the frame buffer, so the hot path needs
// no synchronization at all.
type defaultRenderer struct {
	ctx  *tracer.Context
	opts Options

	frameBuffer []uint8
	stats       FrameStats
}

// NewDefault creates a renderer for the given immutable render context.
func NewDefault(ctx *tracer.Context, opts Options) (Renderer, error) {
	if ctx == nil {
		return nil, ErrContextNotDefined
	}
	if ctx.Medium == nil {
		return nil, ErrMediumNotDefined
	}
	if ctx.ImageWidth == 0 || ctx.ImageHeight == 0 {
		return nil, ErrInvalidDimensions
	}
	if ctx.SamplePerPixel == 0 {
		return nil, ErrInvalidSampleRate
	}

	if opts.NumWorkers <= 0 {
		opts.NumWorkers = runtime.NumCPU()
	}
	if opts.NumWorkers > int(ctx.ImageHeight) {
		opts.NumWorkers = int(ctx.ImageHeight)
	}

	return &defaultRenderer{
		ctx:         ctx,
		opts:        opts,
		frameBuffer: make([]uint8, ctx.ImageWidth*ctx.ImageHeight*4),
	}, nil
}

// Render frame.
func (r *defaultRenderer) Render() error {
	ctx := r.ctx
	frame := tracer.NewFrame(ctx)
	blocks := SplitBlocks(r.opts.NumWorkers, ctx.ImageHeight)

	r.stats = FrameStats{Workers: make([]WorkerStat, len(blocks))}
	frameArea := float32(ctx.ImageWidth * ctx.ImageHeight)

	logger.Noticef("rendering %dx%d frame with %d spp using %d workers",
		ctx.ImageWidth, ctx.ImageHeight, ctx.SamplePerPixel*ctx.SamplePerPixel, len(blocks))

	start := time.Now()
	var group errgroup.Group
	var blockY uint32
	for idx, blockH := range blocks {
		idx, blockY, blockH := idx, blockY, blockH
		group.Go(func() error {
			blockStart := time.Now()

			rnd := tracer.NewSource(r.opts.Seed + int64(idx))
			for py := blockY; py < blockY+blockH; py++ {
				for px := uint32(0); px < ctx.ImageWidth; px++ {
					frame.TracePixel(px, py, rnd, r.frameBuffer)
				}
			}

			r.stats.Workers[idx] = WorkerStat{
				Id:           fmt.Sprintf("worker-%d", idx),
				BlockY:       blockY,
				BlockH:       blockH,
				FramePercent: float32(blockH*ctx.ImageWidth) / frameArea * 100.0,
				RenderTime:   time.Since(blockStart),
			}
			return nil
		})
		blockY += blockH
	}

	if err := group.Wait(); err != nil {
		return err
	}
	r.stats.RenderTime = time.Since(start)

	logger.Noticef("rendered frame in %s", r.stats.RenderTime)
	return nil
}

// Access the packed BGRA frame buffer of the last rendered frame.
func (r *defaultRenderer) FrameBuffer() []uint8 {
	return r.frameBuffer
}

// Release frame resources.
func (r *defaultRenderer) Close() {
	r.frameBuffer = nil
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}
