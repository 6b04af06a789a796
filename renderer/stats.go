package renderer

import "time"

type WorkerStat struct {
	// The worker id.
	Id string

	// The block start row, height and the percentage of total frame
	// area it represents.
	BlockY       uint32
	BlockH       uint32
	FramePercent float32

	// Render time for the assigned block.
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual worker stats.
	Workers []WorkerStat

	// Total render time for the entire frame.
	RenderTime time.Duration
}
