package renderer

type Renderer interface {
	// Render frame.
	Render() error

	// Access the packed BGRA frame buffer of the last rendered frame.
	FrameBuffer() []uint8

	// Release frame resources.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
