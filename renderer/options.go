package renderer

type Options struct {
	// Number of render workers. Zero selects one worker per logical CPU.
	NumWorkers int

	// Master seed; worker k draws from an independent stream seeded
	// with Seed + k.
	Seed int64
}
