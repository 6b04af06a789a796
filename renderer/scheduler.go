package renderer

// SplitBlocks splits frameH rows into contiguous blocks, one per worker.
// Workers are assumed equally fast, so rows are distributed evenly with
// any remainder appended to the first block. The returned block heights
// always sum to frameH; workers beyond the row count receive empty
// blocks.
func SplitBlocks(workers int, frameH uint32) []uint32 {
	assignment := make([]uint32, workers)

	perWorker := frameH / uint32(workers)
	var scheduledRows uint32
	for idx := range assignment {
		assignment[idx] = perWorker
		scheduledRows += perWorker
	}

	// In case rows don't add up to the frame height append the missing
	// ones to the first worker.
	assignment[0] += frameH - scheduledRows

	return assignment
}
