package search

// Partition splits an ordered file list into at most workers contiguous
// chunks whose sizes differ by at most one. Every file lands in exactly
// one chunk, order within a chunk is preserved, and no chunk is empty:
// when there are fewer files than workers, only len(files) chunks are
// produced. An empty input yields no chunks.
func Partition(files []string, workers int) [][]string {
	if len(files) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	base := len(files) / workers
	rem := len(files) % workers

	chunks := make([][]string, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks = append(chunks, files[start:start+size])
		start += size
	}

	return chunks
}
