package dft

import (
	"sync"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/internal/utils"
)

// Chunk is the half-open bin range [Start, End) handled by one task.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of bins in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Partition splits [0, n) into contiguous chunks of size bins; the last chunk
// may be shorter. size < 1 is treated as 1 and n <= 0 yields no chunks.
func Partition(n, size int) []Chunk {
	if n <= 0 {
		return nil
	}
	if size < 1 {
		size = 1
	}

	chunks := make([]Chunk, 0, utils.CeilDiv(n, size))
	for start := 0; start < n; start += size {
		chunks = append(chunks, Chunk{Start: start, End: min(start+size, n)})
	}
	return chunks
}

// transformParallel dispatches one task per chunk to a fixed pool of workers
// and blocks until every bin is written. Chunks never overlap, so the writes
// into out need no locking.
func transformParallel(samples []types.Complex, workers, chunkSize int) ([]types.Complex, int) {
	n := len(samples)
	out := make([]types.Complex, n)
	if n == 0 {
		return out, 0
	}

	if workers < 1 {
		workers = 1
	}
	if chunkSize < 1 {
		chunkSize = utils.CeilDiv(n, workers)
	}

	chunks := Partition(n, chunkSize)
	workers = min(workers, len(chunks))

	tasks := make(chan Chunk, len(chunks))
	for _, c := range chunks {
		tasks <- c
	}
	close(tasks)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for c := range tasks {
				for k := c.Start; k < c.End; k++ {
					out[k] = bin(samples, k)
				}
			}
		}()
	}
	wg.Wait()

	return out, len(chunks)
}
