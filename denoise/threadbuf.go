package denoise

import (
	"sync"
	"sync/atomic"
)

// scratch is the per-worker working set: the packed padded volume (typed to
// the clip format), the float accumulation buffer and the per-block
// transform scratch. Buffers are sized once for the largest processed
// plane and never resized; they live until the Denoiser is dropped.
type scratch struct {
	pad8  []uint8
	pad16 []uint16
	pad32 []float32

	accum []float32

	block []float32
	freq  []complex64
	tmp   []complex64
}

// scratchPad returns the typed padded volume of a scratch entry.
func scratchPad[T any](sc *scratch) []T {
	var s []T
	switch v := any(&s).(type) {
	case *[]uint8:
		*v = sc.pad8
	case *[]uint16:
		*v = sc.pad16
	case *[]float32:
		*v = sc.pad32
	}
	return s
}

// scratchCache hands each worker its scratch entry, allocating it on first
// use. The exclusive lock is held only around registration; once the
// expected number of workers has registered the counter hits zero, the map
// is never written again and lookups skip locking entirely. Callers must
// keep worker IDs within the expected worker count given at construction.
type scratchCache struct {
	mu            sync.RWMutex
	entries       map[int]*scratch
	uninitialized atomic.Int32
}

func newScratchCache(expected int) *scratchCache {
	c := &scratchCache{entries: make(map[int]*scratch, expected)}
	c.uninitialized.Store(int32(expected))
	return c
}

func (c *scratchCache) acquire(workerID int, alloc func() *scratch) *scratch {
	if c.uninitialized.Load() == 0 {
		if sc, ok := c.entries[workerID]; ok {
			return sc
		}
	}

	c.mu.RLock()
	sc, ok := c.entries[workerID]
	c.mu.RUnlock()
	if ok {
		return sc
	}

	sc = alloc()

	c.mu.Lock()
	if existing, ok := c.entries[workerID]; ok {
		// lost the registration race to another goroutine with the same ID
		c.mu.Unlock()
		return existing
	}
	c.entries[workerID] = sc
	c.mu.Unlock()

	c.uninitialized.Add(-1)
	return sc
}
