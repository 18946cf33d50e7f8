package denoise

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vidfilter/dfttest-go/plane"
	"github.com/vidfilter/dfttest-go/util"
)

// Runner drives a Denoiser over its whole clip with the worker pool the
// filter was sized for. Frames complete in no particular order.
type Runner struct {
	d *Denoiser
}

func NewRunner(d *Denoiser) *Runner {
	return &Runner{d: d}
}

// ProcessAll filters every frame of the clip and hands each result to
// emit. emit is called from worker goroutines, one call at a time, with no
// ordering guarantee. The first error stops the run and is returned.
func (r *Runner) ProcessAll(emit func(n int, f *plane.Frame) error) error {
	num := r.d.Info().NumFrames

	indices := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	// a short clip needs no more workers than it has frames
	for w := 0; w < util.Min(r.d.Workers(), num); w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for n := range indices {
				f, err := r.d.ProcessFrame(workerID, n)
				if err != nil {
					log.Errorf("processing frame %d: %v", n, err)
					fail(err)
					continue
				}
				mu.Lock()
				if firstErr == nil && emit != nil {
					if err := emit(n, f); err != nil {
						firstErr = err
					}
				}
				mu.Unlock()
			}
		}(w)
	}

	for n := 0; n < num; n++ {
		mu.Lock()
		stop := firstErr != nil
		mu.Unlock()
		if stop {
			break
		}
		indices <- n
	}
	close(indices)
	wg.Wait()

	return firstErr
}
