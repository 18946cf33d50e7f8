package options

import "runtime"

// Options controls how a clip is driven through the filter.
type Options struct {
	// NumWorkers is the number of concurrent workers the host will use.
	// Worker IDs passed to ProcessFrame must lie in [0, NumWorkers).
	NumWorkers int
	Debug      bool
}

func NewOptions(options *Options) *Options {

	opt := &Options{NumWorkers: runtime.NumCPU()}
	if options != nil {
		if options.NumWorkers > 0 {
			opt.NumWorkers = options.NumWorkers
		}
		opt.Debug = options.Debug
	}
	return opt
}
