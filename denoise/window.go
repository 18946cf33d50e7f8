package denoise

import (
	"fmt"
	"math"

	"github.com/vidfilter/dfttest-go/dft"
)

// WindowMode selects the analysis window shape along one axis.
type WindowMode int

const (
	WindowHanning WindowMode = iota
	WindowHamming
	WindowBlackman
	WindowRectangular
)

func windowValue(mode WindowMode, i int, n int) float64 {
	if n == 1 {
		return 1
	}
	theta := 2 * math.Pi * (float64(i) + 0.5) / float64(n)
	switch mode {
	case WindowHamming:
		return 0.53836 - 0.46164*math.Cos(theta)
	case WindowBlackman:
		return 0.42323 - 0.49755*math.Cos(theta) + 0.07922*math.Cos(2*theta)
	case WindowRectangular:
		return 1
	default:
		return 0.5 - 0.5*math.Cos(theta)
	}
}

// BuildWindow builds the (2*radius+1) x blockSize x blockSize analysis
// window as a separable product of a temporal and a spatial window, and
// normalizes it so that overlap-added squared window weights sum to one at
// every output position: blocks stepping by blockStep tile back to a unity
// field, making reconstruction exact when attenuation is disabled.
func BuildWindow(radius int, blockSize int, blockStep int, temporal WindowMode, spatial WindowMode) []float64 {
	n := 2*radius + 1

	tw := make([]float64, n)
	for i := range tw {
		tw[i] = windowValue(temporal, i, n)
	}
	// the centre temporal weight is applied on both load and store, so
	// reconstruction weight must come from the spatial axes alone
	for i := range tw {
		tw[i] /= tw[radius]
	}

	sw := make([]float64, blockSize)
	for i := range sw {
		sw[i] = windowValue(spatial, i, blockSize)
	}
	normalizeOverlap(sw, blockStep)

	window := make([]float64, n*blockSize*blockSize)
	for t := 0; t < n; t++ {
		for r := 0; r < blockSize; r++ {
			for c := 0; c < blockSize; c++ {
				window[(t*blockSize+r)*blockSize+c] = tw[t] * sw[r] * sw[c]
			}
		}
	}
	return window
}

// normalizeOverlap scales a 1D window so that the squared weights of all
// step-aligned overlapping copies sum to one at every position.
func normalizeOverlap(w []float64, step int) {
	norm := make([]float64, step)
	for i, v := range w {
		norm[i%step] += v * v
	}
	for i := range w {
		w[i] /= math.Sqrt(norm[i%step])
	}
}

// BuildSigma fills the (2*radius+1) x blockSize x (blockSize/2+1) threshold
// table with a single value.
func BuildSigma(value float64, radius int, blockSize int) []float64 {
	n := (2*radius + 1) * blockSize * (blockSize/2 + 1)
	sigma := make([]float64, n)
	for i := range sigma {
		sigma[i] = value
	}
	return sigma
}

// WindowFrequency computes the forward transform of an analysis window,
// interleaved real/imaginary, in the exact shape the zero-mean path
// expects as Params.WindowFreq.
func WindowFrequency(window []float64, radius int, blockSize int) ([]float64, error) {
	shape := []int{2*radius + 1, blockSize, blockSize}
	ret, err := dft.RDFT(window, shape)
	if err != nil {
		return nil, fmt.Errorf("denoise: transforming window: %w", err)
	}
	return ret, nil
}
