package denoise

import (
	"fmt"
)

// supportedBlockSize is the only spatial block width the block and
// transform code is currently specialized for.
const supportedBlockSize = 16

// Params configures a Denoiser. Validated once by New; immutable after.
type Params struct {
	// Radius is the temporal radius; the filter works on windows of
	// 2*Radius+1 frames. Valid values are 0 to 3.
	Radius int

	// BlockSize is the spatial block width; 0 selects the supported
	// default of 16, any other value must equal 16.
	BlockSize int

	// BlockStep is the sliding step between block origins, 1..BlockSize.
	// 0 selects BlockSize (non-overlapping blocks).
	BlockStep int

	// Planes lists the plane indices to process. An empty (or nil) list
	// means all planes. Unlisted planes are passed through, sharing the
	// source storage.
	Planes []int

	ZeroMean   bool
	FilterType int
	Sigma2     float64
	Pmin       float64
	Pmax       float64

	// Window holds (2*Radius+1) * BlockSize * BlockSize analysis window
	// coefficients.
	Window []float64

	// Sigma holds (2*Radius+1) * BlockSize * (BlockSize/2+1) attenuation
	// parameters, one per half-spectrum coefficient.
	Sigma []float64

	// WindowFreq is the forward transform of Window as interleaved
	// real/imaginary pairs. Required iff ZeroMean is set.
	WindowFreq []float64
}

// DefaultParams returns the parameter defaults: block size 16 with
// non-overlapping step, zero-mean filtering, all planes.
func DefaultParams() Params {
	return Params{
		BlockSize: supportedBlockSize,
		ZeroMean:  true,
	}
}

// normalize fills in defaulted fields and checks every bound the filter
// relies on later. numPlanes is the plane count of the clip.
func (p *Params) normalize(numPlanes int) ([]bool, error) {
	if p.Radius < 0 || p.Radius > 3 {
		return nil, fmt.Errorf("denoise: radius must be in [0, 3], got %d", p.Radius)
	}
	if p.BlockSize == 0 {
		p.BlockSize = supportedBlockSize
	}
	if p.BlockSize != supportedBlockSize {
		return nil, fmt.Errorf("denoise: block size must be %d, got %d", supportedBlockSize, p.BlockSize)
	}
	if p.BlockStep == 0 {
		p.BlockStep = p.BlockSize
	}
	if p.BlockStep < 1 || p.BlockStep > p.BlockSize {
		return nil, fmt.Errorf("denoise: block step must be in [1, %d], got %d", p.BlockSize, p.BlockStep)
	}

	process := make([]bool, numPlanes)
	if len(p.Planes) == 0 {
		for i := range process {
			process[i] = true
		}
	} else {
		for _, pl := range p.Planes {
			if pl < 0 || pl >= numPlanes {
				return nil, fmt.Errorf("denoise: plane index %d out of range", pl)
			}
			if process[pl] {
				return nil, fmt.Errorf("denoise: plane %d specified twice", pl)
			}
			process[pl] = true
		}
	}

	temporal := 2*p.Radius + 1
	half := p.BlockSize/2 + 1
	if want := temporal * p.BlockSize * p.BlockSize; len(p.Window) != want {
		return nil, fmt.Errorf("denoise: window must hold %d coefficients, got %d", want, len(p.Window))
	}
	if want := temporal * p.BlockSize * half; len(p.Sigma) != want {
		return nil, fmt.Errorf("denoise: sigma must hold %d values, got %d", want, len(p.Sigma))
	}
	if p.ZeroMean {
		if want := temporal * p.BlockSize * half * 2; len(p.WindowFreq) != want {
			return nil, fmt.Errorf("denoise: window_freq must hold %d values when zero_mean is set, got %d", want, len(p.WindowFreq))
		}
	}

	return process, nil
}
