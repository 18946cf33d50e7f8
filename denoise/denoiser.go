package denoise

import (
	"fmt"
	"runtime"

	"github.com/vidfilter/dfttest-go/dft"
	"github.com/vidfilter/dfttest-go/internal/fpenv"
	"github.com/vidfilter/dfttest-go/options"
	"github.com/vidfilter/dfttest-go/plane"
	"github.com/vidfilter/dfttest-go/util"
)

// FrameSource is the upstream collaborator serving input frames. Frame is
// the only call that may block; the filter tolerates being resumed on a
// different worker afterwards since its scratch is keyed by an explicit
// worker ID, not by thread identity.
type FrameSource interface {
	Info() plane.Info
	Frame(n int) (*plane.Frame, error)
}

// Denoiser is a block based frequency domain spatio-temporal filter: each
// output frame is rebuilt from overlapping windowed 3D blocks that are
// transformed, attenuated per coefficient and overlap-added back.
//
// All configuration tables are immutable after New; ProcessFrame may be
// called concurrently from as many workers as declared in the options.
type Denoiser struct {
	src  FrameSource
	info plane.Info

	radius     int
	blockSize  int
	blockStep  int
	process    []bool
	zeroMean   bool
	filterType int
	sigma2     float32
	pmin       float32
	pmax       float32

	window     []float32   // (2r+1) * blockSize * blockSize
	sigma      []float32   // (2r+1) * blockSize * (blockSize/2+1)
	windowFreq []complex64 // same shape as sigma

	volume  *dft.Volume
	workers int
	scratch *scratchCache
}

// New validates params against the source clip and builds the filter.
func New(src FrameSource, params Params, opts *options.Options) (*Denoiser, error) {
	info := src.Info()
	if err := info.Format.Validate(); err != nil {
		return nil, err
	}
	if info.NumFrames < 1 {
		return nil, fmt.Errorf("denoise: source reports %d frames", info.NumFrames)
	}

	process, err := params.normalize(len(info.Widths))
	if err != nil {
		return nil, err
	}

	opt := options.NewOptions(opts)

	temporal := 2*params.Radius + 1
	d := &Denoiser{
		src:        src,
		info:       info,
		radius:     params.Radius,
		blockSize:  params.BlockSize,
		blockStep:  params.BlockStep,
		process:    process,
		zeroMean:   params.ZeroMean,
		filterType: params.FilterType,
		sigma2:     float32(params.Sigma2),
		pmin:       float32(params.Pmin),
		pmax:       float32(params.Pmax),
		window:     toFloat32(params.Window),
		sigma:      toFloat32(params.Sigma),
		volume:     dft.NewVolume(temporal, params.BlockSize, params.BlockSize),
		workers:    opt.NumWorkers,
		scratch:    newScratchCache(opt.NumWorkers),
	}

	if params.ZeroMean {
		d.windowFreq = make([]complex64, len(params.WindowFreq)/2)
		for i := range d.windowFreq {
			d.windowFreq[i] = complex(
				float32(params.WindowFreq[2*i]),
				float32(params.WindowFreq[2*i+1]),
			)
		}
	}

	return d, nil
}

// Workers reports the worker count the filter was sized for.
func (d *Denoiser) Workers() int { return d.workers }

// Info reports the clip the filter is bound to.
func (d *Denoiser) Info() plane.Info { return d.info }

// ProcessFrame produces output frame n. workerID identifies the calling
// worker and must stay within [0, Workers()); each distinct worker gets its
// own cached padded/accumulation buffers on first call.
func (d *Denoiser) ProcessFrame(workerID int, n int) (*plane.Frame, error) {
	last := d.info.NumFrames - 1
	frames := make([]*plane.Frame, 0, 2*d.radius+1)
	for i := n - d.radius; i <= n+d.radius; i++ {
		f, err := d.src.Frame(util.Clamp(i, 0, last))
		if err != nil {
			return nil, fmt.Errorf("denoise: fetching frame %d: %w", i, err)
		}
		frames = append(frames, f)
	}
	center := frames[d.radius]

	// Subnormal flushing is a per OS thread control register. Pin the
	// goroutine so the save, the block loop and the restore all execute on
	// the same thread; without the pin a migration would strand the flags
	// on the old thread and restore them onto an unrelated one.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	env := fpenv.DisableSubnormals()
	defer fpenv.Restore(env)

	sc := d.scratch.acquire(workerID, d.newScratch)

	out := &plane.Frame{
		Format: d.info.Format,
		Planes: make([]plane.Plane, len(center.Planes)),
	}
	for pi := range center.Planes {
		if !d.process[pi] {
			// passed through, sharing the source storage
			out.Planes[pi] = center.Planes[pi]
			continue
		}
		switch {
		case d.info.Format.Sample == plane.SampleFloat:
			processPlane[float32](d, sc, frames, out, pi)
		case d.info.Format.Bits > 8:
			processPlane[uint16](d, sc, frames, out, pi)
		default:
			processPlane[uint8](d, sc, frames, out, pi)
		}
	}

	return out, nil
}

// processPlane runs the full pipeline for one plane: reflective padding of
// the temporal stack, the sliding block loop, and the crop/quantize back
// into the output frame.
func processPlane[T plane.Sample](d *Denoiser, sc *scratch, frames []*plane.Frame, out *plane.Frame, pi int) {
	src := &frames[d.radius].Planes[pi]
	width, height := src.Width, src.Height

	padW := PadSize(width, d.blockSize, d.blockStep)
	padH := PadSize(height, d.blockSize, d.blockStep)
	planeSize := padH * padW

	padded := scratchPad[T](sc)
	for i, f := range frames {
		p := &f.Planes[pi]
		reflectPad(padded[i*planeSize:(i+1)*planeSize], plane.Data[T](p),
			width, height, p.Stride, d.blockSize, d.blockStep)
	}

	acc := sc.accum[:planeSize]
	for i := range acc {
		acc[i] = 0
	}

	scale := sampleScale(d.info.Format)
	for by := 0; by < PadCount(height, d.blockSize, d.blockStep); by++ {
		for bx := 0; bx < PadCount(width, d.blockSize, d.blockStep); bx++ {
			origin := (by*padW + bx) * d.blockStep

			loadBlock(sc.block, padded, origin, padW, planeSize,
				d.window, d.radius, d.blockSize, scale)

			d.filterBlock(sc.block, sc.freq, sc.tmp)

			storeBlock(acc[origin:], sc.block, d.window, d.radius, d.blockSize, padW)
		}
	}

	dst := plane.NewPlane(d.info.Format, width, height)
	storeFrame(plane.Data[T](&dst), acc, width, height, dst.Stride, padW, padH, d.info.Format)
	out.Planes[pi] = dst
}

// newScratch sizes a worker's buffers for the largest processed plane;
// smaller (subsampled) planes reuse a prefix of the same slabs.
func (d *Denoiser) newScratch() *scratch {
	var padW, padH int
	for pi := range d.info.Widths {
		if !d.process[pi] {
			continue
		}
		padW = util.Max(padW, PadSize(d.info.Widths[pi], d.blockSize, d.blockStep))
		padH = util.Max(padH, PadSize(d.info.Heights[pi], d.blockSize, d.blockStep))
	}

	temporal := 2*d.radius + 1
	sc := &scratch{
		accum: make([]float32, padH*padW),
		block: make([]float32, temporal*d.blockSize*d.blockSize),
		freq:  make([]complex64, d.volume.FreqLen()),
		tmp:   make([]complex64, d.volume.TmpLen()),
	}

	switch {
	case d.info.Format.Sample == plane.SampleFloat:
		sc.pad32 = make([]float32, temporal*padH*padW)
	case d.info.Format.Bits > 8:
		sc.pad16 = make([]uint16, temporal*padH*padW)
	default:
		sc.pad8 = make([]uint8, temporal*padH*padW)
	}
	return sc
}

func toFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}
