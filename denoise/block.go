package denoise

import (
	"github.com/vidfilter/dfttest-go/plane"
	"github.com/vidfilter/dfttest-go/util"
)

// sampleScale normalizes every supported bit depth to an 8 bit equivalent
// range: 1/2^(bits-8) for integer samples, 255 for 32 bit float.
func sampleScale(f plane.Format) float32 {
	if f.Sample == plane.SampleFloat {
		return 255
	}
	return 1 / float32(int(1)<<(f.Bits-8))
}

// loadBlock reads a (2*radius+1) x blockSize x blockSize window from the
// packed padded volume at the given origin, converts to float and applies
// the analysis window. planeSize is the padded spatial size of one
// temporal slice.
func loadBlock[T plane.Sample](block []float32, padded []T, origin int, padW int, planeSize int, window []float32, radius int, blockSize int, scale float32) {
	for t := 0; t < 2*radius+1; t++ {
		for r := 0; r < blockSize; r++ {
			srcRow := padded[t*planeSize+origin+r*padW:][:blockSize]
			dstRow := block[(t*blockSize+r)*blockSize:][:blockSize]
			winRow := window[(t*blockSize+r)*blockSize:][:blockSize]
			for c := range dstRow {
				dstRow[c] = float32(srcRow[c]) * scale * winRow[c]
			}
		}
	}
}

// storeBlock overlap-adds the centre temporal slice of a filtered block
// into the accumulation buffer, re-applying the window: acc += block * win.
func storeBlock(acc []float32, block []float32, window []float32, radius int, blockSize int, padW int) {
	base := radius * blockSize * blockSize
	for r := 0; r < blockSize; r++ {
		accRow := acc[r*padW:][:blockSize]
		blockRow := block[base+r*blockSize:][:blockSize]
		winRow := window[base+r*blockSize:][:blockSize]
		for c := range accRow {
			accRow[c] += blockRow[c] * winRow[c]
		}
	}
}

// storeFrame crops the accumulation buffer back to the true plane and
// converts to the output depth: round and clamp to [0, 2^bits-1] for
// integer samples, direct scale-back for float.
func storeFrame[T plane.Sample](dst []T, acc []float32, width int, height int, dstStride int, padW int, padH int, f plane.Format) {
	scale := sampleScale(f)

	offY := (padH - height) / 2
	offX := (padW - width) / 2

	if f.Sample == plane.SampleFloat {
		for y := 0; y < height; y++ {
			srcRow := acc[(offY+y)*padW+offX:][:width]
			dstRow := dst[y*dstStride:][:width]
			for x := range dstRow {
				dstRow[x] = T(srcRow[x] / scale)
			}
		}
		return
	}

	peak := int32(1)<<f.Bits - 1
	for y := 0; y < height; y++ {
		srcRow := acc[(offY+y)*padW+offX:][:width]
		dstRow := dst[y*dstStride:][:width]
		for x := range dstRow {
			v := util.Clamp(int32(srcRow[x]/scale+0.5), 0, peak)
			dstRow[x] = T(v)
		}
	}
}
