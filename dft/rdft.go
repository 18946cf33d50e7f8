package dft

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// RDFT computes the forward real discrete Fourier transform of a flattened
// 1-, 2- or 3-dimensional array in double precision, returning the half
// spectrum along the last axis as interleaved real/imaginary pairs. The
// output holds shape[0]*...*shape[d-2]*(shape[d-1]/2+1) complex values.
//
// The last axis is transformed first (real to half spectrum), then the
// remaining axes innermost to outermost, matching Volume's layout.
func RDFT(data []float64, shape []int) ([]float64, error) {
	if len(shape) < 1 || len(shape) > 3 {
		return nil, ErrInvalidShape
	}
	size := 1
	for _, s := range shape {
		if s < 1 {
			return nil, ErrInvalidShape
		}
		size *= s
	}
	if len(data) != size {
		return nil, ErrLengthMismatch
	}

	last := shape[len(shape)-1]
	hw := last/2 + 1
	lead := size / last

	out := make([]complex128, lead*hw)
	fft := fourier.NewFFT(last)
	row := make([]complex128, hw)
	for i := 0; i < lead; i++ {
		fft.Coefficients(row, data[i*last:(i+1)*last])
		copy(out[i*hw:], row)
	}

	switch len(shape) {
	case 2:
		transformAxis(out, shape[0], hw, 1, 0)
	case 3:
		d0, d1 := shape[0], shape[1]
		transformAxis(out, d1, hw, d0, d1*hw)
		transformAxis(out, d0, d1*hw, 1, 0)
	}

	ret := make([]float64, 2*len(out))
	for i, c := range out {
		ret[2*i] = real(c)
		ret[2*i+1] = imag(c)
	}
	return ret, nil
}

// transformAxis runs an n-point complex transform along an axis whose
// consecutive elements are stride apart. Lines start at
// outer*outerStride + inner for outer in [0, outerCount) and inner in
// [0, stride); outerStride groups repetitions of the axis.
func transformAxis(data []complex128, n int, stride int, outerCount int, outerStride int) {
	fft := fourier.NewCmplxFFT(n)
	src := make([]complex128, n)
	dst := make([]complex128, n)
	for o := 0; o < outerCount; o++ {
		base := o * outerStride
		for i := 0; i < stride; i++ {
			start := base + i
			for k := 0; k < n; k++ {
				src[k] = data[start+k*stride]
			}
			fft.Coefficients(dst, src)
			for k := 0; k < n; k++ {
				data[start+k*stride] = dst[k]
			}
		}
	}
}
