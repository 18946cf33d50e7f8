package dft

import "math"

// Plan holds the twiddle factors for a discrete Fourier transform of fixed
// length n, evaluated directly. For the block extents used by the denoiser
// (n <= 16) direct evaluation is competitive with an FFT and keeps strided
// access over packed multi-dimensional buffers trivial.
//
// A Plan is immutable after construction and safe for concurrent use.
type Plan struct {
	n   int
	cos []float32 // cos(2*pi*m/n) for m in [0, n)
	sin []float32
}

func NewPlan(n int) *Plan {
	p := &Plan{
		n:   n,
		cos: make([]float32, n),
		sin: make([]float32, n),
	}
	for m := 0; m < n; m++ {
		theta := 2 * math.Pi * float64(m) / float64(n)
		p.cos[m] = float32(math.Cos(theta))
		p.sin[m] = float32(math.Sin(theta))
	}
	return p
}

func (p *Plan) Len() int { return p.n }

// HalfLen is the number of coefficients of the conjugate-symmetric half
// spectrum of a real input, n/2+1.
func (p *Plan) HalfLen() int { return p.n/2 + 1 }

// ForwardReal computes the half spectrum of n real samples read with
// srcStride, writing n/2+1 coefficients with dstStride. dst and src must
// not alias.
func (p *Plan) ForwardReal(dst []complex64, dstStride int, src []float32, srcStride int) {
	for i := 0; i <= p.n/2; i++ {
		var re, im float32
		for j := 0; j < p.n; j++ {
			m := (i * j) % p.n
			v := src[j*srcStride]
			re += v * p.cos[m]
			im -= v * p.sin[m]
		}
		dst[i*dstStride] = complex(re, im)
	}
}

// Forward computes the full n-point transform of complex input. dst and src
// must not alias.
func (p *Plan) Forward(dst []complex64, dstStride int, src []complex64, srcStride int) {
	for i := 0; i < p.n; i++ {
		var re, im float32
		for j := 0; j < p.n; j++ {
			m := (i * j) % p.n
			c := src[j*srcStride]
			cr, ci := real(c), imag(c)
			re += cr*p.cos[m] + ci*p.sin[m]
			im += ci*p.cos[m] - cr*p.sin[m]
		}
		dst[i*dstStride] = complex(re, im)
	}
}

// Inverse computes the inverse n-point transform of complex input, scaled
// by 1/n. dst and src must not alias.
func (p *Plan) Inverse(dst []complex64, dstStride int, src []complex64, srcStride int) {
	inv := 1 / float32(p.n)
	for i := 0; i < p.n; i++ {
		var re, im float32
		for j := 0; j < p.n; j++ {
			m := (i * j) % p.n
			c := src[j*srcStride]
			cr, ci := real(c), imag(c)
			re += cr*p.cos[m] - ci*p.sin[m]
			im += ci*p.cos[m] + cr*p.sin[m]
		}
		dst[i*dstStride] = complex(re*inv, im*inv)
	}
}

// InverseReal reconstructs n real samples from the n/2+1 half spectrum,
// scaled by 1/n. The missing coefficients are recovered from conjugate
// symmetry; any residual imaginary part is discarded.
func (p *Plan) InverseReal(dst []float32, dstStride int, src []complex64, srcStride int) {
	inv := 1 / float32(p.n)
	half := p.n / 2
	for j := 0; j < p.n; j++ {
		var sum float32
		for i := 0; i <= half; i++ {
			c := src[i*srcStride]
			m := (i * j) % p.n
			term := real(c)*p.cos[m] - imag(c)*p.sin[m]
			if i == 0 || (p.n%2 == 0 && i == half) {
				sum += term
			} else {
				sum += 2 * term
			}
		}
		dst[j*dstStride] = sum * inv
	}
}
