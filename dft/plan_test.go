package dft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveRDFT is the textbook O(n^2) reference in double precision.
func naiveRDFT(src []float64) []complex128 {
	n := len(src)
	out := make([]complex128, n/2+1)
	for i := range out {
		var sum complex128
		for j, v := range src {
			theta := -2 * math.Pi * float64(i) * float64(j) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, theta))
		}
		out[i] = sum
	}
	return out
}

func TestForwardRealMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 3, 4, 7, 8, 16} {
		src := make([]float32, n)
		ref := make([]float64, n)
		for i := range src {
			v := rng.Float64()*2 - 1
			src[i] = float32(v)
			ref[i] = v
		}

		p := NewPlan(n)
		dst := make([]complex64, p.HalfLen())
		p.ForwardReal(dst, 1, src, 1)

		want := naiveRDFT(ref)
		for i := range dst {
			assert.InDelta(t, real(want[i]), float64(real(dst[i])), 1e-4, "n=%d re[%d]", n, i)
			assert.InDelta(t, imag(want[i]), float64(imag(dst[i])), 1e-4, "n=%d im[%d]", n, i)
		}
	}
}

func TestForwardRealZeroInput(t *testing.T) {
	p := NewPlan(16)
	src := make([]float32, 16)
	dst := make([]complex64, p.HalfLen())
	p.ForwardReal(dst, 1, src, 1)
	for i, c := range dst {
		assert.Zero(t, real(c), "re[%d]", i)
		assert.Zero(t, imag(c), "im[%d]", i)
	}
}

func TestForwardRealConstantInput(t *testing.T) {
	const n = 16
	const value = 3.25
	p := NewPlan(n)
	src := make([]float32, n)
	for i := range src {
		src[i] = value
	}
	dst := make([]complex64, p.HalfLen())
	p.ForwardReal(dst, 1, src, 1)

	assert.InDelta(t, n*value, float64(real(dst[0])), 1e-3)
	assert.InDelta(t, 0, float64(imag(dst[0])), 1e-3)
	for i := 1; i < len(dst); i++ {
		assert.InDelta(t, 0, float64(real(dst[i])), 1e-3, "re[%d]", i)
		assert.InDelta(t, 0, float64(imag(dst[i])), 1e-3, "im[%d]", i)
	}
}

func TestRealRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{1, 2, 5, 8, 16} {
		p := NewPlan(n)
		src := make([]float32, n)
		for i := range src {
			src[i] = float32(rng.Float64()*2 - 1)
		}
		freq := make([]complex64, p.HalfLen())
		back := make([]float32, n)

		p.ForwardReal(freq, 1, src, 1)
		p.InverseReal(back, 1, freq, 1)

		for i := range src {
			assert.InDelta(t, float64(src[i]), float64(back[i]), 1e-5, "n=%d [%d]", n, i)
		}
	}
}

func TestComplexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 16
	p := NewPlan(n)
	src := make([]complex64, n)
	for i := range src {
		src[i] = complex(float32(rng.Float64()*2-1), float32(rng.Float64()*2-1))
	}
	freq := make([]complex64, n)
	back := make([]complex64, n)

	p.Forward(freq, 1, src, 1)
	p.Inverse(back, 1, freq, 1)

	for i := range src {
		assert.InDelta(t, float64(real(src[i])), float64(real(back[i])), 1e-5)
		assert.InDelta(t, float64(imag(src[i])), float64(imag(back[i])), 1e-5)
	}
}

func TestStridedAccess(t *testing.T) {
	// transforming a strided row must match the contiguous result
	const n = 8
	const stride = 3
	rng := rand.New(rand.NewSource(4))

	contiguous := make([]float32, n)
	strided := make([]float32, n*stride)
	for i := 0; i < n; i++ {
		v := float32(rng.Float64())
		contiguous[i] = v
		strided[i*stride] = v
	}

	p := NewPlan(n)
	want := make([]complex64, p.HalfLen())
	got := make([]complex64, p.HalfLen()*stride)
	p.ForwardReal(want, 1, contiguous, 1)
	p.ForwardReal(got, stride, strided, stride)

	for i := 0; i < p.HalfLen(); i++ {
		assert.Equal(t, want[i], got[i*stride], "coefficient %d", i)
	}
}

func TestVolumeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		rows  int
		cols  int
	}{
		{"single slice 16x16", 1, 16, 16},
		{"temporal radius 1", 3, 16, 16},
		{"temporal radius 3", 7, 16, 16},
		{"odd extents", 3, 5, 6},
	}
	rng := rand.New(rand.NewSource(5))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewVolume(tc.depth, tc.rows, tc.cols)

			spatial := make([]float32, tc.depth*tc.rows*tc.cols)
			for i := range spatial {
				spatial[i] = float32(rng.Float64()*2 - 1)
			}
			orig := make([]float32, len(spatial))
			copy(orig, spatial)

			freq := make([]complex64, v.FreqLen())
			tmp := make([]complex64, v.TmpLen())
			v.Forward(freq, spatial, tmp)
			v.Inverse(spatial, freq, tmp)

			for i := range orig {
				require.InDelta(t, float64(orig[i]), float64(spatial[i]), 1e-4, "[%d]", i)
			}
		})
	}
}

func TestVolumeConstantDC(t *testing.T) {
	// a constant volume concentrates all energy in the DC coefficient
	v := NewVolume(3, 4, 4)
	spatial := make([]float32, 3*4*4)
	for i := range spatial {
		spatial[i] = 2
	}
	freq := make([]complex64, v.FreqLen())
	tmp := make([]complex64, v.TmpLen())
	v.Forward(freq, spatial, tmp)

	assert.InDelta(t, 2*3*4*4, float64(real(freq[0])), 1e-3)
	for i := 1; i < len(freq); i++ {
		assert.InDelta(t, 0, float64(real(freq[i])), 1e-3, "re[%d]", i)
		assert.InDelta(t, 0, float64(imag(freq[i])), 1e-3, "im[%d]", i)
	}
}
