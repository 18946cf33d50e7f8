package dft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveRDFTND computes the full multi-dimensional DFT in the dumbest
// possible way and keeps the half spectrum along the last axis.
func naiveRDFTND(data []float64, shape []int) []complex128 {
	dims := make([]int, 3)
	for i := range dims {
		dims[i] = 1
	}
	copy(dims[3-len(shape):], shape)
	d0, d1, d2 := dims[0], dims[1], dims[2]

	hw := d2/2 + 1
	out := make([]complex128, d0*d1*hw)
	for k0 := 0; k0 < d0; k0++ {
		for k1 := 0; k1 < d1; k1++ {
			for k2 := 0; k2 < hw; k2++ {
				var sum complex128
				for j0 := 0; j0 < d0; j0++ {
					for j1 := 0; j1 < d1; j1++ {
						for j2 := 0; j2 < d2; j2++ {
							theta := -2 * math.Pi * (float64(k0*j0)/float64(d0) +
								float64(k1*j1)/float64(d1) +
								float64(k2*j2)/float64(d2))
							v := data[(j0*d1+j1)*d2+j2]
							sum += complex(v, 0) * cmplx.Exp(complex(0, theta))
						}
					}
				}
				out[(k0*d1+k1)*hw+k2] = sum
			}
		}
	}
	return out
}

func TestRDFTOnes(t *testing.T) {
	ret, err := RDFT([]float64{1, 1, 1, 1}, []int{4})
	require.NoError(t, err)
	require.Len(t, ret, 6)
	assert.InDelta(t, 4, ret[0], 1e-12)
	for i := 1; i < 6; i++ {
		assert.InDelta(t, 0, ret[i], 1e-12, "[%d]", i)
	}
}

func TestRDFTZeroInput(t *testing.T) {
	ret, err := RDFT(make([]float64, 2*3*4), []int{2, 3, 4})
	require.NoError(t, err)
	require.Len(t, ret, 2*3*3*2)
	for i, v := range ret {
		assert.Zero(t, v, "[%d]", i)
	}
}

func TestRDFTConstant1D(t *testing.T) {
	const n = 7
	const value = 1.5
	data := make([]float64, n)
	for i := range data {
		data[i] = value
	}
	ret, err := RDFT(data, []int{n})
	require.NoError(t, err)
	assert.InDelta(t, n*value, ret[0], 1e-9)
	for i := 1; i < len(ret); i++ {
		assert.InDelta(t, 0, ret[i], 1e-9, "[%d]", i)
	}
}

func TestRDFTMatchesNaive(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
	}{
		{"1D", []int{8}},
		{"2D", []int{3, 4}},
		{"3D", []int{2, 3, 4}},
		{"3D block shaped", []int{3, 8, 8}},
	}
	rng := rand.New(rand.NewSource(6))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			size := 1
			for _, s := range tc.shape {
				size *= s
			}
			data := make([]float64, size)
			for i := range data {
				data[i] = rng.Float64()*2 - 1
			}

			ret, err := RDFT(data, tc.shape)
			require.NoError(t, err)

			want := naiveRDFTND(data, tc.shape)
			require.Len(t, ret, 2*len(want))
			for i, c := range want {
				assert.InDelta(t, real(c), ret[2*i], 1e-9, "re[%d]", i)
				assert.InDelta(t, imag(c), ret[2*i+1], 1e-9, "im[%d]", i)
			}
		})
	}
}

func TestRDFTErrors(t *testing.T) {
	tests := []struct {
		name  string
		data  []float64
		shape []int
		want  error
	}{
		{"no dimensions", []float64{1}, []int{}, ErrInvalidShape},
		{"four dimensions", make([]float64, 16), []int{2, 2, 2, 2}, ErrInvalidShape},
		{"zero extent", []float64{}, []int{0}, ErrInvalidShape},
		{"cannot reshape", []float64{1, 2, 3}, []int{4}, ErrLengthMismatch},
		{"cannot reshape 2D", make([]float64, 5), []int{2, 3}, ErrLengthMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RDFT(tc.data, tc.shape)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
