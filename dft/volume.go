package dft

// Volume composes 1D plans into the real-to-complex transform of a
// (depth, rows, cols) block. The cols axis is transformed first, real to
// half spectrum, so the frequency layout is [depth][rows][cols/2+1] with
// cols/2+1 complex coefficients per row.
//
// A Volume holds only twiddle tables and is safe for concurrent use; the
// caller supplies per-use scratch (see TmpLen).
type Volume struct {
	depth *Plan
	rows  *Plan
	cols  *Plan
	hw    int
}

func NewVolume(depth int, rows int, cols int) *Volume {
	return &Volume{
		depth: NewPlan(depth),
		rows:  NewPlan(rows),
		cols:  NewPlan(cols),
		hw:    cols/2 + 1,
	}
}

// FreqLen is the number of complex coefficients produced by Forward.
func (v *Volume) FreqLen() int {
	return v.depth.Len() * v.rows.Len() * v.hw
}

// TmpLen is the scratch length Forward and Inverse require.
func (v *Volume) TmpLen() int {
	if v.depth.Len() > v.rows.Len() {
		return v.depth.Len()
	}
	return v.rows.Len()
}

// Forward transforms spatial, a flat (depth, rows, cols) real block, into
// freq. tmp must hold at least TmpLen elements.
func (v *Volume) Forward(freq []complex64, spatial []float32, tmp []complex64) {
	d, r, c, hw := v.depth.Len(), v.rows.Len(), v.cols.Len(), v.hw

	for i := 0; i < d*r; i++ {
		v.cols.ForwardReal(freq[i*hw:], 1, spatial[i*c:], 1)
	}

	for t := 0; t < d; t++ {
		base := t * r * hw
		for x := 0; x < hw; x++ {
			for y := 0; y < r; y++ {
				tmp[y] = freq[base+y*hw+x]
			}
			v.rows.Forward(freq[base+x:], hw, tmp, 1)
		}
	}

	if d > 1 {
		stride := r * hw
		for i := 0; i < stride; i++ {
			for t := 0; t < d; t++ {
				tmp[t] = freq[t*stride+i]
			}
			v.depth.Forward(freq[i:], stride, tmp, 1)
		}
	}
}

// Inverse is the exact reverse of Forward, scaled by 1/n per axis, so
// Forward followed by Inverse reproduces the input within float tolerance.
func (v *Volume) Inverse(spatial []float32, freq []complex64, tmp []complex64) {
	d, r, c, hw := v.depth.Len(), v.rows.Len(), v.cols.Len(), v.hw

	if d > 1 {
		stride := r * hw
		for i := 0; i < stride; i++ {
			for t := 0; t < d; t++ {
				tmp[t] = freq[t*stride+i]
			}
			v.depth.Inverse(freq[i:], stride, tmp, 1)
		}
	}

	for t := 0; t < d; t++ {
		base := t * r * hw
		for x := 0; x < hw; x++ {
			for y := 0; y < r; y++ {
				tmp[y] = freq[base+y*hw+x]
			}
			v.rows.Inverse(freq[base+x:], hw, tmp, 1)
		}
	}

	for i := 0; i < d*r; i++ {
		v.cols.InverseReal(spatial[i*c:], 1, freq[i*hw:], 1)
	}
}
