package denoise

import (
	"math"
)

// psdEpsilon keeps the Wiener gain finite for empty coefficients.
const psdEpsilon = 1e-15

// filterBlock runs one block through the frequency domain: forward 3D
// transform, optional zero-mean removal, per-coefficient attenuation,
// zero-mean restore, inverse transform. freq and tmp are caller scratch
// sized by the Denoiser's Volume. NaN inputs propagate, they never panic.
func (d *Denoiser) filterBlock(block []float32, freq []complex64, tmp []complex64) {
	d.volume.Forward(freq, block, tmp)

	// Subtract the windowed mean so the attenuation policy only sees
	// deviations from the local DC level, then add it back unattenuated.
	var gf float32
	if d.zeroMean {
		gf = real(freq[0]) / real(d.windowFreq[0])
		for i, wf := range d.windowFreq {
			freq[i] -= complex(gf*real(wf), gf*imag(wf))
		}
	}

	d.attenuate(freq)

	if d.zeroMean {
		for i, wf := range d.windowFreq {
			freq[i] += complex(gf*real(wf), gf*imag(wf))
		}
	}

	d.volume.Inverse(block, freq, tmp)
}

// attenuate applies the configured shrinkage policy per coefficient. The
// curves follow the DFTTest family; psd is the squared magnitude and sigma
// the per-position threshold table entry.
func (d *Denoiser) attenuate(freq []complex64) {
	switch d.filterType {
	case 1:
		// hard threshold
		for i, c := range freq {
			psd := real(c)*real(c) + imag(c)*imag(c)
			if psd < d.sigma[i] {
				freq[i] = 0
			}
		}
	case 2:
		// constant gain
		for i, c := range freq {
			s := d.sigma[i]
			freq[i] = complex(real(c)*s, imag(c)*s)
		}
	case 3:
		// psd band select: sigma inside [pmin, pmax], sigma2 outside
		for i, c := range freq {
			psd := real(c)*real(c) + imag(c)*imag(c)
			mult := d.sigma2
			if psd >= d.pmin && psd <= d.pmax {
				mult = d.sigma[i]
			}
			freq[i] = complex(real(c)*mult, imag(c)*mult)
		}
	case 4:
		for i, c := range freq {
			psd := real(c)*real(c) + imag(c)*imag(c)
			mult := d.sigma[i] * float32(math.Sqrt(float64(
				psd*d.pmax/((psd+d.pmin)*(psd+d.pmax)+psdEpsilon))))
			freq[i] = complex(real(c)*mult, imag(c)*mult)
		}
	default:
		// generalized Wiener shrinkage; sigma2 acts as the beta exponent
		// when set to something other than 0 or 1
		pow := d.sigma2 != 0 && d.sigma2 != 1
		for i, c := range freq {
			psd := real(c)*real(c) + imag(c)*imag(c)
			mult := (psd - d.sigma[i]) / (psd + psdEpsilon)
			if mult < 0 {
				mult = 0
			}
			if pow {
				mult = float32(math.Pow(float64(mult), float64(d.sigma2)))
			}
			freq[i] = complex(real(c)*mult, imag(c)*mult)
		}
	}
}
