package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

var (
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidSize       = errors.New("response: impulse length must be at least 2")
)

// ImpulseResponse synthesizes a time-domain impulse response from the
// analyzed frequency response.
//
// The complex response (relative magnitude from SPL, phase from the
// transmission-line solve) is resampled onto a uniform frequency grid,
// mirrored into a conjugate-symmetric spectrum and inverse-FFT'd. The
// result has exactly n samples at the given sample rate; n is rounded
// up to a power of two internally and truncated on return.
func ImpulseResponse(res Result, sampleRate float64, n int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if n < 2 {
		return nil, ErrInvalidSize
	}
	if len(res.Points) < 2 {
		return nil, ErrEmptyProfile
	}

	fftSize := nextPowerOf2(n)

	spectrum := make([]complex128, fftSize)
	for bin := 0; bin <= fftSize/2; bin++ {
		f := float64(bin) * sampleRate / float64(fftSize)
		mag, phaseDeg := sampleAt(res.Points, f)
		h := cmplx.Rect(mag, phaseDeg*math.Pi/180)

		// DC and Nyquist bins must be real for a real signal.
		if bin == 0 || bin == fftSize/2 {
			h = complex(real(h), 0)
		}

		spectrum[bin] = h
		if bin > 0 && bin < fftSize/2 {
			spectrum[fftSize-bin] = cmplx.Conj(h)
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	timeData := make([]complex128, fftSize)
	if err := plan.Inverse(timeData, spectrum); err != nil {
		return nil, fmt.Errorf("response: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(timeData[i])
	}

	return out, nil
}

// sampleAt linearly interpolates magnitude (linear, relative to the
// reference SPL) and phase between response points, clamping to the
// edge samples outside the analyzed band.
func sampleAt(pts []Point, freq float64) (mag, phaseDeg float64) {
	first, last := pts[0], pts[len(pts)-1]

	switch {
	case freq <= first.Frequency:
		return magnitudeOf(first), first.Phase
	case freq >= last.Frequency:
		return magnitudeOf(last), last.Phase
	}

	hi := 1
	for hi < len(pts)-1 && pts[hi].Frequency < freq {
		hi++
	}
	lo := hi - 1

	span := pts[hi].Frequency - pts[lo].Frequency
	t := 0.0
	if span > 0 {
		t = (freq - pts[lo].Frequency) / span
	}

	mag = magnitudeOf(pts[lo]) + t*(magnitudeOf(pts[hi])-magnitudeOf(pts[lo]))

	d := pts[hi].Phase - pts[lo].Phase
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}

	return mag, pts[lo].Phase + t*d
}

func magnitudeOf(p Point) float64 {
	if math.IsInf(p.SPL, -1) {
		return 0
	}
	return math.Pow(10, (p.SPL-ReferenceSPL)/20)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
