// Package response derives the acoustic frequency behavior of a horn
// from its flare curve: loading, efficiency, on-axis SPL, phase and
// throat impedance.
//
// The solver is a simplified cascaded transmission-line approximation
// to the Webster horn equation, not an exact complex ABCD-matrix
// solve: each profile segment contributes a characteristic-impedance
// step with reflection r = (Z2-Z1)/(Z2+Z1) and a complex transmission
// sqrt(1-r^2)*e^(-ik*dx). The magnitude of the cascaded product is the
// loading factor and its accumulated phase is the response phase.
package response

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-horn/profile"
)

// Physical constants and the SPL reference. 112 dB is the conventional
// 1 W / 1 m sensitivity of an ideal 100%-efficient horn; do not adjust
// it without domain validation.
const (
	SpeedOfSound = 343.0  // m/s
	AirDensity   = 1.2041 // kg/m^3
	ReferenceSPL = 112.0  // dB, 1 W at 1 m, ideal horn

	// NumPoints test frequencies, logarithmically spaced over the
	// audio band.
	NumPoints = 100
	minFreq   = 20.0
	maxFreq   = 20000.0

	mmPerMeter = 1000.0
)

var (
	ErrEmptyProfile  = errors.New("response: profile needs at least two points")
	ErrInvalidThroat = errors.New("response: throat radius must be positive")
)

// Point is the response at one test frequency. Phase is the cascaded
// transmission phase in degrees, wrapped to [-180, 180); propagation
// accumulates it as a lag (e^(-ikx) convention), so the unwrapped
// phase falls with frequency and group delay is positive. Impedance is
// the throat radiation impedance at that frequency in acoustic ohms
// (Pa·s/m^3).
type Point struct {
	Frequency float64
	SPL       float64
	Phase     float64
	Impedance complex128
}

// Result is the full frequency-response summary for one horn.
//
// Efficiency is the log-frequency-weighted mean efficiency in percent.
// ThroatImpedance is evaluated at the cutoff frequency.
type Result struct {
	CutoffFrequency float64
	Points          []Point
	ThroatImpedance complex128
	Efficiency      float64
}

// CutoffFrequency returns the throat-controlled horn cutoff
// fc = c / (4 pi r) for a throat radius in millimeters.
func CutoffFrequency(throatRadiusMM float64) float64 {
	return SpeedOfSound / (4 * math.Pi * throatRadiusMM / mmPerMeter)
}

// Analyze computes the frequency response of the given flare curve.
// The curve is in millimeters, as produced by profile.Generate.
func Analyze(curve []profile.Point, throatRadiusMM float64) (Result, error) {
	if len(curve) < 2 {
		return Result{}, ErrEmptyProfile
	}
	if throatRadiusMM <= 0 {
		return Result{}, ErrInvalidThroat
	}

	fc := CutoffFrequency(throatRadiusMM)

	freqs := make([]float64, NumPoints)
	floats.LogSpan(freqs, minFreq, maxFreq)

	pts := make([]Point, NumPoints)
	effSum := 0.0

	for i, f := range freqs {
		trans := transmissionAt(curve, f)
		eff := efficiencyAt(cmplx.Abs(trans), f, fc)
		effSum += eff

		pts[i] = Point{
			Frequency: f,
			SPL:       splFromEfficiency(eff),
			Phase:     wrapDegrees(cmplx.Phase(trans) * 180 / math.Pi),
			Impedance: RadiationImpedance(throatRadiusMM, f),
		}
	}

	return Result{
		CutoffFrequency: fc,
		Points:          pts,
		ThroatImpedance: RadiationImpedance(throatRadiusMM, fc),
		// The grid is uniform in log frequency, so the plain mean is
		// the log-weighted mean.
		Efficiency: effSum / NumPoints * 100,
	}, nil
}

// transmissionAt cascades the per-segment complex transmissions. The
// e^(-ik*dx) factor accumulates the propagation phase as a lag over
// the horn length; the magnitude part is frequency independent.
func transmissionAt(curve []profile.Point, freq float64) complex128 {
	k := 2 * math.Pi * freq / SpeedOfSound

	t := complex(1, 0)
	for i := 0; i+1 < len(curve); i++ {
		r1 := curve[i].Radius / mmPerMeter
		r2 := curve[i+1].Radius / mmPerMeter
		z1 := AirDensity * SpeedOfSound / (math.Pi * r1 * r1)
		z2 := AirDensity * SpeedOfSound / (math.Pi * r2 * r2)

		refl := (z2 - z1) / (z2 + z1)
		mag := math.Sqrt(math.Max(0, 1-refl*refl))
		dx := (curve[i+1].X - curve[i].X) / mmPerMeter

		t *= complex(mag, 0) * cmplx.Exp(complex(0, -k*dx))
	}

	return t
}

// loadingAt is the magnitude of the cascaded transmission.
func loadingAt(curve []profile.Point, freq float64) float64 {
	return cmplx.Abs(transmissionAt(curve, freq))
}

// efficiencyAt models the horn's loading efficiency: a 4th-power
// rolloff below cutoff and a gentle 1/(1+(f/10fc)^2) shelf above.
func efficiencyAt(loading, freq, cutoff float64) float64 {
	if freq < cutoff {
		ratio := freq / cutoff
		return loading * ratio * ratio * ratio * ratio
	}

	ratio := freq / (10 * cutoff)
	return loading / (1 + ratio*ratio)
}

func splFromEfficiency(eff float64) float64 {
	if eff <= 0 {
		return math.Inf(-1)
	}
	return ReferenceSPL + 10*math.Log10(eff)
}

// wrapDegrees maps an angle in degrees into [-180, 180).
func wrapDegrees(deg float64) float64 {
	wrapped := math.Mod(deg+180, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped - 180
}
