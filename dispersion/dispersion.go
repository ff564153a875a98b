// Package dispersion computes horn directivity: beamwidth estimates,
// inverse mouth sizing, diffraction-theory polar patterns and the
// directivity index / Q factor conversions built on them.
package dispersion

import "math"

// Axis distinguishes the horizontal and vertical dispersion planes.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

const (
	// beamwidthK is the empirical pro-audio coverage constant in
	// inch·Hz·degrees: beamwidth ~ K / (dimension_in * frequency).
	// It is a rule-of-thumb convention, not a derived value.
	beamwidthK = 29000.0

	minBeamwidth = 10.0
	maxBeamwidth = 180.0

	mmPerInch = 25.4

	// Directivity index clamp range in dB. Zero solid angle maps to
	// the ceiling, never to infinity.
	minDI = 0.0
	maxDI = 40.0
)

// Coverage holds the -6 dB coverage angles in degrees.
type Coverage struct {
	Horizontal float64
	Vertical   float64
}

// Result summarizes directivity: index in dB, factor Q (linear) and
// the coverage angles the numbers were derived from.
type Result struct {
	DirectivityIndex  float64
	DirectivityFactor float64
	Coverage          Coverage
}

// Beamwidth estimates the -6 dB beamwidth in degrees controlled by a
// mouth dimension (mm) at a frequency (Hz), clamped to [10, 180].
// Degenerate inputs (zero dimension or frequency) return 180 by
// policy: an unsized aperture cannot control dispersion.
func Beamwidth(dimensionMM, freq float64) float64 {
	if dimensionMM <= 0 || freq <= 0 {
		return maxBeamwidth
	}

	bw := beamwidthK / (dimensionMM / mmPerInch * freq)

	if bw < minBeamwidth {
		return minBeamwidth
	}
	if bw > maxBeamwidth {
		return maxBeamwidth
	}
	return bw
}

// MouthSizing reports the mouth dimensions needed for a dispersion
// target plus the behavior of the current mouth for comparison.
type MouthSizing struct {
	RequiredWidth  float64 // mm
	RequiredHeight float64 // mm

	CurrentHorizontal float64 // deg, achieved by currentWidth
	CurrentVertical   float64 // deg, achieved by currentHeight
	CurrentDI         float64 // dB
}

// RequiredMouthSize inverts the beamwidth formula in closed form: the
// mouth dimension that holds the target coverage angle down to the
// given frequency. No iterative search is needed.
func RequiredMouthSize(hDeg, vDeg, freq, currentWidthMM, currentHeightMM float64) MouthSizing {
	if hDeg <= 0 || vDeg <= 0 || freq <= 0 {
		return MouthSizing{}
	}

	return MouthSizing{
		RequiredWidth:     beamwidthK / (hDeg * freq) * mmPerInch,
		RequiredHeight:    beamwidthK / (vDeg * freq) * mmPerInch,
		CurrentHorizontal: Beamwidth(currentWidthMM, freq),
		CurrentVertical:   Beamwidth(currentHeightMM, freq),
		CurrentDI:         FromCoverage(Beamwidth(currentWidthMM, freq), Beamwidth(currentHeightMM, freq)).DirectivityIndex,
	}
}

// FromCoverage converts a pair of coverage angles (degrees) to a
// directivity estimate using the solid-angle-product approximation
// Q ~ 4 pi / (omega_h * omega_v). The index is clamped to [0, 40] dB
// and Q kept consistent with the clamped index.
func FromCoverage(hDeg, vDeg float64) Result {
	omegaH := hDeg * math.Pi / 180
	omegaV := vDeg * math.Pi / 180

	di := maxDI
	if omegaH*omegaV > 0 {
		q := 4 * math.Pi / (omegaH * omegaV)
		di = clamp(10*math.Log10(q), minDI, maxDI)
	}

	return Result{
		DirectivityIndex:  di,
		DirectivityFactor: math.Pow(10, di/10),
		Coverage:          Coverage{Horizontal: hDeg, Vertical: vDeg},
	}
}

// ArrayDirectivity returns the directivity-factor multiplier of a line
// array of identical horns: 1 for a single element, approaching the
// element count once the spacing exceeds the wavelength. The narrowing
// follows a sinc weighting of spacing over wavelength.
func ArrayDirectivity(elements int, spacingMM, freq float64) float64 {
	if elements <= 1 || spacingMM <= 0 || freq <= 0 {
		return 1
	}

	wavelengthMM := 343000.0 / freq
	x := 2 * math.Pi * spacingMM / wavelengthMM

	coupling := math.Abs(sinc(x))
	n := float64(elements)

	return n / (1 + (n-1)*coupling)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
