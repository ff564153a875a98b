package dispersion

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-horn/specfunc"
)

const (
	// Polar patterns are sampled over [-90, 90] degrees in 5-degree
	// steps (37 samples); hemisphere integration uses a 1-degree grid.
	patternStepDeg     = 5
	integrationStepDeg = 1

	// defaultCoverageDown is the -6 dB convention for coverage angles.
	defaultCoverageDown = 6.0

	speedOfSoundMM = 343000.0
)

// PolarData is a dispersion pattern at one frequency: magnitudes
// normalized to 1 on axis over angles in radians.
type PolarData struct {
	Angles     []float64
	Magnitudes []float64
	Frequency  float64
	Axis       Axis
}

// Pattern synthesizes the polar dispersion pattern of a mouth
// dimension (mm) at a frequency from circular-aperture diffraction
// theory: |2 J1(ka sin t) / (ka sin t)|, normalized so the on-axis
// value (a removable singularity) is exactly 1.
func Pattern(freq float64, axis Axis, mouthDimensionMM float64) PolarData {
	count := 180/patternStepDeg + 1
	angles := make([]float64, count)
	mags := make([]float64, count)

	ka := 0.0
	if freq > 0 && mouthDimensionMM > 0 {
		wavelength := speedOfSoundMM / freq
		ka = math.Pi * mouthDimensionMM / wavelength
	}

	for i := range angles {
		deg := float64(-90 + i*patternStepDeg)
		theta := deg * math.Pi / 180
		angles[i] = theta
		mags[i] = apertureMagnitude(ka, theta)
	}

	// Normalization guards against approximation drift off axis.
	if peak := vecmath.MaxAbs(mags); peak > 0 {
		vecmath.ScaleBlockInPlace(mags, 1/peak)
	}

	return PolarData{
		Angles:     angles,
		Magnitudes: mags,
		Frequency:  freq,
		Axis:       axis,
	}
}

func apertureMagnitude(ka, theta float64) float64 {
	u := ka * math.Sin(theta)
	if u == 0 {
		return 1
	}
	return math.Abs(2 * specfunc.BesselJ(1, u) / u)
}

// CoverageAngle scans outward from on-axis for the first sample below
// the dB-down threshold on each side and returns the included angle in
// degrees. A pattern that never drops below the threshold covers the
// full 180 degrees.
func CoverageAngle(p PolarData, dbDown float64) float64 {
	if len(p.Angles) == 0 || len(p.Angles) != len(p.Magnitudes) {
		return maxBeamwidth
	}

	threshold := math.Pow(10, -dbDown/20)

	center := 0
	for i, a := range p.Angles {
		if math.Abs(a) < math.Abs(p.Angles[center]) {
			center = i
		}
	}

	pos := p.Angles[len(p.Angles)-1]
	for i := center; i < len(p.Angles); i++ {
		if p.Magnitudes[i] < threshold {
			pos = p.Angles[i]
			break
		}
	}

	neg := p.Angles[0]
	for i := center; i >= 0; i-- {
		if p.Magnitudes[i] < threshold {
			neg = p.Angles[i]
			break
		}
	}

	return (pos - neg) * 180 / math.Pi
}

// FromPolarPatterns computes directivity by numerically integrating
// |p(theta, phi)|^2 sin(theta) over the front hemisphere on a 1-degree
// grid, assuming separable horizontal/vertical patterns:
// Q = 4 pi / integral. Pattern values between samples are linearly
// interpolated; queries outside the sampled range clamp to the edge
// sample.
func FromPolarPatterns(h, v PolarData) Result {
	step := float64(integrationStepDeg) * math.Pi / 180

	// Separability lets the double integral factor into an azimuth
	// integral of |h|^2 and a sin-weighted elevation integral of
	// |v|^2.
	azCount := 360/integrationStepDeg + 1
	azX := make([]float64, azCount)
	azF := make([]float64, azCount)
	for i := range azX {
		phi := -math.Pi + float64(i)*step
		azX[i] = phi
		azF[i] = sampleMagnitude(h, phi)
	}
	vecmath.MulBlockInPlace(azF, azF)

	elCount := 90/integrationStepDeg + 1
	elX := make([]float64, elCount)
	elF := make([]float64, elCount)
	for i := range elX {
		theta := float64(i) * step
		elX[i] = theta
		m := sampleMagnitude(v, theta)
		elF[i] = m * m * math.Sin(theta)
	}

	total := integrate.Trapezoidal(azX, azF) * integrate.Trapezoidal(elX, elF)

	di := maxDI
	if total > 0 {
		di = clamp(10*math.Log10(4*math.Pi/total), minDI, maxDI)
	}

	return Result{
		DirectivityIndex:  di,
		DirectivityFactor: math.Pow(10, di/10),
		Coverage: Coverage{
			Horizontal: CoverageAngle(h, defaultCoverageDown),
			Vertical:   CoverageAngle(v, defaultCoverageDown),
		},
	}
}

// sampleMagnitude linearly interpolates a pattern at an angle in
// radians, clamping to the nearest edge sample outside the sampled
// range.
func sampleMagnitude(p PolarData, angle float64) float64 {
	if len(p.Angles) == 0 || len(p.Angles) != len(p.Magnitudes) {
		return 0
	}

	if angle <= p.Angles[0] {
		return p.Magnitudes[0]
	}
	if angle >= p.Angles[len(p.Angles)-1] {
		return p.Magnitudes[len(p.Magnitudes)-1]
	}

	hi := 1
	for hi < len(p.Angles)-1 && p.Angles[hi] < angle {
		hi++
	}
	lo := hi - 1

	span := p.Angles[hi] - p.Angles[lo]
	if span <= 0 {
		return p.Magnitudes[lo]
	}

	t := (angle - p.Angles[lo]) / span
	return p.Magnitudes[lo] + t*(p.Magnitudes[hi]-p.Magnitudes[lo])
}
