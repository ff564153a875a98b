// Package profile generates horn flare curves: cross-sectional radius
// as a function of axial distance from the throat, for ten expansion
// laws ranging from plain conical to spherical-wave corrected designs.
//
// Every generator returns exactly Segments+1 points spanning x = 0 to
// Length, with the first and last radius pinned to the requested
// throat and mouth values and a non-decreasing radius sequence.
package profile

import (
	"errors"
	"math"
)

// Point is one sample of a flare curve. Both coordinates are in
// millimeters; X is the axial distance from the throat.
type Point struct {
	X      float64
	Radius float64
}

// Params describes the horn geometry handed to a generator.
//
// ThroatRadius, MouthRadius and Length are in millimeters. Segments is
// the number of intervals (the curve has Segments+1 points); zero
// selects the default. CutoffFreq (Hz) feeds the spherical-wave
// corrected laws; zero derives it from the throat radius. The
// remaining fields are profile-specific shaping extras with sensible
// defaults.
type Params struct {
	ThroatRadius float64
	MouthRadius  float64
	Length       float64
	Segments     int
	CutoffFreq   float64
	TFactor      float64
	BlendFactor  float64
	Eccentricity float64
	WaveParam    float64
}

// Validation sentinels. Generate reports these instead of coercing bad
// geometry.
var (
	ErrThroatRadius = errors.New("profile: throat radius must be positive")
	ErrMouthRadius  = errors.New("profile: mouth radius must exceed throat radius")
	ErrLength       = errors.New("profile: length must be positive")
	ErrSegments     = errors.New("profile: segments must be positive")

	// ErrUnknownType is warning-grade: Generate still returns a valid
	// exponential curve alongside it.
	ErrUnknownType = errors.New("profile: unknown profile type, exponential law substituted")
)

const (
	defaultSegments = 100

	// speedOfSoundMM is the speed of sound in mm/s, matching the
	// response package's 343 m/s.
	speedOfSoundMM = 343000.0
)

func (p Params) validate() error {
	if p.ThroatRadius <= 0 {
		return ErrThroatRadius
	}
	if p.MouthRadius <= p.ThroatRadius {
		return ErrMouthRadius
	}
	if p.Length <= 0 {
		return ErrLength
	}
	if p.Segments < 0 {
		return ErrSegments
	}
	return nil
}

// normalize fills defaults for optional fields. Geometry fields are
// validated, never defaulted.
func (p Params) normalize() Params {
	if p.Segments == 0 {
		p.Segments = defaultSegments
	}

	if p.CutoffFreq <= 0 {
		// Same throat-controlled cutoff the response analyzer uses:
		// fc = c / (4 pi r).
		p.CutoffFreq = speedOfSoundMM / (4 * math.Pi * p.ThroatRadius)
	}

	if p.TFactor == 0 {
		p.TFactor = defaultTFactor
	}

	if p.BlendFactor == 0 {
		p.BlendFactor = defaultBlendFactor
	}
	p.BlendFactor = clamp(p.BlendFactor, 0, 1)

	if p.Eccentricity == 0 {
		p.Eccentricity = defaultEccentricity
	}
	p.Eccentricity = clamp(p.Eccentricity, 0.05, 0.95)

	if p.WaveParam <= 0 {
		// Spherical wavefront scale x0 = c / (2 pi fc), in mm.
		p.WaveParam = speedOfSoundMM / (2 * math.Pi * p.CutoffFreq)
	}

	return p
}

// FlareRate returns the exponential flare constant m (1/mm) implied by
// the geometry: m = ln(mouth/throat) / length.
func FlareRate(p Params) float64 {
	return math.Log(p.MouthRadius/p.ThroatRadius) / p.Length
}

// MouthArea returns the mouth cross-section in mm^2.
func MouthArea(p Params) float64 {
	return math.Pi * p.MouthRadius * p.MouthRadius
}

// finalize applies the shared post-pass: drop non-finite or
// non-positive-radius points (last-resort safety net), rescale x onto
// [0, Length] exactly, clamp radii into [throat, mouth] and pin both
// endpoints.
func finalize(pts []Point, p Params) []Point {
	out := pts[:0]
	for _, pt := range pts {
		if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) {
			continue
		}
		if math.IsNaN(pt.Radius) || math.IsInf(pt.Radius, 0) || pt.Radius <= 0 {
			continue
		}
		out = append(out, pt)
	}

	if len(out) < 2 {
		return out
	}

	x0 := out[0].X
	span := out[len(out)-1].X - x0
	if span > 0 {
		scale := p.Length / span
		for i := range out {
			out[i].X = (out[i].X - x0) * scale
		}
	}
	out[0].X = 0
	out[len(out)-1].X = p.Length

	for i := range out {
		out[i].Radius = clamp(out[i].Radius, p.ThroatRadius, p.MouthRadius)
	}
	out[0].Radius = p.ThroatRadius
	out[len(out)-1].Radius = p.MouthRadius

	return out
}

// rescaleRadii affinely maps the raw radius span onto
// [throat, mouth]. Used by laws whose natural formula drifts off the
// requested mouth radius.
func rescaleRadii(pts []Point, throat, mouth float64) {
	if len(pts) < 2 {
		return
	}

	lo := pts[0].Radius
	span := pts[len(pts)-1].Radius - lo
	if span <= 0 {
		return
	}

	scale := (mouth - throat) / span
	for i := range pts {
		pts[i].Radius = throat + (pts[i].Radius-lo)*scale
	}
}

// smoothMovingAverage applies a centered moving average of the given
// odd window size to the radii, leaving the endpoints untouched.
func smoothMovingAverage(pts []Point, window int) {
	if window < 3 || len(pts) < window {
		return
	}

	half := window / 2
	radii := make([]float64, len(pts))
	for i := range pts {
		radii[i] = pts[i].Radius
	}

	for i := half; i < len(pts)-half; i++ {
		sum := 0.0
		for j := i - half; j <= i+half; j++ {
			sum += radii[j]
		}
		pts[i].Radius = sum / float64(window)
	}
}

// clampRunningMax forces the radius sequence non-decreasing by
// clamping each value to the running maximum.
func clampRunningMax(pts []Point) {
	maxR := math.Inf(-1)
	for i := range pts {
		if pts[i].Radius < maxR {
			pts[i].Radius = maxR
		} else {
			maxR = pts[i].Radius
		}
	}
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
