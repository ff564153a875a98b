package profile

import (
	"math"

	"github.com/cwbudde/algo-horn/specfunc"
)

// Shaping constants. These are empirical horn-design conventions
// carried over from established builds, not derived values; see
// DESIGN.md before changing any of them.
const (
	defaultTFactor      = 3.0
	defaultBlendFactor  = 0.5
	defaultEccentricity = 0.6

	// Le Cleac'h spherical-wave correction amplitude and the window of
	// the monotonicity-restoring moving average.
	leCleachCorrAmp = 0.06
	smoothingWindow = 3

	// JMLC empirical expansion-rate correction 0.91 + 0.09 tanh(fn),
	// its sinusoidal wavefront correction amplitude, and the throat
	// smoothing ramp.
	jmlcRateBase   = 0.91
	jmlcRateSpread = 0.09
	jmlcSphAmp     = 0.04
	jmlcRampRate   = 4.0
	jmlcRampFloor  = 0.7

	// Oblate spheroid: 70/30 ellipse/linear mix.
	oblateEllipseWeight = 0.7

	// Spherical wave: ease-in rate and floor, 80/20 blend against a
	// cubic smoothstep target.
	sphericalEaseRate   = 2.0
	sphericalEaseFloor  = 0.5
	sphericalWaveWeight = 0.8
)

// sample fills a uniform x grid with radius(x, t) where t = x/Length.
func sample(p Params, radius func(x, t float64) float64) []Point {
	pts := make([]Point, p.Segments+1)
	for i := range pts {
		t := float64(i) / float64(p.Segments)
		x := p.Length * t
		pts[i] = Point{X: x, Radius: radius(x, t)}
	}
	return pts
}

func conical(p Params) []Point {
	return sample(p, func(_, t float64) float64 {
		return p.ThroatRadius + (p.MouthRadius-p.ThroatRadius)*t
	})
}

func exponential(p Params) []Point {
	m := FlareRate(p)
	return sample(p, func(x, _ float64) float64 {
		return p.ThroatRadius * math.Exp(m*x)
	})
}

// modifiedExponential reshapes the exponential law along a tunable
// (exp(T t)-1)/(exp(T)-1) progression for a smoother throat
// transition.
func modifiedExponential(p Params) []Point {
	T := p.TFactor
	denom := math.Exp(T) - 1
	ratio := p.MouthRadius / p.ThroatRadius

	return sample(p, func(_, t float64) float64 {
		shaped := (math.Exp(T*t) - 1) / denom
		return p.ThroatRadius * math.Pow(ratio, shaped)
	})
}

func parabolic(p Params) []Point {
	k := (p.MouthRadius - p.ThroatRadius) / math.Sqrt(p.Length)
	return sample(p, func(x, _ float64) float64 {
		return p.ThroatRadius + k*math.Sqrt(x)
	})
}

// tractrix generates the true tractrix curve in its natural
// parameterization (unit mouth radius, theta swept from the throat
// angle to pi/2), then rescales both axes onto the requested geometry.
// The natural arclength generally disagrees with the requested length,
// so the axial rescale is not optional.
func tractrix(p Params) []Point {
	ratio := p.ThroatRadius / p.MouthRadius
	theta0 := math.Asin(clamp(ratio, 1e-6, 1-1e-9))

	// Natural axial coordinate of the unit tractrix at radius r:
	// x(r) = ln((1 + sqrt(1-r^2)) / r) - sqrt(1-r^2), zero at r = 1.
	axial := func(r float64) float64 {
		s := math.Sqrt(1 - r*r)
		return math.Log((1+s)/r) - s
	}

	xThroat := axial(math.Sin(theta0))

	pts := make([]Point, p.Segments+1)
	for i := range pts {
		t := float64(i) / float64(p.Segments)
		theta := theta0 + (math.Pi/2-theta0)*t
		r := math.Sin(theta)
		pts[i] = Point{
			X:      (xThroat - axial(r)) * p.MouthRadius,
			Radius: r * p.MouthRadius,
		}
	}

	// finalize rescales x onto [0, Length]; the radius axis already
	// spans throat..mouth by construction of theta0.
	return pts
}

// hyperbolicExponential mixes cosh and exp growth laws, both pinned to
// the mouth, by BlendFactor (0 = pure exponential, 1 = pure cosh).
func hyperbolicExponential(p Params) []Point {
	b := p.BlendFactor
	mExp := FlareRate(p)
	mCosh := math.Acosh(p.MouthRadius/p.ThroatRadius) / p.Length

	return sample(p, func(x, _ float64) float64 {
		e := p.ThroatRadius * math.Exp(mExp*x)
		h := p.ThroatRadius * math.Cosh(mCosh*x)
		return (1-b)*e + b*h
	})
}

// leCleach multiplies the exponential law by a spherical-wavefront
// correction tied to the cutoff frequency, then restores monotonicity
// with a centered moving average and a running-max clamp.
func leCleach(p Params) []Point {
	m := FlareRate(p)
	k := 2 * math.Pi * p.CutoffFreq / speedOfSoundMM // rad/mm

	pts := sample(p, func(x, _ float64) float64 {
		base := p.ThroatRadius * math.Exp(m*x)
		corr := 1 + leCleachCorrAmp*(1-specfunc.SphericalBesselJ(0, k*x))
		return base * corr
	})

	smoothMovingAverage(pts, smoothingWindow)
	clampRunningMax(pts)
	rescaleRadii(pts, p.ThroatRadius, p.MouthRadius)

	return pts
}

// jmlc is the Le Cleac'h variant with an empirical correction factor
// on the expansion rate, a sinusoidal spherical-wave correction and an
// exponential throat-smoothing ramp.
func jmlc(p Params) []Point {
	normFreq := p.CutoffFreq / 1000
	rate := FlareRate(p) * (jmlcRateBase + jmlcRateSpread*math.Tanh(normFreq))

	pts := sample(p, func(x, t float64) float64 {
		base := p.ThroatRadius * math.Exp(rate*x)
		sph := 1 + jmlcSphAmp*math.Sin(math.Pi/2*t)
		ramp := jmlcRampFloor + (1-jmlcRampFloor)*(1-math.Exp(-jmlcRampRate*t))
		return p.ThroatRadius + (base*sph-p.ThroatRadius)*ramp
	})

	rescaleRadii(pts, p.ThroatRadius, p.MouthRadius)

	return pts
}

// oblateSpheroid blends an eccentricity-adjusted ellipsoidal law with
// linear interpolation and forces the result non-decreasing.
func oblateSpheroid(p Params) []Point {
	cAxis := p.Length * (1 + p.Eccentricity)

	pts := sample(p, func(x, t float64) float64 {
		z := (p.Length - x) / cAxis
		ellipse := p.MouthRadius * math.Sqrt(math.Max(0, 1-z*z))
		linear := p.ThroatRadius + (p.MouthRadius-p.ThroatRadius)*t
		return oblateEllipseWeight*ellipse + (1-oblateEllipseWeight)*linear
	})

	clampRunningMax(pts)
	rescaleRadii(pts, p.ThroatRadius, p.MouthRadius)

	return pts
}

// sphericalWave follows throat*sqrt(1+(x/x0)^2), rescaled to the
// requested mouth radius, with an exponential ease-in and an 80/20
// blend against a cubic smoothstep target.
func sphericalWave(p Params) []Point {
	x0 := p.WaveParam

	pts := sample(p, func(x, _ float64) float64 {
		q := x / x0
		return p.ThroatRadius * math.Sqrt(1+q*q)
	})
	rescaleRadii(pts, p.ThroatRadius, p.MouthRadius)

	for i := range pts {
		t := float64(i) / float64(p.Segments)
		ease := sphericalEaseFloor + (1-sphericalEaseFloor)*(1-math.Exp(-sphericalEaseRate*t))
		eased := p.ThroatRadius + (pts[i].Radius-p.ThroatRadius)*ease
		target := p.ThroatRadius + (p.MouthRadius-p.ThroatRadius)*smoothstep(t)
		pts[i].Radius = sphericalWaveWeight*eased + (1-sphericalWaveWeight)*target
	}
	rescaleRadii(pts, p.ThroatRadius, p.MouthRadius)

	return pts
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
