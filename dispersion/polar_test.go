package dispersion

import (
	"math"
	"testing"
)

func uniformPattern(axis Axis) PolarData {
	count := 180/patternStepDeg + 1
	angles := make([]float64, count)
	mags := make([]float64, count)
	for i := range angles {
		angles[i] = float64(-90+i*patternStepDeg) * math.Pi / 180
		mags[i] = 1
	}
	return PolarData{Angles: angles, Magnitudes: mags, Axis: axis}
}

func TestPatternShape(t *testing.T) {
	p := Pattern(8000, AxisHorizontal, 300)

	if len(p.Angles) != 37 || len(p.Magnitudes) != 37 {
		t.Fatalf("got %d/%d samples, want 37", len(p.Angles), len(p.Magnitudes))
	}
	if p.Angles[0] != -math.Pi/2 || p.Angles[36] != math.Pi/2 {
		t.Fatalf("angle range [%g, %g], want [-pi/2, pi/2]", p.Angles[0], p.Angles[36])
	}

	onAxis := p.Magnitudes[18]
	if math.Abs(onAxis-1) > 1e-12 {
		t.Fatalf("on-axis magnitude %g, want 1", onAxis)
	}

	for i, m := range p.Magnitudes {
		if m < 0 || m > 1 {
			t.Fatalf("magnitude %d = %g out of [0, 1]", i, m)
		}
		// Circular aperture diffraction is symmetric.
		if j := len(p.Magnitudes) - 1 - i; math.Abs(m-p.Magnitudes[j]) > 1e-9 {
			t.Fatalf("asymmetric pattern at %d: %g vs %g", i, m, p.Magnitudes[j])
		}
	}
}

func TestPatternNarrowsWithFrequency(t *testing.T) {
	low := CoverageAngle(Pattern(1000, AxisHorizontal, 300), 6)
	high := CoverageAngle(Pattern(8000, AxisHorizontal, 300), 6)

	if high >= low {
		t.Fatalf("coverage should narrow with frequency: %g deg at 1 kHz vs %g deg at 8 kHz", low, high)
	}
}

func TestPatternDegenerateInputsAreOmni(t *testing.T) {
	p := Pattern(0, AxisVertical, 300)
	for i, m := range p.Magnitudes {
		if m != 1 {
			t.Fatalf("sample %d = %g, want 1 for ka=0", i, m)
		}
	}
}

func TestCoverageAngleNeverDrops(t *testing.T) {
	if got := CoverageAngle(uniformPattern(AxisHorizontal), 6); got != 180 {
		t.Fatalf("uniform pattern coverage %g, want 180", got)
	}
}

func TestCoverageAngleSymmetricDrop(t *testing.T) {
	p := uniformPattern(AxisHorizontal)
	// Drop below -6 dB outside +/-30 degrees.
	for i, a := range p.Angles {
		if math.Abs(a) > 30*math.Pi/180+1e-9 {
			p.Magnitudes[i] = 0.1
		}
	}

	got := CoverageAngle(p, 6)
	if math.Abs(got-70) > 1e-6 {
		t.Fatalf("coverage %g, want 70 (first samples beyond 30 deg are at 35)", got)
	}
}

func TestFromPolarPatternsUniformIsHemisphere(t *testing.T) {
	r := FromPolarPatterns(uniformPattern(AxisHorizontal), uniformPattern(AxisVertical))

	// A uniform hemisphere radiator has Q = 2, DI ~ 3.01 dB.
	if math.Abs(r.DirectivityIndex-3.01) > 0.05 {
		t.Fatalf("uniform DI = %g, want ~3.01", r.DirectivityIndex)
	}
	if math.Abs(r.DirectivityFactor-2) > 0.05 {
		t.Fatalf("uniform Q = %g, want ~2", r.DirectivityFactor)
	}
	if r.Coverage.Horizontal != 180 || r.Coverage.Vertical != 180 {
		t.Fatalf("uniform coverage %+v, want 180/180", r.Coverage)
	}
}

func TestFromPolarPatternsNarrowBeatsWide(t *testing.T) {
	wide := FromPolarPatterns(
		Pattern(2000, AxisHorizontal, 300),
		Pattern(2000, AxisVertical, 300),
	)
	narrow := FromPolarPatterns(
		Pattern(10000, AxisHorizontal, 300),
		Pattern(10000, AxisVertical, 300),
	)

	if narrow.DirectivityIndex <= wide.DirectivityIndex {
		t.Fatalf("narrow DI %g should exceed wide DI %g", narrow.DirectivityIndex, wide.DirectivityIndex)
	}
	if wide.DirectivityIndex < 0 || narrow.DirectivityIndex > 40 {
		t.Fatalf("DI out of clamp range: %g, %g", wide.DirectivityIndex, narrow.DirectivityIndex)
	}
}

func TestSampleMagnitudeInterpolation(t *testing.T) {
	p := PolarData{
		Angles:     []float64{-1, 0, 1},
		Magnitudes: []float64{0.2, 1, 0.4},
	}

	if got := sampleMagnitude(p, 0); got != 1 {
		t.Fatalf("exact sample: got %g", got)
	}
	if got := sampleMagnitude(p, 0.5); math.Abs(got-0.7) > 1e-12 {
		t.Fatalf("midpoint: got %g, want 0.7", got)
	}
	if got := sampleMagnitude(p, -5); got != 0.2 {
		t.Fatalf("below range: got %g, want edge 0.2", got)
	}
	if got := sampleMagnitude(p, 5); got != 0.4 {
		t.Fatalf("above range: got %g, want edge 0.4", got)
	}
}
