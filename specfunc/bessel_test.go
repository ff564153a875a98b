package specfunc

import (
	"math"
	"testing"
)

func TestBesselJAgainstStdlib(t *testing.T) {
	xs := []float64{0.01, 0.5, 1, 2.5, 5, 8, 9.9, 10.1, 15, 25, 50}
	for n := 0; n <= 4; n++ {
		for _, x := range xs {
			got := BesselJ(float64(n), x)
			want := math.Jn(n, x)
			tol := 1e-10
			if x >= jAsymptoticMin {
				// Three-term asymptotic expansion only.
				tol = 2e-2
			}
			if math.Abs(got-want) > tol {
				t.Errorf("BesselJ(%d, %g) = %.12g, want %.12g", n, x, got, want)
			}
		}
	}
}

func TestBesselJAtZero(t *testing.T) {
	if got := BesselJ(0, 0); got != 1 {
		t.Fatalf("BesselJ(0,0) = %g, want 1", got)
	}
	for _, n := range []float64{1, 2, 3.5, 7} {
		if got := BesselJ(n, 0); got != 0 {
			t.Fatalf("BesselJ(%g,0) = %g, want 0", n, got)
		}
	}
}

func TestBesselJNegativeArgument(t *testing.T) {
	// J_n(-x) = (-1)^n J_n(x) for integer n.
	for n := 0; n <= 3; n++ {
		got := BesselJ(float64(n), -3.2)
		want := math.Jn(n, 3.2)
		if n%2 != 0 {
			want = -want
		}
		if math.Abs(got-want) > 1e-10 {
			t.Errorf("BesselJ(%d, -3.2) = %g, want %g", n, got, want)
		}
	}

	if got := BesselJ(0.5, -1); !math.IsNaN(got) {
		t.Errorf("BesselJ(0.5, -1) = %g, want NaN", got)
	}
}

func TestBesselJHalfOrder(t *testing.T) {
	// J_{1/2}(x) = sqrt(2/(pi x)) sin(x).
	for _, x := range []float64{0.5, 1, 2, 5, 9} {
		got := BesselJ(0.5, x)
		want := math.Sqrt(2/(math.Pi*x)) * math.Sin(x)
		if math.Abs(got-want) > 1e-10 {
			t.Errorf("BesselJ(0.5, %g) = %.12g, want %.12g", x, got, want)
		}
	}
}

func TestSphericalBesselJ(t *testing.T) {
	for _, x := range []float64{0.1, 1, 2.5, 7, 20} {
		if got, want := SphericalBesselJ(0, x), math.Sin(x)/x; math.Abs(got-want) > 1e-12 {
			t.Errorf("j0(%g) = %g, want %g", x, got, want)
		}
		want1 := math.Sin(x)/(x*x) - math.Cos(x)/x
		if got := SphericalBesselJ(1, x); math.Abs(got-want1) > 1e-12 {
			t.Errorf("j1(%g) = %g, want %g", x, got, want1)
		}
		// j2 closed form: (3/x^2 - 1) sin(x)/x - 3 cos(x)/x^2.
		want2 := (3/(x*x)-1)*math.Sin(x)/x - 3*math.Cos(x)/(x*x)
		if got := SphericalBesselJ(2, x); math.Abs(got-want2) > 1e-9 {
			t.Errorf("j2(%g) = %g, want %g", x, got, want2)
		}
	}

	if got := SphericalBesselJ(0, 0); got != 1 {
		t.Fatalf("j0(0) = %g, want 1", got)
	}
	if got := SphericalBesselJ(3, 0); got != 0 {
		t.Fatalf("j3(0) = %g, want 0", got)
	}
}

func TestBesselYAgainstStdlib(t *testing.T) {
	xs := []float64{0.1, 0.5, 1, 2.5, 5, 7.9, 8.1, 12, 30}
	for n := 0; n <= 3; n++ {
		for _, x := range xs {
			got := BesselY(float64(n), x)
			want := math.Yn(n, x)
			tol := 1e-9
			if x >= yAsymptoticMin {
				tol = 1e-2
			}
			if math.Abs(got-want) > tol*math.Max(1, math.Abs(want)) {
				t.Errorf("BesselY(%d, %g) = %.12g, want %.12g", n, x, got, want)
			}
		}
	}
}

func TestBesselYSentinel(t *testing.T) {
	for _, x := range []float64{0, -1, -100} {
		if got := BesselY(0, x); !math.IsInf(got, -1) {
			t.Errorf("BesselY(0, %g) = %g, want -Inf", x, got)
		}
	}
}

func TestBesselYReflectionNonInteger(t *testing.T) {
	// Verify the reflection formula against its own ingredients.
	nu, x := 0.5, 2.0
	want := (BesselJ(nu, x)*math.Cos(math.Pi*nu) - BesselJ(-nu, x)) / math.Sin(math.Pi*nu)
	if got := BesselY(nu, x); math.Abs(got-want) > 1e-12 {
		t.Fatalf("BesselY(%g, %g) = %g, want %g", nu, x, got, want)
	}

	// Y_{1/2}(x) = -sqrt(2/(pi x)) cos(x).
	closed := -math.Sqrt(2/(math.Pi*x)) * math.Cos(x)
	if got := BesselY(nu, x); math.Abs(got-closed) > 1e-10 {
		t.Fatalf("BesselY(1/2, %g) = %g, want %g", x, got, closed)
	}
}

func TestBesselYNearIntegerFallsBack(t *testing.T) {
	x := 3.0
	got := BesselY(1+1e-12, x)
	want := math.Y1(x)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("BesselY(1+eps, %g) = %g, want %g", x, got, want)
	}
}

func TestBesselKSentinelAndSymmetry(t *testing.T) {
	for _, x := range []float64{0, -2} {
		if got := BesselK(0, x); !math.IsInf(got, 1) {
			t.Errorf("BesselK(0, %g) = %g, want +Inf", x, got)
		}
	}

	if a, b := BesselK(1.3, 0.7), BesselK(-1.3, 0.7); math.Abs(a-b) > 1e-12 {
		t.Fatalf("K symmetry violated: %g vs %g", a, b)
	}
}

func TestModifiedBesselWronskian(t *testing.T) {
	// I_0(x) K_1(x) + I_1(x) K_0(x) = 1/x.
	for _, x := range []float64{0.2, 0.5, 1, 1.8} {
		got := BesselI(0, x)*BesselK(1, x) + BesselI(1, x)*BesselK(0, x)
		want := 1 / x
		if math.Abs(got-want) > 1e-8*want {
			t.Errorf("Wronskian at x=%g: got %.12g, want %.12g", x, got, want)
		}
	}
}

func TestBesselIKnownValues(t *testing.T) {
	// I_0(1) and I_1(1), reference values from A&S tables.
	if got := BesselI(0, 1); math.Abs(got-1.2660658777520084) > 1e-12 {
		t.Errorf("I0(1) = %.16g", got)
	}
	if got := BesselI(1, 1); math.Abs(got-0.5651591039924851) > 1e-12 {
		t.Errorf("I1(1) = %.16g", got)
	}
	if got := BesselI(0, 0); got != 1 {
		t.Errorf("I0(0) = %g, want 1", got)
	}
}

func TestHankelComposition(t *testing.T) {
	nu, x := 1.0, 2.5
	h1 := Hankel1(nu, x)
	h2 := Hankel2(nu, x)

	if real(h1) != BesselJ(nu, x) || imag(h1) != BesselY(nu, x) {
		t.Fatalf("Hankel1 components mismatch: %v", h1)
	}
	if real(h2) != BesselJ(nu, x) || imag(h2) != -BesselY(nu, x) {
		t.Fatalf("Hankel2 components mismatch: %v", h2)
	}
}

func TestStruveH1SmallAndLarge(t *testing.T) {
	// Leading series behavior: H1(x) ~ 2x^2/(3 pi) for small x.
	x := 0.01
	want := 2 * x * x / (3 * math.Pi)
	if got := StruveH1(x); math.Abs(got-want) > 1e-10 {
		t.Fatalf("StruveH1(%g) = %g, want ~%g", x, got, want)
	}

	// Reference value H1(1) = 0.198456... (A&S table 12.1).
	if got := StruveH1(1); math.Abs(got-0.19845) > 5e-4 {
		t.Fatalf("StruveH1(1) = %g, want ~0.19845", got)
	}

	// Large argument tends to 2/pi plus the oscillating Y1 part.
	x = 20.0
	if got := StruveH1(x); math.Abs(got-(2/math.Pi+BesselY(1, x))) > 1e-2 {
		t.Fatalf("StruveH1(%g) = %g outside asymptotic band", x, got)
	}

	if got := StruveH1(0); got != 0 {
		t.Fatalf("StruveH1(0) = %g, want 0", got)
	}
	if a, b := StruveH1(-2), StruveH1(2); math.Abs(a-b) > 1e-15 {
		t.Fatalf("StruveH1 even-reflection mismatch: %g vs %g", a, b)
	}
}

func TestGammaHelpers(t *testing.T) {
	if got := gamma(5); got != 24 {
		t.Fatalf("gamma(5) = %g, want 24", got)
	}
	if got := gamma(0.5); math.Abs(got-math.Sqrt(math.Pi)) > 1e-12 {
		t.Fatalf("gamma(0.5) = %g, want sqrt(pi)", got)
	}
	if got := gamma(-0.5); math.Abs(got-(-2*math.Sqrt(math.Pi))) > 1e-10 {
		t.Fatalf("gamma(-0.5) = %g, want -2 sqrt(pi)", got)
	}
	if got := factorial(170); math.IsInf(got, 1) {
		t.Fatalf("factorial(170) overflowed prematurely")
	}
	if got := factorial(171); !math.IsInf(got, 1) {
		t.Fatalf("factorial(171) = %g, want +Inf", got)
	}
	if got := harmonic(4); math.Abs(got-(1+0.5+1.0/3+0.25)) > 1e-15 {
		t.Fatalf("harmonic(4) = %g", got)
	}
}
