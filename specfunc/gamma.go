package specfunc

import "math"

// Lanczos approximation, g = 7, 9 coefficients. Accurate to ~15
// significant digits over the right half plane.
var lanczosCoeffs = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

const lanczosG = 7.0

// gamma evaluates the gamma function. Positive integer arguments take
// the exact factorial path; negative arguments go through the
// reflection formula, so poles return +/-Inf naturally.
func gamma(x float64) float64 {
	if x > 0 && x == math.Trunc(x) && x < float64(len(factorialTable)+1) {
		return factorial(int(x) - 1)
	}

	if x < 0.5 {
		// Reflection: gamma(x) = pi / (sin(pi x) * gamma(1-x)).
		return math.Pi / (math.Sin(math.Pi*x) * gamma(1-x))
	}

	x--
	a := lanczosCoeffs[0]
	t := x + lanczosG + 0.5
	for i := 1; i < len(lanczosCoeffs); i++ {
		a += lanczosCoeffs[i] / (x + float64(i))
	}

	return math.Sqrt(2*math.Pi) * math.Pow(t, x+0.5) * math.Exp(-t) * a
}

var factorialTable = func() [171]float64 {
	var t [171]float64
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * float64(i)
	}
	return t
}()

// factorial returns n! as a float64; overflows to +Inf above 170.
func factorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n >= len(factorialTable) {
		return math.Inf(1)
	}
	return factorialTable[n]
}

// harmonic returns the n-th harmonic number H_n, with H_0 = 0.
func harmonic(n int) float64 {
	h := 0.0
	for k := 1; k <= n; k++ {
		h += 1 / float64(k)
	}
	return h
}
