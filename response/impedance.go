package response

import (
	"math"

	"github.com/cwbudde/algo-horn/specfunc"
)

// RadiationImpedance returns the piston radiation impedance of a
// circular aperture of the given radius (mm) at the given frequency,
// in acoustic ohms:
//
//	Z = Z0 * (1 - 2 J1(2ka)/(2ka) + i * 2 H1(2ka)/(2ka))
//
// with Z0 = rho*c/S. J1 and the Struve function H1 come from the
// two-piece series/asymptotic approximations in specfunc.
func RadiationImpedance(radiusMM, freq float64) complex128 {
	if radiusMM <= 0 || freq <= 0 {
		return 0
	}

	a := radiusMM / mmPerMeter
	area := math.Pi * a * a
	z0 := AirDensity * SpeedOfSound / area

	x := 2 * (2 * math.Pi * freq / SpeedOfSound) * a
	if x == 0 {
		return 0
	}

	resistance := 1 - 2*specfunc.BesselJ(1, x)/x
	reactance := 2 * specfunc.StruveH1(x) / x

	return complex(z0*resistance, z0*reactance)
}
