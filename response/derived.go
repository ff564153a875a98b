package response

import "errors"

var ErrLengthMismatch = errors.New("response: directivity index length must match response points")

// GroupDelay returns the group delay in milliseconds at each response
// point, computed as the central-difference derivative of the
// unwrapped phase versus frequency. The endpoints use one-sided
// differences.
func GroupDelay(pts []Point) []float64 {
	if len(pts) < 2 {
		return nil
	}

	unwrapped := make([]float64, len(pts))
	unwrapped[0] = pts[0].Phase
	for i := 1; i < len(pts); i++ {
		d := pts[i].Phase - pts[i-1].Phase
		for d > 180 {
			d -= 360
		}
		for d < -180 {
			d += 360
		}
		unwrapped[i] = unwrapped[i-1] + d
	}

	out := make([]float64, len(pts))
	for i := range pts {
		lo, hi := i-1, i+1
		if lo < 0 {
			lo = 0
		}
		if hi >= len(pts) {
			hi = len(pts) - 1
		}

		df := pts[hi].Frequency - pts[lo].Frequency
		if df == 0 {
			continue
		}

		// -dphi/df in cycles/Hz is seconds; scale to ms.
		out[i] = -(unwrapped[hi] - unwrapped[lo]) / 360 / df * 1000
	}

	return out
}

// PowerResponse combines the on-axis SPL with a per-frequency
// directivity index supplied by the dispersion analysis.
func PowerResponse(pts []Point, di []float64) ([]float64, error) {
	if len(di) != len(pts) {
		return nil, ErrLengthMismatch
	}

	out := make([]float64, len(pts))
	for i := range pts {
		out[i] = pts[i].SPL + di[i]
	}

	return out, nil
}
