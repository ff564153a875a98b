// Package room provides the small-room acoustics helpers that place a
// horn's directivity in context: distance attenuation, the Sabine
// critical distance and the reverberant-field level lift.
package room

import (
	"errors"
	"math"
)

var (
	ErrInvalidDistance = errors.New("room: distance must be positive")
	ErrInvalidVolume   = errors.New("room: volume must be positive")
	ErrInvalidRT       = errors.New("room: reverberation time must be positive")
	ErrInvalidQ        = errors.New("room: directivity factor must be positive")
)

// sabineConstant relates volume and RT60 to total absorption:
// A = 0.161 V / RT60 (metric Sabine equation).
const sabineConstant = 0.161

// InverseSquare returns the free-field pressure attenuation factor at
// a distance in meters relative to 1 m.
func InverseSquare(distance float64) (float64, error) {
	if distance <= 0 {
		return 0, ErrInvalidDistance
	}
	return 1 / (distance * distance), nil
}

// SPLAtDistance projects a 1 m SPL to another distance in the free
// field (6 dB per doubling).
func SPLAtDistance(splAt1m, distance float64) (float64, error) {
	if distance <= 0 {
		return 0, ErrInvalidDistance
	}
	return splAt1m - 20*math.Log10(distance), nil
}

// CriticalDistance returns the Sabine critical distance in meters: the
// range where direct and reverberant fields are equal,
// Dc = 0.141 sqrt(Q A) with A = 0.161 V / RT60.
func CriticalDistance(q, volume, rt60 float64) (float64, error) {
	if q <= 0 {
		return 0, ErrInvalidQ
	}
	if volume <= 0 {
		return 0, ErrInvalidVolume
	}
	if rt60 <= 0 {
		return 0, ErrInvalidRT
	}

	absorption := sabineConstant * volume / rt60

	return 0.141 * math.Sqrt(q*absorption), nil
}

// Gain returns the level lift in dB from the reverberant field at a
// listening distance, relative to the free-field direct sound:
// 10 log10(1 + (d/Dc)^2). Far inside the critical distance it tends to
// 0 dB; far beyond, the reverberant field dominates.
func Gain(distance, criticalDistance float64) (float64, error) {
	if distance <= 0 || criticalDistance <= 0 {
		return 0, ErrInvalidDistance
	}

	ratio := distance / criticalDistance

	return 10 * math.Log10(1+ratio*ratio), nil
}
