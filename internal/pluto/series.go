package pluto

import "math"

// Validity window of the Pluto99 fit, in Julian Ephemeris Days.
// 626150.5 is roughly 3000 BCE, 2811150.5 roughly 3000 CE.
const (
	StartJDE = 626150.5
	EndJDE   = 2811150.5

	windowDays = EndJDE - StartJDE
)

// term is one oscillation of a coordinate series: amp*sin(freq*t + phase),
// with t in Julian centuries from J2000. Amplitudes are in AU, frequencies
// in rad/century, phases in rad.
type term struct {
	amp, freq, phase float64
}

// seriesTable holds the full fit for one axis: three term groups weighted
// by successive powers of the normalized time parameter, plus the linear
// correction the trigonometric fit does not capture.
type seriesTable struct {
	offset, slope float64
	terms         [3][]term
}

// Normalize maps a Julian Ephemeris Day onto the dimensionless parameter
// the series was fitted against: -1 at StartJDE, +1 at EndJDE. Inputs
// outside the window extrapolate silently with degraded accuracy; callers
// that care should check InWindow first.
func Normalize(jde float64) float64 {
	return -1 + 2*(jde-StartJDE)/windowDays
}

// InWindow reports whether a Julian Ephemeris Day lies inside the fit's
// validity window. Advisory only; no evaluation path enforces it.
func InWindow(jde float64) bool {
	return jde >= StartJDE && jde <= EndJDE
}

// evalSeries sums the three term groups of one axis table and combines them
// as S0 + S1*x + S2*x^2. The linear correction is applied by the caller.
// NaN or Inf arguments propagate into the result.
func evalSeries(tbl *seriesTable, x, t float64) float64 {
	var v float64
	xp := 1.0
	for _, group := range tbl.terms {
		var s float64
		for _, tm := range group {
			s += tm.amp * math.Sin(tm.freq*t+tm.phase)
		}
		v += s * xp
		xp *= x
	}
	return v
}
