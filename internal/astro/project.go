package astro

import "math"

// ProjectedPoint is a 2D projection of an ecliptic position for terminal
// rendering. X points toward the vernal equinox, Y toward 90 degrees
// ecliptic longitude; units are display units, not AU.
type ProjectedPoint struct {
	X, Y float64
}

// ProjectTopDown projects a heliocentric ecliptic vector onto the ecliptic
// plane, scaling radial distance so that maxAU maps to one display unit.
// The Z component is dropped; Pluto's inclination is shown separately as
// ecliptic latitude rather than distorting the plan view.
func ProjectTopDown(v Vec3, maxAU float64) ProjectedPoint {
	if maxAU <= 0 {
		return ProjectedPoint{}
	}
	r := math.Hypot(v.X, v.Y) / maxAU
	theta := math.Atan2(v.Y, v.X)
	return ProjectedPoint{
		X: r * math.Cos(theta),
		Y: r * math.Sin(theta),
	}
}
