// Package astro provides the small amount of spherical and vector math the
// ephemeris display layers need.
package astro

import (
	"fmt"
	"math"
)

// AUKm is the Astronomical Unit in kilometers.
const AUKm = 149597870.7

// Vec3 is a 3D vector in heliocentric ecliptic coordinates (AU).
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// EclipticLonDeg returns the ecliptic longitude of the vector in degrees,
// normalized to [0, 360).
func (v Vec3) EclipticLonDeg() float64 {
	lon := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if lon < 0 {
		lon += 360
	}
	return lon
}

// EclipticLatDeg returns the ecliptic latitude of the vector in degrees.
func (v Vec3) EclipticLatDeg() float64 {
	r := v.Norm()
	if r == 0 {
		return 0
	}
	return math.Asin(v.Z/r) * 180 / math.Pi
}

// KmToAU converts kilometers to Astronomical Units.
func KmToAU(km float64) float64 {
	return km / AUKm
}

// AUToKm converts Astronomical Units to kilometers.
func AUToKm(au float64) float64 {
	return au * AUKm
}

// LightTimeSec returns the one-way light time in seconds for a distance in AU.
// Light travels 1 AU in ~499.005 seconds.
func LightTimeSec(au float64) float64 {
	return au * 499.005
}

// FormatLightTime renders a light time in seconds as "Xs", "XmYs" or "XhYm".
func FormatLightTime(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm%02ds", int(seconds)/60, int(seconds)%60)
	default:
		return fmt.Sprintf("%dh%02dm", int(seconds)/3600, (int(seconds)%3600)/60)
	}
}
