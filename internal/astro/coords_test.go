package astro

import (
	"math"
	"testing"
)

func TestVec3Norm(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"zero", Vec3{}, 0},
		{"unit x", Vec3{X: 1}, 1},
		{"pythagorean", Vec3{X: 3, Y: 4, Z: 0}, 5},
		{"3d", Vec3{X: 2, Y: 3, Z: 6}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Norm(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}

	if got, want := a.Add(b), (Vec3{X: 0, Y: 2.5, Z: 5}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Vec3{X: 2, Y: 1.5, Z: 1}); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := a.Scale(2), (Vec3{X: 2, Y: 4, Z: 6}); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
}

func TestEclipticLonDeg(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"vernal equinox", Vec3{X: 1}, 0},
		{"90 degrees", Vec3{Y: 1}, 90},
		{"180 degrees", Vec3{X: -1}, 180},
		{"270 degrees, normalized positive", Vec3{Y: -1}, 270},
		{"45 degrees", Vec3{X: 1, Y: 1}, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.EclipticLonDeg(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EclipticLonDeg = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEclipticLatDeg(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"in plane", Vec3{X: 1, Y: 1}, 0},
		{"north pole", Vec3{Z: 1}, 90},
		{"south pole", Vec3{Z: -2}, -90},
		{"45 north", Vec3{X: 1, Z: 1}, 45},
		{"zero vector", Vec3{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.EclipticLatDeg(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EclipticLatDeg = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnitConversions(t *testing.T) {
	if got := AUToKm(1); got != AUKm {
		t.Errorf("AUToKm(1) = %v, want %v", got, AUKm)
	}
	if got := KmToAU(AUKm); got != 1 {
		t.Errorf("KmToAU(AUKm) = %v, want 1", got)
	}
	if got := KmToAU(AUToKm(30.25)); math.Abs(got-30.25) > 1e-12 {
		t.Errorf("round trip = %v, want 30.25", got)
	}
}

func TestFormatLightTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{12.3, "12.3s"},
		{75, "1m15s"},
		{3600, "1h00m"},
		{14850, "4h07m"}, // ~29.76 AU, Pluto near perihelion
	}
	for _, tt := range tests {
		if got := FormatLightTime(tt.seconds); got != tt.want {
			t.Errorf("FormatLightTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestProjectTopDown(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		max  float64
		want ProjectedPoint
	}{
		{"origin", Vec3{}, 50, ProjectedPoint{}},
		{"on x axis at half scale", Vec3{X: 25}, 50, ProjectedPoint{X: 0.5}},
		{"on y axis at full scale", Vec3{Y: 50}, 50, ProjectedPoint{Y: 1}},
		{"z dropped", Vec3{X: 25, Z: 100}, 50, ProjectedPoint{X: 0.5}},
		{"bad scale", Vec3{X: 1}, 0, ProjectedPoint{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectTopDown(tt.v, tt.max)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("ProjectTopDown = %+v, want %+v", got, tt.want)
			}
		})
	}
}
