package timeref

import (
	"math"
	"testing"
	"time"
)

func TestFromCalendar(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   float64
		want  float64
	}{
		{"J2000 epoch", 2000, time.January, 1.5, 2451545.0},
		{"1987-04-10 noon", 1987, time.April, 10.5, 2446896.0},
		{"sputnik", 1957, time.October, 4.81, 2436116.31},
		{"gregorian reform start", 1582, time.October, 15.0, 2299160.5},
		{"last julian day", 1582, time.October, 4.0, 2299159.5},
		{"333-01-27 noon (julian)", 333, time.January, 27.5, 1842713.0},
		{"year zero", 0, time.December, 31.0, 1721422.5},
		{"deep past", -1000, time.July, 12.5, 1356001.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromCalendar(tt.year, tt.month, tt.day).JulianEphemerisDay()
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("FromCalendar = %.6f, want %.6f", got, tt.want)
			}
		})
	}
}

func TestCalendarRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   float64
	}{
		{"modern", 2026, time.August, 23.25},
		{"epoch", 2000, time.January, 1.5},
		{"pre-gregorian", 1200, time.March, 7.0},
		{"negative year", -500, time.June, 15.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := FromCalendar(tt.year, tt.month, tt.day)
			y, m, d := j.Calendar()
			if y != tt.year || m != tt.month || math.Abs(d-tt.day) > 1e-6 {
				t.Errorf("Calendar() = %d-%v-%.6f, want %d-%v-%.6f",
					y, m, d, tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestFromTime(t *testing.T) {
	// 2000-01-01 12:00 UTC is the J2000 epoch (ignoring the TT offset).
	got := FromTime(time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(got.JulianEphemerisDay()-J2000) > 1e-9 {
		t.Errorf("FromTime(J2000) = %.9f, want %.1f", got.JulianEphemerisDay(), J2000)
	}

	// Zone conversion: 14:00+02:00 is noon UTC.
	zone := time.FixedZone("CEST", 2*3600)
	got = FromTime(time.Date(2000, time.January, 1, 14, 0, 0, 0, zone))
	if math.Abs(got.JulianEphemerisDay()-J2000) > 1e-9 {
		t.Errorf("FromTime in non-UTC zone = %.9f, want %.1f", got.JulianEphemerisDay(), J2000)
	}
}

func TestJulianCenturies(t *testing.T) {
	tests := []struct {
		name string
		jde  float64
		want float64
	}{
		{"J2000", 2451545.0, 0},
		{"one century later", 2451545.0 + DaysPerCentury, 1},
		{"1987-04-10", 2446896.0, -0.127282683094},
		{"three centuries before", 2341970.0, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromJDE(tt.jde).JulianCenturies()
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("JulianCenturies = %.12f, want %.12f", got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	j := FromJDE(2451545.0)
	if got := j.AddDays(36525).JulianEphemerisDay(); got != 2488070.0 {
		t.Errorf("AddDays(36525) = %v, want 2488070", got)
	}
	if got := j.AddDays(-0.5).JulianEphemerisDay(); got != 2451544.5 {
		t.Errorf("AddDays(-0.5) = %v, want 2451544.5", got)
	}
	// Original is unchanged.
	if got := j.JulianEphemerisDay(); got != 2451545.0 {
		t.Errorf("AddDays mutated receiver: %v", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		jde  float64
		want string
	}{
		{2446896.0, "JDE 2446896.0 (1987-04-10 12:00)"},
		{2451544.5, "JDE 2451544.5 (2000-01-01 00:00)"},
	}
	for _, tt := range tests {
		if got := FromJDE(tt.jde).String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.jde, got, tt.want)
		}
	}
}
