// Package timeref provides Julian-day time references for the ephemeris
// engine. A JulianDay satisfies the engine's TimeRef capability: it exposes
// the absolute Julian Ephemeris Day and the same instant in Julian
// centuries from J2000.
package timeref

import (
	"fmt"
	"math"
	"time"
)

const (
	// J2000 is the Julian Ephemeris Day of the J2000.0 epoch
	// (2000 January 1, 12:00 TT).
	J2000 = 2451545.0

	// DaysPerCentury is the number of days in a Julian century.
	DaysPerCentury = 36525.0
)

// JulianDay is an immutable time reference on the Julian Ephemeris Day
// scale. The zero value is JDE 0.0 (noon, 4713 BCE January 1, Julian
// calendar), not a useful epoch; construct via FromJDE, FromTime or
// FromCalendar.
type JulianDay struct {
	jde float64
}

// FromJDE wraps a raw Julian Ephemeris Day number.
func FromJDE(jde float64) JulianDay {
	return JulianDay{jde: jde}
}

// FromTime converts a time.Time to a Julian day reference. The civil time
// is used as-is; the small TT-UTC offset (about a minute in the current
// era) is below the precision anything in this program needs.
func FromTime(t time.Time) JulianDay {
	t = t.UTC()
	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24
	return FromCalendar(t.Year(), t.Month(), float64(t.Day())+dayFrac)
}

// FromCalendar converts a calendar date to a Julian day reference using the
// standard Meeus algorithm. The day may carry a fraction (10.5 is noon on
// the 10th). Dates on or after 1582 October 15 are taken as Gregorian,
// earlier dates as Julian calendar; years are astronomical (year 0 exists,
// -2999 is 3000 BCE).
func FromCalendar(year int, month time.Month, day float64) JulianDay {
	y, m := float64(year), float64(month)
	if m <= 2 {
		y--
		m += 12
	}
	var b float64
	if gregorian(year, month, day) {
		a := math.Floor(y / 100)
		b = 2 - a + math.Floor(a/4)
	}
	jde := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) +
		day + b - 1524.5
	return JulianDay{jde: jde}
}

func gregorian(year int, month time.Month, day float64) bool {
	if year != 1582 {
		return year > 1582
	}
	if month != time.October {
		return month > time.October
	}
	return day >= 15
}

// JulianEphemerisDay returns the absolute JDE value.
func (j JulianDay) JulianEphemerisDay() float64 {
	return j.jde
}

// JulianCenturies returns the time as Julian centuries from J2000, the
// angular-argument variable of the coordinate series.
func (j JulianDay) JulianCenturies() float64 {
	return (j.jde - J2000) / DaysPerCentury
}

// AddDays returns a new reference offset by a (possibly fractional,
// possibly negative) number of days.
func (j JulianDay) AddDays(d float64) JulianDay {
	return JulianDay{jde: j.jde + d}
}

// Calendar converts the reference back to a calendar date, inverting
// FromCalendar. The returned day carries the time of day as a fraction.
func (j JulianDay) Calendar() (year int, month time.Month, day float64) {
	v := j.jde + 0.5
	z := math.Floor(v)
	f := v - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = b - d - math.Floor(30.6001*e) + f
	if e < 14 {
		month = time.Month(e - 1)
	} else {
		month = time.Month(e - 13)
	}
	if month > time.February {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}
	return year, month, day
}

// String renders the reference as the JDE number with its calendar date,
// e.g. "JDE 2446896.0 (1987-04-10 12:00)".
func (j JulianDay) String() string {
	year, month, day := j.Calendar()
	d := math.Floor(day)
	frac := day - d
	mins := int(math.Round(frac * 24 * 60))
	if mins > 1439 {
		mins = 1439
	}
	return fmt.Sprintf("JDE %.1f (%d-%02d-%02d %02d:%02d)",
		j.jde, year, int(month), int(d), mins/60, mins%60)
}
