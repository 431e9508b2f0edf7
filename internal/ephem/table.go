// Package ephem generates ephemeris tables from the Pluto99 engine and
// writes them as text or JSON.
package ephem

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-pluto99/internal/astro"
	"github.com/litescript/ls-pluto99/internal/pluto"
	"github.com/litescript/ls-pluto99/internal/timeref"
)

// ErrBadRange is returned when a table range is empty or its step is not
// positive.
var ErrBadRange = errors.New("ephem: invalid table range")

// Row is one evaluated epoch of an ephemeris table.
type Row struct {
	Epoch    timeref.JulianDay
	Pos      astro.Vec3
	InWindow bool
}

// RadiusAU returns the heliocentric distance for the row.
func (r Row) RadiusAU() float64 {
	return r.Pos.Norm()
}

// Generate evaluates the engine over [startJDE, endJDE] at stepDays
// intervals, re-epoching the engine for every row. The engine is left at
// the last evaluated epoch.
func Generate(eng *pluto.Engine, startJDE, endJDE, stepDays float64) ([]Row, error) {
	if stepDays <= 0 || endJDE < startJDE {
		return nil, ErrBadRange
	}

	var rows []Row
	for jde := startJDE; jde <= endJDE; jde += stepDays {
		epoch := timeref.FromJDE(jde)
		if err := eng.SetEpoch(epoch); err != nil {
			return nil, fmt.Errorf("ephem: set epoch %.1f: %w", jde, err)
		}
		rows = append(rows, Row{
			Epoch:    epoch,
			Pos:      eng.RC(),
			InWindow: pluto.InWindow(jde),
		})
	}
	return rows, nil
}

// WriteTable writes rows as a fixed-width text table.
func WriteTable(w io.Writer, rows []Row) {
	fmt.Fprintf(w, "Pluto heliocentric ecliptic position (J2000 frame)\n")
	fmt.Fprintln(w, strings.Repeat("─", 86))
	fmt.Fprintf(w, "%-14s %-18s %12s %12s %12s %10s\n",
		"JDE", "Date", "x (AU)", "y (AU)", "z (AU)", "r (AU)")
	fmt.Fprintln(w, strings.Repeat("─", 86))

	for _, r := range rows {
		year, month, day := r.Epoch.Calendar()
		note := ""
		if !r.InWindow {
			note = " *"
		}
		fmt.Fprintf(w, "%-14.1f %-18s %12.6f %12.6f %12.6f %10.4f%s\n",
			r.Epoch.JulianEphemerisDay(),
			fmt.Sprintf("%d-%02d-%02d", year, int(month), int(day)),
			r.Pos.X, r.Pos.Y, r.Pos.Z, r.RadiusAU(), note)
	}

	for _, r := range rows {
		if !r.InWindow {
			fmt.Fprintf(w, "\n* outside fit validity window (JDE %.1f..%.1f); extrapolated\n",
				pluto.StartJDE, pluto.EndJDE)
			break
		}
	}
}
