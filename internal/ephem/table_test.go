package ephem

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/litescript/ls-pluto99/internal/pluto"
	"github.com/litescript/ls-pluto99/internal/timeref"
)

func testEngine(t *testing.T) *pluto.Engine {
	t.Helper()
	eng, err := pluto.New(timeref.FromJDE(timeref.J2000))
	if err != nil {
		t.Fatalf("pluto.New: %v", err)
	}
	return eng
}

func TestGenerate(t *testing.T) {
	eng := testEngine(t)
	rows, err := Generate(eng, 2446896.0, 2446896.0+4*365.25, 365.25)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}

	for i, r := range rows {
		wantJDE := 2446896.0 + float64(i)*365.25
		if got := r.Epoch.JulianEphemerisDay(); math.Abs(got-wantJDE) > 1e-9 {
			t.Errorf("row %d epoch = %v, want %v", i, got, wantJDE)
		}
		if !r.InWindow {
			t.Errorf("row %d flagged out of window", i)
		}
		if r.RadiusAU() < 29 || r.RadiusAU() > 51 {
			t.Errorf("row %d radius = %v AU, implausible", i, r.RadiusAU())
		}
	}

	// The engine is left at the last row's epoch.
	last := rows[len(rows)-1].Epoch.JulianEphemerisDay()
	if got := eng.Epoch().JulianEphemerisDay(); got != last {
		t.Errorf("engine epoch after Generate = %v, want %v", got, last)
	}
}

func TestGenerateSingleRow(t *testing.T) {
	rows, err := Generate(testEngine(t), 2451545.0, 2451545.0, 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}

func TestGenerateBadRange(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float64
	}{
		{"zero step", 2451545, 2451645, 0},
		{"negative step", 2451545, 2451645, -1},
		{"end before start", 2451645, 2451545, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(testEngine(t), tt.start, tt.end, tt.step); !errors.Is(err, ErrBadRange) {
				t.Errorf("err = %v, want ErrBadRange", err)
			}
		})
	}
}

func TestGenerateMarksExtrapolation(t *testing.T) {
	rows, err := Generate(testEngine(t), pluto.EndJDE-100, pluto.EndJDE+100, 100)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if !rows[0].InWindow || !rows[1].InWindow {
		t.Errorf("in-window rows flagged as extrapolated")
	}
	if rows[2].InWindow {
		t.Errorf("out-of-window row not flagged")
	}
}

func TestWriteTable(t *testing.T) {
	rows, err := Generate(testEngine(t), 2446896.0, 2446896.0, 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var b strings.Builder
	WriteTable(&b, rows)
	out := b.String()

	for _, want := range []string{"JDE", "2446896.0", "1987-04-10", "r (AU)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "extrapolated") {
		t.Errorf("in-window table carries extrapolation footnote:\n%s", out)
	}
}

func TestWriteTableExtrapolationFootnote(t *testing.T) {
	rows, err := Generate(testEngine(t), pluto.EndJDE+10, pluto.EndJDE+10, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var b strings.Builder
	WriteTable(&b, rows)
	out := b.String()

	if !strings.Contains(out, "*") || !strings.Contains(out, "extrapolated") {
		t.Errorf("out-of-window table missing footnote:\n%s", out)
	}
}
