package pluto

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-pluto99/internal/timeref"
)

const posTol = 1e-5 // AU

func mustEngine(t *testing.T, jde float64) *Engine {
	t.Helper()
	eng, err := New(timeref.FromJDE(jde))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return eng
}

func TestNewNilTimeRef(t *testing.T) {
	eng, err := New(nil)
	if !errors.Is(err, ErrNoTimeRef) {
		t.Fatalf("New(nil) error = %v, want ErrNoTimeRef", err)
	}
	if eng != nil {
		t.Fatalf("New(nil) returned non-nil engine")
	}
}

func TestSetEpochNilTimeRef(t *testing.T) {
	eng := mustEngine(t, 2451545.0)
	before := eng.X()
	if err := eng.SetEpoch(nil); !errors.Is(err, ErrNoTimeRef) {
		t.Fatalf("SetEpoch(nil) error = %v, want ErrNoTimeRef", err)
	}
	// Failed adoption leaves the engine usable at the prior epoch.
	if got := eng.X(); got != before {
		t.Errorf("X after failed SetEpoch = %v, want %v", got, before)
	}
}

func TestPositionAtEpochs(t *testing.T) {
	tests := []struct {
		name    string
		jde     float64
		x, y, z float64
	}{
		{"1987-04-10", 2446896.0, -22.251764337, -17.806012420, 8.342156068},
		{"J2000", 2451545.0, -9.863492523, -27.975024260, 5.846821669},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := mustEngine(t, tt.jde)
			if got := eng.X(); math.Abs(got-tt.x) > posTol {
				t.Errorf("X = %.9f, want %.9f", got, tt.x)
			}
			if got := eng.Y(); math.Abs(got-tt.y) > posTol {
				t.Errorf("Y = %.9f, want %.9f", got, tt.y)
			}
			if got := eng.Z(); math.Abs(got-tt.z) > posTol {
				t.Errorf("Z = %.9f, want %.9f", got, tt.z)
			}
		})
	}
}

func TestRadiusAtEpochs(t *testing.T) {
	tests := []struct {
		name string
		jde  float64
		r    float64
	}{
		{"1987-04-10", 2446896.0, 29.694892865},
		{"J2000", 2451545.0, 30.233686356},
		{"window start", StartJDE, 38.729990611},
		{"window end", EndJDE, 29.696032608},
		{"three centuries before J2000", 2341970.0, 36.858195061},
		{"extrapolated past window end", 2816787.0, 31.292246099},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := mustEngine(t, tt.jde)
			if got := eng.RC().Norm(); math.Abs(got-tt.r) > posTol {
				t.Errorf("r = %.9f, want %.9f", got, tt.r)
			}
		})
	}
}

func TestRadiusPlausible(t *testing.T) {
	// Pluto stays between perihelion (~29.7 AU) and aphelion (~49.3 AU);
	// leave margin for series error.
	eng := mustEngine(t, StartJDE)
	for jde := StartJDE; jde <= EndJDE; jde += windowDays / 200 {
		if err := eng.SetEpoch(timeref.FromJDE(jde)); err != nil {
			t.Fatalf("SetEpoch(%v): %v", jde, err)
		}
		r := eng.RC().Norm()
		if r < 29 || r > 51 {
			t.Fatalf("r(%v) = %.4f AU, outside [29, 51]", jde, r)
		}
	}
}

func TestMemoization(t *testing.T) {
	eng := mustEngine(t, 2446896.0)

	calls := 0
	inner := eng.eval
	eng.eval = func(tbl *seriesTable, x, ct float64) float64 {
		calls++
		return inner(tbl, x, ct)
	}

	first := eng.X()
	for i := 0; i < 5; i++ {
		if got := eng.X(); got != first {
			t.Fatalf("repeat X = %v, want bit-identical %v", got, first)
		}
	}
	if calls != 1 {
		t.Errorf("series evaluated %d times for repeated X reads, want 1", calls)
	}

	eng.Y()
	eng.Y()
	eng.Z()
	if calls != 3 {
		t.Errorf("series evaluated %d times across all axes, want 3", calls)
	}
}

func TestSetEpochInvalidates(t *testing.T) {
	eng := mustEngine(t, 2446896.0)
	x1 := eng.X()

	if err := eng.SetEpoch(timeref.FromJDE(2451545.0)); err != nil {
		t.Fatalf("SetEpoch: %v", err)
	}
	x2 := eng.X()
	if x1 == x2 {
		t.Fatalf("X unchanged after epoch change: %v", x1)
	}

	// Changing back recomputes the original value exactly.
	if err := eng.SetEpoch(timeref.FromJDE(2446896.0)); err != nil {
		t.Fatalf("SetEpoch: %v", err)
	}
	if got := eng.X(); got != x1 {
		t.Errorf("X after round-trip epoch change = %v, want %v", got, x1)
	}
}

func TestSetEpochInvalidatesAllAxes(t *testing.T) {
	eng := mustEngine(t, 2446896.0)
	eng.X()
	eng.Y()
	eng.Z()

	calls := 0
	eng.eval = func(tbl *seriesTable, x, ct float64) float64 {
		calls++
		return evalSeries(tbl, x, ct)
	}

	if err := eng.SetEpoch(timeref.FromJDE(2451545.0)); err != nil {
		t.Fatalf("SetEpoch: %v", err)
	}
	eng.RC()
	if calls != 3 {
		t.Errorf("series evaluated %d times after invalidation, want 3", calls)
	}
}

func TestAxisCorrectionLinearity(t *testing.T) {
	// With the trigonometric part held constant, the x axis differs between
	// two epochs by exactly slope * (X2 - X1).
	const c = 1.5
	eng := mustEngine(t, 2400000.0)
	eng.eval = func(tbl *seriesTable, x, ct float64) float64 { return c }

	x1 := eng.X()
	n1 := Normalize(2400000.0)

	if err := eng.SetEpoch(timeref.FromJDE(2500000.0)); err != nil {
		t.Fatalf("SetEpoch: %v", err)
	}
	x2 := eng.X()
	n2 := Normalize(2500000.0)

	want := 0.154154 * (n2 - n1)
	if got := x2 - x1; math.Abs(got-want) > 1e-12 {
		t.Errorf("x2-x1 = %.15f, want %.15f", got, want)
	}
}

func TestEpochAccessor(t *testing.T) {
	ref := timeref.FromJDE(2446896.0)
	eng, err := New(ref)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := eng.Epoch(); got != TimeRef(ref) {
		t.Errorf("Epoch() = %v, want %v", got, ref)
	}

	ref2 := timeref.FromJDE(2451545.0)
	if err := eng.SetEpoch(ref2); err != nil {
		t.Fatalf("SetEpoch: %v", err)
	}
	if got := eng.Epoch(); got != TimeRef(ref2) {
		t.Errorf("Epoch() after SetEpoch = %v, want %v", got, ref2)
	}
}

func TestRCSnapshot(t *testing.T) {
	eng := mustEngine(t, 2446896.0)
	snap := eng.RC()
	if err := eng.SetEpoch(timeref.FromJDE(2451545.0)); err != nil {
		t.Fatalf("SetEpoch: %v", err)
	}
	// The snapshot must not track the engine's new epoch.
	if snap == eng.RC() {
		t.Errorf("snapshot changed with engine epoch")
	}
	if got, want := snap.X, -22.251764337; math.Abs(got-want) > posTol {
		t.Errorf("snapshot X = %v, want %v", got, want)
	}
}
