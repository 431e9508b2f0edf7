package ui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-pluto99/internal/pluto"
	"github.com/litescript/ls-pluto99/internal/timeref"
)

func testModel(t *testing.T, jde float64) Model {
	t.Helper()
	epoch := timeref.FromJDE(jde)
	eng, err := pluto.New(epoch)
	if err != nil {
		t.Fatalf("pluto.New: %v", err)
	}
	return New(eng, epoch)
}

func sized(m Model, w, h int) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func key(m Model, k string) Model {
	var msg tea.KeyMsg
	switch k {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestViewSmallTerminal(t *testing.T) {
	m := sized(testModel(t, 2446896.0), 20, 5)
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("small terminal view missing notice")
	}
}

func TestViewRendersHUD(t *testing.T) {
	m := sized(testModel(t, 2446896.0), 100, 30)
	out := m.View()

	for _, want := range []string{"JDE 2446896.0", "1987-04-10", "☉", "♇", "29.694"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(out, "extrapolating") {
		t.Errorf("in-window view shows extrapolation warning")
	}
}

func TestViewWarnsOutsideWindow(t *testing.T) {
	m := sized(testModel(t, pluto.EndJDE+1000), 100, 30)
	if !strings.Contains(m.View(), "extrapolating") {
		t.Errorf("out-of-window view missing warning")
	}
}

func TestScrubKeys(t *testing.T) {
	m := testModel(t, 2446896.0) // default step 1y

	m = key(m, "right")
	if got := m.Epoch().JulianEphemerisDay(); got != 2446896.0+365.25 {
		t.Errorf("after right: epoch = %v, want %v", got, 2446896.0+365.25)
	}
	m = key(m, "left")
	m = key(m, "left")
	if got := m.Epoch().JulianEphemerisDay(); got != 2446896.0-365.25 {
		t.Errorf("after left x2: epoch = %v, want %v", got, 2446896.0-365.25)
	}

	// Scrubbing re-epochs the shared engine too.
	if got := m.eng.Epoch().JulianEphemerisDay(); got != m.Epoch().JulianEphemerisDay() {
		t.Errorf("engine epoch %v does not track model epoch %v",
			got, m.Epoch().JulianEphemerisDay())
	}
}

func TestStepAdjustKeys(t *testing.T) {
	m := testModel(t, 2446896.0)

	// Step down twice: 1y -> 30d -> 1d, then clamp at the smallest step.
	for i := 0; i < 4; i++ {
		m = key(m, "-")
	}
	m = key(m, "right")
	if got := m.Epoch().JulianEphemerisDay(); got != 2446897.0 {
		t.Errorf("after min step right: epoch = %v, want 2446897", got)
	}

	// Step up clamps at the largest step.
	for i := 0; i < 10; i++ {
		m = key(m, "+")
	}
	m = key(m, "right")
	if got := m.Epoch().JulianEphemerisDay(); got != 2446897.0+36525 {
		t.Errorf("after max step right: epoch = %v, want %v", got, 2446897.0+36525)
	}
}

func TestJumpKeys(t *testing.T) {
	m := key(testModel(t, 2446896.0), "j")
	if got := m.Epoch().JulianEphemerisDay(); got != timeref.J2000 {
		t.Errorf("after j: epoch = %v, want J2000", got)
	}

	m = key(m, "n")
	// "Now" lands in the current era, comfortably inside the window.
	if got := m.Epoch().JulianEphemerisDay(); math.Abs(got-2461000) > 40000 {
		t.Errorf("after n: epoch = %v, not near the present", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t, 2446896.0)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q produced no command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q command = %v, want tea.Quit", msg)
	}
}

func TestOrbitPath(t *testing.T) {
	path := orbitPath()
	if len(path) != orbitSamples {
		t.Fatalf("orbit path has %d samples, want %d", len(path), orbitSamples)
	}
	for i, v := range path {
		r := v.Norm()
		if r < 29 || r > 51 {
			t.Errorf("sample %d radius %v AU, implausible", i, r)
		}
	}
}
