package ephem

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-pluto99/internal/pluto"
)

func TestExport(t *testing.T) {
	rows, err := Generate(testEngine(t), 2446896.0, 2446896.0+365.25, 365.25)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	generatedAt := time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC)
	export := Export(rows, generatedAt)

	if export.Frame != "heliocentric ecliptic J2000" {
		t.Errorf("Frame = %q", export.Frame)
	}
	if !export.GeneratedAt.Equal(generatedAt) {
		t.Errorf("GeneratedAt = %v, want %v", export.GeneratedAt, generatedAt)
	}
	if len(export.Rows) != 2 {
		t.Fatalf("got %d export rows, want 2", len(export.Rows))
	}

	first := export.Rows[0]
	if first.JDE != 2446896.0 {
		t.Errorf("JDE = %v, want 2446896", first.JDE)
	}
	if math.Abs(first.RadiusAU-29.694893) > 1e-3 {
		t.Errorf("RadiusAU = %v, want ~29.6949", first.RadiusAU)
	}
	if !strings.Contains(first.Date, "1987-04-10") {
		t.Errorf("Date = %q, want 1987-04-10", first.Date)
	}
	if !first.InWindow {
		t.Errorf("InWindow = false for an in-window row")
	}
}

func TestWriteJSON(t *testing.T) {
	rows, err := Generate(testEngine(t), pluto.EndJDE+10, pluto.EndJDE+10, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var buf bytes.Buffer
	if err := Export(rows, time.Now()).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded struct {
		Frame string `json:"frame"`
		Rows  []struct {
			JDE      float64 `json:"jde"`
			RadiusAU float64 `json:"r_au"`
			InWindow bool    `json:"in_window"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Frame != "heliocentric ecliptic J2000" {
		t.Errorf("frame = %q", decoded.Frame)
	}
	if len(decoded.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(decoded.Rows))
	}
	if decoded.Rows[0].InWindow {
		t.Errorf("extrapolated row not flagged in JSON")
	}
	if decoded.Rows[0].JDE != pluto.EndJDE+10 {
		t.Errorf("jde = %v, want %v", decoded.Rows[0].JDE, pluto.EndJDE+10)
	}

	// Indented output, one key per line.
	if !strings.Contains(buf.String(), "\n  \"frame\"") {
		t.Errorf("output is not indented:\n%s", buf.String())
	}
}
