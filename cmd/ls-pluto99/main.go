// Command ls-pluto99 computes heliocentric positions of Pluto from the
// Pluto99 analytic series, as a one-shot readout, an ephemeris table, or
// an interactive terminal orbit view.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-pluto99/internal/astro"
	"github.com/litescript/ls-pluto99/internal/ephem"
	"github.com/litescript/ls-pluto99/internal/logging"
	"github.com/litescript/ls-pluto99/internal/pluto"
	"github.com/litescript/ls-pluto99/internal/timeref"
	"github.com/litescript/ls-pluto99/internal/ui"
	"github.com/litescript/ls-pluto99/internal/version"
)

// CLI flags for headless mode
var (
	jdeFlag     float64
	dateFlag    string
	posMode     bool
	startJDE    float64
	endJDE      float64
	stepDays    float64
	jsonPath    string
	showVersion bool
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Float64Var(&jdeFlag, "jde", 0, "Epoch as a Julian Ephemeris Day (default: now)")
	flag.StringVar(&dateFlag, "date", "", "Epoch as a calendar date, YYYY-MM-DD (noon TT)")
	flag.BoolVar(&posMode, "pos", false, "Print the position for the epoch and exit")
	flag.Float64Var(&startJDE, "start", 0, "Table mode: first epoch (JDE)")
	flag.Float64Var(&endJDE, "end", 0, "Table mode: last epoch (JDE)")
	flag.Float64Var(&stepDays, "step", 365.25, "Table mode: step in days")
	flag.StringVar(&jsonPath, "json", "", "Write the table as JSON to file (use - for stdout)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("ls-pluto99 %s\n", version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	epoch, err := resolveEpoch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	eng, err := pluto.New(epoch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !pluto.InWindow(epoch.JulianEphemerisDay()) {
		logger.Warn("epoch %s is outside the fit window (JDE %.1f..%.1f); the position is an extrapolation",
			epoch, pluto.StartJDE, pluto.EndJDE)
	}

	headless := posMode || startJDE != 0 || endJDE != 0 || jsonPath != ""
	if headless {
		if err := runHeadless(eng, epoch, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal; use -pos or -start/-end for headless output")
		os.Exit(1)
	}

	p := tea.NewProgram(ui.New(eng, epoch), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// resolveEpoch picks the epoch from -jde or -date, defaulting to now.
func resolveEpoch() (timeref.JulianDay, error) {
	if jdeFlag != 0 && dateFlag != "" {
		return timeref.JulianDay{}, fmt.Errorf("-jde and -date are mutually exclusive")
	}
	if jdeFlag != 0 {
		return timeref.FromJDE(jdeFlag), nil
	}
	if dateFlag != "" {
		return parseDate(dateFlag)
	}
	return timeref.FromTime(time.Now()), nil
}

// parseDate parses YYYY-MM-DD (astronomical years, so -0999-01-01 works)
// into a noon epoch.
func parseDate(s string) (timeref.JulianDay, error) {
	rest := s
	neg := false
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return timeref.JulianDay{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return timeref.JulianDay{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	if neg {
		year = -year
	}
	return timeref.FromCalendar(year, time.Month(month), float64(day)+0.5), nil
}

// runHeadless handles -pos and table mode without starting the TUI.
func runHeadless(eng *pluto.Engine, epoch timeref.JulianDay, logger *logging.Logger) error {
	if posMode {
		writePosition(eng, epoch)
		return nil
	}

	if endJDE == 0 {
		return fmt.Errorf("table mode needs -start and -end")
	}
	if startJDE == 0 {
		startJDE = epoch.JulianEphemerisDay()
	}

	logger.Debug("generating table JDE %.1f..%.1f step %.2fd", startJDE, endJDE, stepDays)
	rows, err := ephem.Generate(eng, startJDE, endJDE, stepDays)
	if err != nil {
		return err
	}

	if jsonPath != "" {
		export := ephem.Export(rows, time.Now())
		if jsonPath == "-" {
			return export.WriteJSON(os.Stdout)
		}
		f, err := os.Create(jsonPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", jsonPath, err)
		}
		defer f.Close()
		if err := export.WriteJSON(f); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		logger.Info("wrote %d rows to %s", len(rows), jsonPath)
		return nil
	}

	ephem.WriteTable(os.Stdout, rows)
	return nil
}

// writePosition prints the one-shot position readout.
func writePosition(eng *pluto.Engine, epoch timeref.JulianDay) {
	rc := eng.RC()
	r := rc.Norm()
	fmt.Printf("Epoch:  %s\n", epoch)
	fmt.Printf("Frame:  heliocentric ecliptic J2000\n")
	fmt.Printf("x:      %+.6f AU\n", rc.X)
	fmt.Printf("y:      %+.6f AU\n", rc.Y)
	fmt.Printf("z:      %+.6f AU\n", rc.Z)
	fmt.Printf("r:      %.6f AU (%.0f km)\n", r, astro.AUToKm(r))
	fmt.Printf("lon:    %.4f°\n", rc.EclipticLonDeg())
	fmt.Printf("lat:    %+.4f°\n", rc.EclipticLatDeg())
	fmt.Printf("light:  %s\n", astro.FormatLightTime(astro.LightTimeSec(r)))
}
