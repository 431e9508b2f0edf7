// Package ui implements the interactive epoch scrubber: an orbit plan view
// plus a position HUD, driven by one Pluto99 engine.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-pluto99/internal/astro"
	"github.com/litescript/ls-pluto99/internal/pluto"
	"github.com/litescript/ls-pluto99/internal/timeref"
)

// orbitalPeriodDays is Pluto's sidereal period, used only to close the
// orbit path drawn in the plan view.
const orbitalPeriodDays = 90560.0

// viewRadiusAU maps the plan view edge; Pluto's aphelion is ~49.3 AU.
const viewRadiusAU = 52.0

// orbitSamples is the number of points drawn along the orbit path.
const orbitSamples = 240

// scrub step sizes cycled with +/-.
var steps = []struct {
	days  float64
	label string
}{
	{1, "1d"},
	{30, "30d"},
	{365.25, "1y"},
	{3652.5, "10y"},
	{36525, "100y"},
}

// Model is the bubbletea model for the epoch scrubber.
type Model struct {
	width  int
	height int

	eng     *pluto.Engine
	epoch   timeref.JulianDay
	stepIdx int

	orbit []astro.Vec3
}

// New creates a scrubber positioned at the engine's current epoch.
func New(eng *pluto.Engine, epoch timeref.JulianDay) Model {
	return Model{
		eng:     eng,
		epoch:   epoch,
		stepIdx: 2, // 1y
		orbit:   orbitPath(),
	}
}

// orbitPath samples one full revolution with a scratch engine so the
// scrubber's engine keeps its epoch.
func orbitPath() []astro.Vec3 {
	eng, err := pluto.New(timeref.FromJDE(timeref.J2000))
	if err != nil {
		return nil
	}
	path := make([]astro.Vec3, 0, orbitSamples)
	for i := 0; i < orbitSamples; i++ {
		jde := timeref.J2000 + orbitalPeriodDays*float64(i)/orbitSamples
		if eng.SetEpoch(timeref.FromJDE(jde)) != nil {
			break
		}
		path = append(path, eng.RC())
	}
	return path
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m = m.scrub(-steps[m.stepIdx].days)
		case "right", "l":
			m = m.scrub(+steps[m.stepIdx].days)
		case "+", "=":
			if m.stepIdx < len(steps)-1 {
				m.stepIdx++
			}
		case "-":
			if m.stepIdx > 0 {
				m.stepIdx--
			}
		case "j":
			m = m.jump(timeref.FromJDE(timeref.J2000))
		case "n":
			m = m.jump(timeref.FromTime(time.Now()))
		}
	}
	return m, nil
}

func (m Model) scrub(days float64) Model {
	return m.jump(m.epoch.AddDays(days))
}

func (m Model) jump(epoch timeref.JulianDay) Model {
	if m.eng.SetEpoch(epoch) == nil {
		m.epoch = epoch
	}
	return m
}

// Epoch returns the currently displayed epoch.
func (m Model) Epoch() timeref.JulianDay {
	return m.epoch
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width < 40 || m.height < 12 {
		return "Terminal too small for the orbit view"
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderCanvas(), m.renderHUD())
}

// renderCanvas draws the top-down orbit plan view.
func (m Model) renderCanvas() string {
	canvasH := m.height - 6
	if canvasH < 6 {
		canvasH = 6
	}
	canvasW := m.width

	grid := make([][]rune, canvasH)
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	cx := canvasW / 2
	cy := canvasH / 2
	// Terminal cells are roughly twice as tall as wide.
	sx := float64(cx) * 0.95
	sy := float64(cy) * 0.95

	plot := func(v astro.Vec3, glyph rune, overwrite bool) {
		p := astro.ProjectTopDown(v, viewRadiusAU)
		x := cx + int(p.X*sx)
		y := cy - int(p.Y*sy)
		if x < 0 || x >= canvasW || y < 0 || y >= canvasH {
			return
		}
		if overwrite || grid[y][x] == ' ' {
			grid[y][x] = glyph
		}
	}

	for _, v := range m.orbit {
		plot(v, '·', false)
	}
	grid[cy][cx] = '☉'
	plot(m.eng.RC(), '♇', true)

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sun := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	body := lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)

	var b strings.Builder
	for _, row := range grid {
		for _, ch := range row {
			switch ch {
			case ' ':
				b.WriteRune(ch)
			case '·':
				b.WriteString(dim.Render(string(ch)))
			case '☉':
				b.WriteString(sun.Render(string(ch)))
			default:
				b.WriteString(body.Render(string(ch)))
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// renderHUD draws the epoch and position readout.
func (m Model) renderHUD() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	keys := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	rc := m.eng.RC()
	r := rc.Norm()

	var b strings.Builder
	b.WriteString(label.Render("Epoch: "))
	b.WriteString(value.Render(m.epoch.String()))
	b.WriteString(label.Render("   step: "))
	b.WriteString(value.Render(steps[m.stepIdx].label))
	if !pluto.InWindow(m.epoch.JulianEphemerisDay()) {
		b.WriteString(warn.Render("   extrapolating outside fit window"))
	}
	b.WriteString("\n")

	b.WriteString(label.Render("Pos:   "))
	b.WriteString(value.Render(fmt.Sprintf("x %+11.6f  y %+11.6f  z %+11.6f AU", rc.X, rc.Y, rc.Z)))
	b.WriteString("\n")

	b.WriteString(label.Render("       "))
	b.WriteString(value.Render(fmt.Sprintf("r %.6f AU   lon %6.2f°  lat %+6.2f°   light %s",
		r, rc.EclipticLonDeg(), rc.EclipticLatDeg(),
		astro.FormatLightTime(astro.LightTimeSec(r)))))
	b.WriteString("\n")

	b.WriteString(keys.Render("←/→ scrub  +/- step  j J2000  n now  q quit"))
	return b.String()
}
