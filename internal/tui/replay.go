// Package tui replays a recorded Nelder-Mead run in the terminal.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wjlewis/lagrangian/internal/optim"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const (
	baseInterval = 120 * time.Millisecond
	minWidth     = 50
	minHeight    = 12
)

type Replay struct {
	title  string
	trace  []optim.Iteration
	bounds bounds
	values []float64

	frame  int
	paused bool
	speed  float64

	width  int
	height int
}

// NewReplay builds a replay over trace. The view window is fixed to the
// region the whole run visits.
func NewReplay(title string, trace []optim.Iteration) *Replay {
	values := make([]float64, len(trace))
	for i, it := range trace {
		values[i] = math.Log10(math.Abs(it.Best.Value) + 1e-300)
	}
	return &Replay{
		title:  title,
		trace:  trace,
		bounds: fitBounds(trace),
		values: values,
		speed:  1.0,
		width:  80,
		height: 24,
	}
}

// Frame is the index of the iteration currently shown.
func (m *Replay) Frame() int { return m.frame }

func (m *Replay) Done() bool { return m.frame >= len(m.trace)-1 }

type tickMsg time.Time

func (m *Replay) tick() tea.Cmd {
	d := time.Duration(float64(baseInterval) / m.speed)
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Replay) Init() tea.Cmd {
	if len(m.trace) == 0 {
		return nil
	}
	return m.tick()
}

func (m *Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.paused || len(m.trace) == 0 {
			return m, nil
		}
		if !m.Done() {
			m.frame++
		}
		if m.Done() {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Replay) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
		if !m.paused && !m.Done() {
			return m, m.tick()
		}
	case "right", "l":
		if !m.Done() {
			m.frame++
		}
	case "left", "h":
		if m.frame > 0 {
			m.frame--
		}
	case "home", "g":
		m.frame = 0
	case "end", "G":
		m.frame = max(len(m.trace)-1, 0)
	case "r":
		m.frame = 0
		m.paused = false
		return m, m.tick()
	case "+", "=":
		m.speed = math.Min(m.speed*2, 16)
	case "-", "_":
		m.speed = math.Max(m.speed/2, 0.25)
	case "0":
		m.speed = 1.0
	}
	return m, nil
}

func (m *Replay) View() string {
	var b strings.Builder

	if len(m.trace) == 0 {
		b.WriteString("\n   " + cyan.Render(m.title) + "  " + dim.Render("no iterations recorded") + "\n")
		b.WriteString("\n" + dim.Render("   q quit") + "\n")
		return b.String()
	}

	cw := max(m.width-6, minWidth)
	ch := max(m.height-12, minHeight)
	c := newCanvas(cw, ch)
	it := m.trace[m.frame]
	drawSimplex(c, m.bounds, it.Simplex)

	statusIcon := green.Render("●")
	statusText := green.Render("playing")
	switch {
	case m.Done():
		statusIcon = cyan.Render("■")
		statusText = cyan.Render("done")
	case m.paused:
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n", statusIcon, cyan.Render(m.title), statusText))

	total := len(m.trace)
	barWidth := 36
	filled := (m.frame + 1) * barWidth / total
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	counter := fmt.Sprintf("%d/%d", m.frame+1, total)
	b.WriteString(fmt.Sprintf("   %s %s  %s\n\n", bar, dim.Render(counter), dim.Render(fmt.Sprintf("%.2gx", m.speed))))

	for _, row := range c.rows() {
		b.WriteString("   " + row + "\n")
	}

	b.WriteString(fmt.Sprintf("\n   %s %s  %s %s  %s %s\n",
		dim.Render("step"), magenta.Render(it.Step.String()),
		dim.Render("f="), white.Render(fmt.Sprintf("%.6g", it.Best.Value)),
		dim.Render("spread="), white.Render(fmt.Sprintf("%.3g", it.Spread))))
	b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("x="), white.Render(formatPoint(it.Best.Point))))

	if m.frame > 0 {
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("log f"), cyan.Render(sparkline(m.values[:m.frame+1], 32))))
	}

	b.WriteString("\n" + dim.Render("   space pause  ←→ step  ±speed  r restart  q quit") + "\n")
	return b.String()
}

func formatPoint(p []float64) string {
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = fmt.Sprintf("%.4f", x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
