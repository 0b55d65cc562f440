package viz

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
	"github.com/san-kum/coaster/internal/trajectory"
)

const (
	width           = 64
	height          = 20
	frameRate       = 60
	historyCapacity = 600
	trailCapacity   = 90
	scrubStep       = 0.25
	minRate         = 0.125
	maxRate         = 8
	gaugeFrequency  = 6
	gaugeDamping    = 0.7
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// LiveModel animates a body along a track in real time. Positions come
// from the trajectory's cache, so scrubbing backwards costs nothing.
type LiveModel struct {
	ctx      context.Context
	traj     *trajectory.Trajectory
	name     string
	canvas   *Canvas
	view     Viewport
	profile  []dynamo.Point
	drawErr  error
	version  uint64
	t        float64
	duration float64
	rate     float64
	running  bool
	pos      dynamo.Vector
	err      error
	trail    []dynamo.Point
	speeds   []float64
	spring   harmonica.Spring
	gauge    float64
	gaugeVel float64
	topSpeed float64
	theme    Theme
	showHelp bool
}

// NewLiveModel prepares a view of traj. A duration of zero plays forever.
func NewLiveModel(ctx context.Context, name string, traj *trajectory.Trajectory, duration float64) LiveModel {
	m := LiveModel{
		ctx:      ctx,
		traj:     traj,
		name:     name,
		canvas:   NewCanvas(width, height),
		duration: duration,
		rate:     1,
		running:  true,
		theme:    Themes[0],
		trail:    make([]dynamo.Point, 0, trailCapacity),
		speeds:   make([]float64, 0, historyCapacity),
		spring:   harmonica.NewSpring(harmonica.FPS(frameRate), gaugeFrequency, gaugeDamping),
	}
	m.refreshTrack()
	m.locate()
	return m
}

func (m LiveModel) Init() tea.Cmd { return tick() }

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running && m.err == nil
		case "r":
			m.reset()
		case "[":
			m.seek(m.t - scrubStep)
		case "]":
			m.seek(m.t + scrubStep)
		case "+", "=":
			m.rate = math.Min(m.rate*2, maxRate)
		case "-", "_":
			m.rate = math.Max(m.rate/2, minRate)
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance(m.rate / frameRate)
		}
		m.gauge, m.gaugeVel = m.spring.Update(m.gauge, m.gaugeVel, m.pos.Magnitude)
		return m, tick()
	}
	return m, nil
}

func (m *LiveModel) refreshTrack() {
	segs, version := m.traj.Track().Snapshot()
	m.version = version
	m.profile, m.drawErr = track.Profile(segs, width*2)
	m.view = NewViewport(m.canvas, m.profile, viewportPad)
}

func (m *LiveModel) advance(dt float64) {
	next := m.t + dt
	if m.duration > 0 && next >= m.duration {
		next = m.duration
		m.running = false
	}
	m.t = next
	m.locate()
}

func (m *LiveModel) seek(t float64) {
	m.t = math.Max(t, 0)
	if m.duration > 0 {
		m.t = math.Min(m.t, m.duration)
	}
	m.trail = m.trail[:0]
	m.locate()
}

func (m *LiveModel) reset() {
	m.trail = m.trail[:0]
	m.speeds = m.speeds[:0]
	m.gauge, m.gaugeVel, m.topSpeed = 0, 0, 0
	m.err = nil
	m.running = true
	m.seek(0)
}

// locate fetches the position at the current time and records history.
func (m *LiveModel) locate() {
	if m.traj.Track().Version() != m.version {
		m.refreshTrack()
	}

	pos, err := m.traj.Position(m.ctx, m.t)
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.pos = pos

	m.trail = append(m.trail, pos.Origin)
	if len(m.trail) > trailCapacity {
		m.trail = m.trail[1:]
	}
	m.topSpeed = math.Max(m.topSpeed, pos.Magnitude)
	m.speeds = append(m.speeds, pos.Magnitude)
	if len(m.speeds) > historyCapacity {
		m.speeds = m.speeds[1:]
	}
}

func (m LiveModel) Time() float64           { return m.t }
func (m LiveModel) Position() dynamo.Vector { return m.pos }
func (m LiveModel) Err() error              { return m.err }
func (m LiveModel) DrawErr() error          { return m.drawErr }
func (m LiveModel) Running() bool           { return m.running }
func (m LiveModel) Rate() float64           { return m.rate }

func (m *LiveModel) draw() {
	m.canvas.Clear()
	m.canvas.Polyline(m.view, m.profile)
	for _, p := range m.trail {
		m.canvas.Set(m.view.Project(p))
	}
	if m.err == nil {
		m.canvas.Mark(m.view.Project(m.pos.Origin))
	}
}

func (m LiveModel) status() (string, lipgloss.Color) {
	switch {
	case m.err != nil:
		return "ERROR", m.theme.Error
	case m.duration > 0 && m.t >= m.duration:
		return "FINISHED", m.theme.Muted
	case !m.running:
		return "PAUSED", m.theme.Warning
	}
	return "RUNNING", m.theme.Success
}

func (m LiveModel) View() string {
	m.draw()
	canvasView := canvasStyle.Render(lipgloss.NewStyle().Foreground(m.theme.Primary).Render(m.canvas.String()))

	var s strings.Builder
	header := lipgloss.NewStyle().Foreground(m.theme.Secondary).Bold(true).MarginBottom(1)
	s.WriteString(header.Render(strings.ToUpper(m.name)) + "\n")

	label, color := m.status()
	s.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(label))
	if m.rate != 1 {
		s.WriteString(Subtle.Render(fmt.Sprintf("  x%g", m.rate)))
	}
	s.WriteString("\n")
	if m.duration > 0 {
		s.WriteString(ProgressBar(m.t/m.duration, 30) + "\n")
	}

	if len(m.speeds) > 1 {
		chart := asciigraph.Plot(m.speeds, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Speed"))
		s.WriteString(graphStyle.Foreground(m.theme.Accent).Render(chart) + "\n")
	}

	row := func(name, value string) {
		s.WriteString(MetricLabel.Render(name) + MetricValue.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.3fs", m.t))
	row("Position", m.pos.Origin.String())
	row("Speed", fmt.Sprintf("%.3f m/s", m.pos.Magnitude))
	if m.topSpeed > 0 {
		s.WriteString(MetricLabel.Render("") + ProgressBar(m.gauge/m.topSpeed, 20) + "\n")
	}
	row("Heading", fmt.Sprintf("%.1f°", m.pos.Angle*180/math.Pi))
	contact := "on track"
	if !m.pos.Line {
		contact = "airborne"
	}
	row("Contact", contact)
	row("Steps", fmt.Sprintf("%d", max(m.traj.Cache().Len()-1, 0)))

	if m.drawErr != nil {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Warning).Width(38).Render("track partly drawn: "+m.drawErr.Error()) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Error).Width(38).Render(m.err.Error()) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit\n[ ]:Seek +/-:Rate ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart from t=0         ║
║  Q        - Quit                     ║
║  [        - Seek back 0.25s          ║
║  ]        - Seek forward 0.25s       ║
║  + / -    - Double/halve play rate   ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n" + mainView
	}
	return mainView
}

func RunLive(m LiveModel) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
