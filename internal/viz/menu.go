package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/coaster/internal/trajectory"
)

var (
	menuTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuArrow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuIdle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	menuError  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

type MenuItem struct {
	Name        string
	Description string
}

// Loader builds the trajectory for a menu entry and says how long to play it.
type Loader func(name string) (traj *trajectory.Trajectory, duration float64, err error)

// App lists tracks and plays the chosen one. Esc returns to the list.
type App struct {
	ctx    context.Context
	items  []MenuItem
	load   Loader
	cursor int
	live   *LiveModel
	err    error
}

func NewApp(ctx context.Context, items []MenuItem, load Loader) App {
	return App{ctx: ctx, items: items, load: load}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.live != nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			a.live = nil
			return a, nil
		}
		next, cmd := a.live.Update(msg)
		live := next.(LiveModel)
		a.live = &live
		return a, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.items)-1 {
			a.cursor++
		}
	case "enter", " ":
		if len(a.items) == 0 {
			return a, nil
		}
		item := a.items[a.cursor]
		traj, duration, err := a.load(item.Name)
		if err != nil {
			a.err = fmt.Errorf("%s: %w", item.Name, err)
			return a, nil
		}
		a.err = nil
		live := NewLiveModel(a.ctx, item.Name, traj, duration)
		a.live = &live
		return a, live.Init()
	}
	return a, nil
}

// Playing reports whether a track is on screen.
func (a App) Playing() bool { return a.live != nil }

func (a App) View() string {
	if a.live != nil {
		return a.live.View()
	}

	var b strings.Builder
	b.WriteString("\n\n    " + GradientText("COASTER", "#00cccc", "#ff88ff") + "\n")
	b.WriteString("    " + menuSub.Render("point mass on a track") + "\n")
	b.WriteString("    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, item := range a.items {
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuArrow.Render("▸"), menuActive.Render(fmt.Sprintf("%-12s", item.Name)), menuDesc.Render(item.Description)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", menuIdle.Render(fmt.Sprintf("%-12s", item.Name)), menuIdle.Render(item.Description)))
		}
	}
	if a.err != nil {
		b.WriteString("\n    " + menuError.Render(a.err.Error()) + "\n")
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuIdle.Render(" navigate  ") +
		menuKey.Render("enter") + menuIdle.Render(" play  ") +
		menuKey.Render("esc") + menuIdle.Render(" back  ") +
		menuKey.Render("q") + menuIdle.Render(" quit") + "\n")
	return b.String()
}

func RunApp(a App) error {
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}
