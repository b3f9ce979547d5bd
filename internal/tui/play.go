// Package tui is the terminal front-end: a Bubble Tea program that drives
// the gallery one frame per tick and draws it from above.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gallery/internal/gallery"
	"github.com/san-kum/gallery/internal/metrics"
	"github.com/san-kum/gallery/internal/viz"
)

const (
	frameInterval = 16 * time.Millisecond
	noticeTTL     = 3 * time.Second
	hudWidth      = 28
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	state    *gallery.State
	view     *viz.TopDown
	theme    viz.Theme
	feed     *feed
	metrics  *metrics.Set
	dt       float64
	paused   bool
	showHelp bool
	quitting bool

	lastFrame time.Time
	fps       float64

	width  int
	height int
}

type Option func(*model)

func WithTheme(name string) Option {
	return func(m *model) { m.theme = viz.GetTheme(name) }
}

// NewPlay builds the play screen around an existing gallery. dt is the
// fixed logical step taken per tick.
func NewPlay(state *gallery.State, dt float64, opts ...Option) *model {
	m := &model{
		state:   state,
		view:    viz.NewTopDown(60, 16),
		theme:   viz.ThemeArcade,
		feed:    newFeed(4),
		metrics: metrics.Standard(),
		dt:      dt,
		width:   80,
		height:  24,
	}
	for _, opt := range opts {
		opt(m)
	}
	state.AddObserver(m.feed)
	state.AddObserver(m.metrics)
	return m
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Resize(m.width-hudWidth-4, m.height-4)
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			if d := now.Sub(m.lastFrame).Seconds(); d > 0 {
				m.fps = 1.0 / d
			}
		}
		m.lastFrame = now
		if !m.paused {
			m.state.Update(m.dt)
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "p":
		m.paused = !m.paused
		return m, nil
	case "t":
		m.theme = viz.NextTheme(m.theme)
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.paused {
		return m, nil
	}
	if cmd := CommandFor(msg); cmd != gallery.CmdNone {
		m.state.Apply(cmd)
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	th := m.theme

	m.view.Begin()
	m.state.Render(m.view)

	field := lipgloss.NewStyle().
		Foreground(th.Field).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Label).
		Render(strings.Join(m.view.Canvas.Lines(), "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, field, " ", m.hud())
	footer := lipgloss.NewStyle().Foreground(th.Label).Italic(true).
		Render("space fire · wasd aim · ↑↓ height · r reset · ? help · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m model) hud() string {
	th := m.theme
	snap := m.state.Snapshot()
	title := lipgloss.NewStyle().Bold(true).Foreground(th.Title)
	label := lipgloss.NewStyle().Foreground(th.Label)
	value := lipgloss.NewStyle().Bold(true).Foreground(th.Value)

	capacity := m.state.Params().Projectile.Capacity
	rounds := strings.Repeat("●", snap.Ammo) + strings.Repeat("○", max(capacity-snap.Ammo, 0))

	row := func(k, v string) string {
		return label.Render(fmt.Sprintf("%-18s", k)) + value.Render(v)
	}

	lines := []string{
		title.Render("SHOOTING GALLERY"),
		"",
		row("score", fmt.Sprintf("%d", snap.Score)),
		row("targets remaining", fmt.Sprintf("%d", snap.TargetsRemaining)),
		row("ammo", rounds),
		row("in flight", fmt.Sprintf("%d", snap.InFlight)),
		row("pitch", fmt.Sprintf("%+.1f°", snap.Aim.Pitch)),
		row("yaw", fmt.Sprintf("%+.1f°", snap.Aim.Yaw)),
		row("accuracy", fmt.Sprintf("%.0f%%", m.metric("accuracy")*100)),
		row("time", fmt.Sprintf("%.1fs", snap.Time.Seconds())),
		label.Render(fmt.Sprintf("%.0f fps", m.fps)),
		"",
	}

	switch {
	case m.paused:
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(th.Paused).Render("PAUSED"))
	case snap.Cleared:
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(th.Win).Render("YOU WIN!  press r"))
	case snap.OffTarget:
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(th.Alert).Render("aim at the targets only!"))
	}

	for _, n := range m.feed.recent(snap.Time, noticeTTL) {
		style := lipgloss.NewStyle().Foreground(th.Notice)
		if n.alert {
			style = style.Bold(true).Foreground(th.Win)
		}
		lines = append(lines, style.Render("› "+n.text))
	}

	if m.showHelp {
		lines = append(lines, "", label.Render(helpText))
	}

	return lipgloss.NewStyle().Width(hudWidth).Render(strings.Join(lines, "\n"))
}

func (m model) metric(name string) float64 {
	if mt, ok := m.metrics.Get(name); ok {
		return mt.Value()
	}
	return 0
}

// Run plays the gallery in the alternate screen until the player quits.
func Run(state *gallery.State, dt float64, opts ...Option) error {
	p := tea.NewProgram(NewPlay(state, dt, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
