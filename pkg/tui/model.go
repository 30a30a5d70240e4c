// Package tui is the interactive timeline view: one tab per schedule, a
// vertical rail of marks, and a current-time indicator refreshed once per
// minute.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/schedule"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeutil"
)

type tickMsg time.Time

// rowMinutes is how many minutes one terminal row stands for; rowPixels is
// the same distance on the layout's pixel scale.
const (
	rowMinutes = 30
	rowPixels  = rowMinutes * timeline.PixelsPerHour / 60
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	railStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle    = lipgloss.NewStyle()
	nowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

type Model struct {
	svc *app.Service

	schedules []schedule.Schedule
	active    int

	layout timeline.Layout
	now    time.Time

	width  int
	height int
	scroll int

	selected int
	editing  bool
	input    textinput.Model
}

// New builds the model, restoring the last active tab from settings.
func New(svc *app.Service) Model {
	m := Model{svc: svc, now: time.Now()}
	m.reload()
	return m
}

func (m *Model) reload() {
	m.schedules = m.svc.Schedules()
	if len(m.schedules) == 0 {
		m.svc.EnsureSchedule()
		m.schedules = m.svc.Schedules()
	}
	active := m.svc.ActiveSchedule()
	m.active = 0
	for i, sc := range m.schedules {
		if sc.ID == active.ID {
			m.active = i
			break
		}
	}
	m.selected = 0
	m.relayout()
}

func (m *Model) relayout() {
	sc := m.schedules[m.active]
	m.layout = timeline.Compute(m.svc.Marks(sc.ID), m.now)
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// tick fires on the minute so the indicator tracks the wall clock. The
// program's teardown cancels the pending tick.
func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.relayout()
		return m, tick()

	case tea.KeyMsg:
		if m.editing {
			return m.updateEdit(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.switchTab(1)
		case "shift+tab", "left", "h":
			m.switchTab(-1)
		case "down", "j":
			if m.selected < len(m.layout.Marks)-1 {
				m.selected++
			}
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "pgdown":
			m.scroll++
		case "pgup":
			if m.scroll > 0 {
				m.scroll--
			}
		case "e", "enter":
			m.startEdit()
		case "r":
			m.now = time.Now()
			m.reload()
		}
	}
	return m, nil
}

// startEdit opens the time editor for the selected mark.
func (m *Model) startEdit() {
	if m.selected >= len(m.layout.Marks) {
		return
	}
	in := textinput.New()
	in.Placeholder = "HH:MM"
	in.CharLimit = 5
	in.SetValue(m.layout.Marks[m.selected].Time)
	in.Focus()
	m.input = in
	m.editing = true
}

// updateEdit handles keys while the time editor is open. Enter applies the
// edit when the input normalizes to a clock string and silently drops it
// otherwise; esc cancels.
func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		if t, ok := timeutil.Normalize(m.input.Value()); ok {
			edited := m.layout.Marks[m.selected].Mark
			edited.Time = t
			_ = m.svc.UpdateMark(edited)
			m.relayout()
		}
		return m, nil
	case "esc", "ctrl+c":
		m.editing = false
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// switchTab cycles the active schedule and persists the choice so the next
// session opens on the same tab.
func (m *Model) switchTab(dir int) {
	n := len(m.schedules)
	if n == 0 {
		return
	}
	m.active = ((m.active+dir)%n + n) % n
	m.scroll = 0
	_ = m.svc.SetActiveSchedule(m.schedules[m.active].ID)
	m.relayout()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	rows := m.viewTimeline()
	visible := m.height - 5
	if visible > 0 && len(rows) > visible {
		if m.scroll > len(rows)-visible {
			m.scroll = len(rows) - visible
		}
		rows = rows[m.scroll : m.scroll+visible]
	}
	b.WriteString(strings.Join(rows, "\n"))

	if m.editing {
		b.WriteString("\n\n  time: " + m.input.View())
	}
	b.WriteString(helpStyle.Render("\n  tab: schedule  ↑/↓: select  e: edit time  r: reload  q: quit"))
	return b.String()
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(m.schedules))
	for i, sc := range m.schedules {
		label := fmt.Sprintf("%s  %s–%s", sc.Name, sc.WakeTime, sc.Bedtime)
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewTimeline walks the placed marks and emits one row per rowMinutes of
// layout distance, splicing the now indicator where it lands.
func (m Model) viewTimeline() []string {
	var rows []string
	if len(m.layout.Marks) == 0 {
		return []string{railStyle.Render("  no marks")}
	}

	nowDrawn := m.layout.NowY == nil
	nowRow := nowStyle.Render("  ├──── now " + m.now.Format("15:04"))

	prevY := timeline.TopMargin
	for i, pm := range m.layout.Marks {
		gap := (pm.Y - prevY) / rowPixels
		for g := 0; g < gap; g++ {
			if !nowDrawn && *m.layout.NowY <= prevY+(g+1)*rowPixels {
				rows = append(rows, nowRow)
				nowDrawn = true
				continue
			}
			rows = append(rows, railStyle.Render("  │"))
		}
		if !nowDrawn && *m.layout.NowY <= pm.Y {
			rows = append(rows, nowRow)
			nowDrawn = true
		}
		row := fmt.Sprintf("%s %s %s  %s",
			railStyle.Render("  ●"),
			timeStyle.Render(pm.Time),
			pm.Emoji,
			titleStyle.Render(pm.Title))
		if i == m.selected {
			row = selectedStyle.Render(row)
		}
		rows = append(rows, row)
		prevY = pm.Y
	}
	if !nowDrawn {
		rows = append(rows, nowRow)
	}
	return rows
}
