package tui

import (
	"context"
	"fmt"

	"gymbuddy/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel shows the training program and starts sessions
type DashboardModel struct {
	svc     *service.WorkoutService
	units   Units
	cursor  int
	syncing bool
	err     error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(svc *service.WorkoutService, units Units) DashboardModel {
	return DashboardModel{svc: svc, units: units}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	program := m.svc.Program()

	switch msg := msg.(type) {
	case SyncDoneMsg:
		m.syncing = false
		m.err = msg.Err

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if program != nil && m.cursor < len(program.Days)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if program == nil || m.cursor >= len(program.Days) {
				return m, nil
			}
			day := program.Days[m.cursor]
			return m, func() tea.Msg {
				if _, err := m.svc.StartDay(day.DayIndex, m.svc.WorkoutID()); err != nil {
					return SyncDoneMsg{Err: err}
				}
				return SessionStartedMsg{}
			}
		case "s":
			if m.syncing {
				return m, nil
			}
			m.syncing = true
			return m, m.runSync
		case "O":
			return m, func() tea.Msg {
				if err := m.svc.Reset(); err != nil {
					return SyncDoneMsg{Err: err}
				}
				return ReOnboardMsg{}
			}
		}
	}
	return m, nil
}

func (m DashboardModel) runSync() tea.Msg {
	return SyncDoneMsg{Err: m.svc.SyncPending(context.Background())}
}

// View renders the dashboard
func (m DashboardModel) View() string {
	program := m.svc.Program()
	if program == nil {
		return "\n  No program yet. Complete onboarding to generate one."
	}

	var sections []string

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderProfileCard(), "  ", m.renderProgressCard())
	sections = append(sections, topRow)

	sections = append(sections, m.renderDays())

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
	}
	if m.syncing {
		sections = append(sections, statusStyle.Render("  Syncing queued changes..."))
	}

	help := statusStyle.Render("j/k to pick a day, enter to start, 's' to sync, 'O' to start over, '2' for today's plan")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderProfileCard() string {
	title := cardTitleStyle.Render("Profile")

	profile := m.svc.Profile()
	if profile == nil {
		return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, "No profile"))
	}

	lines := []string{
		RenderMetric("Goal", string(profile.Goal)),
		RenderMetric("Equipment", string(profile.Equipment)),
		RenderMetric("Training days", fmt.Sprintf("%d/week", profile.TrainingDaysPerWeek)),
	}
	if profile.WeightKg != nil {
		lines = append(lines, RenderMetric("Body weight", m.units.FormatWeight(*profile.WeightKg)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderProgressCard() string {
	title := cardTitleStyle.Render("Training Log")

	tracker := m.svc.Tracker()
	sessions := 0
	if tracker != nil {
		sessions = len(tracker.History())
	}

	lines := []string{
		RenderMetric("Workouts done", fmt.Sprintf("%d", sessions)),
	}
	if tracker != nil && len(tracker.History()) > 0 {
		last := tracker.History()[len(tracker.History())-1]
		sum := last.Summarize()
		lines = append(lines,
			RenderMetric("Last workout", last.DayLabel),
			RenderMetric("Sets / reps", fmt.Sprintf("%d / %d", sum.CompletedSets, sum.TotalReps)),
			RenderMetric("Volume", m.units.FormatWeight(sum.TotalVolumeKg)),
		)
	}
	if n := m.svc.PendingCount(); n > 0 {
		lines = append(lines, RenderMetric("Pending sync", fmt.Sprintf("%d", n)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderDays() string {
	program := m.svc.Program()
	title := cardTitleStyle.Render(fmt.Sprintf("Program (%d days/week)", program.DaysPerWeek))

	var rows []string
	for i, day := range program.Days {
		label := fmt.Sprintf("%-16s", day.Label)
		detail := ""
		for j, ex := range day.Exercises {
			if j > 0 {
				detail += ", "
			}
			detail += ex.Name
		}
		row := label + "  " + navInactiveStyle.Render(detail)
		if i == m.cursor {
			rows = append(rows, rowSelectedStyle.Render(row))
		} else {
			rows = append(rows, rowStyle.Render(row))
		}
	}

	list := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, list))
}
