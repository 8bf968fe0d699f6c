package tui

import (
	"context"
	"fmt"

	"gymbuddy/internal/api"
	"gymbuddy/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// HistoryModel charts logged weights per exercise
type HistoryModel struct {
	svc   *service.WorkoutService
	units Units

	cursor  int
	points  []api.HistoryPoint
	fetched string
	loading bool
	err     error
}

// NewHistoryModel creates a new history model
func NewHistoryModel(svc *service.WorkoutService, units Units) HistoryModel {
	return HistoryModel{svc: svc, units: units}
}

// Init initializes the history screen
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

type historyLoadedMsg struct {
	exerciseID string
	points     []api.HistoryPoint
	err        error
}

// exerciseList flattens the program into a unique ordered exercise list
func (m HistoryModel) exerciseList() []exerciseRef {
	program := m.svc.Program()
	if program == nil {
		return nil
	}

	seen := map[string]bool{}
	var out []exerciseRef
	for _, day := range program.Days {
		for _, ex := range day.Exercises {
			if seen[ex.ID] {
				continue
			}
			seen[ex.ID] = true
			out = append(out, exerciseRef{id: ex.ID, name: ex.Name})
		}
	}
	return out
}

type exerciseRef struct {
	id   string
	name string
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	exercises := m.exerciseList()

	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.points = msg.points
		m.fetched = msg.exerciseID

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(exercises)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter", "r":
			if m.cursor >= len(exercises) {
				return m, nil
			}
			ex := exercises[m.cursor]
			m.loading = true
			return m, func() tea.Msg {
				resp, err := m.svc.ExerciseHistory(context.Background(), ex.id)
				if err != nil {
					return historyLoadedMsg{exerciseID: ex.id, err: err}
				}
				return historyLoadedMsg{exerciseID: ex.id, points: resp[ex.id]}
			}
		}
	}
	return m, nil
}

// View renders the history screen
func (m HistoryModel) View() string {
	exercises := m.exerciseList()
	if len(exercises) == 0 {
		return "\n  No program yet. Complete onboarding first."
	}

	var rows []string
	rows = append(rows, cardTitleStyle.Render("Exercise History"))
	for i, ex := range exercises {
		style := rowStyle
		if i == m.cursor {
			style = rowSelectedStyle
		}
		rows = append(rows, style.Render(ex.name))
	}
	list := lipgloss.JoinVertical(lipgloss.Left, rows...)

	detail := m.renderDetail(exercises)

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "   ", detail)
	help := statusStyle.Render("j/k to pick, enter to load")
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

func (m HistoryModel) renderDetail(exercises []exerciseRef) string {
	if m.loading {
		return "Loading..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.fetched == "" {
		return statusStyle.Render("Pick an exercise and press enter")
	}
	if len(m.points) == 0 {
		return statusStyle.Render("No logged weights yet")
	}

	weights := make([]float64, len(m.points))
	for i, p := range m.points {
		weights[i] = p.Weight
	}
	weights = m.units.ConvertWeightData(weights)

	var lines []string
	title := cardTitleStyle.Render(fmt.Sprintf("Weight Trend (%s)", m.units.WeightLabel()))
	lines = append(lines, title)

	if len(weights) > 1 {
		graph := asciigraph.Plot(weights,
			asciigraph.Height(8),
			asciigraph.Width(50),
			asciigraph.Precision(1),
		)
		lines = append(lines, graph)
		lines = append(lines, "")
	}

	first := m.points[0]
	last := m.points[len(m.points)-1]
	lines = append(lines, RenderMetric("Sessions", fmt.Sprintf("%d", len(m.points))))
	lines = append(lines, RenderMetric("First", fmt.Sprintf("%s on %s", m.units.FormatWeight(first.Weight), first.Date)))
	lines = append(lines, RenderMetric("Latest", fmt.Sprintf("%s on %s", m.units.FormatWeight(last.Weight), last.Date)))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
