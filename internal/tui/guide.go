package tui

import (
	"context"
	"fmt"
	"strings"

	"gymbuddy/internal/api"
	"gymbuddy/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GuideModel shows form guidance for an exercise in a scrollable view
type GuideModel struct {
	svc *service.WorkoutService

	cursor   int
	selected string
	guide    *api.ExerciseGuideResponse
	viewport viewport.Model
	loading  bool
	err      error
	width    int
	height   int
	ready    bool
}

// NewGuideModel creates a new guide model
func NewGuideModel(svc *service.WorkoutService, width, height int) GuideModel {
	m := GuideModel{
		svc:    svc,
		width:  width,
		height: height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-8)
		m.ready = true
	}

	return m
}

// Init initializes the guide screen
func (m GuideModel) Init() tea.Cmd {
	return nil
}

type guideLoadedMsg struct {
	name  string
	guide *api.ExerciseGuideResponse
	err   error
}

// SelectExercise points the guide at a named exercise; follow with fetch
func (m *GuideModel) SelectExercise(name string) {
	m.selected = name
	m.loading = true
	for i, n := range m.exerciseNames() {
		if n == name {
			m.cursor = i
			break
		}
	}
}

func (m GuideModel) fetch() tea.Msg {
	guide, err := m.svc.Guide(context.Background(), m.selected)
	return guideLoadedMsg{name: m.selected, guide: guide, err: err}
}

func (m GuideModel) exerciseNames() []string {
	program := m.svc.Program()
	if program == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, day := range program.Days {
		for _, ex := range day.Exercises {
			if seen[ex.Name] {
				continue
			}
			seen[ex.Name] = true
			out = append(out, ex.Name)
		}
	}
	return out
}

// Update handles messages
func (m GuideModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	names := m.exerciseNames()

	switch msg := msg.(type) {
	case guideLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.guide = msg.guide
		if m.ready {
			m.viewport.SetContent(m.renderContent())
			m.viewport.GotoTop()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-8)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 8
		}
		if m.guide != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if len(names) > 0 {
				m.cursor = (m.cursor + 1) % len(names)
			}
			return m, nil
		case "enter", "r":
			if m.cursor < len(names) {
				m.selected = names[m.cursor]
				m.loading = true
				return m, m.fetch
			}
			return m, nil
		}
	}

	// Viewport handles scrolling keys
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the guide screen
func (m GuideModel) View() string {
	names := m.exerciseNames()
	if len(names) == 0 {
		return "\n  No program yet. Complete onboarding first."
	}

	var tabs []string
	for i, name := range names {
		if i == m.cursor {
			tabs = append(tabs, navActiveStyle.Render(name))
		} else {
			tabs = append(tabs, navInactiveStyle.Render(name))
		}
	}
	header := navStyle.Render(strings.Join(tabs, "  "))

	var body string
	switch {
	case m.loading:
		body = "\n  Loading guide..."
	case m.err != nil:
		body = errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	case m.guide == nil:
		body = statusStyle.Render("\n  tab to pick an exercise, enter to load its guide")
	case m.ready:
		body = m.viewport.View()
	default:
		body = m.renderContent()
	}

	help := statusStyle.Render("tab to switch exercise, enter to load, j/k to scroll")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

func (m GuideModel) renderContent() string {
	if m.guide == nil {
		return ""
	}

	var sections []string
	sections = append(sections, cardTitleStyle.Render(m.selected))

	if len(m.guide.Muscles) > 0 {
		sections = append(sections, metricValueStyle.Render("Muscles worked"))
		sections = append(sections, "  "+strings.Join(m.guide.Muscles, ", "))
		sections = append(sections, "")
	}

	if len(m.guide.Steps) > 0 {
		sections = append(sections, metricValueStyle.Render("How to perform"))
		for i, step := range m.guide.Steps {
			sections = append(sections, fmt.Sprintf("  %d. %s", i+1, step))
		}
		sections = append(sections, "")
	}

	if len(m.guide.Mistakes) > 0 {
		sections = append(sections, warningStyle.Render("Common mistakes"))
		for _, mistake := range m.guide.Mistakes {
			sections = append(sections, "  - "+mistake)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
