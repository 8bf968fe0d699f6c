package tui

import (
	"context"
	"fmt"

	"gymbuddy/internal/service"
	"gymbuddy/internal/workout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TodayModel shows the remote "today" plan with checkable sets
type TodayModel struct {
	svc     *service.WorkoutService
	units   Units
	cursor  int
	loading bool
	loaded  bool
	err     error
}

// NewTodayModel creates a new today-plan model
func NewTodayModel(svc *service.WorkoutService, units Units) TodayModel {
	return TodayModel{svc: svc, units: units}
}

// Init loads the plan on first entry
func (m TodayModel) Init() tea.Cmd {
	if m.loaded {
		return nil
	}
	return m.loadPlan
}

type todayLoadedMsg struct {
	err error
}

func (m TodayModel) loadPlan() tea.Msg {
	_, err := m.svc.LoadToday(context.Background())
	return todayLoadedMsg{err: err}
}

// Update handles messages
func (m TodayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todayLoadedMsg:
		m.loading = false
		m.loaded = msg.err == nil
		m.err = msg.err
		m.cursor = 0

	case tea.KeyMsg:
		exercises := m.exercises()
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(exercises)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case " ", "space":
			if m.cursor < len(exercises) {
				ex := exercises[m.cursor]
				store := m.svc.PlanStore()

				// Check the next incomplete set; with all sets done,
				// uncheck the last one
				idx := store.CompletedSetsFor(ex.ID)
				if idx >= ex.Sets {
					idx = ex.Sets - 1
				}
				weight := ex.TargetWeight
				if ex.UserWeight != nil {
					weight = *ex.UserWeight
				}
				m.svc.ToggleSet(ex.ID, idx, weight)
			}
		case "e":
			if m.loaded {
				return m, func() tea.Msg { return OpenEditorMsg{} }
			}
		case "g":
			if m.cursor < len(exercises) {
				name := exercises[m.cursor].Name
				return m, func() tea.Msg { return OpenGuideMsg{Name: name} }
			}
		case "r":
			m.loading = true
			return m, m.loadPlan
		}
	}
	return m, nil
}

func (m TodayModel) exercises() []workout.PlanExercise {
	store := m.svc.PlanStore()
	if store == nil {
		return nil
	}
	return store.ActiveExercises()
}

// View renders today's plan
func (m TodayModel) View() string {
	if m.loading {
		return "\n  Loading today's workout..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err)) + "\n" +
			statusStyle.Render("  Press 'r' to retry")
	}
	store := m.svc.PlanStore()
	if store == nil {
		return "\n  Press 'r' to load today's workout."
	}

	var sections []string

	plan := store.Plan()
	title := plan.Day
	if title == "" {
		title = "Today's Workout"
	}
	sections = append(sections, cardTitleStyle.Render(title))

	total := store.TotalSets()
	done := store.CompletedSets()
	percent := 0.0
	if total > 0 {
		percent = float64(done) / float64(total)
	}
	sections = append(sections, fmt.Sprintf("  %s  %d/%d sets", RenderProgressBar(percent, 30), done, total))
	sections = append(sections, "")

	for i, ex := range store.ActiveExercises() {
		boxes := ""
		for s := 0; s < ex.Sets; s++ {
			if store.SetCompleted(ex.ID, s) {
				boxes += successStyle.Render("[x]")
			} else {
				boxes += navInactiveStyle.Render("[ ]")
			}
		}

		weight := m.units.FormatWeight(ex.TargetWeight)
		if ex.UserWeight != nil {
			weight = m.units.FormatWeight(*ex.UserWeight) + "*"
		}
		row := fmt.Sprintf("%-24s %s x%s  %s  %s", ex.Name, boxes, ex.Reps, weight, m.flagMarks(ex.ID))

		style := rowStyle
		if i == m.cursor {
			style = rowSelectedStyle
		} else if store.CompletedSetsFor(ex.ID) >= ex.Sets {
			style = rowDoneStyle
		}
		sections = append(sections, style.Render(row))
	}

	sections = append(sections, "")
	sections = append(sections, statusStyle.Render("space to check a set, 'e' to edit plan, 'g' guide, 'r' reload"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TodayModel) flagMarks(exerciseID string) string {
	store := m.svc.PlanStore()
	for _, ex := range store.Plan().Exercises {
		if ex.ID != exerciseID {
			continue
		}
		marks := ""
		if ex.Actions.Swap {
			marks += warningStyle.Render("swap ")
		}
		if ex.Actions.Edited {
			marks += warningStyle.Render("edited")
		}
		return marks
	}
	return ""
}
