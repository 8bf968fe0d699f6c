package tui

import (
	"context"
	"fmt"

	"gymbuddy/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EditorModel edits today's plan: set counts, swap requests, removals
type EditorModel struct {
	svc    *service.WorkoutService
	units  Units
	cursor int
	saving bool
	saved  bool
	err    error
}

// NewEditorModel creates a new plan editor model
func NewEditorModel(svc *service.WorkoutService, units Units) EditorModel {
	return EditorModel{svc: svc, units: units}
}

// Init initializes the editor
func (m EditorModel) Init() tea.Cmd {
	return nil
}

type planSavedMsg struct {
	err error
}

// Update handles messages
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	store := m.svc.PlanStore()
	if store == nil {
		return m, nil
	}
	exercises := store.Plan().Exercises

	switch msg := msg.(type) {
	case planSavedMsg:
		m.saving = false
		m.saved = msg.err == nil
		m.err = msg.err

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		m.saved = false

		switch msg.String() {
		case "j", "down":
			if m.cursor < len(exercises)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "+", "=":
			if m.cursor < len(exercises) {
				ex := exercises[m.cursor]
				ex.Sets++
				ex.Actions.Edited = true
				m.svc.UpdateExercise(ex)
			}
		case "-":
			if m.cursor < len(exercises) {
				ex := exercises[m.cursor]
				if ex.Sets > 1 {
					ex.Sets--
					ex.Actions.Edited = true
					m.svc.UpdateExercise(ex)
				}
			}
		case "w":
			if m.cursor < len(exercises) {
				ex := exercises[m.cursor]
				ex.Actions.Swap = !ex.Actions.Swap
				m.svc.UpdateExercise(ex)
			}
		case "x":
			if m.cursor < len(exercises) {
				ex := exercises[m.cursor]
				ex.Actions.Removed = !ex.Actions.Removed
				m.svc.UpdateExercise(ex)
			}
		case "s", "enter":
			m.saving = true
			m.err = nil
			return m, m.save
		}
	}
	return m, nil
}

func (m EditorModel) save() tea.Msg {
	return planSavedMsg{err: m.svc.PersistPlanChanges(context.Background())}
}

// View renders the editor
func (m EditorModel) View() string {
	store := m.svc.PlanStore()
	if store == nil {
		return "\n  No plan loaded. Open today's workout first."
	}

	var sections []string
	sections = append(sections, cardTitleStyle.Render("Edit Today's Plan"))

	for i, ex := range store.Plan().Exercises {
		flags := ""
		if ex.Actions.Swap {
			flags += warningStyle.Render(" swap")
		}
		if ex.Actions.Edited {
			flags += warningStyle.Render(" edited")
		}
		if ex.Actions.Removed {
			flags += errorStyle.Render(" removed")
		}

		row := fmt.Sprintf("%-24s %d sets x %-6s %s%s",
			ex.Name, ex.Sets, ex.Reps, m.units.FormatWeight(ex.TargetWeight), flags)

		style := rowStyle
		if i == m.cursor {
			style = rowSelectedStyle
		} else if ex.Actions.Removed {
			style = rowStyle.Foreground(mutedColor)
		}
		sections = append(sections, style.Render(row))
	}

	sections = append(sections, "")
	if m.saving {
		sections = append(sections, statusStyle.Render("  Saving plan changes..."))
	} else if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("  Save failed: %v", m.err)))
	} else if m.saved {
		sections = append(sections, successStyle.Render("  Plan saved."))
	}

	sections = append(sections, statusStyle.Render("+/- sets, 'w' request swap, 'x' remove, 's' save, esc back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
