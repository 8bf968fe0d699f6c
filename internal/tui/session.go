package tui

import (
	"context"
	"fmt"
	"time"

	"gymbuddy/internal/service"
	"gymbuddy/internal/workout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const weightStepKg = 2.5

// SessionModel drives the active training session: logging sets and
// counting down rest between them
type SessionModel struct {
	svc   *service.WorkoutService
	units Units

	cursor    int
	reps      int
	weightKg  *float64
	adjusted  bool
	resting   bool
	restLeft  int
	restTotal int
	finishing bool
}

// NewSessionModel creates a new session model
func NewSessionModel(svc *service.WorkoutService, units Units) SessionModel {
	m := SessionModel{svc: svc, units: units}
	m.syncCursor()
	return m
}

// Init initializes the session screen
func (m SessionModel) Init() tea.Cmd {
	return nil
}

type restTickMsg struct{}

func restTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return restTickMsg{}
	})
}

// syncCursor moves the cursor to the next unfinished exercise and resets
// the pending reps and weight to the plan's suggestion
func (m *SessionModel) syncCursor() {
	plan := m.dayPlan()
	if plan == nil {
		return
	}
	if next := m.svc.Tracker().NextExercise(); next != nil {
		for i, ex := range plan.Exercises {
			if ex.ID == next.ID {
				m.cursor = i
				break
			}
		}
	}
	m.resetPending()
}

func (m *SessionModel) resetPending() {
	plan := m.dayPlan()
	if plan == nil || m.cursor >= len(plan.Exercises) {
		return
	}
	ex := plan.Exercises[m.cursor]
	m.reps = ex.SuggestedReps
	m.weightKg = nil
	if ex.SuggestedWeightKg != nil {
		w := *ex.SuggestedWeightKg
		m.weightKg = &w
	}
	m.adjusted = false
}

func (m SessionModel) dayPlan() *workout.ProgramDay {
	tracker := m.svc.Tracker()
	if tracker == nil {
		return nil
	}
	return tracker.DayPlan()
}

// nextSetIndex returns the first unlogged set for the exercise, or -1
// when every planned set has reps
func (m SessionModel) nextSetIndex(exerciseID string) int {
	current := m.svc.Tracker().Current()
	if current == nil {
		return -1
	}
	for _, l := range current.Logs {
		if l.ExerciseID == exerciseID && !l.Completed() {
			return l.SetIndex
		}
	}
	return -1
}

func (m SessionModel) loggedSets(exerciseID string) int {
	current := m.svc.Tracker().Current()
	if current == nil {
		return 0
	}
	n := 0
	for _, l := range current.Logs {
		if l.ExerciseID == exerciseID && l.Completed() {
			n++
		}
	}
	return n
}

// Update handles messages
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	plan := m.dayPlan()

	switch msg := msg.(type) {
	case restTickMsg:
		if !m.resting {
			return m, nil
		}
		m.restLeft--
		if m.restLeft <= 0 {
			m.resting = false
			return m, nil
		}
		return m, restTick()

	case tea.KeyMsg:
		if m.finishing {
			return m, nil
		}
		switch msg.String() {
		case "j", "down":
			if plan != nil && m.cursor < len(plan.Exercises)-1 {
				m.cursor++
				m.resetPending()
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.resetPending()
			}
		case "left":
			if m.reps > 0 {
				m.reps--
				m.adjusted = true
			}
		case "right":
			m.reps++
			m.adjusted = true
		case "+", "=":
			if m.weightKg != nil {
				w := *m.weightKg + weightStepKg
				m.weightKg = &w
				m.adjusted = true
			}
		case "-":
			if m.weightKg != nil && *m.weightKg >= weightStepKg {
				w := *m.weightKg - weightStepKg
				m.weightKg = &w
				m.adjusted = true
			}
		case " ", "space", "enter":
			if m.resting || plan == nil || m.cursor >= len(plan.Exercises) {
				return m, nil
			}
			ex := plan.Exercises[m.cursor]
			idx := m.nextSetIndex(ex.ID)
			if idx < 0 {
				return m, nil
			}
			m.svc.LogSet(ex.ID, idx, m.reps, m.weightKg)

			// Rest between sets, skipped after the last one
			if m.nextSetIndex(ex.ID) >= 0 && ex.RestSeconds > 0 {
				m.resting = true
				m.restLeft = ex.RestSeconds
				m.restTotal = ex.RestSeconds
				return m, restTick()
			}
			m.syncCursor()
		case "s":
			if m.resting {
				m.resting = false
				m.syncCursor()
			}
		case "f":
			m.finishing = true
			return m, m.finish
		case "g":
			if plan != nil && m.cursor < len(plan.Exercises) {
				name := plan.Exercises[m.cursor].Name
				return m, func() tea.Msg { return OpenGuideMsg{Name: name} }
			}
		}
	}
	return m, nil
}

func (m SessionModel) finish() tea.Msg {
	message, syncErr := m.svc.FinishWorkout(context.Background())
	return SessionFinishedMsg{Message: message, SyncErr: syncErr}
}

// View renders the session screen
func (m SessionModel) View() string {
	tracker := m.svc.Tracker()
	if tracker == nil || tracker.Current() == nil {
		return "\n  No active session. Start one from the dashboard."
	}
	plan := m.dayPlan()

	var sections []string

	current := tracker.Current()
	sections = append(sections, cardTitleStyle.Render(current.DayLabel))

	sum := tracker.Summary()
	summary := fmt.Sprintf("  %d sets  %d reps  %s volume",
		sum.CompletedSets, sum.TotalReps, m.units.FormatWeight(sum.TotalVolumeKg))
	sections = append(sections, metricValueStyle.Render(summary))
	sections = append(sections, "")

	if plan != nil {
		for i, ex := range plan.Exercises {
			logged := m.loggedSets(ex.ID)

			boxes := ""
			for s := 0; s < ex.SuggestedSets; s++ {
				if s < logged {
					boxes += successStyle.Render("[x]")
				} else {
					boxes += navInactiveStyle.Render("[ ]")
				}
			}

			row := fmt.Sprintf("%-24s %s  %s x%d",
				ex.Name, boxes, m.units.FormatWeightPtr(ex.SuggestedWeightKg), ex.SuggestedReps)

			style := rowStyle
			if i == m.cursor {
				style = rowSelectedStyle
			} else if logged >= ex.SuggestedSets {
				style = rowDoneStyle
			}
			sections = append(sections, style.Render(row))
		}
	}

	sections = append(sections, "")
	sections = append(sections, m.renderPending())

	if m.resting {
		sections = append(sections, m.renderRest())
	}

	sections = append(sections, "")
	if m.finishing {
		sections = append(sections, statusStyle.Render("  Finishing workout..."))
	} else {
		sections = append(sections, statusStyle.Render("space to log a set, left/right reps, +/- weight, 's' skip rest, 'f' finish"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SessionModel) renderPending() string {
	mark := ""
	if m.adjusted {
		mark = " *"
	}
	return "  Next set: " + metricValueStyle.Render(
		fmt.Sprintf("%s x %d reps%s", m.units.FormatWeightPtr(m.weightKg), m.reps, mark))
}

func (m SessionModel) renderRest() string {
	percent := 0.0
	if m.restTotal > 0 {
		percent = float64(m.restTotal-m.restLeft) / float64(m.restTotal)
	}
	return fmt.Sprintf("\n  Rest  %s  %ds", RenderProgressBar(percent, 24), m.restLeft)
}
