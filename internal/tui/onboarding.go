package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gymbuddy/internal/service"
	"gymbuddy/internal/workout"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldKind int

const (
	fieldChoice fieldKind = iota
	fieldText
	fieldSubmit
)

type formField struct {
	kind     fieldKind
	label    string
	options  []string
	selected int
	input    textinput.Model
	optional bool
}

// OnboardingModel collects the profile that seeds program generation
type OnboardingModel struct {
	svc        *service.WorkoutService
	fields     []formField
	focus      int
	submitting bool
	err        error
}

// NewOnboardingModel creates the onboarding form
func NewOnboardingModel(svc *service.WorkoutService) OnboardingModel {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 6
		ti.Width = 10
		return ti
	}

	fields := []formField{
		{kind: fieldChoice, label: "Gender", options: []string{"male", "female", "other"}},
		{kind: fieldText, label: "Age", input: newInput("30")},
		{kind: fieldText, label: "Height (cm)", input: newInput("175")},
		{kind: fieldText, label: "Weight (kg)", input: newInput("optional"), optional: true},
		{kind: fieldChoice, label: "Goal", options: []string{"muscle", "fat_loss", "strength", "fitness"}},
		{kind: fieldChoice, label: "Equipment", options: []string{"full_gym", "dumbbells", "bodyweight"}},
		{kind: fieldText, label: "Days per week", input: newInput("3")},
		{kind: fieldText, label: "Bench press (kg)", input: newInput("optional"), optional: true},
		{kind: fieldText, label: "Squat (kg)", input: newInput("optional"), optional: true},
		{kind: fieldText, label: "Deadlift (kg)", input: newInput("optional"), optional: true},
		{kind: fieldSubmit, label: "Generate program"},
	}

	m := OnboardingModel{svc: svc, fields: fields}
	m.setFocus(0)
	return m
}

// Init initializes the onboarding screen
func (m OnboardingModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *OnboardingModel) setFocus(i int) {
	m.focus = i
	for j := range m.fields {
		if m.fields[j].kind != fieldText {
			continue
		}
		if j == i {
			m.fields[j].input.Focus()
		} else {
			m.fields[j].input.Blur()
		}
	}
}

// Update handles messages
func (m OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OnboardingDoneMsg:
		m.submitting = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab", "down", "enter":
			if msg.String() == "enter" && m.fields[m.focus].kind == fieldSubmit {
				return m.submit()
			}
			m.setFocus((m.focus + 1) % len(m.fields))
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.fields) - 1) % len(m.fields))
			return m, nil

		case "left", "right":
			f := &m.fields[m.focus]
			if f.kind == fieldChoice {
				delta := 1
				if msg.String() == "left" {
					delta = len(f.options) - 1
				}
				f.selected = (f.selected + delta) % len(f.options)
				return m, nil
			}
		}
	}

	if m.fields[m.focus].kind == fieldText {
		var cmd tea.Cmd
		m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m OnboardingModel) submit() (tea.Model, tea.Cmd) {
	profile, estimate, err := m.parse()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.submitting = true
	return m, func() tea.Msg {
		program, err := m.svc.CompleteOnboarding(context.Background(), profile, estimate)
		return OnboardingDoneMsg{Program: program, Err: err}
	}
}

func (m OnboardingModel) parse() (workout.UserProfile, *workout.StrengthEstimate, error) {
	get := func(label string) formField {
		for _, f := range m.fields {
			if f.label == label {
				return f
			}
		}
		return formField{}
	}

	intField := func(label string) (int, error) {
		v := strings.TrimSpace(get(label).input.Value())
		if v == "" {
			return 0, fmt.Errorf("%s is required", label)
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%s must be a positive number", label)
		}
		return n, nil
	}

	optFloat := func(label string) (*float64, error) {
		v := strings.TrimSpace(get(label).input.Value())
		if v == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("%s must be a positive number", label)
		}
		return &f, nil
	}

	var profile workout.UserProfile
	var firstErr error
	check := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	age, err := intField("Age")
	check(err)
	height, err := intField("Height (cm)")
	check(err)
	days, err := intField("Days per week")
	check(err)
	weight, err := optFloat("Weight (kg)")
	check(err)
	bench, err := optFloat("Bench press (kg)")
	check(err)
	squat, err := optFloat("Squat (kg)")
	check(err)
	deadlift, err := optFloat("Deadlift (kg)")
	check(err)
	if firstErr != nil {
		return profile, nil, firstErr
	}
	if days < 1 || days > 7 {
		return profile, nil, fmt.Errorf("days per week must be between 1 and 7")
	}

	genderField := get("Gender")
	goalField := get("Goal")
	equipField := get("Equipment")

	profile = workout.UserProfile{
		Gender:              genderField.options[genderField.selected],
		Age:                 age,
		HeightCm:            float64(height),
		WeightKg:            weight,
		Goal:                workout.Goal(goalField.options[goalField.selected]),
		Equipment:           workout.Equipment(equipField.options[equipField.selected]),
		TrainingDaysPerWeek: days,
	}

	var estimate *workout.StrengthEstimate
	if bench != nil || squat != nil || deadlift != nil {
		estimate = &workout.StrengthEstimate{
			BenchPressKg: bench,
			SquatKg:      squat,
			DeadliftKg:   deadlift,
		}
	}

	return profile, estimate, nil
}

// View renders the onboarding form
func (m OnboardingModel) View() string {
	var lines []string

	lines = append(lines, cardTitleStyle.Render("Welcome! Tell us about yourself"))
	lines = append(lines, "")

	for i, f := range m.fields {
		label := fieldLabelStyle.Render(f.label)
		if i == m.focus {
			label = fieldFocusedStyle.Width(18).Render("> " + f.label)
		}

		switch f.kind {
		case fieldChoice:
			var opts []string
			for j, opt := range f.options {
				if j == f.selected {
					opts = append(opts, navActiveStyle.Render("["+opt+"]"))
				} else {
					opts = append(opts, navInactiveStyle.Render(opt))
				}
			}
			lines = append(lines, label+" "+strings.Join(opts, " "))
		case fieldText:
			lines = append(lines, label+" "+f.input.View())
		case fieldSubmit:
			lines = append(lines, "")
			btn := "[ " + f.label + " ]"
			if i == m.focus {
				lines = append(lines, rowSelectedStyle.Render(btn))
			} else {
				lines = append(lines, rowStyle.Render(btn))
			}
		}
	}

	lines = append(lines, "")
	if m.submitting {
		lines = append(lines, statusStyle.Render("Generating your program..."))
	} else if m.err != nil {
		lines = append(lines, errorStyle.Render(m.err.Error()))
	} else {
		lines = append(lines, statusStyle.Render("tab/arrows to move, left/right to pick, enter on the button to submit"))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
