package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Program overview"},
		{"2", "Today's plan"},
		{"3", "Active session"},
		{"4", "Exercise history"},
		{"5", "Exercise guide"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	dashSection := m.renderSection("Program", []keyHelp{
		{"j / k", "Pick a training day"},
		{"enter", "Start a session"},
		{"s", "Sync queued changes"},
		{"O", "Start over (new profile)"},
	})
	sections = append(sections, dashSection)

	todaySection := m.renderSection("Today's Plan", []keyHelp{
		{"space", "Check off a set"},
		{"e", "Edit the plan"},
		{"g", "Exercise guide"},
		{"r", "Reload from server"},
	})
	sections = append(sections, todaySection)

	editorSection := m.renderSection("Plan Editor", []keyHelp{
		{"+ / -", "Adjust set count"},
		{"w", "Request a swap"},
		{"x", "Remove exercise"},
		{"s", "Save changes"},
	})
	sections = append(sections, editorSection)

	sessionSection := m.renderSection("Session", []keyHelp{
		{"space / enter", "Log the next set"},
		{"left / right", "Adjust reps"},
		{"+ / -", "Adjust weight"},
		{"s", "Skip rest timer"},
		{"f", "Finish workout"},
	})
	sections = append(sections, sessionSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}
