package tui

import (
	"fmt"

	"gymbuddy/internal/service"
	"gymbuddy/internal/workout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenOnboarding Screen = iota
	ScreenDashboard
	ScreenToday
	ScreenEditor
	ScreenSession
	ScreenHistory
	ScreenGuide
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	onboarding OnboardingModel
	dashboard  DashboardModel
	today      TodayModel
	editor     EditorModel
	session    SessionModel
	history    HistoryModel
	guide      GuideModel
	help       HelpModel

	// Services
	svc   *service.WorkoutService
	units Units

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(svc *service.WorkoutService, units Units) *App {
	screen := ScreenDashboard
	if svc.NeedsOnboarding() {
		screen = ScreenOnboarding
	}

	return &App{
		screen:     screen,
		svc:        svc,
		units:      units,
		onboarding: NewOnboardingModel(svc),
		dashboard:  NewDashboardModel(svc, units),
		today:      NewTodayModel(svc, units),
		editor:     NewEditorModel(svc, units),
		session:    NewSessionModel(svc, units),
		history:    NewHistoryModel(svc, units),
		guide:      NewGuideModel(svc, 0, 0),
		help:       NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenOnboarding {
		return a.onboarding.Init()
	}
	return a.dashboard.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Onboarding owns the keyboard until the profile is submitted
		if a.screen != ScreenOnboarding {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenDashboard
				a.dashboard = NewDashboardModel(a.svc, a.units)
				return a, a.dashboard.Init()
			case "2":
				a.screen = ScreenToday
				return a, a.today.Init()
			case "3":
				if a.svc.Tracker() != nil && a.svc.Tracker().Current() != nil {
					a.screen = ScreenSession
					return a, a.session.Init()
				}
				a.status = "No active session. Start one from the dashboard."
				return a, nil
			case "4":
				a.screen = ScreenHistory
				return a, a.history.Init()
			case "5":
				a.screen = ScreenGuide
				a.guide = NewGuideModel(a.svc, a.width, a.height)
				return a, a.guide.Init()
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				switch a.screen {
				case ScreenHelp:
					a.screen = a.prevScreen
					return a, nil
				case ScreenEditor:
					a.screen = ScreenToday
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OnboardingDoneMsg:
		if msg.Err != nil {
			a.status = errorStyle.Render("Program generation failed: " + msg.Err.Error())
			break
		}
		a.status = "Program ready. Pick a day to start training."
		a.screen = ScreenDashboard
		a.dashboard = NewDashboardModel(a.svc, a.units)
		return a, a.dashboard.Init()

	case SessionStartedMsg:
		a.status = ""
		a.screen = ScreenSession
		a.session = NewSessionModel(a.svc, a.units)
		return a, a.session.Init()

	case SessionFinishedMsg:
		if msg.SyncErr != nil {
			a.status = warningStyle.Render("Saved locally; sync failed: " + msg.SyncErr.Error())
		} else if msg.Message != "" {
			a.status = successStyle.Render(msg.Message)
		} else {
			a.status = successStyle.Render("Workout complete!")
		}
		a.screen = ScreenDashboard
		a.dashboard = NewDashboardModel(a.svc, a.units)
		return a, a.dashboard.Init()

	case ReOnboardMsg:
		a.status = ""
		a.screen = ScreenOnboarding
		a.onboarding = NewOnboardingModel(a.svc)
		return a, a.onboarding.Init()

	case OpenEditorMsg:
		a.screen = ScreenEditor
		a.editor = NewEditorModel(a.svc, a.units)
		return a, a.editor.Init()

	case OpenGuideMsg:
		a.screen = ScreenGuide
		a.guide = NewGuideModel(a.svc, a.width, a.height)
		a.guide.SelectExercise(msg.Name)
		return a, a.guide.fetch

	case SyncDoneMsg:
		if msg.Err != nil {
			a.status = warningStyle.Render("Sync failed: " + msg.Err.Error())
		} else {
			a.status = successStyle.Render("All changes synced.")
		}
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenOnboarding:
		var m tea.Model
		m, cmd = a.onboarding.Update(msg)
		a.onboarding = m.(OnboardingModel)
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenToday:
		var m tea.Model
		m, cmd = a.today.Update(msg)
		a.today = m.(TodayModel)
	case ScreenEditor:
		var m tea.Model
		m, cmd = a.editor.Update(msg)
		a.editor = m.(EditorModel)
	case ScreenSession:
		var m tea.Model
		m, cmd = a.session.Update(msg)
		a.session = m.(SessionModel)
	case ScreenHistory:
		var m tea.Model
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenGuide:
		var m tea.Model
		m, cmd = a.guide.Update(msg)
		a.guide = m.(GuideModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	if a.screen == ScreenOnboarding {
		return lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), a.onboarding.View())
	}

	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenToday:
		content = a.today.View()
	case ScreenEditor:
		content = a.editor.View()
	case ScreenSession:
		content = a.session.View()
	case ScreenHistory:
		content = a.history.View()
	case ScreenGuide:
		content = a.guide.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("GymBuddy Workout Tracker")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Program", ScreenDashboard},
		{"2", "Today", ScreenToday},
		{"3", "Session", ScreenSession},
		{"4", "History", ScreenHistory},
		{"5", "Guide", ScreenGuide},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen || (a.screen == ScreenEditor && item.screen == ScreenToday) {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	if n := a.svc.PendingCount(); n > 0 {
		return statusStyle.Render(fmt.Sprintf("pending sync ops: %d  press 's' on the dashboard to sync", n))
	}
	return ""
}

// OnboardingDoneMsg is sent when program generation finishes
type OnboardingDoneMsg struct {
	Program *workout.Program
	Err     error
}

// SessionStartedMsg is sent when a training session begins
type SessionStartedMsg struct{}

// SessionFinishedMsg is sent when the active session is finished
type SessionFinishedMsg struct {
	Message string
	SyncErr error
}

// ReOnboardMsg is sent after saved state is cleared for re-onboarding
type ReOnboardMsg struct{}

// OpenEditorMsg switches to the plan editor
type OpenEditorMsg struct{}

// OpenGuideMsg opens the guide screen for a named exercise
type OpenGuideMsg struct {
	Name string
}

// SyncDoneMsg is sent when a pending-op drain finishes
type SyncDoneMsg struct {
	Err error
}
