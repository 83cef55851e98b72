package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"tanyajaksa/internal/logging"
)

// =============================================================================
// ROOT UPDATE LOOP
// =============================================================================

// Update handles top-level routing messages itself and delegates everything
// else to the model for the current screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.screen == ScreenMain {
			m.shell = m.shell.setSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			logging.Get(logging.CategoryApp).Infof("quit requested")
			return m, tea.Quit
		}

	case splashDoneMsg:
		// A timer armed for an earlier splash is stale; drop it.
		if m.screen != ScreenSplash || msg.gen != m.splashGen {
			return m, nil
		}
		m.splashGen++
		return m.resolveSplash()

	case onboardingDoneMsg:
		if err := m.deps.Sessions.MarkOnboardingSeen(); err != nil {
			logging.Get(logging.CategorySession).Warnf("persist onboarding marker: %v", err)
		}
		m.screen = ScreenLogin
		m.login = newLoginModel(m.deps)
		return m, nil

	case gotoLoginMsg:
		m.screen = ScreenLogin
		m.login = newLoginModel(m.deps)
		return m, nil

	case gotoRegisterMsg:
		m.screen = ScreenRegister
		m.register = newRegisterModel(m.deps)
		return m, nil

	case loggedInMsg:
		logging.Get(logging.CategoryRouter).Infof("login accepted (name=%q role=%q)", msg.name, msg.role)
		if msg.email != "" {
			if err := m.deps.Sessions.SetUserEmail(msg.email); err != nil {
				logging.Get(logging.CategorySession).Warnf("persist email: %v", err)
			}
		}
		return m.completeLogin(msg.name, msg.role)

	case registeredMsg:
		logging.Get(logging.CategoryRouter).Infof("registration accepted (role=%q)", msg.role)
		// Registering implies the carousel is no longer interesting.
		if err := m.deps.Sessions.MarkOnboardingSeen(); err != nil {
			logging.Get(logging.CategorySession).Warnf("persist onboarding marker: %v", err)
		}
		if msg.email != "" {
			if err := m.deps.Sessions.SetUserEmail(msg.email); err != nil {
				logging.Get(logging.CategorySession).Warnf("persist email: %v", err)
			}
		}
		return m.completeLogin(msg.name, msg.role)

	case logoutMsg:
		logging.Get(logging.CategoryRouter).Infof("logout, returning to login")
		if err := m.deps.Sessions.ClearAuthToken(); err != nil {
			logging.Get(logging.CategorySession).Warnf("clear auth token: %v", err)
		}
		m.authed = false
		m.screen = ScreenLogin
		m.login = newLoginModel(m.deps)
		return m, nil
	}

	return m.delegate(msg)
}

// delegate forwards a message to the active screen's model. The splash screen
// only animates its spinner; everything else owns real input handling.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case ScreenSplash:
		m.spinner, cmd = m.spinner.Update(msg)
	case ScreenOnboarding:
		m.onboarding, cmd = m.onboarding.update(msg)
	case ScreenLogin:
		m.login, cmd = m.login.update(msg)
	case ScreenRegister:
		m.register, cmd = m.register.update(msg)
	case ScreenMain:
		m.shell, cmd = m.shell.update(msg)
	}
	return m, cmd
}
