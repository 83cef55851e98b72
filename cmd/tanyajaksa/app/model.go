package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"tanyajaksa/internal/ident"
	"tanyajaksa/internal/logging"
	"tanyajaksa/internal/session"
)

// Model is the root of the screen-routing state machine. It owns the
// top-level screen selection and the derived authenticated flag; everything
// below the main screen is delegated to the shell model.
type Model struct {
	deps Deps

	screen Screen
	authed bool

	// splashGen invalidates the splash timer if the splash screen is left
	// before it fires; bubbletea timers cannot be cancelled, so a stale
	// splashDoneMsg is recognized and dropped instead.
	splashGen int

	spinner    spinner.Model
	onboarding onboardingModel
	login      loginModel
	register   registerModel
	shell      shellModel

	width  int
	height int
	ready  bool
}

// New builds the root model. The screen is always splash first; the session
// store is not consulted until the splash delay elapses.
func New(deps Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = deps.Styles.Spinner

	return Model{
		deps:    deps,
		screen:  ScreenSplash,
		spinner: sp,
		login:   newLoginModel(deps),
	}
}

// Init starts the spinner and arms the splash timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, splashCmd(m.deps.Config.SplashDelay(), m.splashGen))
}

func splashCmd(delay time.Duration, gen int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return splashDoneMsg{gen: gen}
	})
}

// resolveSplash performs the single read-then-branch evaluation of the
// persisted flags. Order matters: a present auth token wins over the
// onboarding marker.
func (m Model) resolveSplash() (Model, tea.Cmd) {
	log := logging.Get(logging.CategoryRouter)
	snap := m.deps.Sessions.Snapshot()

	switch {
	case snap.AuthToken != "":
		log.Infof("splash resolved to main (token present)")
		m.authed = true
		return m.enterMain()
	case snap.HasSeenOnboarding:
		log.Infof("splash resolved to login")
		m.screen = ScreenLogin
		m.login = newLoginModel(m.deps)
		return m, nil
	default:
		log.Infof("splash resolved to onboarding (first launch)")
		m.screen = ScreenOnboarding
		m.onboarding = newOnboardingModel(m.deps)
		return m, nil
	}
}

// enterMain builds a fresh shell for the authenticated area. The role is
// read here, at mount time, and again on every re-entry.
func (m Model) enterMain() (Model, tea.Cmd) {
	m.screen = ScreenMain
	m.shell = newShellModel(m.deps)
	m.shell = m.shell.setSize(m.width, m.height)
	return m, nil
}

// completeLogin persists the freshly minted token plus any identity carried
// by the signal, then transitions to main. Shared by login and registration.
func (m Model) completeLogin(name string, role session.Role) (Model, tea.Cmd) {
	sess := m.deps.Sessions
	if name != "" {
		if err := sess.SetUserName(name); err != nil {
			logging.Get(logging.CategorySession).Warnf("persist user name: %v", err)
		}
	}
	if role != "" {
		if err := sess.SetRole(role); err != nil {
			logging.Get(logging.CategorySession).Warnf("persist role: %v", err)
		}
	}
	if err := sess.SetAuthToken(ident.NewAuthToken()); err != nil {
		logging.Get(logging.CategorySession).Warnf("persist auth token: %v", err)
	}
	m.authed = true
	return m.enterMain()
}

// Screen exposes the current top-level selection for tests and the sitemap
// subcommand.
func (m Model) Screen() Screen { return m.screen }

// Authenticated exposes the derived auth flag.
func (m Model) Authenticated() bool { return m.authed }
