package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tanyajaksa/internal/logging"
)

// =============================================================================
// MAIN SHELL
// =============================================================================

// shellModel owns the authenticated area: the role-filtered tab bar and the
// per-tab feature models. The role is read when the shell is built, so
// re-entering the main screen re-evaluates tab visibility.
type shellModel struct {
	deps Deps

	tabs   []Tab
	active Tab

	dashboard    dashboardModel
	assistance   assistanceModel
	consultation consultationModel
	projects     projectsModel
	education    educationModel
	profile      profileModel

	width  int
	height int
}

func newShellModel(deps Deps) shellModel {
	snap := deps.Sessions.Snapshot()
	sh := shellModel{
		deps:         deps,
		tabs:         allowedTabs(snap.Role),
		active:       TabDashboard,
		dashboard:    newDashboardModel(deps, snap),
		assistance:   newAssistanceModel(deps, snap),
		consultation: newConsultationModel(deps),
		projects:     newProjectsModel(deps),
		education:    newEducationModel(deps),
		profile:      newProfileModel(deps, snap),
	}
	logging.Get(logging.CategoryShell).Infof("shell ready (role=%s tabs=%d)", snap.Role, len(sh.tabs))
	return sh
}

func (sh shellModel) setSize(width, height int) shellModel {
	sh.width = width
	sh.height = height
	sh.education = sh.education.setSize(width, height)
	return sh
}

func (sh shellModel) update(msg tea.Msg) (shellModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return sh.setSize(msg.Width, msg.Height), nil

	case selectTabMsg:
		return sh.selectTab(msg.tab), nil

	case assistanceSubmittedMsg:
		return sh.handleAssistanceSubmitted(msg.chatID)

	// Submission outcomes are routed to their owning tab even when the user
	// has navigated elsewhere in the meantime.
	case startChatResultMsg, scheduleSavedMsg, chatReplyMsg:
		var cmd tea.Cmd
		sh.consultation, cmd = sh.consultation.update(msg)
		return sh, cmd
	case assistanceResultMsg:
		var cmd tea.Cmd
		sh.assistance, cmd = sh.assistance.update(msg)
		return sh, cmd

	case tea.KeyMsg:
		if !sh.activeCaptures() {
			switch msg.String() {
			case "]", "tab":
				return sh.cycleTab(1), nil
			case "[", "shift+tab":
				return sh.cycleTab(-1), nil
			case "1", "2", "3", "4", "5", "6":
				idx := int(msg.String()[0] - '1')
				if idx < len(sh.tabs) {
					return sh.selectTab(sh.tabs[idx]), nil
				}
				return sh, nil
			}
		}
	}

	return sh.delegate(msg)
}

// selectTab switches tabs, ignoring requests for tabs the current role
// cannot see.
func (sh shellModel) selectTab(tab Tab) shellModel {
	for _, t := range sh.tabs {
		if t == tab {
			sh.active = tab
			return sh
		}
	}
	logging.Get(logging.CategoryShell).Debugf("ignoring select of hidden tab %s", tab.Label())
	return sh
}

func (sh shellModel) cycleTab(dir int) shellModel {
	cur := 0
	for i, t := range sh.tabs {
		if t == sh.active {
			cur = i
			break
		}
	}
	next := (cur + dir + len(sh.tabs)) % len(sh.tabs)
	sh.active = sh.tabs[next]
	return sh
}

// handleAssistanceSubmitted consumes the cross-tab signal: switch to the
// consultation tab and open the freshly created chat, all within this update
// so no pending state survives to the next render.
func (sh shellModel) handleAssistanceSubmitted(chatID int64) (shellModel, tea.Cmd) {
	logging.Get(logging.CategoryShell).Infof("assistance created chat %d, opening consultation tab", chatID)
	sh = sh.selectTab(TabConsultation)
	var cmd tea.Cmd
	sh.consultation, cmd = sh.consultation.openChat(chatID)
	return sh, cmd
}

// activeCaptures reports whether the active tab currently owns raw key input
// (a focused text field), which suspends tab-switching shortcuts.
func (sh shellModel) activeCaptures() bool {
	switch sh.active {
	case TabConsultation:
		return sh.consultation.capturing()
	case TabAssistance:
		return sh.assistance.capturing()
	default:
		return false
	}
}

func (sh shellModel) delegate(msg tea.Msg) (shellModel, tea.Cmd) {
	var cmd tea.Cmd
	switch sh.active {
	case TabDashboard:
		sh.dashboard, cmd = sh.dashboard.update(msg)
	case TabAssistance:
		sh.assistance, cmd = sh.assistance.update(msg)
	case TabConsultation:
		sh.consultation, cmd = sh.consultation.update(msg)
	case TabProjects:
		sh.projects, cmd = sh.projects.update(msg)
	case TabEducation:
		sh.education, cmd = sh.education.update(msg)
	case TabProfile:
		sh.profile, cmd = sh.profile.update(msg)
	}
	return sh, cmd
}

// =============================================================================
// SHELL VIEW
// =============================================================================

func (sh shellModel) view() string {
	s := sh.deps.Styles

	header := s.Header.Width(max(sh.width, 0)).Render("Tanya Jaksa — " + sh.active.Label())

	var content string
	switch sh.active {
	case TabDashboard:
		content = sh.dashboard.view(sh.width)
	case TabAssistance:
		content = sh.assistance.view(sh.width)
	case TabConsultation:
		content = sh.consultation.view(sh.width)
	case TabProjects:
		content = sh.projects.view(sh.width)
	case TabEducation:
		content = sh.education.view(sh.width)
	case TabProfile:
		content = sh.profile.view(sh.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, sh.tabBar())
}

// tabBar renders only the tabs the current role may see.
func (sh shellModel) tabBar() string {
	s := sh.deps.Styles
	parts := make([]string, 0, len(sh.tabs))
	for i, t := range sh.tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label())
		if t == sh.active {
			parts = append(parts, s.TabActive.Render(label))
		} else {
			parts = append(parts, s.TabInactive.Render(label))
		}
	}
	bar := strings.Join(parts, s.Divider.Render("│"))
	hint := s.Footer.Render("tab: pindah • ctrl+c: keluar")
	return lipgloss.JoinVertical(lipgloss.Left, s.RenderDivider(max(sh.width, 1)), bar, hint)
}
