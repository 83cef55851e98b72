// Package app implements the Tanya Jaksa terminal client as a bubbletea
// state machine. The root model owns top-level screen selection, the shell
// model owns the authenticated tab bar, and each feature tab owns its own
// small view stack. Cross-screen signals travel as typed messages through
// the update loop; persisted flags are read once at transition time.
package app

import (
	"tanyajaksa/cmd/tanyajaksa/ui"
	"tanyajaksa/internal/config"
	"tanyajaksa/internal/ident"
	"tanyajaksa/internal/session"
	"tanyajaksa/internal/store"
	"tanyajaksa/internal/submit"
)

// =============================================================================
// DEPENDENCIES
// =============================================================================

// RecordStore is the slice of the persistence layer the UI needs for
// conversation records. *store.LocalStore satisfies it; tests inject fakes.
type RecordStore interface {
	SaveConversation(store.Conversation) error
	Conversation(id int64) (store.Conversation, bool)
}

// Deps bundles the injected collaborators for the whole model tree. Nothing
// in this package reaches for ambient globals; fakes slot in here.
type Deps struct {
	Config   *config.AppConfig
	Sessions *session.Manager
	Records  RecordStore
	IDs      *ident.Allocator
	Submit   submit.Service
	Styles   ui.Styles
}

// =============================================================================
// SCREEN AND TAB ENUMS
// =============================================================================

// Screen is the top-level selection owned by the root model.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenOnboarding
	ScreenLogin
	ScreenRegister
	ScreenMain
)

// Tab is the authenticated-area selection owned by the shell model.
type Tab int

const (
	TabDashboard Tab = iota
	TabAssistance
	TabConsultation
	TabProjects
	TabEducation
	TabProfile
)

// Label returns the bottom-bar caption for a tab.
func (t Tab) Label() string {
	switch t {
	case TabDashboard:
		return "Beranda"
	case TabAssistance:
		return "Permohonan"
	case TabConsultation:
		return "Konsultasi"
	case TabProjects:
		return "Proyek"
	case TabEducation:
		return "Edukasi"
	case TabProfile:
		return "Profil"
	default:
		return "?"
	}
}

// tabOrder fixes the navigation surface order; disallowed tabs are omitted
// from the rendered bar, not disabled.
var tabOrder = [...]Tab{
	TabDashboard,
	TabAssistance,
	TabConsultation,
	TabProjects,
	TabEducation,
	TabProfile,
}

// instansi-only tabs; everything else is visible to both roles.
func tabAllowed(t Tab, role session.Role) bool {
	if t == TabAssistance {
		return role == session.RoleInstansi
	}
	return true
}

// allowedTabs filters the static tab table by role, preserving order.
func allowedTabs(role session.Role) []Tab {
	out := make([]Tab, 0, len(tabOrder))
	for _, t := range tabOrder {
		if tabAllowed(t, role) {
			out = append(out, t)
		}
	}
	return out
}

// =============================================================================
// MESSAGES
// =============================================================================

// Messages for tea updates. Each is a one-shot notification routed to a
// single consumer in the model tree.
type (
	// splashDoneMsg fires when the splash hold elapses. The generation
	// guards against a stale timer firing after the splash was left.
	splashDoneMsg struct{ gen int }

	// onboardingDoneMsg signals the carousel completed its last slide.
	onboardingDoneMsg struct{}

	// gotoLoginMsg / gotoRegisterMsg are explicit user navigation between
	// the two auth screens; no side effects beyond selection change.
	gotoLoginMsg    struct{}
	gotoRegisterMsg struct{}

	// loginAttemptMsg fires after the simulated credential-check delay.
	loginAttemptMsg struct {
		email    string
		password string
		seq      int
	}

	// loggedInMsg reports a successful login. An empty role means "keep
	// whatever role is already persisted".
	loggedInMsg struct {
		name  string
		email string
		role  session.Role
	}

	// registeredMsg reports a successful registration carrying the chosen
	// role; the root persists it and then follows the login path.
	registeredMsg struct {
		name  string
		email string
		role  session.Role
	}

	// logoutMsg returns the app to the login screen and clears the token.
	logoutMsg struct{}

	// selectTabMsg requests a tab change (dashboard quick actions).
	selectTabMsg struct{ tab Tab }

	// assistanceSubmittedMsg is the cross-tab signal: an assistance
	// submission created conversation chatID and the consultation tab
	// must open it. Consumed exactly once by the shell.
	assistanceSubmittedMsg struct{ chatID int64 }

	// startChatResultMsg carries the outcome of a start-chat submission.
	startChatResultMsg struct {
		topic    string
		category string
		err      error
		seq      int
	}

	// assistanceResultMsg carries the outcome of an assistance submission.
	assistanceResultMsg struct {
		req submit.AssistanceRequest
		err error
		seq int
	}

	// scheduleSavedMsg fires after the simulated schedule/reschedule
	// submission delay.
	scheduleSavedMsg struct{ seq int }

	// chatReplyMsg appends the canned prosecutor acknowledgement after a
	// short delay. chatID guards against replies landing in another chat.
	chatReplyMsg struct{ chatID int64 }
)
