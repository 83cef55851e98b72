package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tanyajaksa/cmd/tanyajaksa/ui"
	"tanyajaksa/internal/catalog"
	"tanyajaksa/internal/config"
	"tanyajaksa/internal/ident"
	"tanyajaksa/internal/session"
	"tanyajaksa/internal/store"
	"tanyajaksa/internal/submit"
)

// newTestDeps wires the model tree onto in-memory fakes.
func newTestDeps() Deps {
	return Deps{
		Config:   config.Default(),
		Sessions: session.NewManager(session.NewMemoryStore()),
		Records:  store.NewMemoryRecords(),
		IDs:      ident.NewAllocator(catalog.MaxSeedConversationID()),
		Submit:   &submit.Scripted{},
		Styles:   ui.NewStyles(ui.LightTheme()),
	}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out, cmd
}

func TestSplashFirstLaunchGoesToOnboarding(t *testing.T) {
	t.Parallel()

	m := New(newTestDeps())
	if m.Screen() != ScreenSplash {
		t.Fatalf("initial screen = %v, want splash", m.Screen())
	}

	m, _ = step(t, m, splashDoneMsg{gen: 0})
	if m.Screen() != ScreenOnboarding {
		t.Errorf("screen = %v, want onboarding on first launch", m.Screen())
	}
}

func TestSplashReturningUserGoesToLogin(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	if err := deps.Sessions.MarkOnboardingSeen(); err != nil {
		t.Fatal(err)
	}

	m := New(deps)
	m, _ = step(t, m, splashDoneMsg{gen: 0})
	if m.Screen() != ScreenLogin {
		t.Errorf("screen = %v, want login when onboarding already seen", m.Screen())
	}
}

func TestSplashAuthenticatedUserGoesToMain(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	if err := deps.Sessions.SetAuthToken("tj-test"); err != nil {
		t.Fatal(err)
	}
	// Token wins even without the onboarding marker.
	m := New(deps)
	m, _ = step(t, m, splashDoneMsg{gen: 0})
	if m.Screen() != ScreenMain {
		t.Errorf("screen = %v, want main when a token is present", m.Screen())
	}
	if !m.Authenticated() {
		t.Error("model should be authenticated after token resolution")
	}
}

func TestSplashStaleTimerIsIgnored(t *testing.T) {
	t.Parallel()

	m := New(newTestDeps())
	m, _ = step(t, m, splashDoneMsg{gen: 0}) // now on onboarding

	before := m.Screen()
	m, _ = step(t, m, splashDoneMsg{gen: 0})
	if m.Screen() != before {
		t.Errorf("stale splash timer changed screen %v -> %v", before, m.Screen())
	}
}

func TestOnboardingCompletionPersistsMarker(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	m := New(deps)
	m, _ = step(t, m, splashDoneMsg{gen: 0})
	m, _ = step(t, m, onboardingDoneMsg{})

	if m.Screen() != ScreenLogin {
		t.Errorf("screen = %v, want login after onboarding", m.Screen())
	}
	if !deps.Sessions.Snapshot().HasSeenOnboarding {
		t.Error("onboarding marker not persisted")
	}
}

func TestLoginMintsTokenAndLandsOnMain(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	m := New(deps)
	m, _ = step(t, m, splashDoneMsg{gen: 0})
	m, _ = step(t, m, loggedInMsg{name: "Budi Santoso", email: "budi@email.com", role: session.RoleMasyarakat})

	if m.Screen() != ScreenMain {
		t.Fatalf("screen = %v, want main after login", m.Screen())
	}
	snap := deps.Sessions.Snapshot()
	if !snap.IsAuthenticated {
		t.Error("no auth token persisted by login")
	}
	if snap.UserName != "Budi Santoso" || snap.UserEmail != "budi@email.com" {
		t.Errorf("identity not persisted: %+v", snap)
	}
}

func TestLogoutClearsTokenButKeepsOnboardingMarker(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	m := New(deps)
	m, _ = step(t, m, splashDoneMsg{gen: 0})
	m, _ = step(t, m, onboardingDoneMsg{})
	m, _ = step(t, m, loggedInMsg{name: "Budi", role: session.RoleMasyarakat})
	m, _ = step(t, m, logoutMsg{})

	if m.Screen() != ScreenLogin {
		t.Errorf("screen = %v, want login after logout", m.Screen())
	}
	snap := deps.Sessions.Snapshot()
	if snap.IsAuthenticated {
		t.Error("auth token survived logout")
	}
	if !snap.HasSeenOnboarding {
		t.Error("logout must not clear the onboarding marker")
	}
}

func TestRegistrationPersistsRoleAndSkipsOnboardingNextTime(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	m := New(deps)
	m, _ = step(t, m, splashDoneMsg{gen: 0})
	m, _ = step(t, m, gotoRegisterMsg{})
	if m.Screen() != ScreenRegister {
		t.Fatalf("screen = %v, want register", m.Screen())
	}

	m, _ = step(t, m, registeredMsg{name: "Dinas PU", email: "pu@kotabaru.go.id", role: session.RoleInstansi})
	if m.Screen() != ScreenMain {
		t.Fatalf("screen = %v, want main after registration", m.Screen())
	}

	snap := deps.Sessions.Snapshot()
	if snap.Role != session.RoleInstansi {
		t.Errorf("role = %q, want instansi", snap.Role)
	}
	if !snap.HasSeenOnboarding {
		t.Error("registration should mark onboarding as seen")
	}
}

func TestLoginFormRejectsBadCredentialsAfterDelay(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	l := newLoginModel(deps)
	l.submitting = true
	l.seq = 1

	l, cmd := l.update(loginAttemptMsg{email: "not-an-email", password: "pw", seq: 1})
	if cmd != nil {
		t.Fatal("rejected login should not emit a message")
	}
	if l.errText == "" {
		t.Error("rejected login should surface an error")
	}
	if l.submitting {
		t.Error("submitting flag should clear once the attempt resolves")
	}
}

func TestLoginFormIgnoresStaleAttempt(t *testing.T) {
	t.Parallel()

	l := newLoginModel(newTestDeps())
	l.submitting = true
	l.seq = 2

	l, cmd := l.update(loginAttemptMsg{email: "budi@email.com", password: "demo123", seq: 1})
	if cmd != nil {
		t.Error("stale attempt must not log in")
	}
	if !l.submitting {
		t.Error("stale attempt must not clear the in-flight flag")
	}
}

func TestLoginFormDemoAccountCarriesRole(t *testing.T) {
	t.Parallel()

	l := newLoginModel(newTestDeps())
	l.submitting = true
	l.seq = 1

	_, cmd := l.update(loginAttemptMsg{email: "instansi@kotabaru.go.id", password: "demo123", seq: 1})
	if cmd == nil {
		t.Fatal("accepted login should emit loggedInMsg")
	}
	msg, ok := cmd().(loggedInMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want loggedInMsg", cmd())
	}
	if msg.role != session.RoleInstansi {
		t.Errorf("role = %q, want instansi", msg.role)
	}
	if msg.name != "Dinas Kesehatan" {
		t.Errorf("name = %q, want demo account name", msg.name)
	}
}
