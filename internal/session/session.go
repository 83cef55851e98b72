// Package session owns the persisted flags that identify a user across
// launches: auth token, onboarding marker, role, and display name. It is
// deliberately thin — a typed facade over a string key-value store — so the
// routing layer never touches raw keys and tests can inject fakes.
package session

import "fmt"

// Role is the user category controlling which tabs are visible.
type Role string

const (
	RoleMasyarakat Role = "masyarakat" // general public
	RoleInstansi   Role = "instansi"   // government institution
)

// ParseRole maps a stored string to a Role, defaulting to masyarakat for
// anything unknown. Unknown values can appear if the store was written by an
// older build; the least-privileged role is the safe fallback.
func ParseRole(s string) Role {
	if Role(s) == RoleInstansi {
		return RoleInstansi
	}
	return RoleMasyarakat
}

// Persisted key names. These are the wire format of the key-value store and
// must stay stable across releases.
const (
	KeyAuthToken         = "authToken"
	KeyHasSeenOnboarding = "hasSeenOnboarding"
	KeyUserRole          = "userRole"
	KeyUserName          = "userName"
	KeyUserEmail         = "userEmail"
)

// Store is the persisted key-value collaborator. Implementations are
// synchronous and single-writer; the TUI event loop is the only caller.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Session is a point-in-time snapshot of the persisted flags plus the
// derived in-memory authentication state. IsAuthenticated is never stored;
// it is true iff a non-empty auth token was present at the last read.
type Session struct {
	IsAuthenticated   bool
	HasSeenOnboarding bool
	AuthToken         string
	Role              Role
	UserName          string
	UserEmail         string
}

// Manager reads and writes session flags through an injected Store.
type Manager struct {
	store Store
}

// NewManager wraps the given store. The store must be non-nil.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Snapshot evaluates the store once and returns the derived session. This is
// the single read-then-branch point the routers use at transition time; the
// result is not refreshed reactively.
func (m *Manager) Snapshot() Session {
	token, _ := m.store.Get(KeyAuthToken)
	_, seen := m.store.Get(KeyHasSeenOnboarding)
	roleStr, _ := m.store.Get(KeyUserRole)
	name, _ := m.store.Get(KeyUserName)
	email, _ := m.store.Get(KeyUserEmail)

	return Session{
		IsAuthenticated:   token != "",
		HasSeenOnboarding: seen,
		AuthToken:         token,
		Role:              ParseRole(roleStr),
		UserName:          name,
		UserEmail:         email,
	}
}

// SetAuthToken persists the opaque token minted at login/registration.
func (m *Manager) SetAuthToken(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to store empty auth token")
	}
	return m.store.Set(KeyAuthToken, token)
}

// ClearAuthToken removes the token; the next Snapshot derives
// IsAuthenticated == false.
func (m *Manager) ClearAuthToken() error {
	return m.store.Remove(KeyAuthToken)
}

// MarkOnboardingSeen records that the onboarding carousel completed. The
// value is immaterial; presence of the key is what the splash check reads.
func (m *Manager) MarkOnboardingSeen() error {
	return m.store.Set(KeyHasSeenOnboarding, "true")
}

// SetRole persists the user category chosen at registration or carried by a
// demo account at login.
func (m *Manager) SetRole(role Role) error {
	return m.store.Set(KeyUserRole, string(role))
}

// Role reads the persisted role, defaulting to masyarakat when absent.
func (m *Manager) Role() Role {
	s, _ := m.store.Get(KeyUserRole)
	return ParseRole(s)
}

// SetUserName persists the display name shown on the dashboard and profile.
func (m *Manager) SetUserName(name string) error {
	return m.store.Set(KeyUserName, name)
}

// SetUserEmail persists the registration email.
func (m *Manager) SetUserEmail(email string) error {
	return m.store.Set(KeyUserEmail, email)
}
