package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Empty(t *testing.T) {
	t.Parallel()
	m := NewManager(NewMemoryStore())

	s := m.Snapshot()

	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.HasSeenOnboarding)
	assert.Equal(t, RoleMasyarakat, s.Role, "absent role defaults to masyarakat")
	assert.Empty(t, s.UserName)
}

func TestSnapshot_DerivesAuthFromToken(t *testing.T) {
	t.Parallel()
	m := NewManager(NewMemoryStore())

	require.NoError(t, m.SetAuthToken("tok-123"))
	s := m.Snapshot()
	assert.True(t, s.IsAuthenticated)
	assert.Equal(t, "tok-123", s.AuthToken)

	require.NoError(t, m.ClearAuthToken())
	s = m.Snapshot()
	assert.False(t, s.IsAuthenticated, "cleared token must drop derived auth")
}

func TestSetAuthToken_RejectsEmpty(t *testing.T) {
	t.Parallel()
	m := NewManager(NewMemoryStore())
	assert.Error(t, m.SetAuthToken(""))
}

func TestMarkOnboardingSeen_SurvivesLogout(t *testing.T) {
	t.Parallel()
	m := NewManager(NewMemoryStore())

	require.NoError(t, m.MarkOnboardingSeen())
	require.NoError(t, m.SetAuthToken("tok"))
	require.NoError(t, m.ClearAuthToken())

	s := m.Snapshot()
	assert.True(t, s.HasSeenOnboarding, "logout must not clear onboarding marker")
	assert.False(t, s.IsAuthenticated)
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RoleInstansi, ParseRole("instansi"))
	assert.Equal(t, RoleMasyarakat, ParseRole("masyarakat"))
	assert.Equal(t, RoleMasyarakat, ParseRole(""))
	assert.Equal(t, RoleMasyarakat, ParseRole("admin"))
}

func TestRoleRoundTrip(t *testing.T) {
	t.Parallel()
	m := NewManager(NewMemoryStore())

	require.NoError(t, m.SetRole(RoleInstansi))
	assert.Equal(t, RoleInstansi, m.Role())
	assert.Equal(t, RoleInstansi, m.Snapshot().Role)
}
