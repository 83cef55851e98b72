package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tanyajaksa/internal/session"
)

func TestConsultations_SeedShape(t *testing.T) {
	t.Parallel()

	list := Consultations()
	require.Len(t, list, 6)

	byStatus := map[ConsultationStatus]int{}
	for _, c := range list {
		byStatus[c.Status]++
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Prosecutor)
	}
	assert.Equal(t, 1, byStatus[StatusChatActive])
	assert.Equal(t, 1, byStatus[StatusPending])
	assert.Equal(t, 1, byStatus[StatusRejected])
	assert.Equal(t, 2, byStatus[StatusDone])
}

func TestConsultations_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a := Consultations()
	a[0].Title = "mutated"
	b := Consultations()
	if diff := cmp.Diff("Konsultasi Warisan Keluarga", b[0].Title); diff != "" {
		t.Errorf("catalog mutated through returned slice (-want +got):\n%s", diff)
	}
}

func TestConsultationByID(t *testing.T) {
	t.Parallel()

	c, ok := ConsultationByID(3)
	require.True(t, ok)
	assert.Equal(t, StatusChatActive, c.Status)
	assert.True(t, c.IsChat())

	_, ok = ConsultationByID(4242)
	assert.False(t, ok)
}

func TestMaxSeedConversationID(t *testing.T) {
	t.Parallel()
	assert.EqualValues(t, 6, MaxSeedConversationID())
}

func TestAuthenticate_DemoAccount(t *testing.T) {
	t.Parallel()

	acc, ok := Authenticate("instansi@kotabaru.go.id", "demo123")
	require.True(t, ok)
	assert.Equal(t, "Dinas Kesehatan", acc.Name)
	assert.Equal(t, session.RoleInstansi, acc.Role)

	// Email match is case-insensitive, password is not.
	_, ok = Authenticate("BUDI@email.com", "demo123")
	assert.True(t, ok)
	acc, ok = Authenticate("budi@email.com", "DEMO123")
	require.True(t, ok, "wrong password still passes the loose email check")
	assert.Equal(t, "budi", acc.Name, "falls through to derived-name path")
}

func TestAuthenticate_LooseEmailFallback(t *testing.T) {
	t.Parallel()

	acc, ok := Authenticate("someone@example.org", "whatever")
	require.True(t, ok)
	assert.Equal(t, "someone", acc.Name)
	assert.Empty(t, acc.Role, "fallback accounts carry no role")

	_, ok = Authenticate("not-an-email", "pw")
	assert.False(t, ok)
}

func TestArticles_EmbeddedCatalogParses(t *testing.T) {
	t.Parallel()

	list, err := Articles()
	require.NoError(t, err)
	require.Len(t, list, 8)

	for _, a := range list {
		assert.NotZero(t, a.ID)
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Category)
		assert.NotEmpty(t, a.Body, "article %d needs a markdown body", a.ID)
	}

	a, ok := ArticleByID(4)
	require.True(t, ok)
	assert.Equal(t, "Hukum Pidana", a.Category)
}

func TestProjects_SeedShape(t *testing.T) {
	t.Parallel()

	list := Projects()
	require.Len(t, list, 3)
	for _, p := range list {
		assert.NotEmpty(t, p.Phases)
		assert.GreaterOrEqual(t, p.Progress, 0)
		assert.LessOrEqual(t, p.Progress, 100)
	}
}

func TestApplications_Lookup(t *testing.T) {
	t.Parallel()

	require.Len(t, Applications(), 3)
	app, ok := ApplicationByID(2)
	require.True(t, ok)
	assert.Equal(t, "bantuan", app.Kind)
	_, ok = ApplicationByID(99)
	assert.False(t, ok)
}
