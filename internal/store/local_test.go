package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tanyajaksa.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKV_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	_, ok := s.Get("authToken")
	assert.False(t, ok, "absent key must report not-present")

	require.NoError(t, s.Set("authToken", "tok-1"))
	v, ok := s.Get("authToken")
	assert.True(t, ok)
	assert.Equal(t, "tok-1", v)

	require.NoError(t, s.Set("authToken", "tok-2"))
	v, _ = s.Get("authToken")
	assert.Equal(t, "tok-2", v, "set must upsert")

	require.NoError(t, s.Remove("authToken"))
	_, ok = s.Get("authToken")
	assert.False(t, ok)
}

func TestKV_EmptyValueIsPresent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("userName", ""))
	v, ok := s.Get("userName")
	assert.True(t, ok, "empty stored value is still present")
	assert.Equal(t, "", v)
}

func TestRemove_AbsentKeyIsNoop(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Remove("nope"))
}

func TestConversation_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	created := time.Date(2025, 10, 21, 9, 30, 0, 0, time.UTC)
	c := Conversation{
		ID:        101,
		Topic:     "Pendampingan Hukum - Pembangunan RSUD",
		Category:  "Pendampingan Hukum",
		Kind:      "pendampingan",
		Origin:    OriginAssistanceForm,
		CreatedAt: created,
	}
	require.NoError(t, s.SaveConversation(c))

	got, ok := s.Conversation(101)
	require.True(t, ok)
	assert.Equal(t, c.Topic, got.Topic)
	assert.Equal(t, OriginAssistanceForm, got.Origin)
	assert.True(t, got.IsNew())
	assert.True(t, got.CreatedAt.Equal(created))

	_, ok = s.Conversation(999)
	assert.False(t, ok)
}

func TestMaxConversationID(t *testing.T) {
	s := openTestStore(t)

	max, err := s.MaxConversationID()
	require.NoError(t, err)
	assert.EqualValues(t, 0, max)

	for _, id := range []int64{7, 103, 42} {
		require.NoError(t, s.SaveConversation(Conversation{
			ID: id, Topic: "t", Category: "c", Kind: "chat",
			Origin: OriginChatForm, CreatedAt: time.Now(),
		}))
	}

	max, err = s.MaxConversationID()
	require.NoError(t, err)
	assert.EqualValues(t, 103, max)
}

func TestReset_ClearsEverything(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("authToken", "tok"))
	require.NoError(t, s.SaveConversation(Conversation{
		ID: 1, Topic: "t", Category: "c", Kind: "chat",
		Origin: OriginSeed, CreatedAt: time.Now(),
	}))

	require.NoError(t, s.Reset())

	_, ok := s.Get("authToken")
	assert.False(t, ok)
	_, ok = s.Conversation(1)
	assert.False(t, ok)
}

func TestConversation_IsNew(t *testing.T) {
	assert.False(t, Conversation{Origin: OriginSeed}.IsNew())
	assert.False(t, Conversation{}.IsNew())
	assert.True(t, Conversation{Origin: OriginChatForm}.IsNew())
	assert.True(t, Conversation{Origin: OriginAssistanceForm}.IsNew())
}
