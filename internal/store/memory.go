package store

import "sync"

// MemoryRecords is an in-memory conversation store used by tests and by the
// ephemeral run mode where nothing should touch disk.
type MemoryRecords struct {
	mu    sync.Mutex
	byID  map[int64]Conversation
	maxID int64
}

// NewMemoryRecords returns an empty in-memory record store.
func NewMemoryRecords() *MemoryRecords {
	return &MemoryRecords{byID: make(map[int64]Conversation)}
}

func (m *MemoryRecords) SaveConversation(c Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[c.ID] = c
	if c.ID > m.maxID {
		m.maxID = c.ID
	}
	return nil
}

func (m *MemoryRecords) Conversation(id int64) (Conversation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	return c, ok
}

// MaxConversationID mirrors the SQLite store so either can seed the
// identifier allocator.
func (m *MemoryRecords) MaxConversationID() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxID, nil
}
