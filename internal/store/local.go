// Package store provides the SQLite-backed persistence for Tanya Jaksa:
// a flat key-value table for session flags and a conversations table for
// chat records created in-session. Access is single-writer from the TUI
// event loop; the mutex only guards against concurrent CLI subcommands.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"tanyajaksa/internal/logging"
)

// Origin tags how a conversation record came to exist. An explicit tag
// replaces any id-range convention for telling fresh chats from seeded ones.
type Origin string

const (
	OriginSeed           Origin = "seed"            // shipped catalog entry
	OriginChatForm       Origin = "chat_form"       // started via the start-chat form
	OriginAssistanceForm Origin = "assistance_form" // created by an assistance submission
)

// Conversation is a persisted chat session record.
type Conversation struct {
	ID        int64
	Topic     string
	Category  string
	Kind      string // "chat", "pendampingan", "bantuan"
	Origin    Origin
	CreatedAt time.Time
}

// IsNew reports whether the conversation was created in-app rather than
// shipped with the seed catalog. Drives the welcome banner in the chat view.
func (c Conversation) IsNew() bool {
	return c.Origin != OriginSeed && c.Origin != ""
}

// LocalStore implements the persisted key-value contract plus conversation
// records on a single SQLite file.
type LocalStore struct {
	db     *sql.DB
	mu     sync.Mutex
	dbPath string
}

// Open initializes the SQLite database at the given path, creating the
// parent directory and schema as needed.
func Open(path string) (*LocalStore, error) {
	log := logging.Get(logging.CategoryStore)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		log.Debugf("failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Debugf("failed to set sqlite journal_mode=WAL: %v", err)
	}

	s := &LocalStore{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	log.Debugf("local store ready at %s", path)
	return s, nil
}

// initialize creates the required tables.
func (s *LocalStore) initialize() error {
	kvTable := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	conversationsTable := `
	CREATE TABLE IF NOT EXISTS conversations (
		id INTEGER PRIMARY KEY,
		topic TEXT NOT NULL,
		category TEXT NOT NULL,
		kind TEXT NOT NULL,
		origin TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_conversations_origin ON conversations(origin);
	`

	for _, stmt := range []string{kvTable, conversationsTable} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key, reporting presence separately so an
// empty stored string is distinguishable from an absent key.
func (s *LocalStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			logging.Get(logging.CategoryStore).Warnf("kv get %q: %v", key, err)
		}
		return "", false
	}
	return value, true
}

// Set upserts a key-value pair.
func (s *LocalStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Remove deletes a key. Removing an absent key is a no-op.
func (s *LocalStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

// SaveConversation persists a conversation record keyed by its allocated id.
func (s *LocalStore) SaveConversation(c Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO conversations (id, topic, category, kind, origin, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			topic = excluded.topic,
			category = excluded.category,
			kind = excluded.kind,
			origin = excluded.origin`,
		c.ID, c.Topic, c.Category, c.Kind, string(c.Origin), c.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save conversation %d: %w", c.ID, err)
	}
	logging.Get(logging.CategoryStore).Debugf("saved conversation %d (origin=%s)", c.ID, c.Origin)
	return nil
}

// Conversation loads a record by id. The boolean reports presence.
func (s *LocalStore) Conversation(id int64) (Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c Conversation
	var origin string
	err := s.db.QueryRow(`
		SELECT id, topic, category, kind, origin, created_at
		FROM conversations WHERE id = ?`, id).
		Scan(&c.ID, &c.Topic, &c.Category, &c.Kind, &origin, &c.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logging.Get(logging.CategoryStore).Warnf("conversation %d: %v", id, err)
		}
		return Conversation{}, false
	}
	c.Origin = Origin(origin)
	return c, true
}

// MaxConversationID returns the highest stored conversation id, or 0 when
// the table is empty. The identifier allocator seeds itself above this so
// restarts never reuse an id.
func (s *LocalStore) MaxConversationID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var max sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(id) FROM conversations").Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to read max conversation id: %w", err)
	}
	if !max.Valid {
		return 0, nil
	}
	return max.Int64, nil
}

// Reset drops all persisted state. Used by the `reset` subcommand.
func (s *LocalStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []string{"DELETE FROM kv", "DELETE FROM conversations"} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to reset store: %w", err)
		}
	}
	return nil
}
