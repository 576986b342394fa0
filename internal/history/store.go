package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"github.com/ggonzalez94/nearcompat/internal/model"
)

const (
	defaultListLimit  = 20
	busyTimeoutMillis = 5000
	lockTimeout       = 5 * time.Second
	lockRetryDelay    = 20 * time.Millisecond
)

// Store keeps past translations in a local sqlite database. Writes are
// serialized across processes with a file lock.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	now  func() time.Time
}

func Open(path, lockPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create history lock directory: %w", err)
	}
	// every pooled connection waits on a busy database instead of failing
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout("+strconv.Itoa(busyTimeoutMillis)+")")
	if err != nil {
		return nil, fmt.Errorf("open history sqlite: %w", err)
	}
	store := &Store{db: db, lock: flock.New(lockPath), now: time.Now}

	// schema setup runs under the lock
	unlock, err := store.acquire()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	defer unlock()

	queries := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		`CREATE TABLE IF NOT EXISTS translations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			verb TEXT NOT NULL,
			network_id TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			legacy BLOB NOT NULL,
			tokens BLOB NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_translations_verb_id ON translations(verb, id DESC);",
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init history schema: %w", err)
		}
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save records one translation and returns its id.
func (s *Store) Save(entry model.HistoryEntry) (int64, error) {
	if strings.TrimSpace(entry.Verb) == "" {
		return 0, fmt.Errorf("save history: missing verb")
	}
	unlock, err := s.acquire()
	if err != nil {
		return 0, err
	}
	defer unlock()

	legacy, err := json.Marshal(nonNil(entry.Legacy))
	if err != nil {
		return 0, fmt.Errorf("marshal legacy args: %w", err)
	}
	tokens, err := json.Marshal(nonNil(entry.Tokens))
	if err != nil {
		return 0, fmt.Errorf("marshal tokens: %w", err)
	}
	created := entry.CreatedAt
	if created.IsZero() {
		created = s.now()
	}

	res, err := s.db.Exec(
		"INSERT INTO translations (verb, network_id, created_at, legacy, tokens) VALUES (?, ?, ?, ?, ?)",
		entry.Verb, entry.NetworkID, created.UTC().Unix(), legacy, tokens,
	)
	if err != nil {
		return 0, fmt.Errorf("save history: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save history: %w", err)
	}
	return id, nil
}

// List returns the most recent translations first, optionally for a single verb.
func (s *Store) List(verb string, limit int) ([]model.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var (
		rows *sql.Rows
		err  error
	)
	const cols = "SELECT id, verb, network_id, created_at, legacy, tokens FROM translations"
	if strings.TrimSpace(verb) == "" {
		rows, err = s.db.Query(cols+" ORDER BY id DESC LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(cols+" WHERE verb = ? ORDER BY id DESC LIMIT ?", verb, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	entries := make([]model.HistoryEntry, 0)
	for rows.Next() {
		var (
			entry          model.HistoryEntry
			createdUnix    int64
			legacy, tokens []byte
		)
		if err := rows.Scan(&entry.ID, &entry.Verb, &entry.NetworkID, &createdUnix, &legacy, &tokens); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if err := json.Unmarshal(legacy, &entry.Legacy); err != nil {
			return nil, fmt.Errorf("decode legacy args: %w", err)
		}
		if err := json.Unmarshal(tokens, &entry.Tokens); err != nil {
			return nil, fmt.Errorf("decode tokens: %w", err)
		}
		entry.CreatedAt = time.Unix(createdUnix, 0).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}

// Clear deletes every stored translation and reports how many were removed.
func (s *Store) Clear() (int64, error) {
	unlock, err := s.acquire()
	if err != nil {
		return 0, err
	}
	defer unlock()

	res, err := s.db.Exec("DELETE FROM translations")
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return n, nil
}

func (s *Store) acquire() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("lock history: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("lock history: timeout acquiring lock")
	}
	return func() { _ = s.lock.Unlock() }, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
