package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/finsage/finsage/finance"
)

// SQLiteStore is a SQLite-backed store. Profiles are stored as JSON
// documents keyed by client id.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS clients (
		client_id TEXT PRIMARY KEY,
		profile TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		timestamp TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_messages_client ON messages(client_id, timestamp);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) GetProfile(clientID string) (*finance.Profile, error) {
	var raw string
	err := s.db.QueryRow(`SELECT profile FROM clients WHERE client_id = ?`, clientID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	var p finance.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func (s *SQLiteStore) SaveProfile(clientID string, p *finance.Profile) error {
	if p == nil {
		return errors.New("store: nil profile")
	}

	raw, err := json.Marshal(normalize(p))
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	now := time.Now()
	_, err = s.db.Exec(`
		INSERT INTO clients (client_id, profile, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET profile = excluded.profile, updated_at = excluded.updated_at
	`, clientID, string(raw), now, now)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AppendMessage(clientID, role, content string) error {
	_, err := s.db.Exec(`
		INSERT INTO messages (id, client_id, role, content, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), clientID, role, content, time.Now())
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (s *SQLiteStore) History(clientID string, limit int) ([]Message, error) {
	query := `
		SELECT id, client_id, role, content, timestamp
		FROM messages
		WHERE client_id = ?
		ORDER BY timestamp ASC
	`
	args := []any{clientID}
	if limit > 0 {
		// Take the newest rows, then restore chronological order.
		query = `
			SELECT id, client_id, role, content, timestamp FROM (
				SELECT id, client_id, role, content, timestamp
				FROM messages
				WHERE client_id = ?
				ORDER BY timestamp DESC
				LIMIT ?
			) ORDER BY timestamp ASC
		`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ClientID, &m.Role, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
