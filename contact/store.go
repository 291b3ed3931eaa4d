// Package contact stores and serves contact-form submissions and
// newsletter subscriptions.
package contact

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrDuplicateEmail is returned when a newsletter subscription already
// exists for the address.
var ErrDuplicateEmail = errors.New("email already subscribed")

// Message is a single contact-form submission. Messages are created by
// the public form and read-only thereafter.
type Message struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	MessageType string    `json:"message_type"`
	Timestamp   time.Time `json:"timestamp"`
}

// Subscription is a newsletter signup.
type Subscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	SubscribedAt time.Time `json:"subscribed_at"`
	Active       bool      `json:"active"`
}

// Store provides database operations for contact messages and
// newsletter subscriptions.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the contact database at path and ensures
// the schema.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open contact db: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure contact schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS contact_messages (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			message_type TEXT NOT NULL,
			timestamp TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS newsletter_subscriptions (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			subscribed_at TEXT NOT NULL,
			active INTEGER NOT NULL DEFAULT 1
		);

		CREATE INDEX IF NOT EXISTS idx_contact_messages_timestamp ON contact_messages(timestamp);
	`)
	return err
}

// SaveMessage inserts a contact message.
func (s *Store) SaveMessage(m Message) error {
	_, err := s.db.Exec(`INSERT INTO contact_messages (id, name, email, subject, message, message_type, timestamp) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.MessageType,
		m.Timestamp.UTC().Format(time.RFC3339Nano))
	return err
}

// ListMessages returns up to limit messages, newest first.
func (s *Store) ListMessages(limit int) ([]Message, error) {
	rows, err := s.db.Query(`SELECT id, name, email, subject, message, message_type, timestamp FROM contact_messages ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		var ts string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.MessageType, &ts); err != nil {
			return nil, err
		}
		m.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// SaveSubscription inserts a newsletter subscription, rejecting
// duplicate addresses.
func (s *Store) SaveSubscription(sub Subscription) error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM newsletter_subscriptions WHERE email = ?`, sub.Email).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateEmail
	}
	active := 0
	if sub.Active {
		active = 1
	}
	_, err := s.db.Exec(`INSERT INTO newsletter_subscriptions (id, email, name, subscribed_at, active) VALUES (?, ?, ?, ?, ?)`,
		sub.ID, sub.Email, sub.Name, sub.SubscribedAt.UTC().Format(time.RFC3339Nano), active)
	return err
}
