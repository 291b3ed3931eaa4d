package contact

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_contact.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndListMessages(t *testing.T) {
	s := setupTestStore(t)

	base := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		msg := Message{
			ID:          fmt.Sprintf("msg-%d", i),
			Name:        "Sender",
			Email:       "sender@example.com",
			Subject:     fmt.Sprintf("Subject %d", i),
			Message:     "Hello",
			MessageType: "general",
			Timestamp:   base.Add(time.Duration(i) * time.Hour),
		}
		if err := s.SaveMessage(msg); err != nil {
			t.Fatalf("SaveMessage failed: %v", err)
		}
	}

	got, err := s.ListMessages(100)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListMessages count = %d, want 3", len(got))
	}
	if got[0].ID != "msg-2" {
		t.Errorf("messages should be newest first, got %s", got[0].ID)
	}
	if got[0].Subject != "Subject 2" || got[0].MessageType != "general" {
		t.Errorf("message = %+v", got[0])
	}
}

func TestListMessagesLimit(t *testing.T) {
	s := setupTestStore(t)

	for i := 0; i < 5; i++ {
		msg := Message{
			ID: fmt.Sprintf("m%d", i), Name: "n", Email: "e@example.com",
			Subject: "s", Message: "m", MessageType: "general",
			Timestamp: time.Now().UTC(),
		}
		if err := s.SaveMessage(msg); err != nil {
			t.Fatalf("SaveMessage failed: %v", err)
		}
	}

	got, err := s.ListMessages(2)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ListMessages(2) count = %d, want 2", len(got))
	}
}

func TestSaveSubscriptionRejectsDuplicates(t *testing.T) {
	s := setupTestStore(t)

	sub := Subscription{
		ID:           "sub-1",
		Email:        "reader@example.com",
		Name:         "Reader",
		SubscribedAt: time.Now().UTC(),
		Active:       true,
	}
	if err := s.SaveSubscription(sub); err != nil {
		t.Fatalf("SaveSubscription failed: %v", err)
	}

	sub.ID = "sub-2"
	err := s.SaveSubscription(sub)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}
