package portfolio

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*Store, *postCache) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_cache.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, newPostCache(s, ttl)
}

func TestCacheListPosts(t *testing.T) {
	s, c := setupTestCache(t, time.Minute)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		if err := s.SavePost(testPost(id, id, base.AddDate(0, 0, i))); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
	}

	got, err := c.ListPosts(PostFilter{})
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListPosts count = %d, want 3", len(got))
	}
	if got[0].ID != "c" {
		t.Errorf("cache should keep newest-first order, got %s", got[0].ID)
	}

	got, err = c.ListPosts(PostFilter{Limit: 2})
	if err != nil {
		t.Fatalf("ListPosts limit failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c" {
		t.Errorf("limit filter: got %v", got)
	}
}

func TestCacheExcludesUnpublished(t *testing.T) {
	s, c := setupTestCache(t, time.Minute)

	draft := testPost("draft", "Draft", time.Now().UTC())
	draft.Published = false
	if err := s.SavePost(draft); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	got, err := c.ListPosts(PostFilter{})
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("cache should never hold drafts, got %v", got)
	}

	_, err = c.GetPost("draft")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPost on draft should be ErrNotFound, got %v", err)
	}
}

func TestCacheServesStaleUntilInvalidated(t *testing.T) {
	s, c := setupTestCache(t, time.Minute)

	if err := s.SavePost(testPost("p1", "First", time.Now().UTC())); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	if _, err := c.ListPosts(PostFilter{}); err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}

	// Write bypassing the cache; the cached list does not see it yet.
	if err := s.SavePost(testPost("p2", "Second", time.Now().UTC())); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	got, err := c.ListPosts(PostFilter{})
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("cache should serve the stale list, got %d posts", len(got))
	}

	c.Invalidate()
	got, err = c.ListPosts(PostFilter{})
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("after Invalidate the cache should reload, got %d posts", len(got))
	}
}

func TestCacheExpiresByTTL(t *testing.T) {
	s, c := setupTestCache(t, 10*time.Millisecond)

	if err := s.SavePost(testPost("p1", "First", time.Now().UTC())); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	if _, err := c.ListPosts(PostFilter{}); err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}

	if err := s.SavePost(testPost("p2", "Second", time.Now().UTC())); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	got, err := c.ListPosts(PostFilter{})
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expired cache should reload, got %d posts", len(got))
	}
}

func TestCacheGetPost(t *testing.T) {
	s, c := setupTestCache(t, time.Minute)

	if err := s.SavePost(testPost("p1", "First", time.Now().UTC())); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	got, err := c.GetPost("p1")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "First" {
		t.Errorf("Title = %q, want %q", got.Title, "First")
	}

	_, err = c.GetPost("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchesFilter(t *testing.T) {
	p := BlogPost{
		Title:    "Youth Voices",
		Content:  "Climate litigation in Africa",
		Excerpt:  "A short summary",
		Category: "Climate Law",
	}
	tests := []struct {
		f    PostFilter
		want bool
	}{
		{PostFilter{}, true},
		{PostFilter{Category: "Climate Law"}, true},
		{PostFilter{Category: "Travel"}, false},
		{PostFilter{Search: "youth"}, true},
		{PostFilter{Search: "LITIGATION"}, true},
		{PostFilter{Search: "summary"}, true},
		{PostFilter{Search: "nowhere"}, false},
		{PostFilter{Category: "Climate Law", Search: "africa"}, true},
		{PostFilter{Category: "Travel", Search: "africa"}, false},
	}
	for _, tt := range tests {
		if got := matchesFilter(p, tt.f); got != tt.want {
			t.Errorf("matchesFilter(%+v) = %v, want %v", tt.f, got, tt.want)
		}
	}
}
