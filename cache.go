package portfolio

import (
	"strings"
	"sync"
	"time"
)

// postCache is an in-memory cache of published blog posts with TTL.
// The public listing, RSS feed, and sitemap read through it; admin
// writes invalidate it.
type postCache struct {
	mu      sync.RWMutex
	posts   []BlogPost
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// newPostCache creates a postCache backed by the given Store.
func newPostCache(s *Store, ttl time.Duration) *postCache {
	return &postCache{store: s, ttl: ttl}
}

func (c *postCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *postCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ensureLoaded returns the cached published posts after ensuring the
// cache is fresh. It tries a read lock first; only takes a write lock
// if a reload is needed.
func (c *postCache) ensureLoaded() ([]BlogPost, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid() {
		posts, err := c.store.ListPosts(PostFilter{})
		if err != nil {
			return nil, err
		}
		if posts == nil {
			posts = []BlogPost{}
		}
		c.posts = posts
		c.fetched = time.Now()
	}
	return c.posts, nil
}

// ListPosts returns published posts matching the filter. Category,
// search, and limit are applied in memory over the cached list; the
// store's newest-first order is preserved.
func (c *postCache) ListPosts(f PostFilter) ([]BlogPost, error) {
	posts, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	var out []BlogPost
	for _, p := range posts {
		if matchesFilter(p, f) {
			out = append(out, p)
			if f.Limit > 0 && len(out) == f.Limit {
				break
			}
		}
	}
	return out, nil
}

// GetPost returns a single published post by id from the cache.
func (c *postCache) GetPost(id string) (BlogPost, error) {
	posts, err := c.ensureLoaded()
	if err != nil {
		return BlogPost{}, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// matchesFilter applies category exact-match and case-insensitive
// substring search over title, content, and excerpt.
func matchesFilter(p BlogPost, f PostFilter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Content), needle) &&
			!strings.Contains(strings.ToLower(p.Excerpt), needle) {
			return false
		}
	}
	return true
}
