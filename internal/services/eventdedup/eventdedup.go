package eventdedup

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const DefaultTTL = 10 * time.Minute

// Deduplicator remembers webhook event IDs for a limited time so redelivered events are processed once.
type Deduplicator struct {
	cache *cache.Cache
}

// New creates a Deduplicator. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Deduplicator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Deduplicator{
		cache: cache.New(ttl, 2*ttl),
	}
}

// Seen records eventID and reports whether it was recorded before. Empty IDs are never seen.
func (d *Deduplicator) Seen(eventID string) bool {
	if eventID == "" {
		return false
	}
	// Add fails only when the key is already present and unexpired.
	return d.cache.Add(eventID, struct{}{}, cache.DefaultExpiration) != nil
}
