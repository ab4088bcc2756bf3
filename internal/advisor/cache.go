package advisor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Advisory is the latest suggestion/market data for one negotiation, stamped
// with the negotiation version it was computed against.
type Advisory struct {
	Suggestion  *NegotiationSuggestion
	Market      *MarketComparison
	Version     int64
	Stale       bool
	RefreshedAt time.Time
}

// Cache keeps per-negotiation advisory data off the mutation path. A refresh
// computed against an old version is dropped on Put, so a slow engine
// response never overwrites data for an offer that has since advanced.
type Cache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*Advisory
}

func NewCache() *Cache {
	return &Cache{entries: make(map[uuid.UUID]*Advisory)}
}

// Put stores adv unless a newer version is already cached. Reports whether
// the entry was accepted.
func (c *Cache) Put(negotiationID uuid.UUID, adv Advisory) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[negotiationID]; ok && existing.Version > adv.Version {
		return false
	}
	adv.RefreshedAt = time.Now()
	c.entries[negotiationID] = &adv
	return true
}

// MarkStale flags the advisory for version as degraded (engine timeout or
// error). Data already cached for a newer version is left alone.
func (c *Cache) MarkStale(negotiationID uuid.UUID, version int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.entries[negotiationID]
	if !ok {
		c.entries[negotiationID] = &Advisory{Version: version, Stale: true, RefreshedAt: time.Now()}
		return
	}
	if existing.Version <= version {
		existing.Stale = true
	}
}

func (c *Cache) Get(negotiationID uuid.UUID) (Advisory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	adv, ok := c.entries[negotiationID]
	if !ok {
		return Advisory{}, false
	}
	return *adv, true
}

// Drop forgets a negotiation, used once a session reaches a terminal status.
func (c *Cache) Drop(negotiationID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, negotiationID)
}
