// Package memory holds the in-process conversation state. Nothing here
// survives a restart; persistence is explicitly out of scope.
package memory

import (
	"time"

	"doctor-assistant/pkg"

	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Store maps patient identities to conversation records. Lookups create
// records lazily. With a zero TTL records live for the process lifetime;
// a positive TTL evicts records idle for that long, which bounds memory
// growth at the cost of forgetting stale conversations.
type Store struct {
	records *cache.Cache
	ttl     time.Duration
	log     *zap.SugaredLogger
}

// NewStore constructs a Store. ttl == 0 disables eviction.
func NewStore(ttl time.Duration, log *zap.SugaredLogger) *Store {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl / 2
	}
	return &Store{
		records: cache.New(expiration, cleanup),
		ttl:     ttl,
		log:     log,
	}
}

// GetOrCreate returns the record for name, creating it on first access.
// Each hit refreshes the record's idle TTL and LastSeen stamp.
func (s *Store) GetOrCreate(name string) *ConversationRecord {
	if v, ok := s.records.Get(name); ok {
		rec := v.(*ConversationRecord)
		rec.Lock()
		rec.LastSeen = time.Now()
		rec.Unlock()
		s.records.SetDefault(name, rec)
		return rec
	}
	rec := newRecord(name)
	// Add fails only when another goroutine created the record between
	// the lookup and now; re-read in that case so both callers share it.
	if err := s.records.Add(name, rec, cache.DefaultExpiration); err != nil {
		v, _ := s.records.Get(name)
		if existing, ok := v.(*ConversationRecord); ok {
			return existing
		}
	}
	s.log.Infow("created conversation record", "name", name, "record_id", rec.ID)
	return rec
}

// Get returns the record for name without creating one.
func (s *Store) Get(name string) (*ConversationRecord, bool) {
	v, ok := s.records.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*ConversationRecord), true
}

// All returns a diagnostic preview of every live record.
func (s *Store) All() []pkg.SessionPreview {
	items := s.records.Items()
	previews := make([]pkg.SessionPreview, 0, len(items))
	for _, item := range items {
		rec := item.Object.(*ConversationRecord)
		rec.Lock()
		previews = append(previews, rec.Preview())
		rec.Unlock()
	}
	return previews
}

// Len reports how many records are live.
func (s *Store) Len() int { return s.records.ItemCount() }
