package pipeline

import (
	"sync"
	"time"

	"github.com/spencer-p/suntimes/pkg/cache"
)

// pruneEvery is how many tokens are issued between sweeps of expired keys.
const pruneEvery = 1024

// Token identifies one query made by a client.
type Token struct {
	key string
	n   uint64
}

// Sequencer orders the queries of each client so that a slow response to an
// old query can be discarded once a newer query has started. Keys that have
// not started a query within the TTL are forgotten.
type Sequencer struct {
	mu     sync.Mutex
	next   uint64
	latest *cache.Timed[uint64]
}

func NewSequencer(ttl time.Duration) *Sequencer {
	return &Sequencer{
		latest: cache.NewTimed[uint64](ttl),
	}
}

// Begin issues a token for a new query by the client key, superseding all
// earlier tokens for that key.
func (s *Sequencer) Begin(key string) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	if s.next%pruneEvery == 0 {
		s.latest.Prune()
	}
	s.latest.Set(key, s.next)
	return Token{key: key, n: s.next}
}

// Latest reports whether no query has begun for the token's key since the
// token was issued.
func (s *Sequencer) Latest(t Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.latest.Get(t.key)
	if !ok {
		// Forgotten, so nothing newer was recorded.
		return true
	}
	return n == t.n
}
