package export

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL bounds how long an unclaimed report stays downloadable.
const DefaultTTL = 15 * time.Minute

// Store keeps finished workbooks in memory under short-lived handles so the
// serving layer can hand a download link to the client. Entries are one-shot:
// Take removes what it returns. Nothing outlives its TTL.
type Store struct {
	ttl time.Duration

	mu    sync.Mutex
	blobs map[uuid.UUID]blob

	now func() time.Time // test hook
}

type blob struct {
	data    []byte
	expires time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:   ttl,
		blobs: make(map[uuid.UUID]blob),
		now:   time.Now,
	}
}

// Put stores data and returns its download handle.
func (s *Store) Put(data []byte) uuid.UUID {
	handle := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.blobs[handle] = blob{data: data, expires: s.now().Add(s.ttl)}
	return handle
}

// Take returns and removes the blob for handle. ok is false when the handle
// is unknown, already claimed, or expired.
func (s *Store) Take(handle uuid.UUID) (data []byte, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[handle]
	if !ok {
		return nil, false
	}
	delete(s.blobs, handle)
	if s.now().After(b.expires) {
		return nil, false
	}
	return b.data, true
}

// Len reports how many unclaimed reports are held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}

func (s *Store) sweepLocked() {
	now := s.now()
	for h, b := range s.blobs {
		if now.After(b.expires) {
			delete(s.blobs, h)
		}
	}
}
