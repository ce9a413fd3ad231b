package web

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/janisto/hello-fullstack/internal/view"
)

// DefaultSessionTTL bounds how long an uncollected view is kept.
const DefaultSessionTTL = 2 * time.Minute

type session struct {
	view  *view.View
	timer *time.Timer
}

// Sessions maps page-load identifiers to their views until the browser
// collects the result or the TTL fires.
type Sessions struct {
	ttl time.Duration

	mu    sync.Mutex
	views map[string]session
}

// NewSessions returns an empty table. A non-positive ttl uses DefaultSessionTTL.
func NewSessions(ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{ttl: ttl, views: make(map[string]session)}
}

// Add stores v under a fresh random ID and returns the ID.
func (s *Sessions) Add(v *view.View) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[id] = session{
		view:  v,
		timer: time.AfterFunc(s.ttl, func() { s.remove(id) }),
	}
	return id
}

// Take removes and returns the view stored under id.
func (s *Sessions) Take(id string) (*view.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.views[id]
	if !ok {
		return nil, false
	}
	sess.timer.Stop()
	delete(s.views, id)
	return sess.view, true
}

// Len reports how many views are waiting to be collected.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

func (s *Sessions) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, id)
}
