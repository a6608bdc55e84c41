package clients

import "sync"

// Session is the registry's view of one live delivery session.
type Session interface {
	ID() string
	Close()
}

// Registry tracks live delivery sessions keyed by session id. Sessions own
// their channel subscription and transport; removing one is just dropping
// ownership and never coordinates with the producer.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]Session)}
}

func (r *Registry) Add(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CloseAll closes every live session; used at shutdown. Close re-enters
// Remove, so the snapshot is taken before any session is touched.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	snapshot := make([]Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		snapshot = append(snapshot, s)
	}
	r.mu.RUnlock()
	for _, s := range snapshot {
		s.Close()
	}
}
