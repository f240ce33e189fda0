package planner

import (
	"sync"

	"voyago/models"
	"voyago/rdx"

	"github.com/google/uuid"
)

// Store holds the live sessions. Each state change is mirrored to the
// redis snapshot cache and pushed to websocket subscribers.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Create(trip models.TripContext) *Session {
	s := NewSession(uuid.NewString(), trip)
	s.SetOnChange(func(view SessionView) {
		Broadcast(view)
		go rdx.CacheSession(view.ID, view)
	})

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
	rdx.DropSession(id)
}
