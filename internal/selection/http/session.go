package http

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/simlane/bay-booking-backend/internal/group"
	"github.com/simlane/bay-booking-backend/internal/pkg/apperror"
	"github.com/simlane/bay-booking-backend/internal/resource"
	"github.com/simlane/bay-booking-backend/internal/selection"
)

var ErrSessionNotFound = apperror.New(http.StatusNotFound, "session not found")

// Session pairs one selection coordinator with its optional group
// assignment, for one in-progress booking attempt.
type Session struct {
	ID          string
	CustomerRef string
	LocationID  string

	Selector *selection.Coordinator

	mu        sync.Mutex
	group     *group.Coordinator
	resources []*resource.Resource
}

func (s *Session) resourceNumber(id string) (int, bool) {
	for _, res := range s.resources {
		if res.ID == id {
			return res.Number, true
		}
	}
	return 0, false
}

// selectedResources maps the current selection to group bays with their
// display numbers.
func (s *Session) selectedResources() []group.SelectedResource {
	snap := s.Selector.Snapshot()
	out := make([]group.SelectedResource, 0, len(snap.Selected))
	for _, id := range snap.Selected {
		if num, ok := s.resourceNumber(id); ok {
			out = append(out, group.SelectedResource{ID: id, Number: num})
		}
	}
	return out
}

// Registry holds live sessions in memory. Sessions are ephemeral by
// design; a restart simply drops in-progress selections.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: map[string]*Session{}}
}

func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	r.sessions[s.ID] = s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
