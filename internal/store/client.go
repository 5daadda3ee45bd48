package store

import (
	"time"

	"github.com/BruksfildServices01/barberhub/internal/models"
)

func (s *Store) ListClients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.ListClients()
}

func (s *Store) GetClient(id uint) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.GetClient(id)
}

// CreateClient stamps CreatedAt with the store clock.
func (s *Store) CreateClient(in models.ClientInput) models.Client {
	return s.createClientAt(in, s.now())
}

func (s *Store) createClientAt(in models.ClientInput, createdAt time.Time) models.Client {
	s.mu.Lock()
	created := s.st.clients.insert(func(id uint) models.Client {
		return in.WithID(id, createdAt)
	})
	n := s.st.clients.len()
	s.mu.Unlock()

	s.mutated(EntityClient, OpCreate, n)
	return created
}

// UpdateClient merges the fields set in p over the stored record.
func (s *Store) UpdateClient(id uint, p models.ClientPatch) (models.Client, bool) {
	s.mu.Lock()
	updated, ok := s.st.clients.update(id, p.Apply)
	n := s.st.clients.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntityClient, OpUpdate, n)
	}
	return updated, ok
}

func (s *Store) DeleteClient(id uint) bool {
	s.mu.Lock()
	ok := s.st.clients.remove(id)
	n := s.st.clients.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntityClient, OpDelete, n)
	}
	return ok
}

