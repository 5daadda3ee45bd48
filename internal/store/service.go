package store

import "github.com/BruksfildServices01/barberhub/internal/models"

func (s *Store) ListServices() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.ListServices()
}

func (s *Store) GetService(id uint) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.GetService(id)
}

func (s *Store) CreateService(in models.ServiceInput) models.Service {
	s.mu.Lock()
	created := s.st.services.insert(in.WithID)
	n := s.st.services.len()
	s.mu.Unlock()

	s.mutated(EntityService, OpCreate, n)
	return created
}

// UpdateService merges the fields set in p over the stored record.
func (s *Store) UpdateService(id uint, p models.ServicePatch) (models.Service, bool) {
	s.mu.Lock()
	updated, ok := s.st.services.update(id, p.Apply)
	n := s.st.services.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntityService, OpUpdate, n)
	}
	return updated, ok
}

func (s *Store) DeleteService(id uint) bool {
	s.mu.Lock()
	ok := s.st.services.remove(id)
	n := s.st.services.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntityService, OpDelete, n)
	}
	return ok
}

