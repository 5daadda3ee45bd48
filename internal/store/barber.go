package store

import "github.com/BruksfildServices01/barberhub/internal/models"

func (s *Store) ListBarbers() []models.Barber {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.ListBarbers()
}

func (s *Store) GetBarber(id uint) (models.Barber, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.GetBarber(id)
}

func (s *Store) CreateBarber(in models.BarberInput) models.Barber {
	s.mu.Lock()
	created := s.st.barbers.insert(in.WithID)
	n := s.st.barbers.len()
	s.mu.Unlock()

	s.mutated(EntityBarber, OpCreate, n)
	return created
}

// UpdateBarber merges the fields set in p over the stored record.
func (s *Store) UpdateBarber(id uint, p models.BarberPatch) (models.Barber, bool) {
	s.mu.Lock()
	updated, ok := s.st.barbers.update(id, p.Apply)
	n := s.st.barbers.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntityBarber, OpUpdate, n)
	}
	return updated, ok
}

func (s *Store) DeleteBarber(id uint) bool {
	s.mu.Lock()
	ok := s.st.barbers.remove(id)
	n := s.st.barbers.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntityBarber, OpDelete, n)
	}
	return ok
}

