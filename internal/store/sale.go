package store

import "github.com/BruksfildServices01/barberhub/internal/models"

func (s *Store) ListSales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.ListSales()
}

func (s *Store) GetSale(id uint) (models.Sale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.GetSale(id)
}

func (s *Store) CreateSale(in models.SaleInput) models.Sale {
	s.mu.Lock()
	created := s.st.sales.insert(in.WithID)
	n := s.st.sales.len()
	s.mu.Unlock()

	s.mutated(EntitySale, OpCreate, n)
	return created
}

// UpdateSale merges the fields set in p over the stored record.
func (s *Store) UpdateSale(id uint, p models.SalePatch) (models.Sale, bool) {
	s.mu.Lock()
	updated, ok := s.st.sales.update(id, p.Apply)
	n := s.st.sales.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntitySale, OpUpdate, n)
	}
	return updated, ok
}

func (s *Store) DeleteSale(id uint) bool {
	s.mu.Lock()
	ok := s.st.sales.remove(id)
	n := s.st.sales.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntitySale, OpDelete, n)
	}
	return ok
}

