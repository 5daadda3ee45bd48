package store

import "github.com/BruksfildServices01/barberhub/internal/models"

func (s *Store) ListProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.ListProducts()
}

func (s *Store) GetProduct(id uint) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.GetProduct(id)
}

func (s *Store) CreateProduct(in models.ProductInput) models.Product {
	s.mu.Lock()
	created := s.st.products.insert(in.WithID)
	n := s.st.products.len()
	s.mu.Unlock()

	s.mutated(EntityProduct, OpCreate, n)
	return created
}

// UpdateProduct merges the fields set in p over the stored record.
func (s *Store) UpdateProduct(id uint, p models.ProductPatch) (models.Product, bool) {
	s.mu.Lock()
	updated, ok := s.st.products.update(id, p.Apply)
	n := s.st.products.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntityProduct, OpUpdate, n)
	}
	return updated, ok
}

func (s *Store) DeleteProduct(id uint) bool {
	s.mu.Lock()
	ok := s.st.products.remove(id)
	n := s.st.products.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntityProduct, OpDelete, n)
	}
	return ok
}

