package store

import "github.com/BruksfildServices01/barberhub/internal/models"

func (s *Store) ListAppointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.ListAppointments()
}

func (s *Store) GetAppointment(id uint) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.GetAppointment(id)
}

func (s *Store) CreateAppointment(in models.AppointmentInput) models.Appointment {
	s.mu.Lock()
	created := s.st.appointments.insert(in.WithID)
	n := s.st.appointments.len()
	s.mu.Unlock()

	s.mutated(EntityAppointment, OpCreate, n)
	return created
}

// UpdateAppointment merges the fields set in p over the stored record.
func (s *Store) UpdateAppointment(id uint, p models.AppointmentPatch) (models.Appointment, bool) {
	s.mu.Lock()
	updated, ok := s.st.appointments.update(id, p.Apply)
	n := s.st.appointments.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntityAppointment, OpUpdate, n)
	}
	return updated, ok
}

func (s *Store) DeleteAppointment(id uint) bool {
	s.mu.Lock()
	ok := s.st.appointments.remove(id)
	n := s.st.appointments.len()
	s.mu.Unlock()

	if ok {
		s.mutated(EntityAppointment, OpDelete, n)
	}
	return ok
}

// AmendAppointment builds a patch from the current record and applies it
// under the same write lock, so no other writer can change the record in
// between. An error from build leaves the record untouched.
func (s *Store) AmendAppointment(id uint, build func(models.Appointment) (models.AppointmentPatch, error)) (models.Appointment, bool, error) {
	s.mu.Lock()
	current, ok := s.st.appointments.get(id)
	if !ok {
		s.mu.Unlock()
		return models.Appointment{}, false, nil
	}
	p, err := build(current)
	if err != nil {
		s.mu.Unlock()
		return current, true, err
	}
	updated, _ := s.st.appointments.update(id, p.Apply)
	n := s.st.appointments.len()
	s.mu.Unlock()

	s.mutated(EntityAppointment, OpUpdate, n)
	return updated, true, nil
}
