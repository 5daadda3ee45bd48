package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func seeded(t *testing.T, status string) (*store.Store, models.Appointment) {
	t.Helper()
	s := store.New()
	ap := s.CreateAppointment(models.AppointmentInput{
		ClientID: 1, BarberID: 1, ServiceID: 1,
		Date: "2024-05-10", Time: "10:00", Status: status,
	})
	return s, ap
}

func TestCompleteAppointment(t *testing.T) {
	s, ap := seeded(t, "waiting")
	rec := &recorder{}

	ctx := audit.WithRequestID(context.Background(), "req-7")
	got, err := NewCompleteAppointment(s, rec).Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "appointment_completed", rec.events[0].Action)
	assert.Equal(t, "req-7", rec.events[0].RequestID)
	assert.Equal(t, map[string]string{"from": "waiting"}, rec.events[0].Metadata)
}

func TestCompleteRejectsTerminal(t *testing.T) {
	s, ap := seeded(t, "cancelled")
	rec := &recorder{}

	_, err := NewCompleteAppointment(s, rec).Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Empty(t, rec.events)

	stored, _ := s.GetAppointment(ap.ID)
	assert.Equal(t, "cancelled", stored.Status)
}

func TestCancelAppointment(t *testing.T) {
	s, ap := seeded(t, "")

	got, err := NewCancelAppointment(s, audit.Discard).Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)

	_, err = NewCancelAppointment(s, audit.Discard).Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUnknownAppointment(t *testing.T) {
	s := store.New()

	_, err := NewCancelAppointment(s, audit.Discard).Execute(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = NewUpdateAppointment(s, audit.Discard, false).Execute(context.Background(), 42, models.AppointmentPatch{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateAppointmentStatusPolicy(t *testing.T) {
	back := "scheduled"
	patch := models.AppointmentPatch{Status: &back}

	t.Run("free tag by default", func(t *testing.T) {
		s, ap := seeded(t, "completed")
		got, err := NewUpdateAppointment(s, audit.Discard, false).Execute(context.Background(), ap.ID, patch)
		require.NoError(t, err)
		assert.Equal(t, "scheduled", got.Status)
	})

	t.Run("enforced", func(t *testing.T) {
		s, ap := seeded(t, "completed")
		_, err := NewUpdateAppointment(s, audit.Discard, true).Execute(context.Background(), ap.ID, patch)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))

		notes := "cliente pediu degradê"
		got, err := NewUpdateAppointment(s, audit.Discard, true).Execute(context.Background(), ap.ID, models.AppointmentPatch{Notes: &notes})
		require.NoError(t, err)
		assert.Equal(t, notes, got.Notes)
		assert.Equal(t, "completed", got.Status)
	})
}
