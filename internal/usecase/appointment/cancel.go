package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	domain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

type CancelAppointment struct {
	repo  Repository
	audit audit.Recorder
}

func NewCancelAppointment(
	repo Repository,
	audit audit.Recorder,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var previous string
	ap, found, err := uc.repo.AmendAppointment(appointmentID, func(cur models.Appointment) (models.AppointmentPatch, error) {
		previous = cur.Status
		return domain.Cancel(cur)
	})
	if !found {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: audit.RequestIDFrom(ctx),
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata:  map[string]string{"from": previous},
	})

	return &ap, nil
}
