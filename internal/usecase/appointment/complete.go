package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	domain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

type CompleteAppointment struct {
	repo  Repository
	audit audit.Recorder
}

func NewCompleteAppointment(
	repo Repository,
	audit audit.Recorder,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var previous string
	ap, found, err := uc.repo.AmendAppointment(appointmentID, func(cur models.Appointment) (models.AppointmentPatch, error) {
		previous = cur.Status
		return domain.Complete(cur)
	})
	if !found {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: audit.RequestIDFrom(ctx),
		Action:    "appointment_completed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata:  map[string]string{"from": previous},
	})

	return &ap, nil
}
