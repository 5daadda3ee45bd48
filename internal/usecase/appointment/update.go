package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	domain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

// UpdateAppointment merges a patch. With enforceTransitions set a status
// change must follow the appointment lifecycle, otherwise status is a free
// tag.
type UpdateAppointment struct {
	repo               Repository
	audit              audit.Recorder
	enforceTransitions bool
}

func NewUpdateAppointment(
	repo Repository,
	audit audit.Recorder,
	enforceTransitions bool,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:               repo,
		audit:              audit,
		enforceTransitions: enforceTransitions,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	patch models.AppointmentPatch,
) (*models.Appointment, error) {

	ap, found, err := uc.repo.AmendAppointment(appointmentID, func(cur models.Appointment) (models.AppointmentPatch, error) {
		if uc.enforceTransitions {
			if err := domain.CheckPatch(cur, patch); err != nil {
				return models.AppointmentPatch{}, err
			}
		}
		return patch, nil
	})
	if !found {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: audit.RequestIDFrom(ctx),
		Action:    "update",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata:  patch,
	})

	return &ap, nil
}
