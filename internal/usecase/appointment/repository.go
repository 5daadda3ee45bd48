package appointment

import (
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

var ErrAppointmentNotFound = httperr.ErrBusiness("appointment_not_found")

// Repository is the slice of the entity store the appointment use cases
// write through.
type Repository interface {
	AmendAppointment(id uint, build func(models.Appointment) (models.AppointmentPatch, error)) (models.Appointment, bool, error)
}
