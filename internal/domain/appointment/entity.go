package appointment

import "github.com/BruksfildServices01/barberhub/internal/models"

// ===============================
// Domain Actions
// ===============================

// Cancel returns the patch that cancels ap.
func Cancel(ap models.Appointment) (models.AppointmentPatch, error) {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return models.AppointmentPatch{}, err
	}
	status := string(StatusCancelled)
	return models.AppointmentPatch{Status: &status}, nil
}

// Complete returns the patch that completes ap.
func Complete(ap models.Appointment) (models.AppointmentPatch, error) {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return models.AppointmentPatch{}, err
	}
	status := string(StatusCompleted)
	return models.AppointmentPatch{Status: &status}, nil
}

// CheckPatch validates the status change carried by p, if any.
func CheckPatch(ap models.Appointment, p models.AppointmentPatch) error {
	if p.Status == nil {
		return nil
	}
	return CanTransition(Status(ap.Status), Status(*p.Status))
}
