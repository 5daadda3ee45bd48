package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusConfirmed, StatusWaiting, true},
		{StatusWaiting, StatusCompleted, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusScheduled, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusWaiting, StatusCancelled, true},
		{StatusConfirmed, StatusScheduled, false},
		{StatusWaiting, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusCompleted, StatusCompleted, true},
		{StatusScheduled, Status("done"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCompleteRejectsTerminalAppointments(t *testing.T) {
	_, err := Complete(models.Appointment{Status: "cancelled"})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	p, err := Complete(models.Appointment{Status: "waiting"})
	require.NoError(t, err)
	require.NotNil(t, p.Status)
	assert.Equal(t, "completed", *p.Status)
}

func TestCancelFromAnyOpenState(t *testing.T) {
	for _, s := range []Status{StatusScheduled, StatusConfirmed, StatusWaiting} {
		p, err := Cancel(models.Appointment{Status: string(s)})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", *p.Status)
	}
	_, err := Cancel(models.Appointment{Status: "completed"})
	assert.Error(t, err)
}

func TestCheckPatchIgnoresPatchesWithoutStatus(t *testing.T) {
	notes := "late"
	assert.NoError(t, CheckPatch(models.Appointment{Status: "completed"}, models.AppointmentPatch{Notes: &notes}))
}
