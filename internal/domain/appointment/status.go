package appointment

import "github.com/BruksfildServices01/barberhub/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusWaiting   Status = "waiting"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// forward progression; cancelled is reachable from any non-terminal state
var next = map[Status]Status{
	StatusScheduled: StatusConfirmed,
	StatusConfirmed: StatusWaiting,
	StatusWaiting:   StatusCompleted,
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusWaiting, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition reports whether from -> to is allowed. Staying in the same
// non-terminal state and skipping ahead along the progression are allowed.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if from.Terminal() {
		if from == to {
			return nil
		}
		return httperr.ErrBusiness("invalid_state")
	}
	if to == StatusCancelled || to == from {
		return nil
	}
	for cur := next[from]; cur != ""; cur = next[cur] {
		if cur == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

func CanCancel(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
