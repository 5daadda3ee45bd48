package models

// Appointment references its client, barber and service by id. Date is
// YYYY-MM-DD and Time is HH:MM, both kept as written.
type Appointment struct {
	ID        uint   `json:"id"`
	ClientID  uint   `json:"client_id"`
	BarberID  uint   `json:"barber_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

type AppointmentInput struct {
	ClientID  uint   `json:"client_id"`
	BarberID  uint   `json:"barber_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

func (in AppointmentInput) WithID(id uint) Appointment {
	status := in.Status
	if status == "" {
		status = "scheduled"
	}
	return Appointment{
		ID:        id,
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    status,
		Notes:     in.Notes,
	}
}

func (a Appointment) Input() AppointmentInput {
	return AppointmentInput{
		ClientID:  a.ClientID,
		BarberID:  a.BarberID,
		ServiceID: a.ServiceID,
		Date:      a.Date,
		Time:      a.Time,
		Status:    a.Status,
		Notes:     a.Notes,
	}
}

type AppointmentPatch struct {
	ClientID  *uint   `json:"client_id,omitempty"`
	BarberID  *uint   `json:"barber_id,omitempty"`
	ServiceID *uint   `json:"service_id,omitempty"`
	Date      *string `json:"date,omitempty" binding:"omitempty,ymd"`
	Time      *string `json:"time,omitempty" binding:"omitempty,hhmm"`
	Status    *string `json:"status,omitempty" binding:"omitempty,oneof=scheduled confirmed waiting completed cancelled"`
	Notes     *string `json:"notes,omitempty"`
}

func (p AppointmentPatch) Apply(a *Appointment) {
	if p.ClientID != nil {
		a.ClientID = *p.ClientID
	}
	if p.BarberID != nil {
		a.BarberID = *p.BarberID
	}
	if p.ServiceID != nil {
		a.ServiceID = *p.ServiceID
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}
