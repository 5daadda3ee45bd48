package models

// AppointmentWithDetails is an appointment joined with the records it
// references.
type AppointmentWithDetails struct {
	Appointment
	Client  Client  `json:"client"`
	Barber  Barber  `json:"barber"`
	Service Service `json:"service"`
}

// SaleWithDetails carries each linked record only when the sale sets
// the corresponding id.
type SaleWithDetails struct {
	Sale
	Client      *Client                 `json:"client,omitempty"`
	Product     *Product                `json:"product,omitempty"`
	Appointment *AppointmentWithDetails `json:"appointment,omitempty"`
}
