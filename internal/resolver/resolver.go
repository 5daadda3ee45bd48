// Package resolver joins appointments and sales with the records they
// reference.
//
// Every reference that is set must resolve. A missing record produces a
// *store.DanglingReferenceError and the whole call fails; nothing is
// skipped and no zero-valued record is attached.
package resolver

import (
	"fmt"

	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

func AppointmentWithDetails(r store.Reader, ap models.Appointment) (models.AppointmentWithDetails, error) {
	out := models.AppointmentWithDetails{Appointment: ap}

	client, ok := r.GetClient(ap.ClientID)
	if !ok {
		return out, dangling(store.EntityAppointment, ap.ID, store.EntityClient, ap.ClientID)
	}
	barber, ok := r.GetBarber(ap.BarberID)
	if !ok {
		return out, dangling(store.EntityAppointment, ap.ID, store.EntityBarber, ap.BarberID)
	}
	service, ok := r.GetService(ap.ServiceID)
	if !ok {
		return out, dangling(store.EntityAppointment, ap.ID, store.EntityService, ap.ServiceID)
	}

	out.Client = client
	out.Barber = barber
	out.Service = service
	return out, nil
}

func ListAppointmentsWithDetails(r store.Reader) ([]models.AppointmentWithDetails, error) {
	return joinAppointments(r, func(models.Appointment) bool { return true })
}

// AppointmentsByDate matches date against the stored text exactly.
func AppointmentsByDate(r store.Reader, date string) ([]models.AppointmentWithDetails, error) {
	return joinAppointments(r, func(ap models.Appointment) bool { return ap.Date == date })
}

// AppointmentsInRange keeps appointments with start <= date <= end,
// compared as YYYY-MM-DD text.
func AppointmentsInRange(r store.Reader, start, end string) ([]models.AppointmentWithDetails, error) {
	return joinAppointments(r, func(ap models.Appointment) bool { return inRange(ap.Date, start, end) })
}

// GetAppointmentWithDetails returns ok == false when id is unknown.
func GetAppointmentWithDetails(r store.Reader, id uint) (models.AppointmentWithDetails, bool, error) {
	ap, ok := r.GetAppointment(id)
	if !ok {
		return models.AppointmentWithDetails{}, false, nil
	}
	out, err := AppointmentWithDetails(r, ap)
	return out, true, err
}

func joinAppointments(r store.Reader, keep func(models.Appointment) bool) ([]models.AppointmentWithDetails, error) {
	all := r.ListAppointments()
	out := make([]models.AppointmentWithDetails, 0, len(all))
	for _, ap := range all {
		if !keep(ap) {
			continue
		}
		d, err := AppointmentWithDetails(r, ap)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// SaleWithDetails attaches client, product and appointment independently,
// each only when the sale sets its id.
func SaleWithDetails(r store.Reader, sale models.Sale) (models.SaleWithDetails, error) {
	out := models.SaleWithDetails{Sale: sale}

	if sale.ClientID != nil {
		client, ok := r.GetClient(*sale.ClientID)
		if !ok {
			return out, dangling(store.EntitySale, sale.ID, store.EntityClient, *sale.ClientID)
		}
		out.Client = &client
	}

	if sale.ProductID != nil {
		product, ok := r.GetProduct(*sale.ProductID)
		if !ok {
			return out, dangling(store.EntitySale, sale.ID, store.EntityProduct, *sale.ProductID)
		}
		out.Product = &product
	}

	if sale.AppointmentID != nil {
		ap, ok := r.GetAppointment(*sale.AppointmentID)
		if !ok {
			return out, dangling(store.EntitySale, sale.ID, store.EntityAppointment, *sale.AppointmentID)
		}
		d, err := AppointmentWithDetails(r, ap)
		if err != nil {
			return out, fmt.Errorf("sale %d: %w", sale.ID, err)
		}
		out.Appointment = &d
	}

	return out, nil
}

func ListSalesWithDetails(r store.Reader) ([]models.SaleWithDetails, error) {
	return joinSales(r, func(models.Sale) bool { return true })
}

func SalesByDate(r store.Reader, date string) ([]models.SaleWithDetails, error) {
	return joinSales(r, func(s models.Sale) bool { return s.Date == date })
}

func SalesInRange(r store.Reader, start, end string) ([]models.SaleWithDetails, error) {
	return joinSales(r, func(s models.Sale) bool { return inRange(s.Date, start, end) })
}

func GetSaleWithDetails(r store.Reader, id uint) (models.SaleWithDetails, bool, error) {
	sale, ok := r.GetSale(id)
	if !ok {
		return models.SaleWithDetails{}, false, nil
	}
	out, err := SaleWithDetails(r, sale)
	return out, true, err
}

func joinSales(r store.Reader, keep func(models.Sale) bool) ([]models.SaleWithDetails, error) {
	all := r.ListSales()
	out := make([]models.SaleWithDetails, 0, len(all))
	for _, s := range all {
		if !keep(s) {
			continue
		}
		d, err := SaleWithDetails(r, s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func inRange(date, start, end string) bool {
	return start <= date && date <= end
}

func dangling(entity string, id uint, field string, ref uint) error {
	return &store.DanglingReferenceError{Entity: entity, ID: id, Field: field, Ref: ref}
}
