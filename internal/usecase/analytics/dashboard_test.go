package analytics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberhub/internal/dto"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

const today = "2024-05-10"

func ptr[T any](v T) *T { return &v }

func TestDashboardEmptyDayIsZeroAndDivisionSafe(t *testing.T) {
	s := store.New()
	s.CreateService(models.ServiceInput{Name: "Corte"})
	s.CreateService(models.ServiceInput{Name: "Barba"})
	s.CreateBarber(models.BarberInput{Name: "Marcos"})

	got, err := NewGetDashboard(s).Execute(today)
	require.NoError(t, err)

	assert.Equal(t, 0, got.TodayAppointments)
	assert.Equal(t, 0, got.TodayClientsServed)
	assert.Equal(t, 0.0, got.TodayRevenue)
	assert.Equal(t, 0, got.TodayProductsSold)
	require.Len(t, got.TopServices, 2)
	for _, sv := range got.TopServices {
		assert.Equal(t, 0, sv.Percentage)
	}
	assert.Equal(t, []dto.BarberClients{{BarberID: 1, Name: "Marcos", Clients: 0}}, got.BarberPerformance)
}

func TestDashboardCompletedServiceSale(t *testing.T) {
	s := store.New()
	sv := s.CreateService(models.ServiceInput{Name: "Corte", Price: 40.0})
	b := s.CreateBarber(models.BarberInput{Name: "Marcos"})
	c := s.CreateClient(models.ClientInput{Name: "João"})
	ap := s.CreateAppointment(models.AppointmentInput{
		ClientID: c.ID, BarberID: b.ID, ServiceID: sv.ID,
		Date: today, Time: "10:00", Status: "completed",
	})
	s.CreateSale(models.SaleInput{AppointmentID: ptr(ap.ID), TotalPrice: 40.0, Date: today, PaymentMethod: "cash"})

	got, err := NewGetDashboard(s).Execute(today)
	require.NoError(t, err)

	assert.Equal(t, 1, got.TodayAppointments)
	assert.Equal(t, 1, got.TodayClientsServed)
	assert.Equal(t, 40.0, got.TodayRevenue)
	assert.Equal(t, 0, got.TodayProductsSold)
	assert.Equal(t, []dto.ServiceShare{{ServiceID: sv.ID, Name: "Corte", Percentage: 100}}, got.TopServices)
}

func TestDashboardCountsProductQuantity(t *testing.T) {
	s := store.New()
	for i := 0; i < 7; i++ {
		s.CreateProduct(models.ProductInput{Name: "p"})
	}
	s.CreateSale(models.SaleInput{ProductID: ptr(uint(7)), Quantity: 3, TotalPrice: 90, Date: today})
	s.CreateSale(models.SaleInput{ProductID: ptr(uint(2)), Quantity: 1, TotalPrice: 10, Date: "2024-05-09"})

	got, err := NewGetDashboard(s).Execute(today)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TodayProductsSold)
	assert.Equal(t, 90.0, got.TodayRevenue)
}

func TestDashboardRankingsUseAllAppointments(t *testing.T) {
	s := store.New()
	marcos := s.CreateBarber(models.BarberInput{Name: "Marcos"})
	felipe := s.CreateBarber(models.BarberInput{Name: "Felipe"})
	lucas := s.CreateBarber(models.BarberInput{Name: "Lucas"})
	corte := s.CreateService(models.ServiceInput{Name: "Corte"})
	barba := s.CreateService(models.ServiceInput{Name: "Barba"})
	combo := s.CreateService(models.ServiceInput{Name: "Corte + Barba"})
	c := s.CreateClient(models.ClientInput{Name: "João"})

	book := func(b models.Barber, sv models.Service, date string) {
		s.CreateAppointment(models.AppointmentInput{ClientID: c.ID, BarberID: b.ID, ServiceID: sv.ID, Date: date})
	}
	book(felipe, barba, "2024-01-01")
	book(felipe, barba, "2024-02-01")
	book(marcos, barba, "2024-03-01")
	book(felipe, combo, today)

	got, err := NewGetDashboard(s).Execute(today)
	require.NoError(t, err)

	assert.Equal(t, 1, got.TodayAppointments)
	assert.Equal(t, []dto.BarberClients{
		{BarberID: felipe.ID, Name: "Felipe", Clients: 3},
		{BarberID: marcos.ID, Name: "Marcos", Clients: 1},
		{BarberID: lucas.ID, Name: "Lucas", Clients: 0},
	}, got.BarberPerformance)
	assert.Equal(t, []dto.ServiceShare{
		{ServiceID: barba.ID, Name: "Barba", Percentage: 75},
		{ServiceID: combo.ID, Name: "Corte + Barba", Percentage: 25},
		{ServiceID: corte.ID, Name: "Corte", Percentage: 0},
	}, got.TopServices)
}

func TestDashboardRoundsPercentages(t *testing.T) {
	s := store.New()
	b := s.CreateBarber(models.BarberInput{Name: "Marcos"})
	c := s.CreateClient(models.ClientInput{Name: "João"})
	a := s.CreateService(models.ServiceInput{Name: "A"})
	bb := s.CreateService(models.ServiceInput{Name: "B"})
	for _, sv := range []models.Service{a, bb, bb} {
		s.CreateAppointment(models.AppointmentInput{ClientID: c.ID, BarberID: b.ID, ServiceID: sv.ID, Date: today})
	}

	got, err := NewGetDashboard(s).Execute(today)
	require.NoError(t, err)
	assert.Equal(t, 67, got.TopServices[0].Percentage)
	assert.Equal(t, 33, got.TopServices[1].Percentage)
}

func TestDashboardFailsOnDanglingReferenceToday(t *testing.T) {
	s := store.New()
	b := s.CreateBarber(models.BarberInput{Name: "Marcos"})
	sv := s.CreateService(models.ServiceInput{Name: "Corte"})
	c := s.CreateClient(models.ClientInput{Name: "João"})
	s.CreateAppointment(models.AppointmentInput{ClientID: c.ID, BarberID: b.ID, ServiceID: sv.ID, Date: today})
	s.DeleteClient(c.ID)

	_, err := NewGetDashboard(s).Execute(today)
	assert.True(t, errors.Is(err, store.ErrDanglingReference))
}
