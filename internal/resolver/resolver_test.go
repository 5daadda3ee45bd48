package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	s       *store.Store
	barber  models.Barber
	service models.Service
	client  models.Client
	product models.Product
}

func newFixture() fixture {
	s := store.New()
	f := fixture{s: s}
	f.barber = s.CreateBarber(models.BarberInput{Name: "Marcos"})
	f.service = s.CreateService(models.ServiceInput{Name: "Corte", Price: 40})
	f.client = s.CreateClient(models.ClientInput{Name: "João"})
	f.product = s.CreateProduct(models.ProductInput{Name: "Pomada", Price: 35})
	return f
}

func (f fixture) appointment(date string) models.Appointment {
	return f.s.CreateAppointment(models.AppointmentInput{
		ClientID:  f.client.ID,
		BarberID:  f.barber.ID,
		ServiceID: f.service.ID,
		Date:      date,
		Time:      "10:00",
	})
}

func TestAppointmentsByDateIsSubsetOfJoinedList(t *testing.T) {
	f := newFixture()
	f.appointment("2024-05-10")
	f.appointment("2024-05-11")
	f.appointment("2024-05-10")

	var all, byDate []models.AppointmentWithDetails
	var errAll, errDate error
	f.s.View(func(r store.Reader) {
		all, errAll = ListAppointmentsWithDetails(r)
		byDate, errDate = AppointmentsByDate(r, "2024-05-10")
	})
	require.NoError(t, errAll)
	require.NoError(t, errDate)

	var want []models.AppointmentWithDetails
	for _, a := range all {
		if a.Date == "2024-05-10" {
			want = append(want, a)
		}
	}
	assert.Equal(t, want, byDate)

	for _, a := range byDate {
		c, _ := f.s.GetClient(a.ClientID)
		b, _ := f.s.GetBarber(a.BarberID)
		sv, _ := f.s.GetService(a.ServiceID)
		assert.Equal(t, c, a.Client)
		assert.Equal(t, b, a.Barber)
		assert.Equal(t, sv, a.Service)
	}
}

func TestAppointmentsByDateIsExactTextMatch(t *testing.T) {
	f := newFixture()
	f.appointment("2024-05-10")

	got, err := AppointmentsByDate(f.s, "2024-5-10")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAppointmentWithDeletedClientFailsFast(t *testing.T) {
	f := newFixture()
	ap := f.appointment("2024-05-10")
	require.True(t, f.s.DeleteClient(f.client.ID))

	_, err := ListAppointmentsWithDetails(f.s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrDanglingReference))

	var de *store.DanglingReferenceError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, store.DanglingReferenceError{
		Entity: store.EntityAppointment,
		ID:     ap.ID,
		Field:  store.EntityClient,
		Ref:    f.client.ID,
	}, *de)
}

func TestProductSaleAttachesProductOnly(t *testing.T) {
	s := store.New()
	var product models.Product
	for i := 0; i < 7; i++ {
		product = s.CreateProduct(models.ProductInput{Name: "p"})
	}
	require.Equal(t, uint(7), product.ID)
	sale := s.CreateSale(models.SaleInput{ProductID: ptr(uint(7)), Quantity: 3, TotalPrice: 105, Date: "2024-05-10"})

	got, err := SaleWithDetails(s, sale)
	require.NoError(t, err)
	require.NotNil(t, got.Product)
	assert.Equal(t, product, *got.Product)
	assert.Nil(t, got.Appointment)
	assert.Nil(t, got.Client)
}

func TestServiceSaleNestsAppointmentDetails(t *testing.T) {
	f := newFixture()
	ap := f.appointment("2024-05-10")
	sale := f.s.CreateSale(models.SaleInput{ClientID: ptr(f.client.ID), AppointmentID: ptr(ap.ID), TotalPrice: 40, Date: "2024-05-10"})

	got, found, err := GetSaleWithDetails(f.s, sale.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, got.Appointment)
	assert.Equal(t, f.barber, got.Appointment.Barber)
	assert.Equal(t, f.service, got.Appointment.Service)
	require.NotNil(t, got.Client)
	assert.Equal(t, f.client, *got.Client)
	assert.Nil(t, got.Product)
}

func TestSaleMayCarryAllThreeLinks(t *testing.T) {
	f := newFixture()
	ap := f.appointment("2024-05-10")
	sale := f.s.CreateSale(models.SaleInput{
		ClientID:      ptr(f.client.ID),
		ProductID:     ptr(f.product.ID),
		AppointmentID: ptr(ap.ID),
		TotalPrice:    75,
	})

	got, err := SaleWithDetails(f.s, sale)
	require.NoError(t, err)
	assert.NotNil(t, got.Client)
	assert.NotNil(t, got.Product)
	assert.NotNil(t, got.Appointment)
}

func TestSaleWithDeletedProductFailsFast(t *testing.T) {
	f := newFixture()
	f.s.CreateSale(models.SaleInput{ProductID: ptr(f.product.ID), TotalPrice: 35, Date: "2024-05-10"})
	f.s.DeleteProduct(f.product.ID)

	_, err := SalesByDate(f.s, "2024-05-10")
	assert.True(t, errors.Is(err, store.ErrDanglingReference))
}

func TestGetUnknownRecordsAreAbsent(t *testing.T) {
	s := store.New()

	_, found, err := GetAppointmentWithDetails(s, 3)
	assert.NoError(t, err)
	assert.False(t, found)

	_, found, err = GetSaleWithDetails(s, 3)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestRangeFiltersAreInclusive(t *testing.T) {
	f := newFixture()
	f.appointment("2024-05-01")
	f.appointment("2024-05-07")
	f.appointment("2024-05-08")
	f.s.CreateSale(models.SaleInput{TotalPrice: 1, Date: "2024-04-30"})
	f.s.CreateSale(models.SaleInput{TotalPrice: 1, Date: "2024-05-07"})

	appts, err := AppointmentsInRange(f.s, "2024-05-01", "2024-05-07")
	require.NoError(t, err)
	assert.Len(t, appts, 2)

	sales, err := SalesInRange(f.s, "2024-05-01", "2024-05-07")
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}
