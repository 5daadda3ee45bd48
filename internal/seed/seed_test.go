package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberhub/internal/store"
	"github.com/BruksfildServices01/barberhub/internal/usecase/analytics"
)

func TestLoadBuildsConsistentGraph(t *testing.T) {
	s := store.New()
	Load(s, "2024-05-10")

	assert.Equal(t, map[string]int{
		store.EntityBarber:      3,
		store.EntityService:     5,
		store.EntityClient:      3,
		store.EntityAppointment: 3,
		store.EntityProduct:     3,
		store.EntitySale:        3,
	}, s.Counts())

	got, err := analytics.NewGetDashboard(s).Execute("2024-05-10")
	require.NoError(t, err)

	assert.Equal(t, 3, got.TodayAppointments)
	assert.Equal(t, 0, got.TodayClientsServed)
	assert.Equal(t, 140.0, got.TodayRevenue)
	assert.Equal(t, 2, got.TodayProductsSold)
	assert.Equal(t, "Marcos Oliveira", got.BarberPerformance[0].Name)
	assert.Equal(t, 2, got.BarberPerformance[0].Clients)
	assert.Equal(t, "Corte + Barba", got.TopServices[0].Name)
	assert.Equal(t, 67, got.TopServices[0].Percentage)
}

func TestLoadTwiceKeepsReferencesValid(t *testing.T) {
	s := store.New()
	Load(s, "2024-05-10")
	Load(s, "2024-05-11")

	_, err := analytics.NewGetPeriodReport(s).Execute("2024-05-10", "2024-05-11")
	assert.NoError(t, err)
}
