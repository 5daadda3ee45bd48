package analytics

import (
	"math"
	"sort"

	domain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/dto"
	"github.com/BruksfildServices01/barberhub/internal/resolver"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

type GetDashboard struct {
	store Viewer
}

func NewGetDashboard(st Viewer) *GetDashboard {
	return &GetDashboard{store: st}
}

// Execute computes the dashboard for today (YYYY-MM-DD).
//
// The four today_* figures only look at records dated today. Barber
// performance and top services count every appointment ever stored.
func (uc *GetDashboard) Execute(today string) (*dto.DashboardData, error) {
	var (
		out *dto.DashboardData
		err error
	)
	uc.store.View(func(r store.Reader) {
		out, err = dashboard(r, today)
	})
	return out, err
}

func dashboard(r store.Reader, today string) (*dto.DashboardData, error) {
	todayAppointments, err := resolver.AppointmentsByDate(r, today)
	if err != nil {
		return nil, err
	}
	todaySales, err := resolver.SalesByDate(r, today)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardData{
		Date:              today,
		TodayAppointments: len(todayAppointments),
		BarberPerformance: []dto.BarberClients{},
		TopServices:       []dto.ServiceShare{},
	}

	for _, ap := range todayAppointments {
		if domain.Status(ap.Status) == domain.StatusCompleted {
			out.TodayClientsServed++
		}
	}

	for _, s := range todaySales {
		out.TodayRevenue += s.TotalPrice
		if s.ProductID != nil {
			out.TodayProductsSold += s.Quantity
		}
	}

	all := r.ListAppointments()
	perBarber := make(map[uint]int)
	perService := make(map[uint]int)
	for _, ap := range all {
		perBarber[ap.BarberID]++
		perService[ap.ServiceID]++
	}

	for _, b := range r.ListBarbers() {
		out.BarberPerformance = append(out.BarberPerformance, dto.BarberClients{
			BarberID: b.ID,
			Name:     b.Name,
			Clients:  perBarber[b.ID],
		})
	}
	sort.SliceStable(out.BarberPerformance, func(i, j int) bool {
		return out.BarberPerformance[i].Clients > out.BarberPerformance[j].Clients
	})

	total := len(all)
	if total == 0 {
		total = 1
	}
	for _, sv := range r.ListServices() {
		out.TopServices = append(out.TopServices, dto.ServiceShare{
			ServiceID:  sv.ID,
			Name:       sv.Name,
			Percentage: int(math.Round(100 * float64(perService[sv.ID]) / float64(total))),
		})
	}
	sort.SliceStable(out.TopServices, func(i, j int) bool {
		return out.TopServices[i].Percentage > out.TopServices[j].Percentage
	})

	return out, nil
}
