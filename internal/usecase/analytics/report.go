package analytics

import (
	"errors"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/dto"
	"github.com/BruksfildServices01/barberhub/internal/resolver"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

const (
	dateLayout     = "2006-01-02"
	topProductsMax = 5

	// MaxReportDays bounds the span of a report, both ends included.
	MaxReportDays = 366
)

var ErrInvalidRange = errors.New("invalid date range")

type GetPeriodReport struct {
	store Viewer
}

func NewGetPeriodReport(st Viewer) *GetPeriodReport {
	return &GetPeriodReport{store: st}
}

// Execute aggregates appointments and sales dated within [start, end].
// Both bounds are YYYY-MM-DD and inclusive, start must not be after end and
// the range may cover at most MaxReportDays days.
func (uc *GetPeriodReport) Execute(start, end string) (*dto.ReportData, error) {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, ErrInvalidRange
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if to.Before(from) || int(to.Sub(from).Hours()/24)+1 > MaxReportDays {
		return nil, ErrInvalidRange
	}

	var out *periodReport
	uc.store.View(func(r store.Reader) {
		out, err = report(r, start, end)
	})
	if err != nil {
		return nil, err
	}

	out.DailyRevenue = dailyRevenue(from, to, out.dailyTotals)
	return &out.ReportData, nil
}

type periodReport struct {
	dto.ReportData
	dailyTotals map[string]float64
}

func report(r store.Reader, start, end string) (*periodReport, error) {
	appointments, err := resolver.AppointmentsInRange(r, start, end)
	if err != nil {
		return nil, err
	}
	sales, err := resolver.SalesInRange(r, start, end)
	if err != nil {
		return nil, err
	}

	out := &periodReport{
		ReportData: dto.ReportData{
			StartDate:         start,
			EndDate:           end,
			TotalAppointments: len(appointments),
			BarberPerformance: []dto.BarberReport{},
			ServicePopularity: []dto.ServiceCount{},
			TopProducts:       []dto.ProductQuantity{},
		},
		dailyTotals: make(map[string]float64),
	}

	type barberTally struct {
		appointments, completed int
		revenue                 float64
	}
	tally := make(map[uint]*barberTally)
	barberTallyFor := func(id uint) *barberTally {
		t, ok := tally[id]
		if !ok {
			t = &barberTally{}
			tally[id] = t
		}
		return t
	}

	serviceIdx := make(map[uint]int)
	for _, ap := range appointments {
		completed := domain.Status(ap.Status) == domain.StatusCompleted
		if completed {
			out.CompletedAppointments++
		}

		bt := barberTallyFor(ap.BarberID)
		bt.appointments++
		if completed {
			bt.completed++
		}

		i, ok := serviceIdx[ap.ServiceID]
		if !ok {
			i = len(out.ServicePopularity)
			serviceIdx[ap.ServiceID] = i
			out.ServicePopularity = append(out.ServicePopularity, dto.ServiceCount{
				ServiceID: ap.Service.ID,
				Name:      ap.Service.Name,
			})
		}
		out.ServicePopularity[i].Count++
	}

	productIdx := make(map[uint]int)
	for _, s := range sales {
		out.TotalRevenue += s.TotalPrice
		out.dailyTotals[s.Date] += s.TotalPrice

		if s.ProductID != nil {
			out.ProductSales++
			i, ok := productIdx[s.Product.ID]
			if !ok {
				i = len(out.TopProducts)
				productIdx[s.Product.ID] = i
				out.TopProducts = append(out.TopProducts, dto.ProductQuantity{
					ProductID: s.Product.ID,
					Name:      s.Product.Name,
				})
			}
			out.TopProducts[i].Quantity += s.Quantity
		}

		if s.Appointment != nil {
			barberTallyFor(s.Appointment.BarberID).revenue += s.TotalPrice
		}
	}

	for _, b := range r.ListBarbers() {
		bt := barberTallyFor(b.ID)
		out.BarberPerformance = append(out.BarberPerformance, dto.BarberReport{
			BarberID:     b.ID,
			Name:         b.Name,
			Appointments: bt.appointments,
			Completed:    bt.completed,
			Revenue:      bt.revenue,
		})
	}
	sort.SliceStable(out.BarberPerformance, func(i, j int) bool {
		return out.BarberPerformance[i].Completed > out.BarberPerformance[j].Completed
	})

	sort.SliceStable(out.ServicePopularity, func(i, j int) bool {
		return out.ServicePopularity[i].Count > out.ServicePopularity[j].Count
	})
	if len(out.ServicePopularity) > 0 {
		out.TopService = out.ServicePopularity[0].Name
	}

	sort.SliceStable(out.TopProducts, func(i, j int) bool {
		return out.TopProducts[i].Quantity > out.TopProducts[j].Quantity
	})
	if len(out.TopProducts) > topProductsMax {
		out.TopProducts = out.TopProducts[:topProductsMax]
	}

	return out, nil
}

// dailyRevenue returns one entry per day from..to, zero when no sale fell
// on that day.
func dailyRevenue(from, to time.Time, totals map[string]float64) []dto.DailyAmount {
	out := []dto.DailyAmount{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		out = append(out, dto.DailyAmount{Date: key, Amount: totals[key]})
	}
	return out
}
