package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/dto"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
)

// Dashboard computes the dashboard for a YYYY-MM-DD day.
type Dashboard interface {
	Execute(today string) (*dto.DashboardData, error)
}

// DailySummary logs the day's dashboard figures on a cron schedule and
// records them in the audit trail.
type DailySummary struct {
	dashboard Dashboard
	audit     audit.Recorder
	clock     timezone.Clock
	log       *slog.Logger

	cron *cron.Cron
}

func NewDailySummary(
	dashboard Dashboard,
	audit audit.Recorder,
	clock timezone.Clock,
	log *slog.Logger,
) *DailySummary {
	return &DailySummary{
		dashboard: dashboard,
		audit:     audit,
		clock:     clock,
		log:       log,
	}
}

// Start schedules the job with a standard five-field spec evaluated in the
// clock's location.
func (w *DailySummary) Start(spec string) error {
	loc := w.clock.Now().Location()
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(spec, func() { w.Run(context.Background()) }); err != nil {
		return fmt.Errorf("daily summary schedule %q: %w", spec, err)
	}
	c.Start()
	w.cron = c

	w.log.Info("daily summary scheduler started", "spec", spec, "timezone", loc.String())
	return nil
}

// Stop waits for a running job to finish or ctx to end.
func (w *DailySummary) Stop(ctx context.Context) {
	if w.cron == nil {
		return
	}
	select {
	case <-w.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Run computes today's figures once.
func (w *DailySummary) Run(ctx context.Context) (*dto.DashboardData, error) {
	today := w.clock.Today()

	data, err := w.dashboard.Execute(today)
	if err != nil {
		w.log.Error("daily summary failed", "date", today, "error", err)
		return nil, err
	}

	w.log.Info("daily summary",
		"date", data.Date,
		"appointments", data.TodayAppointments,
		"clients_served", data.TodayClientsServed,
		"revenue", data.TodayRevenue,
		"products_sold", data.TodayProductsSold,
	)

	w.audit.Dispatch(audit.Event{
		RequestID: audit.RequestIDFrom(ctx),
		Action:    "daily_summary",
		Entity:    "dashboard",
		Metadata: map[string]any{
			"date":           data.Date,
			"appointments":   data.TodayAppointments,
			"clients_served": data.TodayClientsServed,
			"revenue":        data.TodayRevenue,
			"products_sold":  data.TodayProductsSold,
		},
	})

	return data, nil
}
