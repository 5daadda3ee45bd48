package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/config"
	"github.com/BruksfildServices01/barberhub/internal/handlers"
	"github.com/BruksfildServices01/barberhub/internal/metrics"
	"github.com/BruksfildServices01/barberhub/internal/middleware"
	"github.com/BruksfildServices01/barberhub/internal/store"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
	"github.com/BruksfildServices01/barberhub/internal/usecase/analytics"
	ucAppointment "github.com/BruksfildServices01/barberhub/internal/usecase/appointment"
)

// Deps is everything the HTTP surface needs from the composition root.
type Deps struct {
	Config    *config.Config
	Store     *store.Store
	Audit     audit.Recorder
	AuditLogs *audit.Logger
	Clock     timezone.Clock
	Log       *slog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		metrics.GinMiddleware(),
		middleware.CORSMiddleware(d.Config.CORSAllowedOrigins),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		d.Store,
		d.Audit,
		d.Config.EnforceStatusTransitions,
	)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(d.Store, d.Audit)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(d.Store, d.Audit)

	dashboardUC := analytics.NewGetDashboard(d.Store)
	reportUC := analytics.NewGetPeriodReport(d.Store)

	// ======================================================
	// HANDLERS
	// ======================================================
	barberHandler := handlers.NewBarberHandler(d.Store, d.Audit)
	serviceHandler := handlers.NewServiceHandler(d.Store, d.Audit)
	clientHandler := handlers.NewClientHandler(d.Store, d.Audit)
	productHandler := handlers.NewProductHandler(d.Store, d.Audit)
	saleHandler := handlers.NewSaleHandler(d.Store, d.Audit)

	appointmentHandler := handlers.NewAppointmentHandler(
		d.Store,
		d.Audit,
		updateAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, d.Clock)
	reportHandler := handlers.NewReportHandler(reportUC, d.Clock)
	snapshotHandler := handlers.NewSnapshotHandler(d.Store, d.Audit)

	// ======================================================
	// INFRA
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/barbers", barberHandler.List)
		api.POST("/barbers", barberHandler.Create)
		api.GET("/barbers/:id", barberHandler.Get)
		api.PATCH("/barbers/:id", barberHandler.Update)
		api.DELETE("/barbers/:id", barberHandler.Delete)

		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.GET("/services/:id", serviceHandler.Get)
		api.PATCH("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients/:id", clientHandler.Get)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

		api.GET("/products", productHandler.List)
		api.POST("/products", productHandler.Create)
		api.GET("/products/:id", productHandler.Get)
		api.PATCH("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		api.GET("/sales", saleHandler.List)
		api.POST("/sales", saleHandler.Create)
		api.GET("/sales/:id", saleHandler.Get)
		api.PATCH("/sales/:id", saleHandler.Update)
		api.DELETE("/sales/:id", saleHandler.Delete)

		// ------------------------------
		// ANALYTICS
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Get)
		api.GET("/reports", reportHandler.Get)

		api.GET("/snapshot", snapshotHandler.Export)
		api.POST("/snapshot", snapshotHandler.Import)

		if d.AuditLogs != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, d.Clock.Now().Location())
			api.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
