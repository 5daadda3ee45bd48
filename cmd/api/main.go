package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/config"
	dbpkg "github.com/BruksfildServices01/barberhub/internal/db"
	"github.com/BruksfildServices01/barberhub/internal/logger"
	"github.com/BruksfildServices01/barberhub/internal/metrics"
	"github.com/BruksfildServices01/barberhub/internal/routes"
	"github.com/BruksfildServices01/barberhub/internal/seed"
	"github.com/BruksfildServices01/barberhub/internal/store"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
	"github.com/BruksfildServices01/barberhub/internal/usecase/analytics"
	"github.com/BruksfildServices01/barberhub/internal/validators"
	"github.com/BruksfildServices01/barberhub/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("barberhub stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	loc, err := timezone.Load(cfg.Timezone)
	if err != nil {
		return err
	}
	clock := timezone.NewClock(loc)

	if err := validators.RegisterGin(); err != nil {
		return err
	}

	// ======================================================
	// AUDIT
	// ======================================================
	db, err := dbpkg.Open(cfg.AuditDatabaseURL)
	if err != nil {
		return err
	}
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log, audit.WithDropHook(metrics.IncAuditDropped))

	// ======================================================
	// STORE
	// ======================================================
	st := store.New(store.WithMutationHook(metrics.RecordStoreMutation))
	if cfg.SeedData {
		seed.Load(st, clock.Today())
		log.Info("seed data loaded", "date", clock.Today())
	}
	for entity, n := range st.Counts() {
		metrics.SetStoreRecords(entity, n)
	}

	// ======================================================
	// JOBS
	// ======================================================
	var summary *worker.DailySummary
	if cfg.DailySummaryCron != "" {
		summary = worker.NewDailySummary(analytics.NewGetDashboard(st), auditDispatcher, clock, log)
		if err := summary.Start(cfg.DailySummaryCron); err != nil {
			return err
		}
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:    cfg,
		Store:     st,
		Audit:     auditDispatcher,
		AuditLogs: auditLogger,
		Clock:     clock,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("server running", "addr", cfg.Addr(), "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "error", err)
	}
	if summary != nil {
		summary.Stop(shutdownCtx)
	}
	if err := auditDispatcher.Close(shutdownCtx); err != nil {
		log.Warn("audit queue not drained", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	return nil
}
