package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesops/internal/adapter/http/routes"
	"salesops/internal/config"
	"salesops/internal/infrastructure/cache"
	"salesops/internal/infrastructure/metrics"
	"salesops/internal/infrastructure/realtime"
	"salesops/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API and the live event stream.

Before accepting traffic the handover recovery sweep creates any project
missing for a sale already in Handover.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required to serve the API")
	}
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = st.close() }()
	if cfg.Store.Driver == config.DriverSQLite {
		if err := st.migrate(ctx); err != nil {
			return err
		}
	}

	m := metrics.New()
	hub := realtime.NewHub(realtime.WithRecorder(m), realtime.WithLogger(log))

	saleOpts := []usecase.SaleOption{
		usecase.WithSaleLogger(log),
		usecase.WithRevertClearsPayment(cfg.Sales.RevertClearsPayment),
	}
	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer client.Close()
		saleOpts = append(saleOpts, usecase.WithIdempotencyStore(cache.NewRedisIdempotencyStore(client, cfg.Redis.IdempotencyTTL.Duration)))
		log.Info("add-payment idempotency enabled", zap.String("redis", cfg.Redis.Addr))
	}
	sales := usecase.NewSaleUseCase(st.sales, st.projects, hub, saleOpts...)
	projects := usecase.NewProjectUseCase(st.projects, hub, usecase.WithProjectLogger(log))
	audit := usecase.NewAuditUseCase(st.audit, usecase.WithAuditLogger(log))

	n, err := sales.ReconcileHandovers(ctx)
	if err != nil {
		log.Warn("handover recovery sweep failed", zap.Error(err))
	}
	m.Reconciled.Add(float64(n))

	router := routes.NewRouter(routes.Dependencies{
		Sales:     sales,
		Projects:  projects,
		Audit:     audit,
		Events:    hub,
		Metrics:   m,
		Logger:    log,
		JWTSecret: []byte(cfg.Auth.JWTSecret),
		Shutdown:  ctx.Done(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
