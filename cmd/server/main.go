package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"freightdesk/internal/config"
	"freightdesk/internal/email/noop"
	"freightdesk/internal/email/ses"
	"freightdesk/internal/handler"
	"freightdesk/internal/logger"
	"freightdesk/internal/port"
	"freightdesk/internal/repository/memory"
	"freightdesk/internal/repository/postgres"
	"freightdesk/internal/router"
	"freightdesk/internal/service"
	s3storage "freightdesk/internal/storage/s3"
)

const shutdownTimeout = 15 * time.Second

// @title           Freightdesk API
// @version         1.0
// @description     Freight charges, GST invoicing and e-way bill expiry tracking for a transport back office.
// @BasePath        /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// stores bundles the repositories of the selected storage driver.
type stores struct {
	consignments port.ConsignmentRepository
	invoices     port.InvoiceRepository
	ewayBills    port.EwayBillRepository
	health       port.HealthChecker
	close        func() error
}

func openStores(cfg *config.Config, zlog *zap.Logger) (*stores, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		store := memory.NewStore()
		memory.Seed(store, time.Now())
		zlog.Warn("using in-memory storage with demo data; nothing is persisted")
		return &stores{
			consignments: memory.NewConsignmentRepo(store),
			invoices:     memory.NewInvoiceRepo(store),
			ewayBills:    memory.NewEwayBillRepo(store),
			health:       store,
			close:        func() error { return nil },
		}, nil
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &stores{
		consignments: postgres.NewConsignmentRepo(db),
		invoices:     postgres.NewInvoiceRepo(db),
		ewayBills:    postgres.NewEwayBillRepo(db),
		health:       postgres.NewHealthChecker(db),
		close:        db.Close,
	}, nil
}

func newAlertSender(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (port.AlertSender, error) {
	if cfg.Email.Provider == config.EmailProviderSES {
		return ses.NewSESSender(ctx, &cfg.Email)
	}
	return noop.NewNoopSender(zlog), nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(cfg, zlog)
	if err != nil {
		return err
	}
	defer func() { _ = st.close() }()

	objects, err := s3storage.NewS3Client(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	sender, err := newAlertSender(ctx, cfg, zlog)
	if err != nil {
		return fmt.Errorf("failed to initialize alert sender: %w", err)
	}

	// Initialize services
	freightSvc := service.NewFreightService(service.TaxDefaults{
		LRGSTRate:      cfg.Tax.LRGSTRate,
		FreightGSTRate: cfg.Tax.FreightGSTRate,
		SupplierGSTIN:  cfg.Tax.SupplierGSTIN,
	})
	consignmentSvc := service.NewConsignmentService(st.consignments)
	invoiceSvc := service.NewInvoiceService(st.consignments, st.invoices, objects, service.InvoiceConfig{
		NumberPrefix:     cfg.Invoice.NumberPrefix,
		SupplierGSTIN:    cfg.Tax.SupplierGSTIN,
		GSTRate:          cfg.Tax.FreightGSTRate,
		DefaultUnloading: cfg.Invoice.DefaultUnloading,
		DefaultDetention: cfg.Invoice.DefaultDetention,
		PresignExpiry:    time.Duration(cfg.S3.PresignExpiry) * time.Second,
	}, time.Now, zlog.Named("invoice"))
	ewayBillSvc := service.NewEwayBillService(st.ewayBills, time.Now, zlog.Named("eway_bill"))

	if cfg.Expiry.MonitorEnabled {
		monitor := service.NewExpiryMonitor(ewayBillSvc, sender, service.ExpiryMonitorConfig{
			Interval:   cfg.Expiry.MonitorInterval,
			Recipients: cfg.Expiry.AlertRecipients,
		}, zlog.Named("expiry_monitor"))
		go monitor.Start(ctx)
	}

	r := router.Setup(router.Handlers{
		Health:      handler.NewHealthHandler(st.health),
		Freight:     handler.NewFreightHandler(freightSvc),
		Consignment: handler.NewConsignmentHandler(consignmentSvc),
		Invoice:     handler.NewInvoiceHandler(invoiceSvc),
		EwayBill:    handler.NewEwayBillHandler(ewayBillSvc),
	}, cfg.CORS.AllowedOrigins, zlog.Named("http"))

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("storage", cfg.Storage.Driver),
			zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	zlog.Info("server stopped")
	return nil
}
