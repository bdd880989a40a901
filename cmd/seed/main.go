// Command seed loads an e-way bill register workbook into the database.
// The workbook may be an XLSX expiry report exported by the server.
// Usage: go run ./cmd/seed -file register.xlsx [-sheet name] [-dry-run]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"freightdesk/internal/config"
	"freightdesk/internal/domain"
	"freightdesk/internal/export"
	"freightdesk/internal/freight"
	"freightdesk/internal/logger"
	"freightdesk/internal/repository/postgres"
	"freightdesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	path := flag.String("file", "", "register workbook (.xlsx)")
	sheet := flag.String("sheet", "", "sheet name (default: report sheet, else first sheet)")
	dryRun := flag.Bool("dry-run", false, "validate the workbook without writing")
	flag.Parse()
	if *path == "" {
		return errors.New("usage: seed -file register.xlsx [-sheet name] [-dry-run]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Open(*path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", *path, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := export.ReadEwayBillRegister(f, *sheet)
	if err != nil {
		return err
	}
	log.Info("register read", zap.String("file", *path), zap.Int("rows", len(rows)))
	if *dryRun {
		for i := range rows {
			log.Info("row", zap.Int("row", rows[i].Row), zap.String("eway_bill_number", rows[i].EwayBillNumber))
		}
		return nil
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	svc := service.NewEwayBillService(postgres.NewEwayBillRepo(db), time.Now, log.Named("seed"))
	res, err := load(context.Background(), svc, rows, log)
	if err != nil {
		return err
	}
	log.Info("seed complete",
		zap.Int("created", res.created),
		zap.Int("duplicates", res.duplicates),
		zap.Int("invalid", res.invalid),
	)
	return nil
}

type loadResult struct {
	created    int
	duplicates int
	invalid    int
}

// load registers each row. Duplicates and rows that fail validation are
// logged and skipped; any other error stops the load.
func load(ctx context.Context, svc service.EwayBillService, rows []export.RegisterRow, log *zap.Logger) (loadResult, error) {
	var res loadResult
	for i := range rows {
		row := &rows[i]
		_, err := svc.Register(ctx, toInput(row))
		var vErr *freight.ValidationError
		switch {
		case err == nil:
			res.created++
		case errors.Is(err, domain.ErrDuplicateEwayBill):
			res.duplicates++
			log.Warn("e-way bill already registered", zap.Int("row", row.Row), zap.String("eway_bill_number", row.EwayBillNumber))
		case errors.As(err, &vErr):
			res.invalid++
			log.Warn("row rejected", zap.Int("row", row.Row), zap.String("field", vErr.Field), zap.String("reason", vErr.Message))
		default:
			return res, fmt.Errorf("row %d: %w", row.Row, err)
		}
	}
	return res, nil
}

// toInput prefers the validity column; the expiry column is only used when
// validity is blank.
func toInput(row *export.RegisterRow) *service.RegisterEwayBillInput {
	in := &service.RegisterEwayBillInput{
		LRNumber:        row.LRNumber,
		EwayBillNumber:  row.EwayBillNumber,
		VehicleNumber:   row.VehicleNumber,
		Consignor:       row.Consignor,
		Consignee:       row.Consignee,
		Origin:          row.Origin,
		Destination:     row.Destination,
		DistanceKm:      row.DistanceKm,
		GeneratedAt:     row.GeneratedAt,
		ValidityHours:   row.ValidityHours,
		DriverName:      row.DriverName,
		DriverPhone:     row.DriverPhone,
		CurrentLocation: row.CurrentLocation,
	}
	if row.ValidityHours == 0 {
		in.ExpiresAt = row.ExpiresAt
	}
	return in
}
