package main

import (
	"log/slog"
	"net/http"
	"os"

	"workforce-admin/internal/config"
	"workforce-admin/internal/logger"
	generate_excel "workforce-admin/internal/service/generate-excel"
	"workforce-admin/internal/shell"
	"workforce-admin/internal/storage/rest"
)

func main() {
	cfg := config.MustConfig()

	log, closeLog := logger.New(cfg.Env, cfg.ErrorLog)
	defer closeLog()

	if err := run(cfg, log); err != nil {
		log.Error("admin console stopped", slog.String("error", err.Error()))
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	backend, err := rest.New(cfg.Backend, log)
	if err != nil {
		return err
	}

	rnd, err := shell.NewRenderer(log)
	if err != nil {
		return err
	}

	reports := generate_excel.NewGenerateService(backend.Salary, backend.Statistics, backend.Shifts)

	srv := &http.Server{
		Addr:        cfg.Address,
		Handler:     routes(*cfg, log, backend, reports, rnd),
		ReadTimeout: cfg.HTTPServer.Timeout,
		// экран ждёт несколько запросов к бэкенду подряд
		WriteTimeout: cfg.HTTPServer.Timeout + cfg.Backend.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	log.Info("admin console listening",
		slog.String("address", cfg.Address),
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Backend.BaseURL),
	)

	return srv.ListenAndServe()
}
