package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/rs/cors"

	"workforce-admin/http-server/coefficients"
	"workforce-admin/http-server/employees"
	generate_excel "workforce-admin/http-server/generate-report/generate-excel"
	"workforce-admin/http-server/salary"
	"workforce-admin/http-server/shifts"
	"workforce-admin/http-server/statistics"
	"workforce-admin/internal/config"
	gen "workforce-admin/internal/service/generate-excel"
	"workforce-admin/internal/shell"
	"workforce-admin/internal/storage/rest"
)

func routes(cfg config.Config, log *slog.Logger, backend *rest.Storage, genService *gen.GenerateExcelService, rnd *shell.Renderer) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(httplog.RequestLogger(log, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/ping"))

	showEmployees := employees.Show(log, backend.Employees, rnd)
	router.Get("/", showEmployees)

	router.Route("/employees", func(r chi.Router) {
		r.Get("/", showEmployees)
		r.Post("/", employees.Create(log, backend.Employees, rnd))
		r.Post("/{id}", employees.Update(log, backend.Employees, rnd))
		r.Get("/{id}/delete", employees.RequestDelete(log, backend.Employees, rnd))
		r.Post("/{id}/delete", employees.ConfirmDelete(log, backend.Employees, rnd))
	})

	router.Route("/coefficients", func(r chi.Router) {
		r.Get("/", coefficients.Show(log, backend.Coefficients, rnd))
		r.Post("/", coefficients.Create(log, backend.Coefficients, rnd))
		r.Post("/{id}", coefficients.Save(log, backend.Coefficients, rnd))
		r.Get("/{id}/delete", coefficients.RequestDelete(log, backend.Coefficients, rnd))
		r.Post("/{id}/delete", coefficients.ConfirmDelete(log, backend.Coefficients, rnd))
	})

	shiftsProvider := shifts.Provider{Shifts: backend.Shifts, Breaks: backend.Breaks, Employees: backend.Employees}
	router.Route("/shifts", func(r chi.Router) {
		r.Get("/", shifts.Show(log, shiftsProvider, rnd))
		r.Post("/", shifts.Start(log, shiftsProvider, rnd))
		r.Post("/{id}/end", shifts.End(log, shiftsProvider, rnd))
		r.Get("/{id}/delete", shifts.RequestDelete(log, shiftsProvider, rnd))
		r.Post("/{id}/delete", shifts.ConfirmDelete(log, shiftsProvider, rnd))

		// перерывы
		r.Post("/{id}/breaks", shifts.StartBreak(log, shiftsProvider, rnd))
		r.Post("/breaks/{id}/end", shifts.EndBreak(log, shiftsProvider, rnd))
		r.Get("/breaks/{id}/delete", shifts.RequestBreakDelete(log, shiftsProvider, rnd))
		r.Post("/breaks/{id}/delete", shifts.ConfirmBreakDelete(log, shiftsProvider, rnd))
	})

	statisticsProvider := statistics.Provider{Statistics: backend.Statistics, Shifts: backend.Shifts, Employees: backend.Employees}
	router.Route("/statistics", func(r chi.Router) {
		r.Get("/", statistics.Show(log, statisticsProvider, rnd))
		r.Post("/", statistics.Create(log, statisticsProvider, rnd))
		r.Get("/export", generate_excel.StatisticsReportExcel(log, genService))
		r.Get("/{id}/delete", statistics.RequestDelete(log, statisticsProvider, rnd))
		r.Post("/{id}/delete", statistics.ConfirmDelete(log, statisticsProvider, rnd))
	})

	salaryProvider := salary.Provider{Salary: backend.Salary, Employees: backend.Employees, Coefficients: backend.Coefficients}
	router.Route("/salary", func(r chi.Router) {
		r.Get("/", salary.Show(log, salaryProvider, rnd))
		r.Post("/calculate", salary.Calculate(log, salaryProvider, rnd))
		r.Get("/export", generate_excel.SalaryReportExcel(log, genService))
	})

	return router
}
