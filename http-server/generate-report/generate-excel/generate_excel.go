package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"workforce-admin/internal/screen"
	gen "workforce-admin/internal/service/generate-excel"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type GenerateExcelHandler interface {
	SalaryExcel(ctx context.Context, filter gen.Filter) ([]byte, error)
	StatisticsExcel(ctx context.Context, filter gen.Filter) ([]byte, error)
}

// SalaryReportExcel выгружает историю расчетов, ?history=all|{id}.
func SalaryReportExcel(log *slog.Logger, g GenerateExcelHandler) http.HandlerFunc {
	return report(log, g.SalaryExcel, "history", "Salary")
}

// StatisticsReportExcel выгружает статистику с учетом фильтра, ?employee=all|{id}.
func StatisticsReportExcel(log *slog.Logger, g GenerateExcelHandler) http.HandlerFunc {
	return report(log, g.StatisticsExcel, "employee", "Statistics")
}

func report(log *slog.Logger, build func(context.Context, gen.Filter) ([]byte, error), param, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateReportExcel"

		filter, err := screen.ParseEmployeeFilter(r.URL.Query().Get(param))
		if err != nil {
			http.Error(w, "invalid "+param, http.StatusBadRequest)
			return
		}

		// На Excel можно побольше времени
		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		excelBytes, err := build(ctx, gen.Filter{EmployeeID: int64(filter)})
		if err != nil {
			log.Error("failed to generate excel", slog.String("op", op), slog.String("report", name), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("%s_Report_%s.xlsx", name, time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		_, _ = w.Write(excelBytes)
	}
}
