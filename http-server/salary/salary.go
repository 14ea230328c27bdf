package salary

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"workforce-admin/internal/screen"
	"workforce-admin/internal/shell"
)

const page = "salary"

type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, status int, view any)
}

type Provider struct {
	Salary       screen.SalaryStore
	Employees    screen.EmployeeLister
	Coefficients screen.CoefficientLister
}

// Now is the clock the month picker defaults from.
var Now = time.Now

func historyFrom(w http.ResponseWriter, r *http.Request) (screen.EmployeeFilter, bool) {
	history, err := screen.ParseEmployeeFilter(r.URL.Query().Get("history"))
	if err != nil {
		http.Error(w, "Неверный фильтр сотрудника", http.StatusBadRequest)
		return 0, false
	}
	return history, true
}

func mount(ctx context.Context, log *slog.Logger, p Provider, history screen.EmployeeFilter) *screen.Salary {
	c := screen.NewSalary(log, p.Salary, p.Employees, p.Coefficients, Now())
	c.Load(ctx, history)
	return c
}

func Show(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, ok := historyFrom(w, r)
		if !ok {
			return
		}

		c := mount(context.WithoutCancel(r.Context()), log, p, history)
		rnd.Render(w, r, page, http.StatusOK, c)
	}
}

// Calculate accepts employeeId and a "yyyy-mm" month.
func Calculate(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.salary.Calculate"

		history, ok := historyFrom(w, r)
		if !ok {
			return
		}

		var req struct {
			EmployeeID int64  `json:"employeeId"`
			Month      string `json:"month"`
		}
		if shell.IsJSON(r) {
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				log.Error("failed to decode request", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Неверный запрос", http.StatusBadRequest)
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Неверный запрос", http.StatusBadRequest)
				return
			}
			req.EmployeeID = shell.FormInt64(r, "employeeId")
			req.Month = shell.FormString(r, "month")
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, p, history)

		status := http.StatusOK
		if !c.Calculate(ctx, req.EmployeeID, req.Month) {
			status = http.StatusUnprocessableEntity
		}

		rnd.Render(w, r, page, status, c)
	}
}
