package statistics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"workforce-admin/internal/constants"
	"workforce-admin/internal/screen"
	"workforce-admin/internal/shell"
	"workforce-admin/internal/storage"
)

const page = "statistics"

type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, status int, view any)
}

type Provider struct {
	Statistics screen.StatisticStore
	Shifts     screen.ShiftLister
	Employees  screen.EmployeeLister
}

// Row is a statistic with the client-side shift attached. The entity itself
// never serializes the shift, so the view does it.
type Row struct {
	storage.OperatorStatistic
	WorkShift *storage.WorkShift `json:"workShift,omitempty"`
	Shift     string             `json:"shift"`
}

type View struct {
	*screen.Statistics
	All  []Row            `json:"rows"`
	Page screen.Page[Row] `json:"page"`
}

func newView(c *screen.Statistics, number, size int) View {
	all := make([]Row, 0, len(c.Rows))
	for _, s := range c.Rows {
		all = append(all, Row{OperatorStatistic: s, WorkShift: s.WorkShift, Shift: constants.ShiftLabel(s.WorkShift)})
	}
	return View{Statistics: c, All: all, Page: screen.Paginate(all, number, size)}
}

// filterFrom reads ?employee=; a bad value is a client error.
func filterFrom(w http.ResponseWriter, r *http.Request) (screen.EmployeeFilter, bool) {
	filter, err := screen.ParseEmployeeFilter(r.URL.Query().Get("employee"))
	if err != nil {
		http.Error(w, "Неверный фильтр сотрудника", http.StatusBadRequest)
		return 0, false
	}
	return filter, true
}

func mount(ctx context.Context, log *slog.Logger, p Provider, filter screen.EmployeeFilter) *screen.Statistics {
	c := screen.NewStatistics(log, p.Statistics, p.Shifts, p.Employees)
	c.Load(ctx, filter)
	return c
}

func respond(w http.ResponseWriter, r *http.Request, rnd Renderer, c *screen.Statistics, ok bool) {
	status := http.StatusOK
	if !ok {
		status = http.StatusUnprocessableEntity
	}
	number, size := shell.Paging(r)
	rnd.Render(w, r, page, status, newView(c, number, size))
}

// Show mounts the screen for the requested filter. Changing the filter in the
// browser is a new GET, so every change issues its own fetch.
func Show(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := filterFrom(w, r)
		if !ok {
			return
		}

		c := mount(context.WithoutCancel(r.Context()), log, p, filter)
		respond(w, r, rnd, c, true)
	}
}

func Create(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.statistics.Create"

		filter, ok := filterFrom(w, r)
		if !ok {
			return
		}

		in, err := decodeInput(r)
		if err != nil {
			log.Error("failed to decode request", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Неверный запрос", http.StatusBadRequest)
			return
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, p, filter)
		ok = c.Create(ctx, in)

		respond(w, r, rnd, c, ok)
	}
}

func RequestDelete(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shell.URLID(r, "id")
		if err != nil {
			http.Error(w, "Неверный идентификатор", http.StatusBadRequest)
			return
		}
		filter, ok := filterFrom(w, r)
		if !ok {
			return
		}

		c := mount(context.WithoutCancel(r.Context()), log, p, filter)
		c.RequestDelete(id)

		respond(w, r, rnd, c, true)
	}
}

func ConfirmDelete(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shell.URLID(r, "id")
		if err != nil {
			http.Error(w, "Неверный идентификатор", http.StatusBadRequest)
			return
		}
		filter, ok := filterFrom(w, r)
		if !ok {
			return
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, p, filter)
		c.RequestDelete(id)
		ok = c.ConfirmDelete(ctx)

		respond(w, r, rnd, c, ok)
	}
}

func decodeInput(r *http.Request) (storage.StatisticInput, error) {
	var in storage.StatisticInput

	if shell.IsJSON(r) {
		if err := render.DecodeJSON(r.Body, &in); err != nil {
			return in, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return in, err
		}
		in.EmployeeID = shell.FormInt64(r, "employeeId")
		in.ShiftID = shell.FormInt64(r, "shiftId")
		in.ParameterName = shell.FormString(r, "parameterName")

		value, err := shell.FormFloat(r, "value")
		if err != nil {
			return in, err
		}
		in.Value = value

		if d := shell.FormString(r, "date"); d != "" {
			date, err := storage.ParseTimestamp(d)
			if err != nil {
				return in, err
			}
			in.Date = date
		}
	}

	if in.Date.IsZero() {
		in.Date = storage.NewTimestamp(time.Now())
	}

	return in, nil
}
