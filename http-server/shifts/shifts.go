package shifts

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"workforce-admin/internal/screen"
	"workforce-admin/internal/shell"
	"workforce-admin/internal/storage"
)

const page = "shifts"

type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, status int, view any)
}

// Provider is everything the shifts screen talks to.
type Provider struct {
	Shifts    screen.ShiftStore
	Breaks    screen.BreakStore
	Employees screen.EmployeeLister
}

type View struct {
	*screen.Shifts
	Page screen.Page[storage.WorkShift] `json:"page"`
}

func mount(ctx context.Context, log *slog.Logger, p Provider) *screen.Shifts {
	c := screen.NewShifts(log, p.Shifts, p.Breaks, p.Employees)
	c.Load(ctx)
	return c
}

func respond(w http.ResponseWriter, r *http.Request, rnd Renderer, c *screen.Shifts, ok bool) {
	status := http.StatusOK
	if !ok {
		status = http.StatusUnprocessableEntity
	}
	number, size := shell.Paging(r)
	rnd.Render(w, r, page, status, View{Shifts: c, Page: c.Page(number, size)})
}

// action is a POST on a shift or break id that mounts the screen and runs one mutation.
func action(log *slog.Logger, p Provider, rnd Renderer, run func(ctx context.Context, c *screen.Shifts, id int64) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shell.URLID(r, "id")
		if err != nil {
			http.Error(w, "Неверный идентификатор", http.StatusBadRequest)
			return
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, p)
		ok := run(ctx, c, id)

		respond(w, r, rnd, c, ok)
	}
}

func Show(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mount(context.WithoutCancel(r.Context()), log, p)
		respond(w, r, rnd, c, true)
	}
}

func Start(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.shifts.Start"

		var req struct {
			EmployeeID int64 `json:"employeeId"`
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
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, p)
		ok := c.Start(ctx, req.EmployeeID)

		respond(w, r, rnd, c, ok)
	}
}

func End(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return action(log, p, rnd, func(ctx context.Context, c *screen.Shifts, id int64) bool {
		return c.End(ctx, id)
	})
}

func RequestDelete(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return action(log, p, rnd, func(_ context.Context, c *screen.Shifts, id int64) bool {
		c.RequestDelete(id)
		return true
	})
}

func ConfirmDelete(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return action(log, p, rnd, func(ctx context.Context, c *screen.Shifts, id int64) bool {
		c.RequestDelete(id)
		return c.ConfirmDelete(ctx)
	})
}

// StartBreak opens a break on the shift {id}.
func StartBreak(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return action(log, p, rnd, func(ctx context.Context, c *screen.Shifts, id int64) bool {
		return c.StartBreak(ctx, id)
	})
}

func EndBreak(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return action(log, p, rnd, func(ctx context.Context, c *screen.Shifts, id int64) bool {
		return c.EndBreak(ctx, id)
	})
}

func RequestBreakDelete(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return action(log, p, rnd, func(_ context.Context, c *screen.Shifts, id int64) bool {
		c.RequestBreakDelete(id)
		return true
	})
}

func ConfirmBreakDelete(log *slog.Logger, p Provider, rnd Renderer) http.HandlerFunc {
	return action(log, p, rnd, func(ctx context.Context, c *screen.Shifts, id int64) bool {
		c.RequestBreakDelete(id)
		return c.ConfirmBreakDelete(ctx)
	})
}
