package employees

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"workforce-admin/internal/screen"
	"workforce-admin/internal/shell"
	"workforce-admin/internal/storage"
)

const page = "employees"

type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, status int, view any)
}

// View is the employees screen as rendered: the controller plus the visible page.
type View struct {
	*screen.Employees
	Page   screen.Page[storage.Employee] `json:"page"`
	EditID int64                         `json:"editId,omitempty"`
}

func (v View) IsEditing(id int64) bool {
	return v.EditID != 0 && v.EditID == id
}

func mount(ctx context.Context, log *slog.Logger, store screen.EmployeeStore) *screen.Employees {
	c := screen.NewEmployees(log, store)
	c.Load(ctx)
	return c
}

func respond(w http.ResponseWriter, r *http.Request, rnd Renderer, c *screen.Employees, ok bool, editID int64) {
	status := http.StatusOK
	if !ok {
		status = http.StatusUnprocessableEntity
	}
	number, size := shell.Paging(r)
	rnd.Render(w, r, page, status, View{Employees: c, Page: c.Page(number, size), EditID: editID})
}

func Show(log *slog.Logger, store screen.EmployeeStore, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mount(context.WithoutCancel(r.Context()), log, store)

		editID, _ := strconv.ParseInt(r.URL.Query().Get("edit"), 10, 64)
		respond(w, r, rnd, c, true, editID)
	}
}

func Create(log *slog.Logger, store screen.EmployeeStore, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.Create"

		in, err := decodeInput(r)
		if err != nil {
			log.Error("failed to decode request", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Неверный запрос", http.StatusBadRequest)
			return
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, store)
		ok := c.Create(ctx, in)

		respond(w, r, rnd, c, ok, 0)
	}
}

func Update(log *slog.Logger, store screen.EmployeeStore, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.Update"

		id, err := shell.URLID(r, "id")
		if err != nil {
			http.Error(w, "Неверный идентификатор", http.StatusBadRequest)
			return
		}

		in, err := decodeInput(r)
		if err != nil {
			log.Error("failed to decode request", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Неверный запрос", http.StatusBadRequest)
			return
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, store)
		ok := c.Update(ctx, storage.Employee{
			ID:         id,
			LastName:   in.LastName,
			FirstName:  in.FirstName,
			MiddleName: in.MiddleName,
			Position:   in.Position,
			Status:     in.Status,
		})

		editID := int64(0)
		if !ok {
			editID = id
		}
		respond(w, r, rnd, c, ok, editID)
	}
}

// RequestDelete renders the screen with the confirmation dialog open.
func RequestDelete(log *slog.Logger, store screen.EmployeeStore, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shell.URLID(r, "id")
		if err != nil {
			http.Error(w, "Неверный идентификатор", http.StatusBadRequest)
			return
		}

		c := mount(context.WithoutCancel(r.Context()), log, store)
		c.RequestDelete(id)

		respond(w, r, rnd, c, true, 0)
	}
}

func ConfirmDelete(log *slog.Logger, store screen.EmployeeStore, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shell.URLID(r, "id")
		if err != nil {
			http.Error(w, "Неверный идентификатор", http.StatusBadRequest)
			return
		}

		ctx := context.WithoutCancel(r.Context())
		c := mount(ctx, log, store)
		c.RequestDelete(id)
		ok := c.ConfirmDelete(ctx)

		respond(w, r, rnd, c, ok, 0)
	}
}

func decodeInput(r *http.Request) (storage.EmployeeInput, error) {
	var in storage.EmployeeInput

	if shell.IsJSON(r) {
		err := render.DecodeJSON(r.Body, &in)
		return in, err
	}

	if err := r.ParseForm(); err != nil {
		return in, err
	}
	in.LastName = shell.FormString(r, "lastName")
	in.FirstName = shell.FormString(r, "firstName")
	in.MiddleName = shell.FormOptional(r, "middleName")
	in.Position = storage.Position(shell.FormString(r, "position"))
	in.Status = storage.EmployeeStatus(shell.FormString(r, "status"))

	return in, nil
}
