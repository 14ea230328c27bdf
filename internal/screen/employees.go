package screen

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"workforce-admin/internal/storage"
)

type EmployeeStore interface {
	List(ctx context.Context) ([]storage.Employee, error)
	Create(ctx context.Context, in storage.EmployeeInput) (storage.Employee, error)
	Update(ctx context.Context, id int64, e storage.Employee) (storage.Employee, error)
	Delete(ctx context.Context, id int64) error
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Employees is the employee list with the add dialog and confirmed delete.
type Employees struct {
	state
	store EmployeeStore

	Rows          []storage.Employee    `json:"rows"`
	Form          storage.EmployeeInput `json:"form"`
	PendingDelete *storage.Employee     `json:"pendingDelete,omitempty"`
}

func NewEmployees(log *slog.Logger, store EmployeeStore) *Employees {
	return &Employees{
		state: state{log: log},
		store: store,
		Rows:  []storage.Employee{},
		Form:  NewEmployeeForm(),
	}
}

// NewEmployeeForm is the empty add dialog.
func NewEmployeeForm() storage.EmployeeInput {
	return storage.EmployeeInput{
		Position: storage.PositionOperator,
		Status:   storage.StatusActive,
	}
}

func (c *Employees) Load(ctx context.Context) {
	const op = "screen.Employees.Load"

	if err := fetchInto(ctx, c.store.List, &c.Rows); err != nil {
		c.fail(op, "Ошибка загрузки сотрудников", err)
	}
}

// Create checks the required names locally, then posts and refetches.
// On any failure the typed form is kept for another attempt.
func (c *Employees) Create(ctx context.Context, in storage.EmployeeInput) bool {
	const op = "screen.Employees.Create"

	in = normalizeEmployee(in)
	c.Form = in

	if err := validate.Struct(in); err != nil {
		c.log.Debug("employee form rejected", slog.String("op", op), slog.String("error", err.Error()))
		c.Error = "Пожалуйста, заполните фамилию и имя"
		return false
	}

	if !c.begin() {
		return false
	}
	defer c.end()

	if _, err := c.store.Create(ctx, in); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка добавления сотрудника"), err)
		return false
	}

	c.Form = NewEmployeeForm()
	c.succeed("Сотрудник добавлен")
	c.Load(ctx)

	return true
}

// Update sends a full replacement of the employee.
func (c *Employees) Update(ctx context.Context, e storage.Employee) bool {
	const op = "screen.Employees.Update"

	in := normalizeEmployee(storage.EmployeeInput{
		LastName: e.LastName, FirstName: e.FirstName, MiddleName: e.MiddleName,
		Position: e.Position, Status: e.Status,
	})
	if err := validate.Struct(in); err != nil {
		c.Error = "Пожалуйста, заполните фамилию и имя"
		return false
	}
	e.LastName, e.FirstName, e.MiddleName = in.LastName, in.FirstName, in.MiddleName
	e.Position, e.Status = in.Position, in.Status

	if !c.begin() {
		return false
	}
	defer c.end()

	if _, err := c.store.Update(ctx, e.ID, e); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка обновления сотрудника"), err)
		return false
	}

	c.succeed("Сотрудник обновлен")
	c.Load(ctx)

	return true
}

// RequestDelete opens the confirmation. An id that is not among the rows is
// still confirmed and sent; the backend decides.
func (c *Employees) RequestDelete(id int64) {
	if e, ok := findByID(c.Rows, id, func(e storage.Employee) int64 { return e.ID }); ok {
		c.PendingDelete = &e
		return
	}
	c.PendingDelete = &storage.Employee{ID: id}
}

func (c *Employees) CancelDelete() {
	c.PendingDelete = nil
}

func (c *Employees) ConfirmDelete(ctx context.Context) bool {
	const op = "screen.Employees.ConfirmDelete"

	if c.PendingDelete == nil || !c.begin() {
		return false
	}
	defer c.end()

	if err := c.store.Delete(ctx, c.PendingDelete.ID); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка удаления сотрудника"), err)
		return false
	}

	c.PendingDelete = nil
	c.succeed("Сотрудник удален")
	c.Load(ctx)

	return true
}

func (c *Employees) Page(number, size int) Page[storage.Employee] {
	return Paginate(c.Rows, number, size)
}

func normalizeEmployee(in storage.EmployeeInput) storage.EmployeeInput {
	in.LastName = strings.TrimSpace(in.LastName)
	in.FirstName = strings.TrimSpace(in.FirstName)
	if in.MiddleName != nil {
		m := strings.TrimSpace(*in.MiddleName)
		if m == "" {
			in.MiddleName = nil
		} else {
			in.MiddleName = &m
		}
	}
	if in.Position == "" {
		in.Position = storage.PositionOperator
	}
	if in.Status == "" {
		in.Status = storage.StatusActive
	}
	return in
}

// mutationMessage prefers what the backend said about a rejected payload.
func mutationMessage(err error, fallback string) string {
	if errors.Is(err, storage.ErrValidation) || errors.Is(err, storage.ErrNotFound) {
		if msg := storage.BackendMessage(err); msg != "" {
			return fallback + ": " + msg
		}
	}
	return fallback
}
