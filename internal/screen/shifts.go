package screen

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"workforce-admin/internal/storage"
)

type ShiftStore interface {
	List(ctx context.Context) ([]storage.WorkShift, error)
	Start(ctx context.Context, employeeID int64) (storage.WorkShift, error)
	End(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type BreakStore interface {
	List(ctx context.Context) ([]storage.Break, error)
	Start(ctx context.Context, shiftID int64) (storage.Break, error)
	End(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type EmployeeLister interface {
	List(ctx context.Context) ([]storage.Employee, error)
}

// Shifts lists work shifts with their breaks and the employees for the start dialog.
type Shifts struct {
	state
	shifts    ShiftStore
	breaks    BreakStore
	employees EmployeeLister

	Rows      []storage.WorkShift `json:"rows"`
	Breaks    []storage.Break     `json:"breaks"`
	Employees []storage.Employee  `json:"employees"`

	PendingDelete      *storage.WorkShift `json:"pendingDelete,omitempty"`
	PendingBreakDelete *storage.Break     `json:"pendingBreakDelete,omitempty"`
}

func NewShifts(log *slog.Logger, shifts ShiftStore, breaks BreakStore, employees EmployeeLister) *Shifts {
	return &Shifts{
		state:     state{log: log},
		shifts:    shifts,
		breaks:    breaks,
		employees: employees,
		Rows:      []storage.WorkShift{},
		Breaks:    []storage.Break{},
		Employees: []storage.Employee{},
	}
}

// Load fetches the three lists concurrently. A failing list keeps its old rows
// and does not stop the others.
func (c *Shifts) Load(ctx context.Context) {
	const op = "screen.Shifts.Load"

	var shiftsErr, breaksErr, employeesErr error

	var g errgroup.Group
	g.Go(func() error {
		shiftsErr = fetchInto(ctx, c.shifts.List, &c.Rows)
		return nil
	})
	g.Go(func() error {
		breaksErr = fetchInto(ctx, c.breaks.List, &c.Breaks)
		return nil
	})
	g.Go(func() error {
		employeesErr = fetchInto(ctx, c.employees.List, &c.Employees)
		return nil
	})
	_ = g.Wait()

	if employeesErr != nil {
		c.fail(op, "Ошибка загрузки сотрудников", employeesErr)
	}
	if breaksErr != nil {
		c.fail(op, "Ошибка загрузки перерывов", breaksErr)
	}
	if shiftsErr != nil {
		c.fail(op, "Ошибка загрузки смен", shiftsErr)
	}
}

func (c *Shifts) loadShifts(ctx context.Context) {
	const op = "screen.Shifts.loadShifts"

	if err := fetchInto(ctx, c.shifts.List, &c.Rows); err != nil {
		c.fail(op, "Ошибка загрузки смен", err)
	}
}

func (c *Shifts) loadBreaks(ctx context.Context) {
	const op = "screen.Shifts.loadBreaks"

	if err := fetchInto(ctx, c.breaks.List, &c.Breaks); err != nil {
		c.fail(op, "Ошибка загрузки перерывов", err)
	}
}

func shiftIDOf(s storage.WorkShift) int64 { return s.ID }
func breakIDOf(b storage.Break) int64     { return b.ID }

// Start opens a shift. Without a selected employee nothing is sent.
func (c *Shifts) Start(ctx context.Context, employeeID int64) bool {
	const op = "screen.Shifts.Start"

	if employeeID == 0 {
		c.Error = "Выберите сотрудника"
		return false
	}
	if !c.begin() {
		return false
	}
	defer c.end()

	if _, err := c.shifts.Start(ctx, employeeID); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка начала смены"), err)
		return false
	}

	c.succeed("Смена начата")
	c.loadShifts(ctx)

	return true
}

// End closes an open shift. A row already known to be closed is left alone.
func (c *Shifts) End(ctx context.Context, id int64) bool {
	const op = "screen.Shifts.End"

	if row, ok := findByID(c.Rows, id, shiftIDOf); ok && !row.InProgress() {
		c.Error = "Смена уже завершена"
		return false
	}
	if !c.begin() {
		return false
	}
	defer c.end()

	if err := c.shifts.End(ctx, id); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка завершения смены"), err)
		return false
	}

	c.succeed("Смена завершена")
	c.loadShifts(ctx)

	return true
}

func (c *Shifts) RequestDelete(id int64) {
	if row, ok := findByID(c.Rows, id, shiftIDOf); ok {
		c.PendingDelete = &row
		return
	}
	c.PendingDelete = &storage.WorkShift{ID: id}
}

func (c *Shifts) CancelDelete() {
	c.PendingDelete = nil
}

func (c *Shifts) ConfirmDelete(ctx context.Context) bool {
	const op = "screen.Shifts.ConfirmDelete"

	if c.PendingDelete == nil || !c.begin() {
		return false
	}
	defer c.end()

	if err := c.shifts.Delete(ctx, c.PendingDelete.ID); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка удаления смены"), err)
		return false
	}

	c.PendingDelete = nil
	c.succeed("Смена удалена")
	c.loadShifts(ctx)
	c.loadBreaks(ctx)

	return true
}

// BreaksOf returns the breaks recorded for a shift.
func (c *Shifts) BreaksOf(shiftID int64) []storage.Break {
	var out []storage.Break
	for _, b := range c.Breaks {
		if b.ShiftID == shiftID {
			out = append(out, b)
		}
	}
	return out
}

// StartBreak opens a break on an open shift.
func (c *Shifts) StartBreak(ctx context.Context, shiftID int64) bool {
	const op = "screen.Shifts.StartBreak"

	if row, ok := findByID(c.Rows, shiftID, shiftIDOf); ok && !row.InProgress() {
		c.Error = "Смена уже завершена"
		return false
	}
	if !c.begin() {
		return false
	}
	defer c.end()

	if _, err := c.breaks.Start(ctx, shiftID); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка начала перерыва"), err)
		return false
	}

	c.succeed("Перерыв начат")
	c.loadBreaks(ctx)

	return true
}

func (c *Shifts) EndBreak(ctx context.Context, id int64) bool {
	const op = "screen.Shifts.EndBreak"

	if row, ok := findByID(c.Breaks, id, breakIDOf); ok && !row.InProgress() {
		c.Error = "Перерыв уже завершен"
		return false
	}
	if !c.begin() {
		return false
	}
	defer c.end()

	if err := c.breaks.End(ctx, id); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка завершения перерыва"), err)
		return false
	}

	c.succeed("Перерыв завершен")
	c.loadBreaks(ctx)

	return true
}

func (c *Shifts) RequestBreakDelete(id int64) {
	if row, ok := findByID(c.Breaks, id, breakIDOf); ok {
		c.PendingBreakDelete = &row
		return
	}
	c.PendingBreakDelete = &storage.Break{ID: id}
}

func (c *Shifts) CancelBreakDelete() {
	c.PendingBreakDelete = nil
}

func (c *Shifts) ConfirmBreakDelete(ctx context.Context) bool {
	const op = "screen.Shifts.ConfirmBreakDelete"

	if c.PendingBreakDelete == nil || !c.begin() {
		return false
	}
	defer c.end()

	if err := c.breaks.Delete(ctx, c.PendingBreakDelete.ID); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка удаления перерыва"), err)
		return false
	}

	c.PendingBreakDelete = nil
	c.succeed("Перерыв удален")
	c.loadBreaks(ctx)

	return true
}

func (c *Shifts) Page(number, size int) Page[storage.WorkShift] {
	return Paginate(c.Rows, number, size)
}
