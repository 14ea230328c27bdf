package screen

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"workforce-admin/internal/service/enrich"
	"workforce-admin/internal/storage"
)

type StatisticStore interface {
	List(ctx context.Context) ([]storage.OperatorStatistic, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]storage.OperatorStatistic, error)
	Create(ctx context.Context, in storage.StatisticInput) (storage.OperatorStatistic, error)
	Delete(ctx context.Context, id int64) error
}

type ShiftLister interface {
	List(ctx context.Context) ([]storage.WorkShift, error)
}

// EmployeeFilter narrows statistics to one employee. Zero is "all".
type EmployeeFilter int64

const AllEmployees EmployeeFilter = 0

// ParseEmployeeFilter accepts "all", "" or an employee id.
func ParseEmployeeFilter(s string) (EmployeeFilter, error) {
	if s == "" || s == "all" {
		return AllEmployees, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return AllEmployees, fmt.Errorf("invalid employee filter %q", s)
	}
	return EmployeeFilter(id), nil
}

func (f EmployeeFilter) String() string {
	if f == AllEmployees {
		return "all"
	}
	return strconv.FormatInt(int64(f), 10)
}

// Statistics shows operator statistics joined with shifts on the client.
type Statistics struct {
	state
	stats     StatisticStore
	shifts    ShiftLister
	employees EmployeeLister

	// Rows always belong to Filter: a failed fetch keeps both unchanged.
	Filter    EmployeeFilter              `json:"filter"`
	Rows      []storage.OperatorStatistic `json:"-"`
	Shifts    []storage.WorkShift         `json:"shifts"`
	Employees []storage.Employee          `json:"employees"`

	PendingDelete *storage.OperatorStatistic `json:"pendingDelete,omitempty"`
}

func NewStatistics(log *slog.Logger, stats StatisticStore, shifts ShiftLister, employees EmployeeLister) *Statistics {
	return &Statistics{
		state:     state{log: log},
		stats:     stats,
		shifts:    shifts,
		employees: employees,
		Rows:      []storage.OperatorStatistic{},
		Shifts:    []storage.WorkShift{},
		Employees: []storage.Employee{},
	}
}

// Load fetches employees and shifts first, so the first join already sees the
// shifts, then statistics for filter.
func (c *Statistics) Load(ctx context.Context, filter EmployeeFilter) {
	const op = "screen.Statistics.Load"

	var shiftsErr, employeesErr error

	var g errgroup.Group
	g.Go(func() error {
		shiftsErr = fetchInto(ctx, c.shifts.List, &c.Shifts)
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
	if shiftsErr != nil {
		c.fail(op, "Ошибка загрузки смен", shiftsErr)
	}

	c.Select(ctx, filter)
}

// Select issues the fetch for filter: the whole collection for "all", the
// server-side employee filter otherwise. The result replaces every row.
func (c *Statistics) Select(ctx context.Context, filter EmployeeFilter) bool {
	const op = "screen.Statistics.Select"

	var (
		rows []storage.OperatorStatistic
		err  error
	)
	if filter == AllEmployees {
		rows, err = c.stats.List(ctx)
	} else {
		rows, err = c.stats.ListByEmployee(ctx, int64(filter))
	}
	if err != nil {
		c.fail(op, "Ошибка загрузки статистики", err)
		return false
	}

	c.Filter = filter
	c.Rows = enrich.StatisticsWithShifts(rows, c.Shifts)

	return true
}

func (c *Statistics) Create(ctx context.Context, in storage.StatisticInput) bool {
	const op = "screen.Statistics.Create"

	if in.EmployeeID == 0 || in.ParameterName == "" {
		c.Error = "Выберите сотрудника и укажите параметр"
		return false
	}
	if !c.begin() {
		return false
	}
	defer c.end()

	if _, err := c.stats.Create(ctx, in); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка добавления статистики"), err)
		return false
	}

	c.succeed("Статистика добавлена")
	c.Select(ctx, c.Filter)

	return true
}

func statisticIDOf(s storage.OperatorStatistic) int64 { return s.ID }

func (c *Statistics) RequestDelete(id int64) {
	if row, ok := findByID(c.Rows, id, statisticIDOf); ok {
		c.PendingDelete = &row
		return
	}
	c.PendingDelete = &storage.OperatorStatistic{ID: id}
}

func (c *Statistics) CancelDelete() {
	c.PendingDelete = nil
}

func (c *Statistics) ConfirmDelete(ctx context.Context) bool {
	const op = "screen.Statistics.ConfirmDelete"

	if c.PendingDelete == nil || !c.begin() {
		return false
	}
	defer c.end()

	if err := c.stats.Delete(ctx, c.PendingDelete.ID); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка удаления статистики"), err)
		return false
	}

	c.PendingDelete = nil
	c.succeed("Статистика удалена")
	c.Select(ctx, c.Filter)

	return true
}

func (c *Statistics) Page(number, size int) Page[storage.OperatorStatistic] {
	return Paginate(c.Rows, number, size)
}
