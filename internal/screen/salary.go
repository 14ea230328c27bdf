package screen

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"workforce-admin/internal/service/period"
	"workforce-admin/internal/storage"
)

type SalaryStore interface {
	Calculate(ctx context.Context, employeeID int64, period string) (storage.SalaryCalculation, error)
	List(ctx context.Context) ([]storage.SalaryCalculation, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]storage.SalaryCalculation, error)
}

type CoefficientLister interface {
	List(ctx context.Context) ([]storage.CoefficientSetting, error)
}

// Salary triggers calculations and shows their history. Calculations are
// never edited here.
type Salary struct {
	state
	salary       SalaryStore
	employees    EmployeeLister
	coefficients CoefficientLister

	Employees    []storage.Employee           `json:"employees"`
	Coefficients []storage.CoefficientSetting `json:"coefficients"`
	Calculations []storage.SalaryCalculation  `json:"calculations"`

	SelectedEmployeeID int64          `json:"selectedEmployeeId,omitempty"`
	Month              string         `json:"month"`
	History            EmployeeFilter `json:"history"`
}

func NewSalary(log *slog.Logger, salary SalaryStore, employees EmployeeLister, coefficients CoefficientLister, now time.Time) *Salary {
	return &Salary{
		state:        state{log: log},
		salary:       salary,
		employees:    employees,
		coefficients: coefficients,
		Employees:    []storage.Employee{},
		Coefficients: []storage.CoefficientSetting{},
		Calculations: []storage.SalaryCalculation{},
		Month:        period.CurrentMonth(now),
	}
}

func (c *Salary) Load(ctx context.Context, history EmployeeFilter) {
	const op = "screen.Salary.Load"

	var employeesErr, coefficientsErr error

	var g errgroup.Group
	g.Go(func() error {
		employeesErr = fetchInto(ctx, c.employees.List, &c.Employees)
		return nil
	})
	g.Go(func() error {
		coefficientsErr = fetchInto(ctx, c.coefficients.List, &c.Coefficients)
		return nil
	})
	_ = g.Wait()

	if employeesErr != nil {
		c.fail(op, "Ошибка загрузки сотрудников", employeesErr)
	}
	if coefficientsErr != nil {
		// справочник коэффициентов вторичен, баннер не показываем
		c.log.Warn("coefficients not loaded", slog.String("op", op), slog.String("error", coefficientsErr.Error()))
	}

	c.SelectHistory(ctx, history)
}

// SelectHistory reloads the history for all employees or for one.
func (c *Salary) SelectHistory(ctx context.Context, history EmployeeFilter) bool {
	const op = "screen.Salary.SelectHistory"

	var (
		rows []storage.SalaryCalculation
		err  error
	)
	if history == AllEmployees {
		rows, err = c.salary.List(ctx)
	} else {
		rows, err = c.salary.ListByEmployee(ctx, int64(history))
	}
	if err != nil {
		c.fail(op, "Ошибка загрузки истории расчетов", err)
		return false
	}

	if rows == nil {
		rows = []storage.SalaryCalculation{}
	}
	c.History = history
	c.Calculations = rows

	return true
}

// Calculate sends the month picker value normalized to the first day of the month.
func (c *Salary) Calculate(ctx context.Context, employeeID int64, month string) bool {
	const op = "screen.Salary.Calculate"

	c.SelectedEmployeeID = employeeID
	if month != "" {
		c.Month = month
	}

	if employeeID == 0 {
		c.Error = "Выберите сотрудника"
		return false
	}

	periodDate, err := period.FirstOfMonth(c.Month)
	if err != nil {
		c.Error = "Некорректный период расчета"
		return false
	}

	if !c.begin() {
		return false
	}
	defer c.end()
	c.Error = ""

	if _, err := c.salary.Calculate(ctx, employeeID, periodDate); err != nil {
		msg := storage.BackendMessage(err)
		if msg == "" {
			msg = "Ошибка расчета зарплаты"
		}
		c.fail(op, msg, err)
		return false
	}

	c.succeed("Зарплата успешно рассчитана")
	c.SelectHistory(ctx, c.History)

	return true
}
