package rest

import (
	"context"
	"fmt"
	"net/http"

	"workforce-admin/internal/storage"
)

type StatisticEndpoint struct {
	t *Transport
}

func (e *StatisticEndpoint) List(ctx context.Context) ([]storage.OperatorStatistic, error) {
	return list[storage.OperatorStatistic](ctx, e.t, "/api/OperatorStatistics")
}

// ListByEmployee is filtered on the server.
func (e *StatisticEndpoint) ListByEmployee(ctx context.Context, employeeID int64) ([]storage.OperatorStatistic, error) {
	return list[storage.OperatorStatistic](ctx, e.t, fmt.Sprintf("/api/OperatorStatistics/employee/%d", employeeID))
}

func (e *StatisticEndpoint) Create(ctx context.Context, in storage.StatisticInput) (storage.OperatorStatistic, error) {
	var created storage.OperatorStatistic
	err := e.t.Do(ctx, http.MethodPost, "/api/OperatorStatistics", in, &created)
	return created, err
}

func (e *StatisticEndpoint) Delete(ctx context.Context, id int64) error {
	return e.t.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/OperatorStatistics/%d", id), nil, nil)
}

type SalaryEndpoint struct {
	t *Transport
}

// Calculate triggers the server-side computation. period is a yyyy-mm-dd date.
func (e *SalaryEndpoint) Calculate(ctx context.Context, employeeID int64, period string) (storage.SalaryCalculation, error) {
	var calc storage.SalaryCalculation
	body := storage.SalaryRequest{EmployeeID: employeeID, Period: period}
	err := e.t.Do(ctx, http.MethodPost, "/api/Salary/calculate", body, &calc)
	return calc, err
}

func (e *SalaryEndpoint) List(ctx context.Context) ([]storage.SalaryCalculation, error) {
	return list[storage.SalaryCalculation](ctx, e.t, "/api/Salary")
}

func (e *SalaryEndpoint) ListByEmployee(ctx context.Context, employeeID int64) ([]storage.SalaryCalculation, error) {
	return list[storage.SalaryCalculation](ctx, e.t, fmt.Sprintf("/api/Salary/employee/%d", employeeID))
}
