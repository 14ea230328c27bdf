package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"workforce-admin/internal/config"
	"workforce-admin/internal/storage"
)

// Storage groups one endpoint per backend resource over a shared transport.
type Storage struct {
	Employees    *EmployeeEndpoint
	Coefficients *CoefficientEndpoint
	Shifts       *ShiftEndpoint
	Breaks       *BreakEndpoint
	Statistics   *StatisticEndpoint
	Salary       *SalaryEndpoint
}

func New(cfg config.Backend, log *slog.Logger) (*Storage, error) {
	const op = "storage.rest.New"

	t, err := NewTransport(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewWithTransport(t), nil
}

func NewWithTransport(t *Transport) *Storage {
	return &Storage{
		Employees:    &EmployeeEndpoint{crud[storage.Employee, storage.EmployeeInput]{t: t, path: "/api/employees"}},
		Coefficients: &CoefficientEndpoint{crud[storage.CoefficientSetting, storage.CoefficientInput]{t: t, path: "/api/coefficientsettings"}},
		Shifts:       &ShiftEndpoint{t: t},
		Breaks:       &BreakEndpoint{t: t},
		Statistics:   &StatisticEndpoint{t: t},
		Salary:       &SalaryEndpoint{t: t},
	}
}

// crud covers resources with plain list/create/update/delete routes.
type crud[T, In any] struct {
	t    *Transport
	path string
}

func (c crud[T, In]) List(ctx context.Context) ([]T, error) {
	return list[T](ctx, c.t, c.path)
}

func (c crud[T, In]) Create(ctx context.Context, in In) (T, error) {
	var created T
	if err := c.t.Do(ctx, http.MethodPost, c.path, in, &created); err != nil {
		return created, err
	}
	return created, nil
}

// Update is a full replacement. A 204 answer yields the submitted record.
func (c crud[T, In]) Update(ctx context.Context, id int64, e T) (T, error) {
	updated := e
	if err := c.t.Do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", c.path, id), e, &updated); err != nil {
		return e, err
	}
	return updated, nil
}

func (c crud[T, In]) Delete(ctx context.Context, id int64) error {
	return c.t.Do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", c.path, id), nil, nil)
}

func list[T any](ctx context.Context, t *Transport, path string) ([]T, error) {
	var items []T
	if err := t.Do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

type EmployeeEndpoint struct {
	crud[storage.Employee, storage.EmployeeInput]
}

type CoefficientEndpoint struct {
	crud[storage.CoefficientSetting, storage.CoefficientInput]
}
