package rest

import (
	"context"
	"fmt"
	"net/http"

	"workforce-admin/internal/storage"
)

type ShiftEndpoint struct {
	t *Transport
}

func (e *ShiftEndpoint) List(ctx context.Context) ([]storage.WorkShift, error) {
	return list[storage.WorkShift](ctx, e.t, "/api/WorkShifts")
}

// Start opens a shift for the employee.
func (e *ShiftEndpoint) Start(ctx context.Context, employeeID int64) (storage.WorkShift, error) {
	var shift storage.WorkShift
	body := map[string]int64{"employeeId": employeeID}
	err := e.t.Do(ctx, http.MethodPost, "/api/WorkShifts/start", body, &shift)
	return shift, err
}

// End sets endDate on the shift; the server picks the time.
func (e *ShiftEndpoint) End(ctx context.Context, id int64) error {
	return e.t.Do(ctx, http.MethodPut, fmt.Sprintf("/api/WorkShifts/%d/end", id), nil, nil)
}

func (e *ShiftEndpoint) Delete(ctx context.Context, id int64) error {
	return e.t.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/WorkShifts/%d", id), nil, nil)
}

type BreakEndpoint struct {
	t *Transport
}

func (e *BreakEndpoint) List(ctx context.Context) ([]storage.Break, error) {
	return list[storage.Break](ctx, e.t, "/api/Breaks")
}

func (e *BreakEndpoint) Start(ctx context.Context, shiftID int64) (storage.Break, error) {
	var br storage.Break
	body := map[string]int64{"workShiftId": shiftID}
	err := e.t.Do(ctx, http.MethodPost, "/api/Breaks/start", body, &br)
	return br, err
}

func (e *BreakEndpoint) End(ctx context.Context, id int64) error {
	return e.t.Do(ctx, http.MethodPut, fmt.Sprintf("/api/Breaks/%d/end", id), nil, nil)
}

func (e *BreakEndpoint) Delete(ctx context.Context, id int64) error {
	return e.t.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/Breaks/%d", id), nil, nil)
}
