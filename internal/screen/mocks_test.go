package screen

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"workforce-admin/internal/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockEmployeeStore struct{ mock.Mock }

func (m *MockEmployeeStore) List(ctx context.Context) ([]storage.Employee, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]storage.Employee)
	return rows, args.Error(1)
}

func (m *MockEmployeeStore) Create(ctx context.Context, in storage.EmployeeInput) (storage.Employee, error) {
	args := m.Called(ctx, in)
	e, _ := args.Get(0).(storage.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeStore) Update(ctx context.Context, id int64, e storage.Employee) (storage.Employee, error) {
	args := m.Called(ctx, id, e)
	out, _ := args.Get(0).(storage.Employee)
	return out, args.Error(1)
}

func (m *MockEmployeeStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCoefficientStore struct{ mock.Mock }

func (m *MockCoefficientStore) List(ctx context.Context) ([]storage.CoefficientSetting, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]storage.CoefficientSetting)
	return rows, args.Error(1)
}

func (m *MockCoefficientStore) Create(ctx context.Context, in storage.CoefficientInput) (storage.CoefficientSetting, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(storage.CoefficientSetting)
	return s, args.Error(1)
}

func (m *MockCoefficientStore) Update(ctx context.Context, id int64, s storage.CoefficientSetting) (storage.CoefficientSetting, error) {
	args := m.Called(ctx, id, s)
	out, _ := args.Get(0).(storage.CoefficientSetting)
	return out, args.Error(1)
}

func (m *MockCoefficientStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockShiftStore struct{ mock.Mock }

func (m *MockShiftStore) List(ctx context.Context) ([]storage.WorkShift, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]storage.WorkShift)
	return rows, args.Error(1)
}

func (m *MockShiftStore) Start(ctx context.Context, employeeID int64) (storage.WorkShift, error) {
	args := m.Called(ctx, employeeID)
	s, _ := args.Get(0).(storage.WorkShift)
	return s, args.Error(1)
}

func (m *MockShiftStore) End(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockShiftStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockBreakStore struct{ mock.Mock }

func (m *MockBreakStore) List(ctx context.Context) ([]storage.Break, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]storage.Break)
	return rows, args.Error(1)
}

func (m *MockBreakStore) Start(ctx context.Context, shiftID int64) (storage.Break, error) {
	args := m.Called(ctx, shiftID)
	b, _ := args.Get(0).(storage.Break)
	return b, args.Error(1)
}

func (m *MockBreakStore) End(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBreakStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockStatisticStore struct{ mock.Mock }

func (m *MockStatisticStore) List(ctx context.Context) ([]storage.OperatorStatistic, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]storage.OperatorStatistic)
	return rows, args.Error(1)
}

func (m *MockStatisticStore) ListByEmployee(ctx context.Context, employeeID int64) ([]storage.OperatorStatistic, error) {
	args := m.Called(ctx, employeeID)
	rows, _ := args.Get(0).([]storage.OperatorStatistic)
	return rows, args.Error(1)
}

func (m *MockStatisticStore) Create(ctx context.Context, in storage.StatisticInput) (storage.OperatorStatistic, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(storage.OperatorStatistic)
	return s, args.Error(1)
}

func (m *MockStatisticStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSalaryStore struct{ mock.Mock }

func (m *MockSalaryStore) Calculate(ctx context.Context, employeeID int64, period string) (storage.SalaryCalculation, error) {
	args := m.Called(ctx, employeeID, period)
	s, _ := args.Get(0).(storage.SalaryCalculation)
	return s, args.Error(1)
}

func (m *MockSalaryStore) List(ctx context.Context) ([]storage.SalaryCalculation, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]storage.SalaryCalculation)
	return rows, args.Error(1)
}

func (m *MockSalaryStore) ListByEmployee(ctx context.Context, employeeID int64) ([]storage.SalaryCalculation, error) {
	args := m.Called(ctx, employeeID)
	rows, _ := args.Get(0).([]storage.SalaryCalculation)
	return rows, args.Error(1)
}

// methodsCalled lists mock method names in call order.
func methodsCalled(m *mock.Mock) []string {
	var names []string
	for _, c := range m.Calls {
		names = append(names, c.Method)
	}
	return names
}
