package screen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workforce-admin/internal/storage"
)

var march = time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

func newSalaryScreen() (*Salary, *MockSalaryStore, *MockEmployeeStore, *MockCoefficientStore) {
	salary := new(MockSalaryStore)
	employees := new(MockEmployeeStore)
	coefficients := new(MockCoefficientStore)
	return NewSalary(discardLogger(), salary, employees, coefficients, march), salary, employees, coefficients
}

func TestSalary_DefaultMonth(t *testing.T) {
	c, _, _, _ := newSalaryScreen()
	assert.Equal(t, "2024-03", c.Month)
}

func TestSalary_CalculateNormalizesPeriod(t *testing.T) {
	ctx := context.Background()
	c, salary, _, _ := newSalaryScreen()

	salary.On("Calculate", mock.Anything, int64(4), "2024-03-01").Return(storage.SalaryCalculation{ID: 1}, nil)
	salary.On("List", mock.Anything).Return([]storage.SalaryCalculation{{ID: 1, EmployeeID: 4, Period: "2024-03-01"}}, nil)

	require.True(t, c.Calculate(ctx, 4, "2024-03"))

	assert.Equal(t, "Зарплата успешно рассчитана", c.Success)
	assert.Empty(t, c.Error)
	assert.Len(t, c.Calculations, 1)
	assert.False(t, c.Busy)
	assert.Equal(t, []string{"Calculate", "List"}, methodsCalled(&salary.Mock))
}

func TestSalary_CalculateWithoutEmployee(t *testing.T) {
	c, salary, _, _ := newSalaryScreen()

	assert.False(t, c.Calculate(context.Background(), 0, "2024-03"))
	assert.Equal(t, "Выберите сотрудника", c.Error)
	salary.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSalary_CalculateInvalidMonth(t *testing.T) {
	c, salary, _, _ := newSalaryScreen()

	assert.False(t, c.Calculate(context.Background(), 4, "2024-13"))
	assert.Equal(t, "Некорректный период расчета", c.Error)
	salary.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSalary_CalculateShowsBackendMessage(t *testing.T) {
	c, salary, _, _ := newSalaryScreen()
	salary.On("Calculate", mock.Anything, int64(4), "2024-03-01").
		Return(nil, &storage.APIError{Status: 400, Message: "Нет статистики за период"})

	assert.False(t, c.Calculate(context.Background(), 4, ""))
	assert.Equal(t, "Нет статистики за период", c.Error)
	assert.Empty(t, c.Success)
	salary.AssertNotCalled(t, "List", mock.Anything)
}

func TestSalary_CalculateGenericFailure(t *testing.T) {
	c, salary, _, _ := newSalaryScreen()
	salary.On("Calculate", mock.Anything, int64(4), "2024-02-01").Return(nil, storage.ErrNetwork)

	assert.False(t, c.Calculate(context.Background(), 4, "2024-02"))
	assert.Equal(t, "Ошибка расчета зарплаты", c.Error)
	assert.Equal(t, "2024-02", c.Month)
}

func TestSalary_LoadHistoryByEmployee(t *testing.T) {
	c, salary, employees, coefficients := newSalaryScreen()

	employees.On("List", mock.Anything).Return([]storage.Employee{employee(4, "Петров", "Пётр")}, nil)
	coefficients.On("List", mock.Anything).Return(nil, storage.ErrNetwork)
	salary.On("ListByEmployee", mock.Anything, int64(4)).Return([]storage.SalaryCalculation{{ID: 2, EmployeeID: 4}}, nil)

	c.Load(context.Background(), EmployeeFilter(4))

	assert.Len(t, c.Employees, 1)
	assert.Empty(t, c.Coefficients)
	assert.Len(t, c.Calculations, 1)
	assert.Equal(t, EmployeeFilter(4), c.History)
	// без коэффициентов баннер не показывается
	assert.Empty(t, c.Error)
	salary.AssertNotCalled(t, "List", mock.Anything)
}

func TestSalary_CalculateRefreshesSelectedHistory(t *testing.T) {
	ctx := context.Background()
	c, salary, _, _ := newSalaryScreen()
	c.History = EmployeeFilter(4)

	salary.On("Calculate", mock.Anything, int64(4), "2024-03-01").Return(storage.SalaryCalculation{ID: 3}, nil)
	salary.On("ListByEmployee", mock.Anything, int64(4)).Return([]storage.SalaryCalculation{{ID: 3}}, nil)

	require.True(t, c.Calculate(ctx, 4, "2024-03"))
	assert.Equal(t, int64(4), c.SelectedEmployeeID)
	salary.AssertExpectations(t)
}
