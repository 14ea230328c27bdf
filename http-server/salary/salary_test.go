package salary

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workforce-admin/internal/shell"
	"workforce-admin/internal/storage"
)

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

type MockEmployeeLister struct{ mock.Mock }

func (m *MockEmployeeLister) List(ctx context.Context) ([]storage.Employee, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]storage.Employee)
	return rows, args.Error(1)
}

type MockCoefficientLister struct{ mock.Mock }

func (m *MockCoefficientLister) List(ctx context.Context) ([]storage.CoefficientSetting, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]storage.CoefficientSetting)
	return rows, args.Error(1)
}

type viewResponse struct {
	Month        string                       `json:"month"`
	History      int64                        `json:"history"`
	Calculations []storage.SalaryCalculation  `json:"calculations"`
	Coefficients []storage.CoefficientSetting `json:"coefficients"`
	Error        string                       `json:"error"`
	Success      string                       `json:"success"`
}

type fixture struct {
	salary       *MockSalaryStore
	employees    *MockEmployeeLister
	coefficients *MockCoefficientLister
	handler      http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	Now = func() time.Time { return time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { Now = time.Now })

	f := &fixture{
		salary:       new(MockSalaryStore),
		employees:    new(MockEmployeeLister),
		coefficients: new(MockCoefficientLister),
	}
	p := Provider{Salary: f.salary, Employees: f.employees, Coefficients: f.coefficients}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	rnd, err := shell.NewRenderer(log)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/salary", Show(log, p, rnd))
	r.Post("/salary/calculate", Calculate(log, p, rnd))
	f.handler = r

	f.employees.On("List", mock.Anything).Return([]storage.Employee{{ID: 4, LastName: "Петров", FirstName: "Пётр"}}, nil)
	f.coefficients.On("List", mock.Anything).Return([]storage.CoefficientSetting{{ID: 1, ParameterName: "Звонки"}}, nil)

	return f
}

func (f *fixture) doJSON(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, viewResponse) {
	t.Helper()

	req.Header.Set("Accept", "application/json")
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)

	var resp viewResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	return rr, resp
}

func salaryRow(t *testing.T, raw string) storage.SalaryCalculation {
	t.Helper()
	var s storage.SalaryCalculation
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

func TestShow_DefaultsAndHistory(t *testing.T) {
	f := newFixture(t)
	f.salary.On("List", mock.Anything).Return([]storage.SalaryCalculation{
		salaryRow(t, `{"id":1,"employeeId":4,"period":"2024-02-01","result":1000}`),
	}, nil)

	rr, resp := f.doJSON(t, httptest.NewRequest(http.MethodGet, "/salary", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2024-03", resp.Month)
	assert.Len(t, resp.Coefficients, 1)
	require.Len(t, resp.Calculations, 1)
	assert.Equal(t, "2024-02-01", resp.Calculations[0].Period)
}

func TestShow_HTMLNoData(t *testing.T) {
	f := newFixture(t)
	f.salary.On("ListByEmployee", mock.Anything, int64(4)).Return([]storage.SalaryCalculation{}, nil)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/salary?history=4", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Нет данных")
	assert.Contains(t, body, `value="2024-03"`)
	assert.Contains(t, body, "Расчет ЗП")
}

func TestShow_HTMLRendersBothFieldNames(t *testing.T) {
	f := newFixture(t)
	f.salary.On("List", mock.Anything).Return([]storage.SalaryCalculation{
		salaryRow(t, `{"id":1,"employeeId":4,"period":"2024-02-01","result":1000}`),
		salaryRow(t, `{"id":2,"employeeId":4,"calculationPeriod":"2024-01-01","finalResult":99.5}`),
	}, nil)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/salary", nil))

	body := rr.Body.String()
	assert.Contains(t, body, "1000.00")
	assert.Contains(t, body, "99.50")
	assert.Contains(t, body, "2024-01-01")
}

func TestCalculate_Form(t *testing.T) {
	f := newFixture(t)
	f.salary.On("List", mock.Anything).Return([]storage.SalaryCalculation{}, nil)
	f.salary.On("Calculate", mock.Anything, int64(4), "2024-03-01").Return(storage.SalaryCalculation{ID: 5}, nil)

	form := url.Values{"employeeId": {"4"}, "month": {"2024-03"}}
	req := httptest.NewRequest(http.MethodPost, "/salary/calculate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr, resp := f.doJSON(t, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Зарплата успешно рассчитана", resp.Success)
	f.salary.AssertExpectations(t)
}

func TestCalculate_BackendMessage(t *testing.T) {
	f := newFixture(t)
	f.salary.On("List", mock.Anything).Return([]storage.SalaryCalculation{}, nil)
	f.salary.On("Calculate", mock.Anything, int64(4), "2024-02-01").
		Return(nil, &storage.APIError{Status: 400, Message: "Нет статистики за период"})

	req := httptest.NewRequest(http.MethodPost, "/salary/calculate", strings.NewReader(`{"employeeId":4,"month":"2024-02"}`))
	req.Header.Set("Content-Type", "application/json")

	rr, resp := f.doJSON(t, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Нет статистики за период", resp.Error)
	assert.Equal(t, "2024-02", resp.Month)
}

func TestCalculate_NoEmployee(t *testing.T) {
	f := newFixture(t)
	f.salary.On("List", mock.Anything).Return([]storage.SalaryCalculation{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/salary/calculate", strings.NewReader(`{"month":"2024-02"}`))
	req.Header.Set("Content-Type", "application/json")

	rr, resp := f.doJSON(t, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Выберите сотрудника", resp.Error)
	f.salary.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything, mock.Anything)
}
