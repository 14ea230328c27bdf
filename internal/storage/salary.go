package storage

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SalaryCalculation is created only by the calculate action and never edited.
//
// Разные версии бэкенда называют поля по-разному: period/calculationPeriod и
// result/finalResult. Оба варианта сводятся к Period и Result при декодировании.
type SalaryCalculation struct {
	ID              int64
	EmployeeID      int64
	Period          string
	Result          decimal.Decimal
	CalculationDate Timestamp
	Employee        *Employee
}

type salaryCalculationWire struct {
	ID                int64            `json:"id"`
	EmployeeID        int64            `json:"employeeId"`
	Period            string           `json:"period,omitempty"`
	CalculationPeriod string           `json:"calculationPeriod,omitempty"`
	Result            *decimal.Decimal `json:"result,omitempty"`
	FinalResult       *decimal.Decimal `json:"finalResult,omitempty"`
	CalculationDate   Timestamp        `json:"calculationDate"`
	Employee          *Employee        `json:"employee,omitempty"`
}

func (s *SalaryCalculation) UnmarshalJSON(b []byte) error {
	var w salaryCalculationWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*s = SalaryCalculation{
		ID:              w.ID,
		EmployeeID:      w.EmployeeID,
		Period:          w.Period,
		CalculationDate: w.CalculationDate,
		Employee:        w.Employee,
	}

	if s.Period == "" {
		s.Period = w.CalculationPeriod
	}

	// старое поле приоритетнее, пока оно не пустое
	switch {
	case w.Result != nil && !w.Result.IsZero():
		s.Result = *w.Result
	case w.FinalResult != nil:
		s.Result = *w.FinalResult
	case w.Result != nil:
		s.Result = *w.Result
	}

	return nil
}

// MarshalJSON writes the current field names.
func (s SalaryCalculation) MarshalJSON() ([]byte, error) {
	result := s.Result
	return json.Marshal(salaryCalculationWire{
		ID:                s.ID,
		EmployeeID:        s.EmployeeID,
		CalculationPeriod: s.Period,
		FinalResult:       &result,
		CalculationDate:   s.CalculationDate,
		Employee:          s.Employee,
	})
}

// CalculationPeriod and FinalResult are accessors under the newer field names.
func (s SalaryCalculation) CalculationPeriod() string {
	return s.Period
}

func (s SalaryCalculation) FinalResult() decimal.Decimal {
	return s.Result
}

// PeriodLabel falls back to a placeholder when the backend sent no period.
func (s SalaryCalculation) PeriodLabel() string {
	if s.Period == "" {
		return "Период"
	}
	return s.Period
}

// ResultLabel renders the result with two decimals.
func (s SalaryCalculation) ResultLabel() string {
	return s.Result.StringFixed(2)
}

// SalaryRequest is the body of POST /api/Salary/calculate.
type SalaryRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Period     string `json:"period"`
}
