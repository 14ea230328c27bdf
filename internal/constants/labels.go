package constants

import (
	"fmt"

	"workforce-admin/internal/storage"
)

var (
	Positions = map[storage.Position]string{
		storage.PositionOperator:       "Оператор",
		storage.PositionSeniorOperator: "Старший оператор",
		storage.PositionSuperOperator:  "Супероператор",
		storage.PositionManager:        "Руководитель",
	}

	Statuses = map[storage.EmployeeStatus]string{
		storage.StatusActive:   "Активен",
		storage.StatusInactive: "Неактивен",
		storage.StatusFired:    "Уволен",
	}

	// Порядок вариантов в выпадающих списках.
	PositionOrder = []storage.Position{
		storage.PositionOperator,
		storage.PositionSeniorOperator,
		storage.PositionSuperOperator,
		storage.PositionManager,
	}

	StatusOrder = []storage.EmployeeStatus{
		storage.StatusActive,
		storage.StatusInactive,
		storage.StatusFired,
	}

	CoefficientTypeOrder = []storage.CoefficientType{
		storage.CoefficientPositive,
		storage.CoefficientNegative,
	}
)

// PositionLabel falls back to the raw value for positions the backend added later.
func PositionLabel(p storage.Position) string {
	if l, ok := Positions[p]; ok {
		return l
	}
	return string(p)
}

func StatusLabel(s storage.EmployeeStatus) string {
	if l, ok := Statuses[s]; ok {
		return l
	}
	return string(s)
}

func CoefficientTypeLabel(t storage.CoefficientType) string {
	if t.IsPositive() {
		return "Положительный"
	}
	return "Негативный"
}

// ShiftLabel is how a statistic row names its shift.
func ShiftLabel(shift *storage.WorkShift) string {
	if shift == nil {
		return "Без смены"
	}
	return fmt.Sprintf("Смена #%d", shift.ID)
}

// EmployeeName prefers the embedded employee and falls back to the id.
func EmployeeName(e *storage.Employee, id int64) string {
	if e != nil && (e.LastName != "" || e.FirstName != "") {
		return e.ShortName()
	}
	return fmt.Sprintf("Сотрудник #%d", id)
}
