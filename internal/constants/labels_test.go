package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"workforce-admin/internal/storage"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, "Старший оператор", PositionLabel(storage.PositionSeniorOperator))
	assert.Equal(t, "intern", PositionLabel("intern"))
	assert.Equal(t, "Уволен", StatusLabel(storage.StatusFired))
	assert.Equal(t, "Положительный", CoefficientTypeLabel("positive"))
	assert.Equal(t, "Негативный", CoefficientTypeLabel(storage.CoefficientNegative))
	assert.Len(t, PositionOrder, len(Positions))
	assert.Len(t, StatusOrder, len(Statuses))
}

func TestShiftAndEmployeeNames(t *testing.T) {
	assert.Equal(t, "Без смены", ShiftLabel(nil))
	assert.Equal(t, "Смена #5", ShiftLabel(&storage.WorkShift{ID: 5}))

	assert.Equal(t, "Сотрудник #3", EmployeeName(nil, 3))
	assert.Equal(t, "Сотрудник #4", EmployeeName(&storage.Employee{ID: 4}, 4))
	assert.Equal(t, "Иванов Иван", EmployeeName(&storage.Employee{LastName: "Иванов", FirstName: "Иван"}, 3))
}
