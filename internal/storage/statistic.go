package storage

type OperatorStatistic struct {
	ID            int64     `json:"id"`
	Date          Timestamp `json:"date"`
	ParameterName string    `json:"parameterName"`
	Value         float64   `json:"value"`
	EmployeeID    int64     `json:"employeeId"`
	Employee      *Employee `json:"employee,omitempty"`
	ShiftID       int64     `json:"shiftId"`

	// WorkShift заполняется только на клиенте и на бэкенд не уходит.
	WorkShift *WorkShift `json:"-"`
}

type StatisticInput struct {
	Date          Timestamp `json:"date"`
	ParameterName string    `json:"parameterName"`
	Value         float64   `json:"value"`
	EmployeeID    int64     `json:"employeeId"`
	ShiftID       int64     `json:"shiftId"`
}
