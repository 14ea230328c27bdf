package storage

// WorkShift is open while EndDate is nil.
type WorkShift struct {
	ID         int64      `json:"id"`
	StartDate  Timestamp  `json:"startDate"`
	EndDate    *Timestamp `json:"endDate,omitempty"`
	EmployeeID int64      `json:"employeeId"`
	Employee   *Employee  `json:"employee,omitempty"`
}

func (s WorkShift) InProgress() bool {
	return s.EndDate == nil
}

// Break is scoped to a shift and follows the same open/closed lifecycle.
type Break struct {
	ID         int64      `json:"id"`
	StartDate  Timestamp  `json:"startDate"`
	EndDate    *Timestamp `json:"endDate,omitempty"`
	EmployeeID int64      `json:"employeeId"`
	ShiftID    int64      `json:"shiftId"`
	Employee   *Employee  `json:"employee,omitempty"`
	Shift      *WorkShift `json:"shift,omitempty"`
}

func (b Break) InProgress() bool {
	return b.EndDate == nil
}
