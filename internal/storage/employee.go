package storage

type Position string

const (
	PositionOperator       Position = "operator"
	PositionSeniorOperator Position = "senior_operator"
	PositionSuperOperator  Position = "super_operator"
	PositionManager        Position = "manager"
)

type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "active"
	StatusInactive EmployeeStatus = "inactive"
	StatusFired    EmployeeStatus = "fired"
)

type Employee struct {
	ID         int64          `json:"id"`
	LastName   string         `json:"lastName"`
	FirstName  string         `json:"firstName"`
	MiddleName *string        `json:"middleName,omitempty"`
	Position   Position       `json:"position"`
	Status     EmployeeStatus `json:"status"`
}

// EmployeeInput is an employee without the server-assigned id.
type EmployeeInput struct {
	LastName   string         `json:"lastName" validate:"required"`
	FirstName  string         `json:"firstName" validate:"required"`
	MiddleName *string        `json:"middleName,omitempty"`
	Position   Position       `json:"position"`
	Status     EmployeeStatus `json:"status"`
}

// ShortName is "Фамилия Имя", the form every table uses.
func (e Employee) ShortName() string {
	return e.LastName + " " + e.FirstName
}

func (e Employee) FullName() string {
	if e.MiddleName == nil || *e.MiddleName == "" {
		return e.ShortName()
	}
	return e.ShortName() + " " + *e.MiddleName
}
