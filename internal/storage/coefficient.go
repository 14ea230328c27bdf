package storage

type CoefficientType string

// Значения, которые хранит бэкенд.
const (
	CoefficientPositive CoefficientType = "положительный"
	CoefficientNegative CoefficientType = "негативный"
)

func (t CoefficientType) IsPositive() bool {
	return t == CoefficientPositive || t == "positive"
}

type CoefficientSetting struct {
	ID              int64           `json:"id"`
	ParameterName   string          `json:"parameterName"`
	Norm            float64         `json:"norm"`
	Base            float64         `json:"base"`
	Weight          float64         `json:"weight"`
	CoefficientType CoefficientType `json:"coefficientType"`
}

type CoefficientInput struct {
	ParameterName   string          `json:"parameterName"`
	Norm            float64         `json:"norm"`
	Base            float64         `json:"base"`
	Weight          float64         `json:"weight"`
	CoefficientType CoefficientType `json:"coefficientType"`
}
