package period

import (
	"fmt"
	"time"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// FirstOfMonth turns a "yyyy-mm" month picker value into "yyyy-mm-01".
func FirstOfMonth(month string) (string, error) {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return "", fmt.Errorf("period.FirstOfMonth: invalid month %q: %w", month, err)
	}
	return t.Format(dayLayout), nil
}

// CurrentMonth is the picker default.
func CurrentMonth(now time.Time) string {
	return now.Format(monthLayout)
}
