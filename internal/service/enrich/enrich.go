// Package enrich joins independently fetched collections on the client.
package enrich

import "workforce-admin/internal/storage"

// StatisticsWithShifts returns a copy of stats where each row carries the shift
// whose id equals its ShiftID. Rows without a match keep WorkShift nil.
// Inputs are not modified.
func StatisticsWithShifts(stats []storage.OperatorStatistic, shifts []storage.WorkShift) []storage.OperatorStatistic {
	byID := make(map[int64]*storage.WorkShift, len(shifts))
	for i := range shifts {
		// при дублях id побеждает первая смена, как при линейном поиске
		if _, ok := byID[shifts[i].ID]; !ok {
			byID[shifts[i].ID] = &shifts[i]
		}
	}

	out := make([]storage.OperatorStatistic, len(stats))
	for i, s := range stats {
		s.WorkShift = nil
		if shift, ok := byID[s.ShiftID]; ok {
			cp := *shift
			s.WorkShift = &cp
		}
		out[i] = s
	}

	return out
}
