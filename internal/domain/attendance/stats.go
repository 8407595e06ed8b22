package attendance

import "time"

type DailyStats struct {
	Date           time.Time
	TotalEmployees int64
	Present        int64
	Late           int64
	OnLeave        int64
	Absent         int64
}

// ComputeDailyStats aggregates one day's per-status record counts against the
// active roster. Absence is inferred from the roster and clamped at zero.
func ComputeDailyStats(counts map[Status]int64, activeEmployees int64) DailyStats {
	stats := DailyStats{
		TotalEmployees: activeEmployees,
		Present:        counts[StatusPresent],
		Late:           counts[StatusLate],
		OnLeave:        counts[StatusLeave],
	}
	stats.Absent = max(0, activeEmployees-(stats.Present+stats.Late+stats.OnLeave))
	return stats
}
