package leave

import (
	"time"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Overlaps reports whether the two ranges share at least one day.
// Ranges touching on a boundary day overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.From.After(o.To) && !r.To.Before(o.From)
}

// Days counts calendar days in the range, both ends included.
func (r DateRange) Days() int {
	return InclusiveDays(r.From, r.To)
}

// InclusiveDays counts calendar days from..to. It returns 0 when to precedes from.
func InclusiveDays(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	if t.Before(f) {
		return 0
	}
	return int(t.Sub(f).Hours()/24) + 1
}

// HasOverlap reports whether candidate intersects any pending or approved request.
func HasOverlap(existing []LeaveRequest, candidate DateRange) bool {
	for _, r := range existing {
		if r.Status.Blocking() && r.Range().Overlaps(candidate) {
			return true
		}
	}
	return false
}

type Balance struct {
	LeaveType string
	Total     int
	Used      int
	Remaining int
	Color     string
}

// ComputeBalance derives, per leave type, the allowance minus approved days.
// Remaining is not clamped and goes negative when approvals exceed the allowance.
func ComputeBalance(types []LeaveType, requests []LeaveRequest) []Balance {
	used := make(map[string]int, len(types))
	for _, r := range requests {
		if r.Status == LeaveRequestStatusApproved {
			used[r.LeaveType] += r.Days
		}
	}

	balances := make([]Balance, 0, len(types))
	for _, t := range types {
		balances = append(balances, Balance{
			LeaveType: t.Name,
			Total:     t.DaysAllowed,
			Used:      used[t.Name],
			Remaining: t.DaysAllowed - used[t.Name],
			Color:     t.Color,
		})
	}
	return balances
}
