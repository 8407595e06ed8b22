package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(from, to string) DateRange {
	return DateRange{From: day(from), To: day(to)}
}

func TestDateRangeOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{"shared boundary day", rng("2024-02-01", "2024-02-03"), rng("2024-02-03", "2024-02-05"), true},
		{"contained", rng("2024-02-01", "2024-02-10"), rng("2024-02-04", "2024-02-05"), true},
		{"identical single day", rng("2024-02-01", "2024-02-01"), rng("2024-02-01", "2024-02-01"), true},
		{"adjacent days", rng("2024-02-01", "2024-02-03"), rng("2024-02-04", "2024-02-05"), false},
		{"disjoint", rng("2024-01-01", "2024-01-03"), rng("2024-03-01", "2024-03-05"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 1, InclusiveDays(day("2024-02-01"), day("2024-02-01")))
	assert.Equal(t, 3, InclusiveDays(day("2024-02-01"), day("2024-02-03")))
	assert.Equal(t, 2, InclusiveDays(day("2024-02-28"), day("2024-02-29")))
	assert.Equal(t, 0, InclusiveDays(day("2024-02-03"), day("2024-02-01")))
}

func TestHasOverlap(t *testing.T) {
	existing := []LeaveRequest{
		{FromDate: day("2024-02-01"), ToDate: day("2024-02-03"), Status: LeaveRequestStatusPending},
		{FromDate: day("2024-03-01"), ToDate: day("2024-03-03"), Status: LeaveRequestStatusRejected},
		{FromDate: day("2024-04-01"), ToDate: day("2024-04-03"), Status: LeaveRequestStatusApproved},
	}

	assert.True(t, HasOverlap(existing, rng("2024-02-03", "2024-02-05")))
	assert.False(t, HasOverlap(existing, rng("2024-03-02", "2024-03-02")), "rejected requests do not block")
	assert.True(t, HasOverlap(existing, rng("2024-03-30", "2024-04-01")))
	assert.False(t, HasOverlap(existing, rng("2024-02-04", "2024-02-28")))
}

func TestComputeBalance(t *testing.T) {
	types := []LeaveType{
		{Name: "Annual", DaysAllowed: 20, Color: "#3b82f6"},
		{Name: "Sick", DaysAllowed: 3, Color: "#ef4444"},
	}
	requests := []LeaveRequest{
		{LeaveType: "Annual", Days: 5, Status: LeaveRequestStatusApproved},
		{LeaveType: "Annual", Days: 8, Status: LeaveRequestStatusApproved},
		{LeaveType: "Annual", Days: 4, Status: LeaveRequestStatusPending},
		{LeaveType: "Sick", Days: 2, Status: LeaveRequestStatusApproved},
		{LeaveType: "Sick", Days: 2, Status: LeaveRequestStatusApproved},
		{LeaveType: "Sick", Days: 9, Status: LeaveRequestStatusRejected},
	}

	got := ComputeBalance(types, requests)

	assert.Equal(t, []Balance{
		{LeaveType: "Annual", Total: 20, Used: 13, Remaining: 7, Color: "#3b82f6"},
		{LeaveType: "Sick", Total: 3, Used: 4, Remaining: -1, Color: "#ef4444"},
	}, got)
}

func TestComputeBalance_NoTypes(t *testing.T) {
	assert.Empty(t, ComputeBalance(nil, []LeaveRequest{{LeaveType: "Annual", Days: 1, Status: LeaveRequestStatusApproved}}))
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, LeaveRequestStatusPending.CanTransitionTo(LeaveRequestStatusApproved))
	assert.True(t, LeaveRequestStatusPending.CanTransitionTo(LeaveRequestStatusRejected))
	assert.False(t, LeaveRequestStatusApproved.CanTransitionTo(LeaveRequestStatusRejected))
	assert.False(t, LeaveRequestStatusRejected.CanTransitionTo(LeaveRequestStatusApproved))
	assert.False(t, LeaveRequestStatusPending.CanTransitionTo(LeaveRequestStatusPending))
}

func TestCreateLeaveRequestValidate(t *testing.T) {
	req := CreateLeaveRequest{LeaveType: " Annual ", FromDate: "2024-02-01", ToDate: "2024-02-03", Reason: "family"}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Annual", req.LeaveType)
	assert.Equal(t, 3, req.Range.Days())

	bad := CreateLeaveRequest{LeaveType: "Annual", FromDate: "2024-02-05", ToDate: "2024-02-01", Reason: "x"}
	assert.Error(t, bad.Validate())
}
