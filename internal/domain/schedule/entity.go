package schedule

import "time"

type Shift struct {
	ID                 string
	Name               string
	StartTime          ClockTime
	EndTime            ClockTime
	GracePeriodMinutes int
	WorkingHours       float64
	Description        *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SpansMidnight reports whether the shift ends on the calendar day after it starts.
func (s Shift) SpansMidnight() bool {
	return s.EndTime <= s.StartTime
}

// Grace is the allowance after StartTime during which a check-in is still on time.
// Negative values are treated as zero.
func (s Shift) Grace() time.Duration {
	if s.GracePeriodMinutes < 0 {
		return 0
	}
	return time.Duration(s.GracePeriodMinutes) * time.Minute
}

// InstanceDate returns the attendance day that a check-in at instant t on
// calendar day date is recorded under. For overnight shifts a check-in before
// the shift's end time belongs to the shift that began the previous day.
func (s Shift) InstanceDate(date, t time.Time) time.Time {
	if s.SpansMidnight() && Of(t.In(date.Location())) < s.EndTime && sameDay(date, t) {
		return date.AddDate(0, 0, -1)
	}
	return date
}

// StartFor returns the nominal start of the shift instance that a check-in at
// instant t on attendance day date belongs to.
func (s Shift) StartFor(date, t time.Time) time.Time {
	return s.StartTime.On(s.InstanceDate(date, t))
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

type HolidayType string

const (
	HolidayTypePublic   HolidayType = "public"
	HolidayTypeOptional HolidayType = "optional"
	HolidayTypeCompany  HolidayType = "company"
)

var HolidayTypeValues = []string{
	string(HolidayTypePublic),
	string(HolidayTypeOptional),
	string(HolidayTypeCompany),
}

type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Type        HolidayType
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
