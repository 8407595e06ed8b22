package department

import "time"

type Department struct {
	ID            string
	Name          string
	Head          *string
	Description   *string
	EmployeeCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
