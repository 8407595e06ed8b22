package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/leave"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `lr.id, lr.employee_id, lr.leave_type, lr.from_date, lr.to_date, lr.days, lr.reason,
		lr.status, lr.approved_by, lr.approved_date, lr.applied_date, lr.created_at, lr.updated_at,
		e.full_name, e.employee_code, e.email`

const leaveRequestSelect = `SELECT ` + leaveRequestColumns + ` FROM leave_requests lr LEFT JOIN employees e ON e.id = lr.employee_id`

var leaveRequestErrors = pgErrorMapping{
	notFound:  leave.ErrLeaveRequestNotFound,
	exclusion: leave.ErrOverlappingLeave,
	check:     leave.ErrInvalidDateRange,
}

type leaveRequestRepositoryImpl struct {
	db database.Pool
}

func NewLeaveRequestRepository(db database.Pool) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.LeaveType,
		&lr.FromDate,
		&lr.ToDate,
		&lr.Days,
		&lr.Reason,
		&lr.Status,
		&lr.ApprovedBy,
		&lr.ApprovedDate,
		&lr.AppliedDate,
		&lr.CreatedAt,
		&lr.UpdatedAt,
		&lr.EmployeeName,
		&lr.EmployeeCode,
		&lr.EmployeeEmail,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	if request.ID == "" {
		request.ID = newID()
	}
	query := `
		WITH inserted AS (
			INSERT INTO leave_requests (id, employee_id, leave_type, from_date, to_date, days, reason, status, applied_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT ` + leaveRequestColumns + `
		FROM inserted lr LEFT JOIN employees e ON e.id = lr.employee_id`

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.LeaveType,
		dateArg(request.FromDate),
		dateArg(request.ToDate),
		request.Days,
		request.Reason,
		request.Status,
		request.AppliedDate,
	))
	if err != nil {
		return leave.LeaveRequest{}, leaveRequestErrors.translate(err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	lr, err := scanLeaveRequest(q.QueryRow(ctx, leaveRequestSelect+` WHERE lr.id = $1`, id))
	if err != nil {
		return leave.LeaveRequest{}, leaveRequestErrors.translate(err)
	}
	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		conditions = append(conditions, fmt.Sprintf("lr.leave_type = $%d", argIdx))
		args = append(args, *filter.LeaveType)
	}

	query := leaveRequestSelect + ` WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY lr.applied_date DESC`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, approvedBy string, approvedDate time.Time) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		WITH updated AS (
			UPDATE leave_requests
			SET status = $1, approved_by = $2, approved_date = $3, updated_at = NOW()
			WHERE id = $4 AND status = 'pending'
			RETURNING *
		)
		SELECT ` + leaveRequestColumns + `
		FROM updated lr LEFT JOIN employees e ON e.id = lr.employee_id`

	updated, err := scanLeaveRequest(q.QueryRow(ctx, query, status, approvedBy, approvedDate, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, leave.ErrNotPending
	}
	if err != nil {
		return leave.LeaveRequest{}, leaveRequestErrors.translate(err)
	}
	return updated, nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1 AND status = 'pending'`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrNotPending
	}
	return nil
}

// CountByLeaveType implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountByLeaveType(ctx context.Context, leaveTypeName string) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE leave_type = $1`, leaveTypeName).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
