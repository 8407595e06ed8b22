package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/codezenith/hrms-backend-go/internal/domain/attendance"
	"github.com/codezenith/hrms-backend-go/internal/domain/auth"
	"github.com/codezenith/hrms-backend-go/internal/domain/employee"
	"github.com/codezenith/hrms-backend-go/internal/domain/leave"
	"github.com/codezenith/hrms-backend-go/internal/domain/master/department"
	"github.com/codezenith/hrms-backend-go/internal/domain/master/setting"
	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/pkg/lock"
	"github.com/codezenith/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and user
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive),
		errors.Is(err, user.ErrUserInactive),
		errors.Is(err, auth.ErrGoogleEmailUnverified),
		errors.Is(err, user.ErrInsufficientPermissions),
		errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, user.ErrInvalidPasswordLength):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrGoogleLoginDisabled):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, err.Error())

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoLinkedEmployee):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeCodeExists),
		errors.Is(err, employee.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrShiftNotFound):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		Forbidden(w, err.Error())

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrOverlappingLeave),
		errors.Is(err, leave.ErrNotPending),
		errors.Is(err, leave.ErrLeaveTypeNameExists),
		errors.Is(err, leave.ErrLeaveTypeInUse):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrSelfApproval),
		errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Organisation settings
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "Setting not found")
	case errors.Is(err, schedule.ErrShiftNameExists),
		errors.Is(err, schedule.ErrShiftInUse),
		errors.Is(err, schedule.ErrHolidayExists),
		errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrInvalidClockTime),
		errors.Is(err, setting.ErrInvalidKey):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, lock.ErrNotObtained):
		Conflict(w, err.Error())

	default:
		slog.Error("unhandled error", slog.Any("error", err))
		InternalServerError(w, "An unexpected error occurred")
	}
}
