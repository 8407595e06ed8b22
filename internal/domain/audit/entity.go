package audit

import (
	"context"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
)

type Action string

const (
	ActionEmployeeDelete    Action = "employee.delete"
	ActionAttendanceCorrect Action = "attendance.correct"
	ActionLeaveApprove      Action = "leave.approve"
	ActionLeaveReject       Action = "leave.reject"
)

// Entry is an immutable record of a privileged mutation.
type Entry struct {
	ID        string
	UserID    *string
	UserName  string
	Action    Action
	Entity    string
	EntityID  string
	Details   map[string]any
	IPAddress *string
	CreatedAt time.Time
}

// NewEntry starts an entry attributed to actor.
func NewEntry(actor user.Actor, action Action, entity, entityID string, details map[string]any) Entry {
	entry := Entry{
		UserName: actor.Name,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Details:  details,
	}
	if actor.UserID != "" {
		userID := actor.UserID
		entry.UserID = &userID
	}
	if entry.UserName == "" {
		entry.UserName = actor.Email
	}
	return entry
}

type Repository interface {
	Append(ctx context.Context, entry Entry) error
}

// Recorder writes entries on behalf of services. Implementations never fail
// the calling operation.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

type ipKey struct{}

// WithIPAddress attaches the caller's address for entries recorded under ctx.
func WithIPAddress(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ipKey{}, ip)
}

func IPAddressFromContext(ctx context.Context) *string {
	if ip, ok := ctx.Value(ipKey{}).(string); ok && ip != "" {
		return &ip
	}
	return nil
}
