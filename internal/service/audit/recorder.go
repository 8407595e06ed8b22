package audit

import (
	"context"
	"log/slog"

	"github.com/codezenith/hrms-backend-go/internal/domain/audit"
)

type RecorderImpl struct {
	audit.Repository
	logger *slog.Logger
}

func NewRecorder(repo audit.Repository, logger *slog.Logger) audit.Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecorderImpl{Repository: repo, logger: logger}
}

// Record implements audit.Recorder. The caller's IP address is taken from ctx
// when the entry does not carry one. Failures are logged and dropped.
func (r *RecorderImpl) Record(ctx context.Context, entry audit.Entry) {
	if entry.IPAddress == nil {
		entry.IPAddress = audit.IPAddressFromContext(ctx)
	}

	if err := r.Repository.Append(ctx, entry); err != nil {
		r.logger.ErrorContext(ctx, "failed to write audit entry",
			slog.String("action", string(entry.Action)),
			slog.String("entity", entry.Entity),
			slog.String("entity_id", entry.EntityID),
			slog.Any("error", err),
		)
	}
}
