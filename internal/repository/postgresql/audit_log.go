package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codezenith/hrms-backend-go/internal/domain/audit"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
)

type auditLogRepositoryImpl struct {
	db database.Pool
}

func NewAuditLogRepository(db database.Pool) audit.Repository {
	return &auditLogRepositoryImpl{db: db}
}

// Append implements audit.Repository.
func (r *auditLogRepositoryImpl) Append(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}
	if entry.ID == "" {
		entry.ID = newID()
	}

	query := `
		INSERT INTO audit_log (id, user_id, user_name, action, entity, entity_id, details, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = q.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.UserName,
		entry.Action,
		entry.Entity,
		entry.EntityID,
		string(details),
		entry.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}
