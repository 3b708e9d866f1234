package repository

import (
	"context"
	"database/sql"

	"github.com/shopcore/customer-service/internal/events"
)

// AuditRepository records consumed customer events for auditing.
type AuditRepository struct {
	DB *sql.DB
}

// Record inserts one customer event into the audit table.
func (r *AuditRepository) Record(ctx context.Context, ev events.CustomerEvent) error {
	_, err := r.DB.ExecContext(ctx, `
        INSERT INTO customer_audit (action, customer_id, occurred_at)
        VALUES ($1, $2, $3)
    `, ev.Action, ev.CustomerID, ev.OccurredAt)
	return err
}
