package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	actorctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/ports/secondary"
)

// ActivityRepository implements secondary.ActivityLog with SQLite.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new SQLite activity log.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append records an entry. ID and actor are filled in when empty; the actor
// comes from the context.
func (r *ActivityRepository) Append(ctx context.Context, entry *secondary.ActivityRecord) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Actor == "" {
		entry.Actor = actorctx.ActorFromContext(ctx)
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO activity_log (id, part_id, action, detail, actor) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.PartID, entry.Action, nullString(entry.Detail), nullString(entry.Actor),
	)
	if err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}

	return nil
}

// List returns the newest entries for a part first.
func (r *ActivityRepository) List(ctx context.Context, partID string, limit int) ([]*secondary.ActivityRecord, error) {
	query := `SELECT id, part_id, action, detail, actor, created_at FROM activity_log
		WHERE part_id = ? ORDER BY created_at DESC, rowid DESC`
	args := []any{partID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.ActivityRecord
	for rows.Next() {
		var (
			detail    sql.NullString
			actor     sql.NullString
			createdAt time.Time
		)

		record := &secondary.ActivityRecord{}
		if err := rows.Scan(&record.ID, &record.PartID, &record.Action, &detail, &actor, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		record.Detail = detail.String
		record.Actor = actor.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		entries = append(entries, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity: %w", err)
	}

	return entries, nil
}

// Ensure ActivityRepository implements the interface
var _ secondary.ActivityLog = (*ActivityRepository)(nil)
