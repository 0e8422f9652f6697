package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/foundry/internal/ports/secondary"
)

// SnapshotRepository implements secondary.SnapshotRepository with SQLite.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SQLite snapshot repository.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// sqliteTimestamp matches CURRENT_TIMESTAMP so explicit and defaulted
// created_at values order together.
const sqliteTimestamp = "2006-01-02 15:04:05"

const snapshotColumns = `part_id, version, tag, material, process, quantity, score,
	issue_count, cost_per_part, fixes, created_at`

func scanSnapshot(row rowScanner) (*secondary.SnapshotRecord, error) {
	var (
		tag       sql.NullString
		fixes     string
		createdAt time.Time
	)

	record := &secondary.SnapshotRecord{}
	err := row.Scan(
		&record.PartID, &record.Version, &tag, &record.Material, &record.Process,
		&record.Quantity, &record.Score, &record.IssueCount, &record.CostPerPart,
		&fixes, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(fixes), &record.Fixes); err != nil {
		return nil, fmt.Errorf("failed to decode fixes for %s@%s: %w", record.PartID, record.Version, err)
	}
	record.Tag = tag.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// Get retrieves one snapshot of a part.
func (r *SnapshotRepository) Get(ctx context.Context, partID, version string) (*secondary.SnapshotRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+snapshotColumns+" FROM snapshots WHERE part_id = ? AND version = ?",
		partID, version,
	)

	record, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("version %s of part %s: %w", version, partID, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return record, nil
}

// List retrieves all snapshots of a part in creation order.
func (r *SnapshotRepository) List(ctx context.Context, partID string) ([]*secondary.SnapshotRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+snapshotColumns+" FROM snapshots WHERE part_id = ? ORDER BY created_at ASC, rowid ASC",
		partID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*secondary.SnapshotRecord
	for rows.Next() {
		record, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}

	return snapshots, nil
}

// Create persists a new snapshot and fills in its CreatedAt.
func (r *SnapshotRepository) Create(ctx context.Context, snapshot *secondary.SnapshotRecord) error {
	fixes := snapshot.Fixes
	if fixes == nil {
		fixes = []string{}
	}
	encoded, err := json.Marshal(fixes)
	if err != nil {
		return fmt.Errorf("failed to encode fixes: %w", err)
	}

	createdAt := time.Now().UTC().Truncate(time.Second)
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (part_id, version, tag, material, process, quantity, score,
			issue_count, cost_per_part, fixes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snapshot.PartID, snapshot.Version, nullString(snapshot.Tag), snapshot.Material, snapshot.Process,
		snapshot.Quantity, snapshot.Score, snapshot.IssueCount, snapshot.CostPerPart, string(encoded),
		createdAt.Format(sqliteTimestamp),
	)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}

	snapshot.CreatedAt = createdAt.Format(time.RFC3339)
	return nil
}

// SetTag labels an existing snapshot.
func (r *SnapshotRepository) SetTag(ctx context.Context, partID, version, tag string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE snapshots SET tag = ? WHERE part_id = ? AND version = ?",
		nullString(tag), partID, version,
	)
	if err != nil {
		return fmt.Errorf("failed to tag snapshot: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("version %s of part %s: %w", version, partID, secondary.ErrNotFound)
	}

	return nil
}

// Ensure SnapshotRepository implements the interface
var _ secondary.SnapshotRepository = (*SnapshotRepository)(nil)
