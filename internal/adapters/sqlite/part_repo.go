// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/foundry/internal/ports/secondary"
)

// PartRepository implements secondary.PartRepository with SQLite.
type PartRepository struct {
	db *sql.DB
}

// NewPartRepository creates a new SQLite part repository.
func NewPartRepository(db *sql.DB) *PartRepository {
	return &PartRepository{db: db}
}

const partColumns = `id, material, process, quantity, score, findings, evaluated,
	evaluated_material, evaluated_process, use_case, environment, production_scale,
	load_condition, finish_requirement, revision, created_at, updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPart(row rowScanner) (*secondary.PartRecord, error) {
	var (
		findings          string
		evaluated         int
		evaluatedMaterial sql.NullString
		evaluatedProcess  sql.NullString
		useCase           sql.NullString
		environment       sql.NullString
		productionScale   sql.NullString
		loadCondition     sql.NullString
		finishRequirement sql.NullString
		createdAt         time.Time
		updatedAt         time.Time
	)

	record := &secondary.PartRecord{}
	err := row.Scan(
		&record.ID, &record.Material, &record.Process, &record.Quantity, &record.Score,
		&findings, &evaluated, &evaluatedMaterial, &evaluatedProcess,
		&useCase, &environment, &productionScale, &loadCondition, &finishRequirement,
		&record.Revision, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(findings), &record.Findings); err != nil {
		return nil, fmt.Errorf("failed to decode findings for part %s: %w", record.ID, err)
	}
	record.Evaluated = evaluated != 0
	record.EvaluatedMaterial = evaluatedMaterial.String
	record.EvaluatedProcess = evaluatedProcess.String
	record.UseCase = useCase.String
	record.Environment = environment.String
	record.ProductionScale = productionScale.String
	record.LoadCondition = loadCondition.String
	record.FinishRequirement = finishRequirement.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// GetByID retrieves a part by its ID.
func (r *PartRepository) GetByID(ctx context.Context, id string) (*secondary.PartRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+partColumns+" FROM parts WHERE id = ?", id)

	record, err := scanPart(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("part %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	return record, nil
}

// Create persists a new part at revision 1.
func (r *PartRepository) Create(ctx context.Context, part *secondary.PartRecord) error {
	findings, err := encodeFindings(part.Findings)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO parts (id, material, process, quantity, score, findings, evaluated,
			evaluated_material, evaluated_process, use_case, environment, production_scale,
			load_condition, finish_requirement, revision)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		part.ID, part.Material, part.Process, part.Quantity, part.Score, findings, boolToInt(part.Evaluated),
		nullString(part.EvaluatedMaterial), nullString(part.EvaluatedProcess),
		nullString(part.UseCase), nullString(part.Environment), nullString(part.ProductionScale),
		nullString(part.LoadCondition), nullString(part.FinishRequirement),
	)
	if err != nil {
		return fmt.Errorf("failed to create part: %w", err)
	}

	part.Revision = 1
	return nil
}

// Update writes the part when its revision still matches the stored one.
func (r *PartRepository) Update(ctx context.Context, part *secondary.PartRecord) error {
	findings, err := encodeFindings(part.Findings)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE parts SET material = ?, process = ?, quantity = ?, score = ?, findings = ?,
			evaluated = ?, evaluated_material = ?, evaluated_process = ?,
			use_case = ?, environment = ?, production_scale = ?, load_condition = ?,
			finish_requirement = ?, revision = revision + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND revision = ?`,
		part.Material, part.Process, part.Quantity, part.Score, findings,
		boolToInt(part.Evaluated), nullString(part.EvaluatedMaterial), nullString(part.EvaluatedProcess),
		nullString(part.UseCase), nullString(part.Environment), nullString(part.ProductionScale),
		nullString(part.LoadCondition), nullString(part.FinishRequirement),
		part.ID, part.Revision,
	)
	if err != nil {
		return fmt.Errorf("failed to update part: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		var exists int
		err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM parts WHERE id = ?", part.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check part existence: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("part %s: %w", part.ID, secondary.ErrNotFound)
		}
		return fmt.Errorf("part %s at revision %d: %w", part.ID, part.Revision, secondary.ErrRevisionConflict)
	}

	part.Revision++
	return nil
}

// List retrieves all parts ordered by ID.
func (r *PartRepository) List(ctx context.Context) ([]*secondary.PartRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+partColumns+" FROM parts ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	defer rows.Close()

	var parts []*secondary.PartRecord
	for rows.Next() {
		record, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan part: %w", err)
		}
		parts = append(parts, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parts: %w", err)
	}

	return parts, nil
}

func encodeFindings(findings []secondary.FindingRecord) (string, error) {
	if findings == nil {
		findings = []secondary.FindingRecord{}
	}
	b, err := json.Marshal(findings)
	if err != nil {
		return "", fmt.Errorf("failed to encode findings: %w", err)
	}
	return string(b), nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ensure PartRepository implements the interface
var _ secondary.PartRepository = (*PartRepository)(nil)
