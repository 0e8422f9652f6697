package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/foundry/internal/ports/secondary"
)

// VendorRepository implements secondary.VendorRepository with SQLite.
type VendorRepository struct {
	db *sql.DB
}

// NewVendorRepository creates a new SQLite vendor repository.
func NewVendorRepository(db *sql.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

const vendorColumns = "id, name, city, tier, processes, materials, min_order_qty, contact, created_at"

func scanVendor(row rowScanner) (*secondary.VendorRecord, error) {
	var (
		city      sql.NullString
		contact   sql.NullString
		processes string
		materials string
		createdAt time.Time
	)

	record := &secondary.VendorRecord{}
	err := row.Scan(&record.ID, &record.Name, &city, &record.Tier, &processes, &materials,
		&record.MinOrderQty, &contact, &createdAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(processes), &record.Processes); err != nil {
		return nil, fmt.Errorf("failed to decode processes for vendor %s: %w", record.ID, err)
	}
	if err := json.Unmarshal([]byte(materials), &record.Materials); err != nil {
		return nil, fmt.Errorf("failed to decode materials for vendor %s: %w", record.ID, err)
	}
	record.City = city.String
	record.Contact = contact.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves every vendor ordered by ID.
func (r *VendorRepository) List(ctx context.Context) ([]*secondary.VendorRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+vendorColumns+" FROM vendors ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []*secondary.VendorRecord
	for rows.Next() {
		record, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendors: %w", err)
	}

	return vendors, nil
}

// GetByID retrieves a vendor by its ID.
func (r *VendorRepository) GetByID(ctx context.Context, id string) (*secondary.VendorRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+vendorColumns+" FROM vendors WHERE id = ?", id)

	record, err := scanVendor(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vendor %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return record, nil
}

// Create adds a vendor to the pool.
func (r *VendorRepository) Create(ctx context.Context, vendor *secondary.VendorRecord) error {
	processes, err := encodeStrings(vendor.Processes)
	if err != nil {
		return fmt.Errorf("failed to encode processes: %w", err)
	}
	materials, err := encodeStrings(vendor.Materials)
	if err != nil {
		return fmt.Errorf("failed to encode materials: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO vendors (id, name, city, tier, processes, materials, min_order_qty, contact)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		vendor.ID, vendor.Name, nullString(vendor.City), vendor.Tier, processes, materials,
		vendor.MinOrderQty, nullString(vendor.Contact),
	)
	if err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}

	return nil
}

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Ensure VendorRepository implements the interface
var _ secondary.VendorRepository = (*VendorRepository)(nil)
