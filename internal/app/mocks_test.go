package app

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/example/foundry/internal/core/cost"
	"github.com/example/foundry/internal/core/dfm"
	"github.com/example/foundry/internal/core/material"
	"github.com/example/foundry/internal/core/rules"
	"github.com/example/foundry/internal/logger"
	"github.com/example/foundry/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockPartRepository implements secondary.PartRepository for testing.
// Update enforces the revision check the way the SQLite adapter does.
type mockPartRepository struct {
	mu          sync.Mutex
	parts       map[string]*secondary.PartRecord
	updateCalls int
	getErr      error
	createErr   error
	updateErr   error
	listErr     error
}

func newMockPartRepository() *mockPartRepository {
	return &mockPartRepository{parts: make(map[string]*secondary.PartRecord)}
}

// seed stores a copy of rec at revision 1.
func (m *mockPartRepository) seed(rec secondary.PartRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.Revision = 1
	m.parts[rec.ID] = &rec
}

// stored returns a copy of the persisted record.
func (m *mockPartRepository) stored(id string) secondary.PartRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.parts[id]
}

func (m *mockPartRepository) GetByID(ctx context.Context, id string) (*secondary.PartRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	rec, ok := m.parts[id]
	if !ok {
		return nil, fmt.Errorf("part %s: %w", id, secondary.ErrNotFound)
	}
	cp := *rec
	return &cp, nil
}

func (m *mockPartRepository) Create(ctx context.Context, part *secondary.PartRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	part.Revision = 1
	cp := *part
	m.parts[part.ID] = &cp
	return nil
}

func (m *mockPartRepository) Update(ctx context.Context, part *secondary.PartRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	current, ok := m.parts[part.ID]
	if !ok {
		return fmt.Errorf("part %s: %w", part.ID, secondary.ErrNotFound)
	}
	if current.Revision != part.Revision {
		return fmt.Errorf("part %s at revision %d: %w", part.ID, part.Revision, secondary.ErrRevisionConflict)
	}
	part.Revision++
	cp := *part
	m.parts[part.ID] = &cp
	return nil
}

func (m *mockPartRepository) List(ctx context.Context) ([]*secondary.PartRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.PartRecord
	for _, p := range m.parts {
		cp := *p
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// mockSnapshotRepository implements secondary.SnapshotRepository for testing.
type mockSnapshotRepository struct {
	snapshots []*secondary.SnapshotRecord
	getErr    error
	createErr error
}

func newMockSnapshotRepository() *mockSnapshotRepository {
	return &mockSnapshotRepository{}
}

func (m *mockSnapshotRepository) Get(ctx context.Context, partID, version string) (*secondary.SnapshotRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, s := range m.snapshots {
		if s.PartID == partID && s.Version == version {
			return s, nil
		}
	}
	return nil, fmt.Errorf("snapshot %s/%s: %w", partID, version, secondary.ErrNotFound)
}

func (m *mockSnapshotRepository) List(ctx context.Context, partID string) ([]*secondary.SnapshotRecord, error) {
	var result []*secondary.SnapshotRecord
	for _, s := range m.snapshots {
		if s.PartID == partID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockSnapshotRepository) Create(ctx context.Context, snapshot *secondary.SnapshotRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if snapshot.CreatedAt == "" {
		snapshot.CreatedAt = "2026-01-01T00:00:00Z"
	}
	m.snapshots = append(m.snapshots, snapshot)
	return nil
}

func (m *mockSnapshotRepository) SetTag(ctx context.Context, partID, version, tag string) error {
	for _, s := range m.snapshots {
		if s.PartID == partID && s.Version == version {
			s.Tag = tag
			return nil
		}
	}
	return fmt.Errorf("snapshot %s/%s: %w", partID, version, secondary.ErrNotFound)
}

// mockVendorRepository implements secondary.VendorRepository for testing.
type mockVendorRepository struct {
	vendors []*secondary.VendorRecord
	listErr error
}

func newMockVendorRepository(vendors ...*secondary.VendorRecord) *mockVendorRepository {
	return &mockVendorRepository{vendors: vendors}
}

func (m *mockVendorRepository) List(ctx context.Context) ([]*secondary.VendorRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.vendors, nil
}

func (m *mockVendorRepository) GetByID(ctx context.Context, id string) (*secondary.VendorRecord, error) {
	for _, v := range m.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, fmt.Errorf("vendor %s: %w", id, secondary.ErrNotFound)
}

func (m *mockVendorRepository) Create(ctx context.Context, vendor *secondary.VendorRecord) error {
	m.vendors = append(m.vendors, vendor)
	return nil
}

// mockActivityLog implements secondary.ActivityLog for testing.
type mockActivityLog struct {
	mu        sync.Mutex
	entries   []*secondary.ActivityRecord
	appendErr error
}

func newMockActivityLog() *mockActivityLog {
	return &mockActivityLog{}
}

func (m *mockActivityLog) Append(ctx context.Context, entry *secondary.ActivityRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockActivityLog) List(ctx context.Context, partID string, limit int) ([]*secondary.ActivityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*secondary.ActivityRecord
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].PartID == partID {
			result = append(result, m.entries[i])
		}
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *mockActivityLog) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Action
	}
	return out
}

// ============================================================================
// Fixtures
// ============================================================================

func testEvaluator() *dfm.Evaluator {
	return dfm.NewEvaluator(rules.DefaultRouter(), rules.DefaultCatalog(), material.NewCatalog(nil))
}

func testLogger() *logger.Logger {
	return logger.Nop()
}

func testVendorPool() *mockVendorRepository {
	return newMockVendorRepository(
		&secondary.VendorRecord{ID: "VEN-001", Name: "PrecisionFab", Tier: 1, Processes: []string{"cnc"}, Materials: []string{"aluminum"}, MinOrderQty: 50},
		&secondary.VendorRecord{ID: "VEN-002", Name: "BulkWorks", Tier: 2, Processes: []string{"cnc", "injection molding"}, Materials: []string{"aluminum", "abs"}, MinOrderQty: 150},
		&secondary.VendorRecord{ID: "VEN-003", Name: "MoldMasters", Tier: 1, Processes: []string{"injection molding"}, Materials: []string{"abs"}, MinOrderQty: 1000},
	)
}

var testCostModel = cost.DefaultModel()

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
