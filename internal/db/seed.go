package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with demo parts and snapshots.
// Vendors are not seeded here; they come from the vendor catalog document.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().UTC().Format("2006-01-02 15:04:05")

	// Parts
	parts := []struct {
		id, material, process, useCase, env, scale string
		quantity                                   int
	}{
		{"PART-001", "ABS Plastic", "Injection Molding", "enclosure", "indoor", "mass", 5000},
		{"PART-002", "Aluminum Metal", "CNC Machining", "bracket", "outdoor", "low", 40},
		{"PART-003", "PLA Plastic", "FDM", "prototype", "indoor", "prototype", 3},
	}
	for _, p := range parts {
		if _, err := database.Exec(
			`INSERT INTO parts (id, material, process, quantity, use_case, environment, production_scale, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.id, p.material, p.process, p.quantity, p.useCase, p.env, p.scale, now, now,
		); err != nil {
			return fmt.Errorf("seed parts: %w", err)
		}
	}

	// Snapshots for PART-001
	snapshots := []struct {
		version, tag, material, fixes string
		score, issues                 int
		costPerPart                   float64
	}{
		{"v1", "Prototype", "ABS Plastic", `[]`, 60, 4, 9},
		{"v2", "EVT", "ABS Plastic", `["add_draft"]`, 70, 3, 9},
		{"v3", "", "PC Plastic", `["add_draft","add_fillet"]`, 80, 2, 9},
	}
	for _, s := range snapshots {
		var tag sql.NullString
		if s.tag != "" {
			tag = sql.NullString{String: s.tag, Valid: true}
		}
		if _, err := database.Exec(
			`INSERT INTO snapshots (part_id, version, tag, material, process, quantity, score, issue_count, cost_per_part, fixes, created_at)
			 VALUES ('PART-001', ?, ?, ?, 'Injection Molding', 5000, ?, ?, ?, ?, ?)`,
			s.version, tag, s.material, s.score, s.issues, s.costPerPart, s.fixes, now,
		); err != nil {
			return fmt.Errorf("seed snapshots: %w", err)
		}
	}

	return nil
}
