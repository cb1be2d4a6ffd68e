package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: a realistic
// operation catalog plus a few shifts, one already segmented.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)

	// Operation catalog
	operations := []struct{ id, name, color, desc string }{
		{"OP-001", "Food Preparation", "#3498db", "Prep work before service"},
		{"OP-002", "Service", "#2ecc71", "Front-of-house service"},
		{"OP-003", "Cleaning", "#e67e22", "Closing and cleaning duties"},
		{"OP-004", "Inventory", "#9b59b6", "Stock counting and ordering"},
	}
	for _, op := range operations {
		if _, err := database.Exec(
			"INSERT INTO operations (id, name, color, description, created_at) VALUES (?, ?, ?, ?, ?)",
			op.id, op.name, op.color, op.desc, now,
		); err != nil {
			return fmt.Errorf("seed operations: %w", err)
		}
	}

	// Shifts
	shifts := []struct {
		id, employee, day, start, end string
		segmented                     bool
	}{
		{"SHIFT-001", "Alice Martin", "2026-09-01", "08:00", "17:00", true},
		{"SHIFT-002", "Ben Okafor", "2026-09-01", "12:00", "20:00", false},
		{"SHIFT-003", "Alice Martin", "2026-09-02", "09:00", "15:00", false},
	}
	for _, s := range shifts {
		enabled := 0
		if s.segmented {
			enabled = 1
		}
		if _, err := database.Exec(
			"INSERT INTO shifts (id, employee, day, start_time, end_time, segmentation_enabled, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			s.id, s.employee, s.day, s.start, s.end, enabled, now,
		); err != nil {
			return fmt.Errorf("seed shifts: %w", err)
		}
	}

	// A full partition of SHIFT-001
	segments := []struct {
		id, start, end, operationID string
		position                    int
	}{
		{"seg-1", "08:00", "12:00", "OP-001", 0},
		{"seg-2", "12:00", "16:00", "OP-002", 1},
		{"seg-3", "16:00", "17:00", "OP-003", 2},
	}
	for _, seg := range segments {
		if _, err := database.Exec(
			"INSERT INTO segments (shift_id, id, position, start_time, end_time, operation_id) VALUES (?, ?, ?, ?, ?, ?)",
			"SHIFT-001", seg.id, seg.position, seg.start, seg.end, seg.operationID,
		); err != nil {
			return fmt.Errorf("seed segments: %w", err)
		}
	}

	return nil
}
