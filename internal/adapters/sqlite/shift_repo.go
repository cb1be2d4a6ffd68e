package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/rota/internal/ports/secondary"
)

// ShiftRepository implements secondary.ShiftRepository with SQLite. The
// segmentation rides along with the shift: reads hydrate it, and
// UpdateSegmentation replaces it wholesale inside a transaction.
type ShiftRepository struct {
	db *sql.DB
}

// NewShiftRepository creates a new SQLite shift repository.
func NewShiftRepository(db *sql.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create persists a new shift with its segmentation.
func (r *ShiftRepository) Create(ctx context.Context, shift *secondary.ShiftRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	enabled := 0
	if shift.Segmentation.Enabled {
		enabled = 1
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO shifts (id, employee, day, start_time, end_time, segmentation_enabled) VALUES (?, ?, ?, ?, ?, ?)",
		shift.ID, shift.Employee, shift.Day, shift.StartTime, shift.EndTime, enabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	if err := insertSegments(ctx, tx, shift.ID, shift.Segmentation.Segments); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit shift: %w", err)
	}
	return nil
}

// GetByID retrieves a shift with its segmentation.
func (r *ShiftRepository) GetByID(ctx context.Context, id string) (*secondary.ShiftRecord, error) {
	var (
		enabled   int
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.ShiftRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, employee, day, start_time, end_time, segmentation_enabled, created_at, updated_at FROM shifts WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Employee, &record.Day, &record.StartTime, &record.EndTime, &enabled, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("shift %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	record.Segmentation.Enabled = enabled != 0
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	segments, err := r.loadSegments(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Segmentation.Segments = segments

	return record, nil
}

// Delete removes a shift; segments cascade.
func (r *ShiftRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM shifts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("shift %s not found", id)
	}

	return nil
}

// List retrieves shifts matching the given filters, newest day first.
// Segmentations are hydrated per shift.
func (r *ShiftRepository) List(ctx context.Context, filters secondary.ShiftFilters) ([]*secondary.ShiftRecord, error) {
	query := "SELECT id FROM shifts WHERE 1=1"
	var args []any

	if filters.Employee != "" {
		query += " AND employee = ?"
		args = append(args, filters.Employee)
	}
	if filters.Day != "" {
		query += " AND day = ?"
		args = append(args, filters.Day)
	}
	query += " ORDER BY day DESC, start_time ASC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	shifts := make([]*secondary.ShiftRecord, 0, len(ids))
	for _, id := range ids {
		shift, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}

// UpdateSegmentation replaces a shift's stored segmentation.
func (r *ShiftRepository) UpdateSegmentation(ctx context.Context, shiftID string, seg secondary.SegmentationRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	enabled := 0
	if seg.Enabled {
		enabled = 1
	}
	result, err := tx.ExecContext(ctx,
		"UPDATE shifts SET segmentation_enabled = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		enabled, shiftID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("shift %s not found", shiftID)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM segments WHERE shift_id = ?", shiftID); err != nil {
		return fmt.Errorf("failed to clear segments: %w", err)
	}

	if err := insertSegments(ctx, tx, shiftID, seg.Segments); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit segmentation: %w", err)
	}
	return nil
}

// GetNextID returns the next available shift ID.
func (r *ShiftRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 7) AS INTEGER)), 0) FROM shifts",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next shift ID: %w", err)
	}

	return fmt.Sprintf("SHIFT-%03d", maxID+1), nil
}

func (r *ShiftRepository) loadSegments(ctx context.Context, shiftID string) ([]secondary.SegmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, start_time, end_time, operation_id FROM segments WHERE shift_id = ? ORDER BY position ASC",
		shiftID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load segments: %w", err)
	}
	defer rows.Close()

	var segments []secondary.SegmentRecord
	for rows.Next() {
		var seg secondary.SegmentRecord
		if err := rows.Scan(&seg.ID, &seg.StartTime, &seg.EndTime, &seg.OperationID); err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, seg)
	}

	return segments, rows.Err()
}

func insertSegments(ctx context.Context, tx *sql.Tx, shiftID string, segments []secondary.SegmentRecord) error {
	for position, seg := range segments {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO segments (shift_id, id, position, start_time, end_time, operation_id) VALUES (?, ?, ?, ?, ?, ?)",
			shiftID, seg.ID, position, seg.StartTime, seg.EndTime, seg.OperationID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert segment %s: %w", seg.ID, err)
		}
	}
	return nil
}

// Ensure ShiftRepository implements the interface.
var _ secondary.ShiftRepository = (*ShiftRepository)(nil)
