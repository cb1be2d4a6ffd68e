// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/rota/internal/ports/secondary"
)

// OperationRepository implements secondary.OperationRepository with SQLite.
type OperationRepository struct {
	db *sql.DB
}

// NewOperationRepository creates a new SQLite operation repository.
func NewOperationRepository(db *sql.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

// Create persists a new operation.
func (r *OperationRepository) Create(ctx context.Context, op *secondary.OperationRecord) error {
	var desc sql.NullString
	if op.Description != "" {
		desc = sql.NullString{String: op.Description, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO operations (id, name, color, description) VALUES (?, ?, ?, ?)",
		op.ID, op.Name, op.Color, desc,
	)
	if err != nil {
		return fmt.Errorf("failed to create operation: %w", err)
	}

	return nil
}

// GetByID retrieves an operation by its ID.
func (r *OperationRepository) GetByID(ctx context.Context, id string) (*secondary.OperationRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, color, description, created_at, updated_at FROM operations WHERE id = ?",
		id,
	)

	record, err := scanOperation(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("operation %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}

	return record, nil
}

// Update updates an existing operation.
func (r *OperationRepository) Update(ctx context.Context, op *secondary.OperationRecord) error {
	var desc sql.NullString
	if op.Description != "" {
		desc = sql.NullString{String: op.Description, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE operations SET name = ?, color = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		op.Name, op.Color, desc, op.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("operation %s not found", op.ID)
	}

	return nil
}

// Delete removes an operation from the catalog. Segments referencing it are
// left untouched and degrade to the fallback color when rendered.
func (r *OperationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM operations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("operation %s not found", id)
	}

	return nil
}

// List retrieves all operations in catalog order (oldest first, so the
// first entry is the conventional default for new segments).
func (r *OperationRepository) List(ctx context.Context) ([]*secondary.OperationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, color, description, created_at, updated_at FROM operations ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var operations []*secondary.OperationRecord
	for rows.Next() {
		record, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		operations = append(operations, record)
	}

	return operations, rows.Err()
}

// GetNextID returns the next available operation ID.
func (r *OperationRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 4) AS INTEGER)), 0) FROM operations",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next operation ID: %w", err)
	}

	return fmt.Sprintf("OP-%03d", maxID+1), nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanOperation(row scanner) (*secondary.OperationRecord, error) {
	var (
		desc      sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.OperationRecord{}
	err := row.Scan(&record.ID, &record.Name, &record.Color, &desc, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Ensure OperationRepository implements the interface.
var _ secondary.OperationRepository = (*OperationRepository)(nil)
