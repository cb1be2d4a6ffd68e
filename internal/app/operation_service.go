// Package app contains the application services implementing the primary
// ports. Services orchestrate repositories and the pure core logic.
package app

import (
	"context"
	"fmt"

	"github.com/example/rota/internal/ports/primary"
	"github.com/example/rota/internal/ports/secondary"
)

// OperationServiceImpl implements the OperationService interface.
type OperationServiceImpl struct {
	operationRepo secondary.OperationRepository
}

// NewOperationService creates a new OperationService with injected dependencies.
func NewOperationService(operationRepo secondary.OperationRepository) *OperationServiceImpl {
	return &OperationServiceImpl{
		operationRepo: operationRepo,
	}
}

// CreateOperation adds a new operation to the catalog.
func (s *OperationServiceImpl) CreateOperation(ctx context.Context, req primary.CreateOperationRequest) (*primary.Operation, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("operation name is required")
	}
	if err := validateHexColor(req.Color); err != nil {
		return nil, err
	}

	nextID, err := s.operationRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate operation ID: %w", err)
	}

	record := &secondary.OperationRecord{
		ID:          nextID,
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	}
	if err := s.operationRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}

	created, err := s.operationRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created operation: %w", err)
	}

	return recordToOperation(created), nil
}

// GetOperation retrieves an operation by ID.
func (s *OperationServiceImpl) GetOperation(ctx context.Context, operationID string) (*primary.Operation, error) {
	record, err := s.operationRepo.GetByID(ctx, operationID)
	if err != nil {
		return nil, err
	}
	return recordToOperation(record), nil
}

// ListOperations retrieves the catalog in creation order.
func (s *OperationServiceImpl) ListOperations(ctx context.Context) ([]*primary.Operation, error) {
	records, err := s.operationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	operations := make([]*primary.Operation, len(records))
	for i, r := range records {
		operations[i] = recordToOperation(r)
	}
	return operations, nil
}

// UpdateOperation updates name, color, or description. Empty request fields
// keep their stored values.
func (s *OperationServiceImpl) UpdateOperation(ctx context.Context, req primary.UpdateOperationRequest) (*primary.Operation, error) {
	record, err := s.operationRepo.GetByID(ctx, req.OperationID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		record.Name = req.Name
	}
	if req.Color != "" {
		if err := validateHexColor(req.Color); err != nil {
			return nil, err
		}
		record.Color = req.Color
	}
	if req.Description != "" {
		record.Description = req.Description
	}

	if err := s.operationRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update operation: %w", err)
	}

	updated, err := s.operationRepo.GetByID(ctx, req.OperationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated operation: %w", err)
	}
	return recordToOperation(updated), nil
}

// DeleteOperation removes an operation from the catalog. Segments that
// reference it are not touched; they render with the fallback color.
func (s *OperationServiceImpl) DeleteOperation(ctx context.Context, operationID string) error {
	return s.operationRepo.Delete(ctx, operationID)
}

// validateHexColor accepts "#RGB" and "#RRGGBB" color values.
func validateHexColor(color string) error {
	if len(color) != 4 && len(color) != 7 {
		return fmt.Errorf("invalid color %q: expected #RGB or #RRGGBB", color)
	}
	if color[0] != '#' {
		return fmt.Errorf("invalid color %q: expected #RGB or #RRGGBB", color)
	}
	for _, c := range color[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return fmt.Errorf("invalid color %q: expected #RGB or #RRGGBB", color)
		}
	}
	return nil
}

func recordToOperation(r *secondary.OperationRecord) *primary.Operation {
	return &primary.Operation{
		ID:          r.ID,
		Name:        r.Name,
		Color:       r.Color,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Ensure OperationServiceImpl implements the interface.
var _ primary.OperationService = (*OperationServiceImpl)(nil)
