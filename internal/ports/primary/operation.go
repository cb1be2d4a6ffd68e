package primary

import "context"

// OperationService defines the primary port for catalog operations.
type OperationService interface {
	// CreateOperation adds a new operation to the catalog.
	CreateOperation(ctx context.Context, req CreateOperationRequest) (*Operation, error)

	// GetOperation retrieves an operation by ID.
	GetOperation(ctx context.Context, operationID string) (*Operation, error)

	// ListOperations retrieves the catalog in creation order.
	ListOperations(ctx context.Context) ([]*Operation, error)

	// UpdateOperation updates name, color, or description of an operation.
	UpdateOperation(ctx context.Context, req UpdateOperationRequest) (*Operation, error)

	// DeleteOperation removes an operation from the catalog. Segments that
	// reference it keep their dangling ID and render with the fallback color.
	DeleteOperation(ctx context.Context, operationID string) error
}

// CreateOperationRequest contains parameters for creating an operation.
type CreateOperationRequest struct {
	Name        string
	Color       string
	Description string
}

// UpdateOperationRequest contains parameters for updating an operation.
// Empty fields are left unchanged.
type UpdateOperationRequest struct {
	OperationID string
	Name        string
	Color       string
	Description string
}

// Operation represents a catalog entry at the port boundary.
type Operation struct {
	ID          string
	Name        string
	Color       string
	Description string
	CreatedAt   string
	UpdatedAt   string
}
