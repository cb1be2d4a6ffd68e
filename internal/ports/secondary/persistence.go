// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// OperationRepository defines the secondary port for operation catalog
// persistence.
type OperationRepository interface {
	// Create persists a new operation.
	Create(ctx context.Context, op *OperationRecord) error

	// GetByID retrieves an operation by its ID.
	GetByID(ctx context.Context, id string) (*OperationRecord, error)

	// Update updates an existing operation.
	Update(ctx context.Context, op *OperationRecord) error

	// Delete removes an operation from the catalog.
	Delete(ctx context.Context, id string) error

	// List retrieves all operations in catalog order (oldest first).
	List(ctx context.Context) ([]*OperationRecord, error)

	// GetNextID returns the next available operation ID.
	GetNextID(ctx context.Context) (string, error)
}

// OperationRecord represents a catalog operation as stored in persistence.
type OperationRecord struct {
	ID          string
	Name        string
	Color       string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// ShiftRepository defines the secondary port for shift persistence.
type ShiftRepository interface {
	// Create persists a new shift.
	Create(ctx context.Context, shift *ShiftRecord) error

	// GetByID retrieves a shift with its segmentation.
	GetByID(ctx context.Context, id string) (*ShiftRecord, error)

	// Delete removes a shift and its segments.
	Delete(ctx context.Context, id string) error

	// List retrieves shifts matching the given filters.
	List(ctx context.Context, filters ShiftFilters) ([]*ShiftRecord, error)

	// UpdateSegmentation replaces a shift's stored segmentation.
	UpdateSegmentation(ctx context.Context, shiftID string, seg SegmentationRecord) error

	// GetNextID returns the next available shift ID.
	GetNextID(ctx context.Context) (string, error)
}

// ShiftRecord represents a shift as stored in persistence. Times are
// minute-precision "HH:MM" strings.
type ShiftRecord struct {
	ID           string
	Employee     string
	Day          string
	StartTime    string
	EndTime      string
	Segmentation SegmentationRecord
	CreatedAt    string
	UpdatedAt    string
}

// SegmentationRecord is the persisted form of a shift segmentation.
// Segments keep insertion order.
type SegmentationRecord struct {
	Enabled  bool
	Segments []SegmentRecord
}

// SegmentRecord is one persisted segment. OperationID is intentionally not
// constrained to the catalog: a segment may outlive its operation.
type SegmentRecord struct {
	ID          string
	StartTime   string
	EndTime     string
	OperationID string
}

// ShiftFilters contains filter options for querying shifts.
type ShiftFilters struct {
	Employee string
	Day      string
	Limit    int
}
