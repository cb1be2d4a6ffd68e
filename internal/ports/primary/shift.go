package primary

import (
	"context"

	"github.com/example/rota/internal/core/segment"
)

// ShiftService defines the primary port for shift operations.
type ShiftService interface {
	// CreateShift creates a new shift with an empty, disabled segmentation.
	CreateShift(ctx context.Context, req CreateShiftRequest) (*Shift, error)

	// GetShift retrieves a shift by ID.
	GetShift(ctx context.Context, shiftID string) (*Shift, error)

	// ListShifts retrieves shifts matching the filters.
	ListShifts(ctx context.Context, filters ShiftFilters) ([]*Shift, error)

	// DeleteShift removes a shift and its segmentation.
	DeleteShift(ctx context.Context, shiftID string) error
}

// CreateShiftRequest contains parameters for creating a shift. Start and End
// are minute-precision "HH:MM" clock strings with Start before End.
type CreateShiftRequest struct {
	Employee string
	Day      string
	Start    string
	End      string
}

// ShiftFilters contains filter options for listing shifts.
type ShiftFilters struct {
	Employee string
	Day      string
	Limit    int
}

// Shift represents a shift at the port boundary. Start and End are the shift
// boundary the segmentation must partition.
type Shift struct {
	ID           string
	Employee     string
	Day          string
	Start        segment.Minutes
	End          segment.Minutes
	Segmentation segment.Segmentation
	CreatedAt    string
	UpdatedAt    string
}
