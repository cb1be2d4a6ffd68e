package primary

import (
	"context"

	"github.com/example/rota/internal/core/gradient"
	"github.com/example/rota/internal/core/segment"
)

// SegmentationService defines the primary port for editing and rendering a
// shift's segmentation. Every edit persists the new segmentation and returns
// the fresh violation list so the caller can show complete validation
// feedback after each change.
type SegmentationService interface {
	// Enable turns segmentation on for a shift.
	Enable(ctx context.Context, shiftID string) (*EditResult, error)

	// Disable turns segmentation off and clears the segment list.
	Disable(ctx context.Context, shiftID string) (*EditResult, error)

	// AddSegment appends a segment starting where the last one ended. An
	// empty operationID falls back to the first catalog entry.
	AddSegment(ctx context.Context, shiftID, operationID string) (*EditResult, error)

	// RemoveSegment deletes one segment; any resulting gap is reported, not
	// healed.
	RemoveSegment(ctx context.Context, shiftID, segmentID string) (*EditResult, error)

	// SetSegmentStart changes a segment's start time ("HH:MM").
	SetSegmentStart(ctx context.Context, shiftID, segmentID, start string) (*EditResult, error)

	// SetSegmentEnd changes a segment's end time ("HH:MM").
	SetSegmentEnd(ctx context.Context, shiftID, segmentID, end string) (*EditResult, error)

	// SetSegmentOperation changes a segment's operation reference.
	SetSegmentOperation(ctx context.Context, shiftID, segmentID, operationID string) (*EditResult, error)

	// AutoFill creates a single full-shift segment when no segments exist.
	AutoFill(ctx context.Context, shiftID, operationID string) (*EditResult, error)

	// Validate re-runs validation without changing anything.
	Validate(ctx context.Context, shiftID string) ([]segment.Violation, error)

	// RenderBar projects the stored segmentation against the operation
	// catalog into renderable stop and label data.
	RenderBar(ctx context.Context, shiftID string) (*gradient.Projection, error)
}

// EditResult is the outcome of one segmentation edit: the updated shift and
// the violations found in its new segmentation.
type EditResult struct {
	Shift      *Shift
	Violations []segment.Violation
}
