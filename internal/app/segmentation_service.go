package app

import (
	"context"
	"fmt"

	"github.com/example/rota/internal/core/gradient"
	"github.com/example/rota/internal/core/segment"
	"github.com/example/rota/internal/ports/primary"
	"github.com/example/rota/internal/ports/secondary"
)

// SegmentationServiceImpl implements the SegmentationService interface.
// Every edit follows the same cycle: load the shift, apply the pure store
// helper, persist the result, and re-validate so the caller gets complete
// feedback for the new state.
type SegmentationServiceImpl struct {
	shiftRepo     secondary.ShiftRepository
	operationRepo secondary.OperationRepository
}

// NewSegmentationService creates a new SegmentationService with injected dependencies.
func NewSegmentationService(shiftRepo secondary.ShiftRepository, operationRepo secondary.OperationRepository) *SegmentationServiceImpl {
	return &SegmentationServiceImpl{
		shiftRepo:     shiftRepo,
		operationRepo: operationRepo,
	}
}

// Enable turns segmentation on for a shift.
func (s *SegmentationServiceImpl) Enable(ctx context.Context, shiftID string) (*primary.EditResult, error) {
	return s.edit(ctx, shiftID, func(shift *primary.Shift) (segment.Segmentation, error) {
		return segment.Toggle(shift.Segmentation, true), nil
	})
}

// Disable turns segmentation off and clears the segment list.
func (s *SegmentationServiceImpl) Disable(ctx context.Context, shiftID string) (*primary.EditResult, error) {
	return s.edit(ctx, shiftID, func(shift *primary.Shift) (segment.Segmentation, error) {
		return segment.Toggle(shift.Segmentation, false), nil
	})
}

// AddSegment appends a segment starting where the last one ended. An empty
// operationID falls back to the first catalog entry.
func (s *SegmentationServiceImpl) AddSegment(ctx context.Context, shiftID, operationID string) (*primary.EditResult, error) {
	return s.edit(ctx, shiftID, func(shift *primary.Shift) (segment.Segmentation, error) {
		opID, err := s.resolveOperationID(ctx, operationID)
		if err != nil {
			return segment.Segmentation{}, err
		}
		return segment.AddSegment(shift.Segmentation, shift.Start, shift.End, opID), nil
	})
}

// RemoveSegment deletes one segment; any resulting gap is reported, not healed.
func (s *SegmentationServiceImpl) RemoveSegment(ctx context.Context, shiftID, segmentID string) (*primary.EditResult, error) {
	return s.edit(ctx, shiftID, func(shift *primary.Shift) (segment.Segmentation, error) {
		if err := requireSegment(shift.Segmentation, segmentID); err != nil {
			return segment.Segmentation{}, err
		}
		return segment.RemoveSegment(shift.Segmentation, segmentID), nil
	})
}

// SetSegmentStart changes a segment's start time.
func (s *SegmentationServiceImpl) SetSegmentStart(ctx context.Context, shiftID, segmentID, start string) (*primary.EditResult, error) {
	parsed, err := segment.ParseMinutes(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	return s.applySegmentEdit(ctx, shiftID, segmentID, segment.SetStart{Start: parsed})
}

// SetSegmentEnd changes a segment's end time.
func (s *SegmentationServiceImpl) SetSegmentEnd(ctx context.Context, shiftID, segmentID, end string) (*primary.EditResult, error) {
	parsed, err := segment.ParseMinutes(end)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}
	return s.applySegmentEdit(ctx, shiftID, segmentID, segment.SetEnd{End: parsed})
}

// SetSegmentOperation changes a segment's operation reference. The target
// operation must exist at assignment time; references only dangle when the
// operation is deleted later.
func (s *SegmentationServiceImpl) SetSegmentOperation(ctx context.Context, shiftID, segmentID, operationID string) (*primary.EditResult, error) {
	if _, err := s.operationRepo.GetByID(ctx, operationID); err != nil {
		return nil, err
	}
	return s.applySegmentEdit(ctx, shiftID, segmentID, segment.SetOperation{OperationID: operationID})
}

// AutoFill creates a single full-shift segment when no segments exist.
func (s *SegmentationServiceImpl) AutoFill(ctx context.Context, shiftID, operationID string) (*primary.EditResult, error) {
	return s.edit(ctx, shiftID, func(shift *primary.Shift) (segment.Segmentation, error) {
		opID, err := s.resolveOperationID(ctx, operationID)
		if err != nil {
			return segment.Segmentation{}, err
		}
		return segment.AutoFill(shift.Segmentation, shift.Start, shift.End, opID), nil
	})
}

// Validate re-runs validation without changing anything.
func (s *SegmentationServiceImpl) Validate(ctx context.Context, shiftID string) ([]segment.Violation, error) {
	record, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	shift, err := recordToShift(record)
	if err != nil {
		return nil, err
	}
	return segment.Validate(shift.Segmentation.Segments, shift.Start, shift.End), nil
}

// RenderBar projects the stored segmentation against the operation catalog.
func (s *SegmentationServiceImpl) RenderBar(ctx context.Context, shiftID string) (*gradient.Projection, error) {
	record, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	shift, err := recordToShift(record)
	if err != nil {
		return nil, err
	}

	resolve, err := s.catalogResolver(ctx)
	if err != nil {
		return nil, err
	}

	projection := gradient.Project(shift.Segmentation, shift.Start, shift.End, resolve)
	return &projection, nil
}

// edit runs one load-mutate-persist-validate cycle.
func (s *SegmentationServiceImpl) edit(ctx context.Context, shiftID string, mutate func(*primary.Shift) (segment.Segmentation, error)) (*primary.EditResult, error) {
	record, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	shift, err := recordToShift(record)
	if err != nil {
		return nil, err
	}

	updated, err := mutate(shift)
	if err != nil {
		return nil, err
	}

	if err := s.shiftRepo.UpdateSegmentation(ctx, shiftID, segmentationToRecord(updated)); err != nil {
		return nil, fmt.Errorf("failed to persist segmentation: %w", err)
	}

	shift.Segmentation = updated
	return &primary.EditResult{
		Shift:      shift,
		Violations: segment.Validate(updated.Segments, shift.Start, shift.End),
	}, nil
}

func (s *SegmentationServiceImpl) applySegmentEdit(ctx context.Context, shiftID, segmentID string, e segment.Edit) (*primary.EditResult, error) {
	return s.edit(ctx, shiftID, func(shift *primary.Shift) (segment.Segmentation, error) {
		if err := requireSegment(shift.Segmentation, segmentID); err != nil {
			return segment.Segmentation{}, err
		}
		return segment.ApplyEdit(shift.Segmentation, segmentID, e), nil
	})
}

// resolveOperationID validates an explicit operation ID, or picks the first
// catalog entry when none is given.
func (s *SegmentationServiceImpl) resolveOperationID(ctx context.Context, operationID string) (string, error) {
	if operationID != "" {
		if _, err := s.operationRepo.GetByID(ctx, operationID); err != nil {
			return "", err
		}
		return operationID, nil
	}

	operations, err := s.operationRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list operations: %w", err)
	}
	if len(operations) == 0 {
		return "", fmt.Errorf("operation catalog is empty: create an operation first")
	}
	return operations[0].ID, nil
}

func requireSegment(seg segment.Segmentation, segmentID string) error {
	for _, s := range seg.Segments {
		if s.ID == segmentID {
			return nil
		}
	}
	return fmt.Errorf("segment %s not found", segmentID)
}

// catalogResolver loads the catalog once and resolves lookups from memory.
func (s *SegmentationServiceImpl) catalogResolver(ctx context.Context) (gradient.Resolver, error) {
	operations, err := s.operationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	byID := make(map[string]*secondary.OperationRecord, len(operations))
	for _, op := range operations {
		byID[op.ID] = op
	}

	return func(operationID string) (string, string, bool) {
		op, ok := byID[operationID]
		if !ok {
			return "", "", false
		}
		return op.Name, op.Color, true
	}, nil
}

// Ensure SegmentationServiceImpl implements the interface.
var _ primary.SegmentationService = (*SegmentationServiceImpl)(nil)
