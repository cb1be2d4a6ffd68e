package app

import (
	"context"
	"fmt"

	"github.com/example/rota/internal/core/segment"
	"github.com/example/rota/internal/ports/primary"
	"github.com/example/rota/internal/ports/secondary"
)

// ShiftServiceImpl implements the ShiftService interface.
type ShiftServiceImpl struct {
	shiftRepo secondary.ShiftRepository
}

// NewShiftService creates a new ShiftService with injected dependencies.
func NewShiftService(shiftRepo secondary.ShiftRepository) *ShiftServiceImpl {
	return &ShiftServiceImpl{
		shiftRepo: shiftRepo,
	}
}

// CreateShift creates a new shift with an empty, disabled segmentation.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req primary.CreateShiftRequest) (*primary.Shift, error) {
	if req.Employee == "" {
		return nil, fmt.Errorf("employee is required")
	}
	start, err := segment.ParseMinutes(req.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid shift start: %w", err)
	}
	end, err := segment.ParseMinutes(req.End)
	if err != nil {
		return nil, fmt.Errorf("invalid shift end: %w", err)
	}
	if end <= start {
		return nil, fmt.Errorf("shift end (%s) must be after shift start (%s)", end, start)
	}

	nextID, err := s.shiftRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate shift ID: %w", err)
	}

	record := &secondary.ShiftRecord{
		ID:        nextID,
		Employee:  req.Employee,
		Day:       req.Day,
		StartTime: start.String(),
		EndTime:   end.String(),
	}
	if err := s.shiftRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	created, err := s.shiftRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created shift: %w", err)
	}
	return recordToShift(created)
}

// GetShift retrieves a shift by ID.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, shiftID string) (*primary.Shift, error) {
	record, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	return recordToShift(record)
}

// ListShifts retrieves shifts matching the filters.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, filters primary.ShiftFilters) ([]*primary.Shift, error) {
	records, err := s.shiftRepo.List(ctx, secondary.ShiftFilters{
		Employee: filters.Employee,
		Day:      filters.Day,
		Limit:    filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	shifts := make([]*primary.Shift, len(records))
	for i, r := range records {
		shift, err := recordToShift(r)
		if err != nil {
			return nil, err
		}
		shifts[i] = shift
	}
	return shifts, nil
}

// DeleteShift removes a shift and its segmentation.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, shiftID string) error {
	return s.shiftRepo.Delete(ctx, shiftID)
}

// recordToShift converts a persisted shift into the port boundary type,
// parsing the stored clock strings.
func recordToShift(r *secondary.ShiftRecord) (*primary.Shift, error) {
	start, err := segment.ParseMinutes(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("shift %s has invalid start time: %w", r.ID, err)
	}
	end, err := segment.ParseMinutes(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("shift %s has invalid end time: %w", r.ID, err)
	}

	seg, err := recordToSegmentation(r.Segmentation)
	if err != nil {
		return nil, fmt.Errorf("shift %s: %w", r.ID, err)
	}

	return &primary.Shift{
		ID:           r.ID,
		Employee:     r.Employee,
		Day:          r.Day,
		Start:        start,
		End:          end,
		Segmentation: seg,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

func recordToSegmentation(r secondary.SegmentationRecord) (segment.Segmentation, error) {
	seg := segment.Segmentation{Enabled: r.Enabled}
	for _, sr := range r.Segments {
		start, err := segment.ParseMinutes(sr.StartTime)
		if err != nil {
			return segment.Segmentation{}, fmt.Errorf("segment %s has invalid start time: %w", sr.ID, err)
		}
		end, err := segment.ParseMinutes(sr.EndTime)
		if err != nil {
			return segment.Segmentation{}, fmt.Errorf("segment %s has invalid end time: %w", sr.ID, err)
		}
		seg.Segments = append(seg.Segments, segment.Segment{
			ID:          sr.ID,
			Start:       start,
			End:         end,
			OperationID: sr.OperationID,
		})
	}
	return seg, nil
}

func segmentationToRecord(seg segment.Segmentation) secondary.SegmentationRecord {
	record := secondary.SegmentationRecord{Enabled: seg.Enabled}
	for _, s := range seg.Segments {
		record.Segments = append(record.Segments, secondary.SegmentRecord{
			ID:          s.ID,
			StartTime:   s.Start.String(),
			EndTime:     s.End.String(),
			OperationID: s.OperationID,
		})
	}
	return record
}

// Ensure ShiftServiceImpl implements the interface.
var _ primary.ShiftService = (*ShiftServiceImpl)(nil)
