// Package segment contains the pure business logic for shift segmentation.
// A segmentation divides a shift into contiguous operation-tagged time
// segments. All functions here are pure: they take a value, return a new
// value, and never touch persistence or the operation catalog.
package segment

import (
	"fmt"
	"sort"
)

// Segment is a contiguous sub-interval of a shift assigned to one operation.
// OperationID may reference a catalog entry that no longer exists; consumers
// must degrade gracefully rather than fail.
type Segment struct {
	ID          string  `json:"id"`
	Start       Minutes `json:"startTime"`
	End         Minutes `json:"endTime"`
	OperationID string  `json:"operationId"`
}

// Segmentation is the enable flag plus segment list owned by one shift.
// Segments keep insertion order; analysis functions sort internally.
type Segmentation struct {
	Enabled  bool      `json:"isEnabled"`
	Segments []Segment `json:"segments"`
}

// Toggle sets the enabled flag. Disabling clears the segment list:
// re-enabling starts fresh rather than resurrecting stale segments.
func Toggle(seg Segmentation, enabled bool) Segmentation {
	if !enabled {
		return Segmentation{Enabled: false}
	}
	seg.Enabled = true
	return seg
}

// AddSegment appends a new segment starting where the last one ended (or at
// shift start if the list is empty) and running to shift end.
func AddSegment(seg Segmentation, shiftStart, shiftEnd Minutes, operationID string) Segmentation {
	start := shiftStart
	if n := len(seg.Segments); n > 0 {
		start = seg.Segments[n-1].End
	}
	next := Segment{
		ID:          nextSegmentID(seg.Segments),
		Start:       start,
		End:         shiftEnd,
		OperationID: operationID,
	}
	seg.Segments = append(copySegments(seg.Segments), next)
	return seg
}

// RemoveSegment drops the segment with the given ID. The resulting gap is
// left as-is; the validator reports it.
func RemoveSegment(seg Segmentation, id string) Segmentation {
	kept := make([]Segment, 0, len(seg.Segments))
	for _, s := range seg.Segments {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	seg.Segments = kept
	return seg
}

// AutoFill creates a single segment spanning the whole shift. It only acts
// on an empty segment list; existing user edits are never overwritten.
func AutoFill(seg Segmentation, shiftStart, shiftEnd Minutes, operationID string) Segmentation {
	if len(seg.Segments) > 0 {
		return seg
	}
	return AddSegment(seg, shiftStart, shiftEnd, operationID)
}

// Edit is one field change applied to a single segment. Each concrete edit
// carries a value of the right type for its field.
type Edit interface {
	apply(s *Segment)
}

// SetStart changes a segment's start time.
type SetStart struct {
	Start Minutes
}

func (e SetStart) apply(s *Segment) { s.Start = e.Start }

// SetEnd changes a segment's end time.
type SetEnd struct {
	End Minutes
}

func (e SetEnd) apply(s *Segment) { s.End = e.End }

// SetOperation changes a segment's operation reference.
type SetOperation struct {
	OperationID string
}

func (e SetOperation) apply(s *Segment) { s.OperationID = e.OperationID }

// ApplyEdit applies one edit to the segment with the given ID. Unknown IDs
// leave the segmentation unchanged.
func ApplyEdit(seg Segmentation, id string, edit Edit) Segmentation {
	segments := copySegments(seg.Segments)
	for i := range segments {
		if segments[i].ID == id {
			edit.apply(&segments[i])
			break
		}
	}
	seg.Segments = segments
	return seg
}

// SortedByStart returns the segments ordered by start time, with end time as
// the secondary key so equal starts order deterministically. The input slice
// is not modified.
func SortedByStart(segments []Segment) []Segment {
	sorted := copySegments(segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})
	return sorted
}

// nextSegmentID picks the lowest "seg-N" not taken by an existing segment,
// so IDs stay unique within the shift even after removals.
func nextSegmentID(segments []Segment) string {
	taken := make(map[string]bool, len(segments))
	for _, s := range segments {
		taken[s.ID] = true
	}
	for n := 1; ; n++ {
		id := fmt.Sprintf("seg-%d", n)
		if !taken[id] {
			return id
		}
	}
}

func copySegments(segments []Segment) []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)
	return out
}
