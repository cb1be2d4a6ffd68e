package segment

import "fmt"

// ViolationKind classifies a validation finding.
type ViolationKind string

// Violation kinds reported by Validate.
const (
	ViolationStartCoverage ViolationKind = "start_coverage"
	ViolationEndCoverage   ViolationKind = "end_coverage"
	ViolationDegenerate    ViolationKind = "degenerate"
	ViolationGap           ViolationKind = "gap"
	ViolationOverlap       ViolationKind = "overlap"
)

// Violation is one validation finding with a display-ready message.
// Segment positions in messages are 1-based in start-time order.
type Violation struct {
	Kind    ViolationKind
	Message string
}

// Validate checks a segment list against the shift boundary and returns all
// findings at once so the caller can show the complete list. An empty
// segment list is trivially valid: segmentation is optional. A degenerate
// shift boundary (end not after start) yields no findings; callers are
// expected to gate on a positive-duration shift before segmenting it.
func Validate(segments []Segment, shiftStart, shiftEnd Minutes) []Violation {
	if len(segments) == 0 || shiftEnd <= shiftStart {
		return nil
	}

	sorted := SortedByStart(segments)
	var violations []Violation

	if first := sorted[0]; first.Start != shiftStart {
		violations = append(violations, Violation{
			Kind:    ViolationStartCoverage,
			Message: fmt.Sprintf("first segment must start at shift start (%s)", shiftStart),
		})
	}
	if last := sorted[len(sorted)-1]; last.End != shiftEnd {
		violations = append(violations, Violation{
			Kind:    ViolationEndCoverage,
			Message: fmt.Sprintf("last segment must end at shift end (%s)", shiftEnd),
		})
	}

	for i, s := range sorted {
		if s.Start >= s.End {
			violations = append(violations, Violation{
				Kind:    ViolationDegenerate,
				Message: fmt.Sprintf("segment %d: start (%s) must precede end (%s)", i+1, s.Start, s.End),
			})
		}
	}

	for i := 0; i < len(sorted)-1; i++ {
		current, next := sorted[i], sorted[i+1]
		switch {
		case current.End < next.Start:
			violations = append(violations, Violation{
				Kind:    ViolationGap,
				Message: fmt.Sprintf("gap between segment %d and segment %d (%s to %s)", i+1, i+2, current.End, next.Start),
			})
		case current.End > next.Start:
			violations = append(violations, Violation{
				Kind:    ViolationOverlap,
				Message: fmt.Sprintf("overlap between segment %d and segment %d (%s to %s)", i+1, i+2, next.Start, current.End),
			})
		}
	}

	return violations
}
