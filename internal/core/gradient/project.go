// Package gradient projects a shift segmentation onto a 0-100% axis as a
// list of color stops and label placements. The output is pure data: the
// presentation layer decides how to draw it (terminal bar, CSS gradient).
package gradient

import (
	"github.com/example/rota/internal/core/segment"
)

// FallbackColor fills gaps and paints segments whose operation no longer
// exists in the catalog.
const FallbackColor = "#bdc3c7"

// UnknownLabel is the display name used when an operation ID does not
// resolve.
const UnknownLabel = "Unknown"

// Resolver looks up an operation's display name and color by ID. A false
// return means the catalog has no such entry.
type Resolver func(operationID string) (name, color string, ok bool)

// Stop is one gradient color stop at a percentage position along the shift.
type Stop struct {
	Color   string  `json:"color"`
	Percent float64 `json:"percent"`
}

// Label positions an operation name over the band it describes. Labels
// cover actual segments only, never filler bands.
type Label struct {
	Text         string  `json:"text"`
	StartPercent float64 `json:"startPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

// Projection is the renderable description of a segmentation bar.
type Projection struct {
	Stops  []Stop  `json:"stops"`
	Labels []Label `json:"labels"`
}

// Project maps a segmentation onto the [0,100] axis. Disabled or empty
// segmentations and degenerate shift boundaries produce a single fallback
// stop. One segment produces a flat fill. Two or more produce same-color
// stop pairs per segment with fallback-colored filler over uncovered spans.
// Project never fails: invalid configurations render best-effort, and the
// validator remains the authority on correctness.
func Project(seg segment.Segmentation, shiftStart, shiftEnd segment.Minutes, resolve Resolver) Projection {
	if !seg.Enabled || len(seg.Segments) == 0 || shiftEnd <= shiftStart {
		return Projection{Stops: []Stop{{Color: FallbackColor, Percent: 100}}}
	}

	sorted := segment.SortedByStart(seg.Segments)
	total := float64(shiftEnd - shiftStart)

	if len(sorted) == 1 {
		s := sorted[0]
		name, color := resolveOrFallback(resolve, s.OperationID)
		startPct := toPercent(s.Start, shiftStart, total)
		endPct := toPercent(s.End, shiftStart, total)
		return Projection{
			Stops:  []Stop{{Color: color, Percent: 100}},
			Labels: []Label{{Text: name, StartPercent: startPct, WidthPercent: endPct - startPct}},
		}
	}

	var stops []Stop
	var labels []Label
	cursor := 0.0

	for _, s := range sorted {
		name, color := resolveOrFallback(resolve, s.OperationID)
		startPct := toPercent(s.Start, shiftStart, total)
		endPct := toPercent(s.End, shiftStart, total)

		if startPct > cursor {
			stops = append(stops,
				Stop{Color: FallbackColor, Percent: cursor},
				Stop{Color: FallbackColor, Percent: startPct},
			)
		}
		stops = append(stops,
			Stop{Color: color, Percent: startPct},
			Stop{Color: color, Percent: endPct},
		)
		labels = append(labels, Label{
			Text:         name,
			StartPercent: startPct,
			WidthPercent: endPct - startPct,
		})
		if endPct > cursor {
			cursor = endPct
		}
	}

	if cursor < 100 {
		stops = append(stops,
			Stop{Color: FallbackColor, Percent: cursor},
			Stop{Color: FallbackColor, Percent: 100},
		)
	}

	return Projection{Stops: stops, Labels: labels}
}

func resolveOrFallback(resolve Resolver, operationID string) (name, color string) {
	if resolve != nil {
		if n, c, ok := resolve(operationID); ok {
			return n, c
		}
	}
	return UnknownLabel, FallbackColor
}

func toPercent(t, shiftStart segment.Minutes, total float64) float64 {
	pct := float64(t-shiftStart) / total * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
