package gradient

import (
	"math"
	"testing"

	"github.com/example/rota/internal/core/segment"
)

func mustMinutes(t *testing.T, s string) segment.Minutes {
	t.Helper()
	m, err := segment.ParseMinutes(s)
	if err != nil {
		t.Fatalf("ParseMinutes(%q) failed: %v", s, err)
	}
	return m
}

func makeSegment(t *testing.T, id, start, end, operationID string) segment.Segment {
	t.Helper()
	return segment.Segment{
		ID:          id,
		Start:       mustMinutes(t, start),
		End:         mustMinutes(t, end),
		OperationID: operationID,
	}
}

func catalogResolver(catalog map[string][2]string) Resolver {
	return func(operationID string) (string, string, bool) {
		entry, ok := catalog[operationID]
		if !ok {
			return "", "", false
		}
		return entry[0], entry[1], true
	}
}

func percentEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestProjectFallbackCases(t *testing.T) {
	resolve := catalogResolver(map[string][2]string{
		"OP-001": {"Food Preparation", "#3498db"},
	})
	start := mustMinutes(t, "08:00")
	end := mustMinutes(t, "17:00")

	tests := []struct {
		name       string
		seg        segment.Segmentation
		shiftStart segment.Minutes
		shiftEnd   segment.Minutes
	}{
		{
			name:       "disabled segmentation",
			seg:        segment.Segmentation{Enabled: false, Segments: []segment.Segment{makeSegment(t, "seg-1", "08:00", "17:00", "OP-001")}},
			shiftStart: start,
			shiftEnd:   end,
		},
		{
			name:       "no segments",
			seg:        segment.Segmentation{Enabled: true},
			shiftStart: start,
			shiftEnd:   end,
		},
		{
			name:       "degenerate shift boundary",
			seg:        segment.Segmentation{Enabled: true, Segments: []segment.Segment{makeSegment(t, "seg-1", "08:00", "17:00", "OP-001")}},
			shiftStart: end,
			shiftEnd:   start,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.seg, tt.shiftStart, tt.shiftEnd, resolve)
			if len(got.Stops) != 1 {
				t.Fatalf("got %d stops, want 1", len(got.Stops))
			}
			if got.Stops[0].Color != FallbackColor {
				t.Errorf("Color = %q, want fallback %q", got.Stops[0].Color, FallbackColor)
			}
			if len(got.Labels) != 0 {
				t.Errorf("got %d labels, want 0", len(got.Labels))
			}
		})
	}
}

func TestProjectSingleSegment(t *testing.T) {
	resolve := catalogResolver(map[string][2]string{
		"OP-001": {"Food Preparation", "#3498db"},
	})
	seg := segment.Segmentation{
		Enabled:  true,
		Segments: []segment.Segment{makeSegment(t, "seg-1", "08:00", "17:00", "OP-001")},
	}

	got := Project(seg, mustMinutes(t, "08:00"), mustMinutes(t, "17:00"), resolve)

	if len(got.Stops) != 1 {
		t.Fatalf("got %d stops, want 1 flat fill", len(got.Stops))
	}
	if got.Stops[0].Color != "#3498db" {
		t.Errorf("Color = %q, want %q", got.Stops[0].Color, "#3498db")
	}
	if len(got.Labels) != 1 {
		t.Fatalf("got %d labels, want 1", len(got.Labels))
	}
	label := got.Labels[0]
	if label.Text != "Food Preparation" {
		t.Errorf("label Text = %q, want %q", label.Text, "Food Preparation")
	}
	if !percentEqual(label.StartPercent, 0) || !percentEqual(label.WidthPercent, 100) {
		t.Errorf("label placement = (%v, %v), want (0, 100)", label.StartPercent, label.WidthPercent)
	}
}

func TestProjectTwoSegmentsGapless(t *testing.T) {
	resolve := catalogResolver(map[string][2]string{
		"OP-001": {"Prep", "#111111"},
		"OP-002": {"Service", "#222222"},
	})
	seg := segment.Segmentation{
		Enabled: true,
		Segments: []segment.Segment{
			makeSegment(t, "seg-1", "08:00", "12:00", "OP-001"),
			makeSegment(t, "seg-2", "12:00", "17:00", "OP-002"),
		},
	}

	got := Project(seg, mustMinutes(t, "08:00"), mustMinutes(t, "17:00"), resolve)

	// 4h of a 9h shift: the transition sits at 44.44%, with no filler bands.
	wantStops := []Stop{
		{Color: "#111111", Percent: 0},
		{Color: "#111111", Percent: 44.44},
		{Color: "#222222", Percent: 44.44},
		{Color: "#222222", Percent: 100},
	}
	if len(got.Stops) != len(wantStops) {
		t.Fatalf("got %d stops, want %d: %+v", len(got.Stops), len(wantStops), got.Stops)
	}
	for i, want := range wantStops {
		if got.Stops[i].Color != want.Color || !percentEqual(got.Stops[i].Percent, want.Percent) {
			t.Errorf("stop %d = %+v, want %+v", i, got.Stops[i], want)
		}
	}

	if len(got.Labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(got.Labels))
	}
	if got.Labels[0].Text != "Prep" || got.Labels[1].Text != "Service" {
		t.Errorf("label texts = %q, %q", got.Labels[0].Text, got.Labels[1].Text)
	}
	if !percentEqual(got.Labels[1].StartPercent, 44.44) || !percentEqual(got.Labels[1].WidthPercent, 55.56) {
		t.Errorf("second label placement = (%v, %v), want (44.44, 55.56)", got.Labels[1].StartPercent, got.Labels[1].WidthPercent)
	}
}

func TestProjectGapRendersFiller(t *testing.T) {
	resolve := catalogResolver(map[string][2]string{
		"OP-001": {"Prep", "#111111"},
		"OP-002": {"Close", "#222222"},
	})
	seg := segment.Segmentation{
		Enabled: true,
		Segments: []segment.Segment{
			makeSegment(t, "seg-1", "08:00", "10:00", "OP-001"),
			makeSegment(t, "seg-2", "14:00", "17:00", "OP-002"),
		},
	}

	got := Project(seg, mustMinutes(t, "08:00"), mustMinutes(t, "17:00"), resolve)

	// Three bands: operation, filler over the 10:00-14:00 gap, operation.
	wantColors := []string{
		"#111111", "#111111",
		FallbackColor, FallbackColor,
		"#222222", "#222222",
	}
	if len(got.Stops) != len(wantColors) {
		t.Fatalf("got %d stops, want %d: %+v", len(got.Stops), len(wantColors), got.Stops)
	}
	for i, want := range wantColors {
		if got.Stops[i].Color != want {
			t.Errorf("stop %d color = %q, want %q", i, got.Stops[i].Color, want)
		}
	}

	// Filler band spans the gap exactly (2h/9h to 6h/9h).
	if !percentEqual(got.Stops[2].Percent, 22.22) || !percentEqual(got.Stops[3].Percent, 66.67) {
		t.Errorf("filler band = (%v, %v), want (22.22, 66.67)", got.Stops[2].Percent, got.Stops[3].Percent)
	}

	// Labels cover actual segments only, never the filler.
	if len(got.Labels) != 2 {
		t.Errorf("got %d labels, want 2", len(got.Labels))
	}
}

func TestProjectLeadingAndTrailingFiller(t *testing.T) {
	resolve := catalogResolver(map[string][2]string{
		"OP-001": {"Prep", "#111111"},
		"OP-002": {"Close", "#222222"},
	})
	seg := segment.Segmentation{
		Enabled: true,
		Segments: []segment.Segment{
			makeSegment(t, "seg-1", "09:00", "11:00", "OP-001"),
			makeSegment(t, "seg-2", "11:00", "16:00", "OP-002"),
		},
	}

	got := Project(seg, mustMinutes(t, "08:00"), mustMinutes(t, "17:00"), resolve)

	if got.Stops[0].Color != FallbackColor || !percentEqual(got.Stops[0].Percent, 0) {
		t.Errorf("first stop = %+v, want leading filler at 0", got.Stops[0])
	}
	last := got.Stops[len(got.Stops)-1]
	if last.Color != FallbackColor || !percentEqual(last.Percent, 100) {
		t.Errorf("last stop = %+v, want trailing filler at 100", last)
	}
}

func TestProjectUnknownOperationFallsBack(t *testing.T) {
	resolve := catalogResolver(map[string][2]string{
		"OP-001": {"Prep", "#111111"},
	})
	seg := segment.Segmentation{
		Enabled: true,
		Segments: []segment.Segment{
			makeSegment(t, "seg-1", "08:00", "12:00", "OP-001"),
			makeSegment(t, "seg-2", "12:00", "17:00", "OP-GONE"),
		},
	}

	got := Project(seg, mustMinutes(t, "08:00"), mustMinutes(t, "17:00"), resolve)

	if got.Stops[2].Color != FallbackColor {
		t.Errorf("unresolved segment color = %q, want fallback %q", got.Stops[2].Color, FallbackColor)
	}
	if got.Labels[1].Text != UnknownLabel {
		t.Errorf("unresolved label = %q, want %q", got.Labels[1].Text, UnknownLabel)
	}
}

func TestProjectToleratesOverlap(t *testing.T) {
	resolve := catalogResolver(map[string][2]string{
		"OP-001": {"Prep", "#111111"},
		"OP-002": {"Close", "#222222"},
	})
	seg := segment.Segmentation{
		Enabled: true,
		Segments: []segment.Segment{
			makeSegment(t, "seg-1", "08:00", "14:00", "OP-001"),
			makeSegment(t, "seg-2", "12:00", "17:00", "OP-002"),
		},
	}

	got := Project(seg, mustMinutes(t, "08:00"), mustMinutes(t, "17:00"), resolve)

	// Overlapping input still renders best-effort with no filler inserted.
	for _, stop := range got.Stops {
		if stop.Percent < 0 || stop.Percent > 100 {
			t.Errorf("stop percent %v outside [0,100]", stop.Percent)
		}
		if stop.Color == FallbackColor {
			t.Errorf("unexpected filler band in overlapping projection: %+v", got.Stops)
		}
	}
}

func TestProjectClampsOutsideShift(t *testing.T) {
	resolve := catalogResolver(map[string][2]string{
		"OP-001": {"Prep", "#111111"},
		"OP-002": {"Close", "#222222"},
	})
	seg := segment.Segmentation{
		Enabled: true,
		Segments: []segment.Segment{
			makeSegment(t, "seg-1", "06:00", "12:00", "OP-001"),
			makeSegment(t, "seg-2", "12:00", "19:00", "OP-002"),
		},
	}

	got := Project(seg, mustMinutes(t, "08:00"), mustMinutes(t, "17:00"), resolve)

	for _, stop := range got.Stops {
		if stop.Percent < 0 || stop.Percent > 100 {
			t.Errorf("stop percent %v outside [0,100]", stop.Percent)
		}
	}
}
