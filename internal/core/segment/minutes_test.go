package segment

import (
	"encoding/json"
	"testing"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Minutes
		wantErr bool
	}{
		{name: "morning", input: "08:00", want: 480},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "23:59", want: 1439},
		{name: "single digit hour", input: "9:30", want: 570},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMinutes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMinutes(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMinutes(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinutesString(t *testing.T) {
	if got := Minutes(480).String(); got != "08:00" {
		t.Errorf("String() = %q, want %q", got, "08:00")
	}
	if got := Minutes(1439).String(); got != "23:59" {
		t.Errorf("String() = %q, want %q", got, "23:59")
	}
}

func TestSegmentationJSONShape(t *testing.T) {
	seg := Segmentation{
		Enabled: true,
		Segments: []Segment{
			makeSegment(t, "seg-1", "08:00", "12:30", "OP-001"),
		},
	}

	data, err := json.Marshal(seg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"isEnabled":true,"segments":[{"id":"seg-1","startTime":"08:00","endTime":"12:30","operationId":"OP-001"}]}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}

	var decoded Segmentation
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Segments[0].Start != mustMinutes(t, "08:00") {
		t.Errorf("decoded start = %s, want 08:00", decoded.Segments[0].Start)
	}
}
