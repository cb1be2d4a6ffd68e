package segment

import (
	"encoding/json"
	"fmt"
)

// Minutes is a minute-precision time of day (minutes since midnight).
type Minutes int

// ParseMinutes parses an "HH:MM" clock string into a Minutes value.
func ParseMinutes(s string) (Minutes, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: hour must be 0-23 and minute 0-59", s)
	}
	return Minutes(h*60 + m), nil
}

// String formats the time of day as "HH:MM".
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// MarshalJSON serializes the time as its "HH:MM" clock string.
func (m Minutes) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON parses a quoted "HH:MM" clock string.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid time value %s: %w", data, err)
	}
	parsed, err := ParseMinutes(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
