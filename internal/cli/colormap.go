package cli

import (
	"strconv"

	"github.com/fatih/color"
)

// ansi256 maps a "#RRGGBB" or "#RGB" hex color to the nearest entry in the
// 256-color terminal palette's 6x6x6 cube. Unparseable values map to a
// neutral gray.
func ansi256(hex string) int {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return 250
	}
	return 16 + 36*scale6(r) + 6*scale6(g) + scale6(b)
}

// paint colors text with a hex color via the 256-color escape (38;5;n),
// matching the terminal support fatih/color assumes.
func paint(hex, text string) string {
	return color.New(color.Attribute(38), color.Attribute(5), color.Attribute(ansi256(hex))).Sprint(text)
}

// swatch renders a small colored square for catalog listings.
func swatch(hex string) string {
	return paint(hex, "■")
}

func parseHex(hex string) (r, g, b int, ok bool) {
	if len(hex) == 0 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	digits := hex[1:]
	switch len(digits) {
	case 3:
		// #RGB doubles each digit
		var parts [3]int
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseInt(string(digits[i]), 16, 0)
			if err != nil {
				return 0, 0, 0, false
			}
			parts[i] = int(v)*16 + int(v)
		}
		return parts[0], parts[1], parts[2], true
	case 6:
		var parts [3]int
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseInt(digits[i*2:i*2+2], 16, 0)
			if err != nil {
				return 0, 0, 0, false
			}
			parts[i] = int(v)
		}
		return parts[0], parts[1], parts[2], true
	default:
		return 0, 0, 0, false
	}
}

// scale6 maps a 0-255 channel onto the 0-5 color cube axis.
func scale6(v int) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (v - 35) / 40
}
