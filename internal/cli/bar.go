package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/rota/internal/config"
	"github.com/example/rota/internal/core/gradient"
	"github.com/example/rota/internal/wire"
)

var shiftBarCmd = &cobra.Command{
	Use:   "bar [shift-id]",
	Short: "Render the shift's segmentation as a proportional color bar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		width, _ := cmd.Flags().GetInt("width")
		labels, _ := cmd.Flags().GetBool("labels")
		if !cmd.Flags().Changed("labels") {
			labels = config.LoadConfigOrDefault().ShowLabels
		}

		shift, err := wire.ShiftService().GetShift(ctx, args[0])
		if err != nil {
			return fmt.Errorf("shift not found: %w", err)
		}

		projection, err := wire.SegmentationService().RenderBar(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to render bar: %w", err)
		}

		fmt.Printf("%s  %s %s-%s\n", shift.ID, shift.Employee, shift.Start, shift.End)
		fmt.Println(renderBar(projection, width))
		if labels {
			for _, line := range renderLabels(projection.Labels, width) {
				fmt.Println(line)
			}
		}
		return nil
	},
}

// renderBar draws the projection as a row of colored block characters. Each
// column is painted with the color of the band covering its midpoint.
func renderBar(projection *gradient.Projection, width int) string {
	if width <= 0 {
		width = 60
	}

	var b strings.Builder
	for col := 0; col < width; col++ {
		midpoint := (float64(col) + 0.5) / float64(width) * 100
		b.WriteString(paint(colorAt(projection.Stops, midpoint), "█"))
	}
	return b.String()
}

// colorAt finds the band color covering a percent position. Stops come in
// same-color pairs per band; a single stop means a flat fill.
func colorAt(stops []gradient.Stop, pct float64) string {
	if len(stops) == 1 {
		return stops[0].Color
	}
	for i := 0; i+1 < len(stops); i += 2 {
		if pct >= stops[i].Percent && pct <= stops[i+1].Percent {
			return stops[i].Color
		}
	}
	return gradient.FallbackColor
}

// renderLabels positions operation names under the bar at their segment's
// start column, one row per label to avoid collisions.
func renderLabels(labels []gradient.Label, width int) []string {
	if width <= 0 {
		width = 60
	}

	lines := make([]string, 0, len(labels))
	for _, label := range labels {
		col := int(label.StartPercent / 100 * float64(width))
		if col >= width {
			col = width - 1
		}
		lines = append(lines, strings.Repeat(" ", col)+"└ "+label.Text)
	}
	return lines
}

func init() {
	shiftBarCmd.Flags().Int("width", 60, "Bar width in terminal columns")
	shiftBarCmd.Flags().Bool("labels", false, "Overlay operation names under the bar")

	shiftCmd.AddCommand(shiftBarCmd)
}
