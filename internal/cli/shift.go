package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/rota/internal/ports/primary"
	"github.com/example/rota/internal/wire"
)

var shiftCmd = &cobra.Command{
	Use:   "shift",
	Short: "Manage shifts and their segmentations",
	Long:  "Create, list, show, and delete shifts; segment them with 'rota shift segment'",
}

var shiftCreateCmd = &cobra.Command{
	Use:   "create [employee]",
	Short: "Create a new shift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		day, _ := cmd.Flags().GetString("day")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")

		shift, err := wire.ShiftService().CreateShift(ctx, primary.CreateShiftRequest{
			Employee: args[0],
			Day:      day,
			Start:    start,
			End:      end,
		})
		if err != nil {
			return fmt.Errorf("failed to create shift: %w", err)
		}

		fmt.Printf("✓ Created shift %s: %s on %s, %s-%s\n",
			shift.ID, shift.Employee, shift.Day, shift.Start, shift.End)
		return nil
	},
}

var shiftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shifts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		employee, _ := cmd.Flags().GetString("employee")
		day, _ := cmd.Flags().GetString("day")
		limit, _ := cmd.Flags().GetInt("limit")

		shifts, err := wire.ShiftService().ListShifts(ctx, primary.ShiftFilters{
			Employee: employee,
			Day:      day,
			Limit:    limit,
		})
		if err != nil {
			return fmt.Errorf("failed to list shifts: %w", err)
		}

		if len(shifts) == 0 {
			fmt.Println("No shifts found")
			return nil
		}

		fmt.Printf("Found %d shift(s):\n\n", len(shifts))
		for _, shift := range shifts {
			marker := ""
			if shift.Segmentation.Enabled {
				marker = fmt.Sprintf(" [%d segment(s)]", len(shift.Segmentation.Segments))
			}
			fmt.Printf("%-10s %s  %s %s-%s%s\n",
				shift.ID, shift.Day, shift.Employee, shift.Start, shift.End, marker)
		}
		return nil
	},
}

var shiftShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show shift details, segments, and validation state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		shift, err := wire.ShiftService().GetShift(ctx, args[0])
		if err != nil {
			return fmt.Errorf("shift not found: %w", err)
		}

		fmt.Printf("Shift: %s\n", shift.ID)
		fmt.Printf("Employee: %s\n", shift.Employee)
		fmt.Printf("Day: %s\n", shift.Day)
		fmt.Printf("Time: %s-%s\n", shift.Start, shift.End)

		if !shift.Segmentation.Enabled {
			fmt.Println("Segmentation: disabled")
			return nil
		}

		fmt.Printf("Segmentation: enabled, %d segment(s)\n", len(shift.Segmentation.Segments))
		for _, seg := range shift.Segmentation.Segments {
			fmt.Printf("  %-8s %s-%s  %s\n", seg.ID, seg.Start, seg.End, seg.OperationID)
		}

		violations, err := wire.SegmentationService().Validate(ctx, shift.ID)
		if err != nil {
			return fmt.Errorf("failed to validate: %w", err)
		}
		fmt.Println()
		printViolations(violations)
		return nil
	},
}

var shiftDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a shift and its segmentation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := wire.ShiftService().DeleteShift(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete shift: %w", err)
		}

		fmt.Printf("✓ Deleted shift: %s\n", args[0])
		return nil
	},
}

func init() {
	shiftCreateCmd.Flags().String("day", "", "Day of the shift (YYYY-MM-DD)")
	shiftCreateCmd.Flags().String("start", "", "Shift start time (HH:MM)")
	shiftCreateCmd.Flags().String("end", "", "Shift end time (HH:MM)")
	shiftCreateCmd.MarkFlagRequired("start")
	shiftCreateCmd.MarkFlagRequired("end")

	shiftListCmd.Flags().String("employee", "", "Filter by employee")
	shiftListCmd.Flags().String("day", "", "Filter by day")
	shiftListCmd.Flags().Int("limit", 0, "Limit number of results")

	shiftCmd.AddCommand(shiftCreateCmd)
	shiftCmd.AddCommand(shiftListCmd)
	shiftCmd.AddCommand(shiftShowCmd)
	shiftCmd.AddCommand(shiftDeleteCmd)
}

// ShiftCmd returns the shift command
func ShiftCmd() *cobra.Command {
	return shiftCmd
}
