package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/rota/internal/config"
	"github.com/example/rota/internal/core/segment"
	"github.com/example/rota/internal/ports/primary"
	"github.com/example/rota/internal/wire"
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Edit a shift's segmentation",
	Long:  "Enable, disable, and edit the operation segments of a shift. Validation feedback is printed after every edit.",
}

var segmentEnableCmd = &cobra.Command{
	Use:   "enable [shift-id]",
	Short: "Turn segmentation on for a shift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := wire.SegmentationService().Enable(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to enable segmentation: %w", err)
		}
		fmt.Printf("✓ Segmentation enabled for %s\n", args[0])
		printEditResult(result)
		return nil
	},
}

var segmentDisableCmd = &cobra.Command{
	Use:   "disable [shift-id]",
	Short: "Turn segmentation off (clears all segments)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.SegmentationService().Disable(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to disable segmentation: %w", err)
		}
		fmt.Printf("✓ Segmentation disabled for %s (segments cleared)\n", args[0])
		return nil
	},
}

var segmentAddCmd = &cobra.Command{
	Use:   "add [shift-id]",
	Short: "Add a segment starting where the last one ended",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		operationID, _ := cmd.Flags().GetString("op")
		if operationID == "" {
			operationID = config.LoadConfigOrDefault().DefaultOperationID
		}

		result, err := wire.SegmentationService().AddSegment(context.Background(), args[0], operationID)
		if err != nil {
			return fmt.Errorf("failed to add segment: %w", err)
		}
		added := result.Shift.Segmentation.Segments[len(result.Shift.Segmentation.Segments)-1]
		fmt.Printf("✓ Added %s: %s-%s (%s)\n", added.ID, added.Start, added.End, added.OperationID)
		printEditResult(result)
		return nil
	},
}

var segmentRemoveCmd = &cobra.Command{
	Use:   "remove [shift-id] [segment-id]",
	Short: "Remove a segment (gaps are reported, not healed)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := wire.SegmentationService().RemoveSegment(context.Background(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to remove segment: %w", err)
		}
		fmt.Printf("✓ Removed segment %s\n", args[1])
		printEditResult(result)
		return nil
	},
}

var segmentSetStartCmd = &cobra.Command{
	Use:   "set-start [shift-id] [segment-id] [HH:MM]",
	Short: "Change a segment's start time",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := wire.SegmentationService().SetSegmentStart(context.Background(), args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("failed to set start time: %w", err)
		}
		fmt.Printf("✓ Segment %s starts at %s\n", args[1], args[2])
		printEditResult(result)
		return nil
	},
}

var segmentSetEndCmd = &cobra.Command{
	Use:   "set-end [shift-id] [segment-id] [HH:MM]",
	Short: "Change a segment's end time",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := wire.SegmentationService().SetSegmentEnd(context.Background(), args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("failed to set end time: %w", err)
		}
		fmt.Printf("✓ Segment %s ends at %s\n", args[1], args[2])
		printEditResult(result)
		return nil
	},
}

var segmentSetOpCmd = &cobra.Command{
	Use:   "set-op [shift-id] [segment-id] [operation-id]",
	Short: "Change a segment's operation",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := wire.SegmentationService().SetSegmentOperation(context.Background(), args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("failed to set operation: %w", err)
		}
		fmt.Printf("✓ Segment %s tagged with %s\n", args[1], args[2])
		printEditResult(result)
		return nil
	},
}

var segmentAutoFillCmd = &cobra.Command{
	Use:   "auto-fill [shift-id]",
	Short: "Create one full-shift segment (no-op if segments exist)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		operationID, _ := cmd.Flags().GetString("op")
		if operationID == "" {
			operationID = config.LoadConfigOrDefault().DefaultOperationID
		}

		result, err := wire.SegmentationService().AutoFill(context.Background(), args[0], operationID)
		if err != nil {
			return fmt.Errorf("failed to auto-fill: %w", err)
		}
		fmt.Printf("✓ Shift %s has %d segment(s)\n", args[0], len(result.Shift.Segmentation.Segments))
		printEditResult(result)
		return nil
	},
}

var segmentValidateCmd = &cobra.Command{
	Use:   "validate [shift-id]",
	Short: "Re-run validation without changing anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		violations, err := wire.SegmentationService().Validate(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to validate: %w", err)
		}
		printViolations(violations)
		return nil
	},
}

// printEditResult prints the fresh validation state after an edit.
func printEditResult(result *primary.EditResult) {
	if len(result.Violations) > 0 {
		printViolations(result.Violations)
	}
}

// printViolations lists violations in red, or a green all-clear.
func printViolations(violations []segment.Violation) {
	if len(violations) == 0 {
		fmt.Println(color.New(color.FgGreen).Sprint("✓ Segmentation is valid"))
		return
	}
	fmt.Printf("%s\n", color.New(color.FgRed).Sprintf("%d violation(s):", len(violations)))
	for _, v := range violations {
		fmt.Printf("  %s %s\n", color.New(color.FgRed).Sprint("✗"), v.Message)
	}
}

func init() {
	segmentAddCmd.Flags().String("op", "", "Operation ID (defaults to config, then first catalog entry)")
	segmentAutoFillCmd.Flags().String("op", "", "Operation ID (defaults to config, then first catalog entry)")

	segmentCmd.AddCommand(segmentEnableCmd)
	segmentCmd.AddCommand(segmentDisableCmd)
	segmentCmd.AddCommand(segmentAddCmd)
	segmentCmd.AddCommand(segmentRemoveCmd)
	segmentCmd.AddCommand(segmentSetStartCmd)
	segmentCmd.AddCommand(segmentSetEndCmd)
	segmentCmd.AddCommand(segmentSetOpCmd)
	segmentCmd.AddCommand(segmentAutoFillCmd)
	segmentCmd.AddCommand(segmentValidateCmd)

	shiftCmd.AddCommand(segmentCmd)
}
