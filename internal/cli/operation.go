package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/rota/internal/ports/primary"
	"github.com/example/rota/internal/wire"
)

var opCmd = &cobra.Command{
	Use:   "op",
	Short: "Manage the operation catalog (named, colored categories of work)",
	Long:  "Create, list, show, update, and delete operations that shift segments are tagged with",
}

var opCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new operation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		colorFlag, _ := cmd.Flags().GetString("color")
		description, _ := cmd.Flags().GetString("description")

		op, err := wire.OperationService().CreateOperation(ctx, primary.CreateOperationRequest{
			Name:        args[0],
			Color:       colorFlag,
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("failed to create operation: %w", err)
		}

		fmt.Printf("✓ Created operation %s: %s %s\n", op.ID, op.Name, swatch(op.Color))
		if op.Description != "" {
			fmt.Printf("  Description: %s\n", op.Description)
		}
		return nil
	},
}

var opListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all operations in catalog order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		operations, err := wire.OperationService().ListOperations(ctx)
		if err != nil {
			return fmt.Errorf("failed to list operations: %w", err)
		}

		if len(operations) == 0 {
			fmt.Println("No operations found")
			return nil
		}

		fmt.Printf("Found %d operation(s):\n\n", len(operations))
		for _, op := range operations {
			fmt.Printf("%-8s %s %s", op.ID, swatch(op.Color), op.Name)
			if op.Description != "" {
				fmt.Printf(" - %s", op.Description)
			}
			fmt.Println()
		}
		return nil
	},
}

var opShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show operation details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		op, err := wire.OperationService().GetOperation(ctx, args[0])
		if err != nil {
			return fmt.Errorf("operation not found: %w", err)
		}

		fmt.Printf("Operation: %s (%s)\n", op.Name, op.ID)
		fmt.Printf("Color: %s %s\n", op.Color, swatch(op.Color))
		if op.Description != "" {
			fmt.Printf("Description: %s\n", op.Description)
		}
		fmt.Printf("Created: %s\n", op.CreatedAt)
		return nil
	},
}

var opUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an operation's name, color, or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name, _ := cmd.Flags().GetString("name")
		colorFlag, _ := cmd.Flags().GetString("color")
		description, _ := cmd.Flags().GetString("description")

		op, err := wire.OperationService().UpdateOperation(ctx, primary.UpdateOperationRequest{
			OperationID: args[0],
			Name:        name,
			Color:       colorFlag,
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("failed to update operation: %w", err)
		}

		fmt.Printf("✓ Updated operation %s: %s %s\n", op.ID, op.Name, swatch(op.Color))
		return nil
	},
}

var opDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an operation (segments referencing it render as Unknown)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := wire.OperationService().DeleteOperation(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}

		fmt.Printf("✓ Deleted operation: %s\n", args[0])
		fmt.Println(color.New(color.FgYellow).Sprint("  Segments tagged with it will render with the fallback color"))
		return nil
	},
}

func init() {
	opCreateCmd.Flags().StringP("color", "c", "#3498db", "Display color (#RGB or #RRGGBB)")
	opCreateCmd.Flags().StringP("description", "d", "", "Operation description")

	opUpdateCmd.Flags().String("name", "", "New display name")
	opUpdateCmd.Flags().StringP("color", "c", "", "New display color")
	opUpdateCmd.Flags().StringP("description", "d", "", "New description")

	opCmd.AddCommand(opCreateCmd)
	opCmd.AddCommand(opListCmd)
	opCmd.AddCommand(opShowCmd)
	opCmd.AddCommand(opUpdateCmd)
	opCmd.AddCommand(opDeleteCmd)
}

// OpCmd returns the op command
func OpCmd() *cobra.Command {
	return opCmd
}
