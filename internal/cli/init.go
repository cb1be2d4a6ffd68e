package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/rota/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the rota database",
		Long:  `Initialize the rota database at ~/.rota/rota.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing rota database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			if seed, _ := cmd.Flags().GetBool("seed"); seed {
				database, err := db.GetDB()
				if err != nil {
					return err
				}
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Development fixtures loaded")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  rota op create \"Food Preparation\" --color \"#3498db\"")
			fmt.Println("  rota shift create \"Alice Martin\" --day 2026-09-01 --start 08:00 --end 17:00")

			return nil
		},
	}

	cmd.Flags().Bool("seed", false, "Load development fixtures after initializing")
	return cmd
}
