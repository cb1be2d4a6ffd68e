package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/rota/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change rota settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfigOrDefault()
		defaultOp := cfg.DefaultOperationID
		if defaultOp == "" {
			defaultOp = "(first catalog entry)"
		}
		fmt.Printf("Default operation: %s\n", defaultOp)
		fmt.Printf("Show labels: %v\n", cfg.ShowLabels)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg := config.LoadConfigOrDefault()

		if cmd.Flags().Changed("default-op") {
			cfg.DefaultOperationID, _ = cmd.Flags().GetString("default-op")
		}
		if cmd.Flags().Changed("labels") {
			cfg.ShowLabels, _ = cmd.Flags().GetBool("labels")
		}

		if err := config.SaveConfig(home, cfg); err != nil {
			return err
		}
		fmt.Println("✓ Settings saved")
		return nil
	},
}

func init() {
	configSetCmd.Flags().String("default-op", "", "Operation ID used for new segments")
	configSetCmd.Flags().Bool("labels", false, "Overlay operation names on bars by default")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	return configCmd
}
